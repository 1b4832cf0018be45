// Package script drives an Editor from a recorded list of input events,
// one JSON object per line:
//
//	{"type":"resize","width":1018}
//	{"type":"down","x":100,"y":100}
//	{"type":"up","x":160,"y":100}
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"CircleBoard/internal/state"
)

// Decode reads every event from r.
func Decode(r io.Reader) ([]state.Event, error) {
	var events []state.Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		var ev state.Event
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ev.Kind == "" {
			return nil, fmt.Errorf("line %d: missing event type", line)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return events, nil
}

// Dispatcher is the part of the Editor the runner needs.
type Dispatcher interface {
	Dispatch(ev state.Event) error
}

// Run feeds events to d one at a time, in order. It stops at the first
// dispatch error or when ctx is cancelled.
func Run(ctx context.Context, d Dispatcher, events []state.Event) error {
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Dispatch(ev); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	log.Printf("[SCRIPT] Dispatched %d events", len(events))
	return nil
}

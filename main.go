package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"CircleBoard/internal/export"
	"CircleBoard/internal/render"
	"CircleBoard/internal/script"
	"CircleBoard/internal/state"
	"CircleBoard/internal/ui"
)

const defaultViewportWidth = 1018

func main() {
	args := os.Args
	if len(args) > 1 && args[1] == "replay" {
		if err := runReplay(args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "replay: %v\n", err)
			os.Exit(1)
		}
		return
	}
	runApp()
}

func runApp() {
	log.Println("Starting CircleBoard")
	ui.RunApp(state.ConfigFromEnv())
}

// runReplay drives a headless editor from a script file and optionally
// exports the result.
func runReplay(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	pngPath := fs.String("o", "", "write the final raster to this PNG file")
	pdfPath := fs.String("pdf", "", "write the final circles to this PDF file")
	width := fs.Float64("width", defaultViewportWidth, "viewport width used for the initial load")
	resetClears := fs.Bool("reset-clears", false, "reset also clears the shape list")
	redraw := fs.Bool("redraw-on-resize", false, "repaint circles after a resize")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: circleboard replay [flags] <script.jsonl|->")
	}

	events, err := readScript(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg := state.ConfigFromEnv()
	cfg.ResetClearsShapes = *resetClears
	cfg.RedrawOnResize = *redraw

	surface := render.NewSurface(1, 1)
	editor := state.NewEditor(cfg, script.NewConsole(surface, out))
	editor.Resize(*width)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := script.Run(ctx, editor, events); err != nil {
		return err
	}

	circles := editor.Circles()
	log.Printf("[SCRIPT] %d circles on the board", len(circles))

	if *pngPath != "" {
		err := export.ToFile(*pngPath, func(w io.Writer) error {
			return export.WritePNG(w, surface)
		})
		if err != nil {
			return err
		}
	}
	if *pdfPath != "" {
		size := editor.Size()
		err := export.ToFile(*pdfPath, func(w io.Writer) error {
			return export.WritePDF(w, circles, float64(size.BackingWidth), float64(size.BackingHeight))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func readScript(path string) ([]state.Event, error) {
	if path == "-" {
		return script.Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open script: %w", err)
	}
	defer f.Close()
	return script.Decode(f)
}

// Package export writes the board to PDF and PNG files.
package export

import (
	"fmt"
	"io"
	"log"
	"os"

	"CircleBoard/internal/render"
)

func WritePNG(w io.Writer, s *render.Surface) error {
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// ToFile creates path and hands it to write, closing it afterwards.
func ToFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %s", path)
	return nil
}

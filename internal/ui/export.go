package ui

import (
	"fmt"
	"io"
	"log"

	"CircleBoard/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (b *Board) ExportPDF() {
	b.saveAs("circles.pdf", func(w io.Writer) error {
		size := b.Editor.Size()
		return export.WritePDF(w, b.Editor.Circles(), float64(size.BackingWidth), float64(size.BackingHeight))
	})
}

func (b *Board) ExportPNG() {
	b.saveAs("circles.png", func(w io.Writer) error {
		return export.WritePNG(w, b.Surface)
	})
}

func (b *Board) saveAs(name string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, b.Window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		b.writeExport(writer, write)
	}, b.Window)
	d.SetFileName(name)
	d.Show()
}

func (b *Board) writeExport(writer fyne.URIWriteCloser, write func(io.Writer) error) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing writer: %v", err)
		}
	}()

	if err := write(writer); err != nil {
		log.Printf("[UI] Export to %s failed: %v", writer.URI(), err)
		dialog.ShowError(err, b.Window)
		b.SetStatus("Export failed")
		return
	}
	log.Printf("[UI] Exported %s", writer.URI())
	b.SetStatus(fmt.Sprintf("Exported %s", writer.URI().Name()))
}

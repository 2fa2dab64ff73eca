package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// writeFile creates filename and hands it to write. The file is closed even
// when write fails and a close error is reported if nothing else went wrong.
func writeFile(filename string, write func(io.Writer) error) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filename, cerr)
		}
	}()
	if err := write(file); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func marshalSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// ExportJSON writes the current project snapshot. An empty editor still
// produces a valid document with empty collections.
func ExportJSON(e *Editor, filename string) error {
	data, err := marshalSnapshot(e.ExportSnapshot())
	if err != nil {
		return err
	}
	return writeFile(filename, func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}

// ExportVisualTXT writes the terminal rendering of the scheme followed by the
// technical summary.
func ExportVisualTXT(e *Editor, filename string, cols, rows int) error {
	return writeFile(filename, func(w io.Writer) error {
		return writeVisualTXT(w, e, cols, rows)
	})
}

func writeVisualTXT(w io.Writer, e *Editor, cols, rows int) error {
	if cols < 1 {
		cols = 80 // Default minimum width
	}
	if rows < 1 {
		rows = 24 // Default minimum height
	}
	for _, line := range e.Render(cols, rows, -1, -1, false) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range summaryLines(e.Summary()) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func summaryLines(s Summary) []string {
	return []string{
		fmt.Sprintf("Parcels:        %d", s.Parcels),
		fmt.Sprintf("Sluices:        %d", s.Sluices),
		fmt.Sprintf("Main canal:     %.0f m", s.MainCanalLength),
		fmt.Sprintf("Total area:     %.1f ha", s.TotalArea),
		"Irrigation:     surface",
	}
}

var legendLines = []string{
	"━━ Main canal",
	"── Secondary canal",
	"┄┄ Tertiary canal / pipe",
	"┌┐ Parcel",
	"●  Sluice",
}

func defaultFilename(op FileOperation) string {
	switch op {
	case FileOpExportJSON:
		return defaultProjectFile
	case FileOpExportSVG:
		return defaultSchemeBase + ".svg"
	case FileOpExportPNG:
		return defaultSchemeBase + ".png"
	case FileOpExportPDF:
		return defaultSchemeBase + ".pdf"
	case FileOpExportVisualTXT:
		return defaultSchemeBase + ".txt"
	default:
		return defaultProjectFile
	}
}

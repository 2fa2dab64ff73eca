package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportJSON_EmptyEditor(t *testing.T) {
	e := newTestEditor()
	e.ClearAll()
	path := filepath.Join(t.TempDir(), "project.json")
	if err := ExportJSON(e, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"parcels", "sluices"} {
		if got := string(doc[key]); got != "[]" {
			t.Errorf("expected %s to be [], got %s", key, got)
		}
	}
	if _, ok := doc["metadata"]; !ok {
		t.Error("expected metadata in document")
	}
}

func TestExportJSON_FieldNames(t *testing.T) {
	e := newTestEditor()
	e.LoadBaseScheme()
	path := filepath.Join(t.TempDir(), "project.json")
	if err := ExportJSON(e, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if snap.Metadata.Counts.Parcels != 9 || snap.Metadata.Counts.Sluices != 6 {
		t.Errorf("unexpected counts %+v", snap.Metadata.Counts)
	}

	text := string(data)
	for _, field := range []string{`"type": "main"`, `"cropType": "wheat"`, `"canalId": "main-canal"`, `"totalArea"`, `"createdAt"`} {
		if !strings.Contains(text, field) {
			t.Errorf("expected %s in output", field)
		}
	}
}

func TestExportJSON_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "project.json")
	if err := ExportJSON(newTestEditor(), path); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestWriteSVG(t *testing.T) {
	e := newTestEditor()
	e.LoadBaseScheme()
	e.SelectTool(ToolCanal)
	e.SelectCategory(CanalTertiary)
	e.ClickAt(Point{X: 200, Y: 500})
	e.ClickAt(Point{X: 600, Y: 500})

	var buf bytes.Buffer
	writeSVG(&buf, e)
	out := buf.String()

	if !strings.Contains(out, `viewBox="0 0 800 600"`) {
		t.Error("expected 800x600 view box")
	}
	if n := strings.Count(out, "<polyline"); n != 2 {
		t.Errorf("expected 2 canals, got %d", n)
	}
	if n := strings.Count(out, "<circle"); n != 6 {
		t.Errorf("expected 6 sluices, got %d", n)
	}
	if !strings.Contains(out, "stroke-dasharray:2,2") {
		t.Error("expected tertiary canal to be dashed")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("expected closed svg document")
	}
}

func TestWriteSVG_HiddenLayers(t *testing.T) {
	e := newTestEditor()
	e.LoadBaseScheme()
	e.ToggleLayer(LayerSluices)
	e.ToggleLayer(LayerMainCanal)

	var buf bytes.Buffer
	writeSVG(&buf, e)
	out := buf.String()
	if strings.Contains(out, "<circle") || strings.Contains(out, "<polyline") {
		t.Error("expected hidden layers to be left out")
	}
}

func TestEncodeSchemePNG(t *testing.T) {
	e := newTestEditor()
	e.LoadBaseScheme()

	var buf bytes.Buffer
	if err := encodeSchemePNG(&buf, e, 1); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("expected 800x600, got %dx%d", b.Dx(), b.Dy())
	}
	// a point on the main canal is drawn dark
	r, g, bl, _ := img.At(400, 120).RGBA()
	if r > 0x8000 || g > 0x8000 || bl > 0x8000 {
		t.Error("expected main canal pixel to be dark")
	}
}

func TestExportPNG_Scale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.png")
	if err := ExportPNG(newTestEditor(), path, 2); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 1600 || cfg.Height != 1200 {
		t.Errorf("expected 1600x1200, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWritePDF(t *testing.T) {
	e := newTestEditor()
	e.LoadBaseScheme()

	var buf bytes.Buffer
	if err := writePDF(&buf, e); err != nil {
		t.Fatalf("pdf failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("expected PDF header")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestExportVisualTXT(t *testing.T) {
	e := newTestEditor()
	e.LoadBaseScheme()
	path := filepath.Join(t.TempDir(), "scheme.txt")
	if err := ExportVisualTXT(e, path, 80, 24); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)
	for _, want := range []string{"━", "●", "Parcels:        9", "Sluices:        6", "Main canal:     560 m", "Total area:     16.1 ha"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	tests := map[FileOperation]string{
		FileOpExportJSON:      "irrigation-project.json",
		FileOpExportSVG:       "irrigation-scheme.svg",
		FileOpExportPNG:       "irrigation-scheme.png",
		FileOpExportPDF:       "irrigation-scheme.pdf",
		FileOpExportVisualTXT: "irrigation-scheme.txt",
	}
	for op, want := range tests {
		if got := defaultFilename(op); got != want {
			t.Errorf("op %d: expected %s, got %s", op, want, got)
		}
	}
}

func TestCopySnapshotToClipboard(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { writeClipboard = orig }()

	e := newTestEditor()
	e.LoadBaseScheme()
	if err := copySnapshotToClipboard(e); err != nil {
		t.Skipf("clipboard unavailable: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(copied), &snap); err != nil {
		t.Fatalf("clipboard content is not a snapshot: %v", err)
	}
	if len(snap.Parcels) != 9 {
		t.Errorf("expected 9 parcels, got %d", len(snap.Parcels))
	}
}

// failingWriter accepts ok writes and fails every write after that.
type failingWriter struct {
	ok int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errors.New("disk full")
	}
	w.ok--
	return len(p), nil
}

func TestWriteVisualTXT_ReportsEveryWriteError(t *testing.T) {
	e := newTestEditor()
	// 3 grid rows, then the blank separator, then 5 summary lines
	for ok := 0; ok < 9; ok++ {
		if err := writeVisualTXT(&failingWriter{ok: ok}, e, 10, 3); err == nil {
			t.Errorf("expected error when write %d fails", ok+1)
		}
	}
	if err := writeVisualTXT(&failingWriter{ok: 9}, e, 10, 3); err != nil {
		t.Errorf("expected success with all writes ok, got %v", err)
	}
}

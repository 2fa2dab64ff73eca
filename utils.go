package main

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests; there is no clipboard in CI.
var writeClipboard = clipboard.WriteAll

func copySnapshotToClipboard(e *Editor) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	data, err := marshalSnapshot(e.ExportSnapshot())
	if err != nil {
		return err
	}
	if err := writeClipboard(string(data)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// surfaceSize is the part of the terminal the scheme is drawn on: everything
// except the status line and, when shown, the side panel.
func (m *model) surfaceSize() (int, int) {
	w := m.width
	if m.panelVisible() {
		w -= panelWidth
	}
	h := m.height - 1 // Leave room for status line
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func (m *model) panelVisible() bool {
	return m.config.ShowPanel && m.width >= minPanelWidth
}

func (m *model) inSurface(x, y int) bool {
	w, h := m.surfaceSize()
	return x >= 0 && y >= 0 && x < w && y < h
}

// clickAt feeds a terminal cell into the editor as a pointer click.
func (m *model) clickAt(x, y int) ClickResult {
	w, h := m.surfaceSize()
	return m.editor.HandleClick(float64(x), float64(y), float64(w), float64(h))
}

// cursorPoint is the logical position under the keyboard cursor.
func (m *model) cursorPoint() (Point, bool) {
	w, h := m.surfaceSize()
	return MapToLogical(float64(m.cursorX), float64(m.cursorY), float64(w), float64(h))
}

// elementUnderCursor hit-tests the whole cell under the keyboard cursor.
func (m *model) elementUnderCursor() (ElementKind, string, bool) {
	w, h := m.surfaceSize()
	center, slack, ok := PointerArea(float64(m.cursorX), float64(m.cursorY), float64(w), float64(h))
	if !ok {
		return "", "", false
	}
	return m.editor.ElementWithin(center, slack)
}

func describeElement(e *Editor, kind ElementKind, id string) string {
	switch kind {
	case KindCanal:
		if c, ok := e.findCanal(id); ok {
			return fmt.Sprintf("%s canal, %.0f m", c.Category, pathLength(c.Points))
		}
	case KindParcel:
		if p, ok := e.findParcel(id); ok {
			return fmt.Sprintf("parcel %d, %.1f ha, %s", p.Number, p.Area, p.CropType)
		}
	case KindSluice:
		if s, ok := e.findSluice(id); ok {
			if s.CanalID == "" {
				return fmt.Sprintf("sluice %d", s.Number)
			}
			return fmt.Sprintf("sluice %d on %s", s.Number, s.CanalID)
		}
	}
	return string(kind)
}

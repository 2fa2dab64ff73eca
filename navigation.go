package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleNavigation(msg tea.KeyMsg) {
	speed := m.getMoveSpeed(msg.String())
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursorX -= speed
	case key.Matches(msg, m.keys.Right):
		m.cursorX += speed
	case key.Matches(msg, m.keys.Up):
		m.cursorY -= speed
	case key.Matches(msg, m.keys.Down):
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) isNavigation(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	w, h := m.surfaceSize()
	m.cursorX = clampInt(m.cursorX, 0, w-1)
	m.cursorY = clampInt(m.cursorY, 0, h-1)
}

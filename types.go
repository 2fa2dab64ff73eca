package main

import "github.com/charmbracelet/bubbles/textinput"

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	editor         *Editor
	mode           Mode
	help           bool
	helpScroll     int
	fileOp         FileOperation
	fileInput      textinput.Model
	exportPath     string // target waiting on an overwrite confirmation
	confirmAction  ConfirmAction
	confirmKind    ElementKind
	confirmID      string
	errorMessage   string
	successMessage string
	config         *Config
	keys           keyMap
}

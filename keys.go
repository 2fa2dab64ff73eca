package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Click key.Binding

	ToolSelect key.Binding
	ToolCanal  key.Binding
	ToolParcel key.Binding
	ToolSluice key.Binding
	Category   key.Binding

	LayerMainCanal key.Binding
	LayerParcels   key.Binding
	LayerSluices   key.Binding
	LayerPipes     key.Binding

	Delete     key.Binding
	ClearAll   key.Binding
	BaseScheme key.Binding
	ExportJSON key.Binding
	Export     key.Binding
	Copy       key.Binding

	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("h", "left", "H", "shift+left"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("l", "right", "L", "shift+right"), key.WithHelp("l/→", "right")),
		Up:    key.NewBinding(key.WithKeys("k", "up", "K", "shift+up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down", "J", "shift+down"), key.WithHelp("j/↓", "down")),
		Click: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "click at cursor")),

		ToolSelect: key.NewBinding(key.WithKeys("1", "v"), key.WithHelp("1/v", "select tool")),
		ToolCanal:  key.NewBinding(key.WithKeys("2", "c"), key.WithHelp("2/c", "canal tool")),
		ToolParcel: key.NewBinding(key.WithKeys("3", "p"), key.WithHelp("3/p", "parcel tool")),
		ToolSluice: key.NewBinding(key.WithKeys("4", "s"), key.WithHelp("4/s", "sluice tool")),
		Category:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle canal category")),

		LayerMainCanal: key.NewBinding(key.WithKeys("!"), key.WithHelp("!", "toggle main canal layer")),
		LayerParcels:   key.NewBinding(key.WithKeys("@"), key.WithHelp("@", "toggle parcels layer")),
		LayerSluices:   key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "toggle sluices layer")),
		LayerPipes:     key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "toggle pipes layer")),

		Delete:     key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "delete element under cursor")),
		ClearAll:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		BaseScheme: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "load base scheme")),
		ExportJSON: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export project JSON")),
		Export:     key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export as...")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy project JSON")),

		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel canal")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pngExportScale = 2.0

func main() {
	if os.Getenv("CANALPLAN_DEBUG") != "" {
		f, err := tea.LogToFile("canalplan-debug.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel() model {
	config := loadConfig()
	return newModel(config, NewEditor(WithDefaults(config.Defaults)))
}

func newModel(config *Config, editor *Editor) model {
	return model{
		editor: editor,
		mode:   ModeNormal,
		config: config,
		keys:   defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.help || m.mode != ModeNormal || !isLeftPress(msg) {
			return m, nil
		}
		if !m.inSurface(msg.X, msg.Y) {
			return m, nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y
		m.applyClick(m.clickAt(msg.X, msg.Y))
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

// isLeftPress reports a left button press. Drags arrive as motion events
// with the button still set and are not clicks.
func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.helpScroll < m.helpMaxScroll() {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "esc", "?", "q":
		m.help = false
		m.helpScroll = 0
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case m.isNavigation(msg):
		m.handleNavigation(msg)
		return m, nil

	case key.Matches(msg, m.keys.Click):
		if m.inSurface(m.cursorX, m.cursorY) {
			m.applyClick(m.clickAt(m.cursorX, m.cursorY))
		}

	case key.Matches(msg, m.keys.ToolSelect):
		m.editor.SelectTool(ToolSelect)
	case key.Matches(msg, m.keys.ToolCanal):
		m.editor.SelectTool(ToolCanal)
	case key.Matches(msg, m.keys.ToolParcel):
		m.editor.SelectTool(ToolParcel)
	case key.Matches(msg, m.keys.ToolSluice):
		m.editor.SelectTool(ToolSluice)
	case key.Matches(msg, m.keys.Category):
		m.successMessage = fmt.Sprintf("Canal category: %s", m.editor.CycleCategory())

	case key.Matches(msg, m.keys.LayerMainCanal):
		m.toggleLayer(LayerMainCanal)
	case key.Matches(msg, m.keys.LayerParcels):
		m.toggleLayer(LayerParcels)
	case key.Matches(msg, m.keys.LayerSluices):
		m.toggleLayer(LayerSluices)
	case key.Matches(msg, m.keys.LayerPipes):
		m.toggleLayer(LayerPipes)

	case key.Matches(msg, m.keys.Delete):
		kind, id, found := m.elementUnderCursor()
		if !found {
			m.errorMessage = "Nothing to delete under cursor"
			return m, nil
		}
		m.confirmKind, m.confirmID = kind, id
		if m.config.Confirmations {
			m.confirmAction = ConfirmDeleteElement
			m.mode = ModeConfirm
			return m, nil
		}
		m.deleteConfirmed()

	case key.Matches(msg, m.keys.ClearAll):
		if m.config.Confirmations {
			m.confirmAction = ConfirmClearAll
			m.mode = ModeConfirm
			return m, nil
		}
		m.editor.ClearAll()
		m.successMessage = "Scheme cleared"

	case key.Matches(msg, m.keys.BaseScheme):
		if m.config.Confirmations {
			m.confirmAction = ConfirmLoadBaseScheme
			m.mode = ModeConfirm
			return m, nil
		}
		m.editor.LoadBaseScheme()
		m.successMessage = "Base scheme loaded"

	case key.Matches(msg, m.keys.ExportJSON):
		return m.startFileInput(FileOpExportJSON)

	case key.Matches(msg, m.keys.Export):
		m.confirmAction = ConfirmChooseExportType
		m.mode = ModeConfirm

	case key.Matches(msg, m.keys.Copy):
		if err := copySnapshotToClipboard(m.editor); err != nil {
			log.Printf("clipboard: %v", err)
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Project JSON copied to clipboard"
		}

	case key.Matches(msg, m.keys.Cancel):
		if _, pending := m.editor.Pending(); pending {
			m.editor.SelectTool(m.editor.Tool())
			m.successMessage = "Canal cancelled"
		}

	case key.Matches(msg, m.keys.Help):
		m.help = true
		m.helpScroll = 0

	case key.Matches(msg, m.keys.Quit):
		if m.config.Confirmations && msg.String() != "ctrl+c" {
			m.confirmAction = ConfirmQuit
			m.mode = ModeConfirm
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) toggleLayer(l Layer) {
	state := "hidden"
	if m.editor.ToggleLayer(l) {
		state = "shown"
	}
	m.successMessage = fmt.Sprintf("%s layer %s", l, state)
}

func (m *model) applyClick(res ClickResult) {
	m.errorMessage = ""
	m.successMessage = ""
	switch res.Outcome {
	case OutcomeCanalStarted:
		m.successMessage = fmt.Sprintf("Canal started at (%.0f, %.0f), click the end point", res.At.X, res.At.Y)
	case OutcomeCanalCommitted, OutcomeParcelAdded, OutcomeSluiceAdded:
		m.successMessage = "Added " + describeElement(m.editor, res.Kind, res.ID)
		log.Printf("added %s %s at (%.1f, %.1f)", res.Kind, res.ID, res.At.X, res.At.Y)
	case OutcomeNone:
		if res.ID != "" {
			m.successMessage = describeElement(m.editor, res.Kind, res.ID)
		}
	}
}

func (m *model) deleteConfirmed() {
	desc := describeElement(m.editor, m.confirmKind, m.confirmID)
	if m.editor.DeleteElement(m.confirmKind, m.confirmID) {
		m.successMessage = "Deleted " + desc
		log.Printf("deleted %s %s", m.confirmKind, m.confirmID)
	}
	m.confirmKind, m.confirmID = "", ""
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmAction == ConfirmChooseExportType {
		m.mode = ModeNormal
		switch msg.String() {
		case "j":
			return m.startFileInput(FileOpExportJSON)
		case "s":
			return m.startFileInput(FileOpExportSVG)
		case "p":
			return m.startFileInput(FileOpExportPNG)
		case "d":
			return m.startFileInput(FileOpExportPDF)
		case "t":
			return m.startFileInput(FileOpExportVisualTXT)
		}
		return m, nil
	}

	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDeleteElement:
			m.deleteConfirmed()
		case ConfirmClearAll:
			m.editor.ClearAll()
			m.successMessage = "Scheme cleared"
		case ConfirmLoadBaseScheme:
			m.editor.LoadBaseScheme()
			m.successMessage = "Base scheme loaded"
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.runExport(m.exportPath)
			m.exportPath = ""
		}
	case "n", "N", "esc", "ctrl+c":
		if m.confirmAction == ConfirmOverwriteFile {
			// back to the filename prompt
			m.mode = ModeFileInput
			m.exportPath = ""
			return m, textinput.Blink
		}
		m.mode = ModeNormal
		m.confirmKind, m.confirmID = "", ""
	}
	return m, nil
}

func (m model) startFileInput(op FileOperation) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 255
	ti.SetValue(defaultFilename(op))
	ti.CursorEnd()
	ti.Focus()

	m.fileOp = op
	m.fileInput = ti
	m.mode = ModeFileInput
	m.errorMessage = ""
	m.successMessage = ""
	return m, textinput.Blink
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.errorMessage = ""
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.fileInput.Value())
		if name == "" {
			m.errorMessage = "Filename cannot be empty"
			return m, nil
		}
		if filepath.Ext(name) == "" {
			name += filepath.Ext(defaultFilename(m.fileOp))
		}
		path := m.config.GetSavePath(name)
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.exportPath = path
			m.confirmAction = ConfirmOverwriteFile
			m.mode = ModeConfirm
			return m, nil
		}
		m.runExport(path)
		return m, nil
	}

	var cmd tea.Cmd
	m.fileInput, cmd = m.fileInput.Update(msg)
	return m, cmd
}

// runExport writes the scheme in the format picked for the current file
// operation. Failures keep the prompt open so the name can be fixed.
func (m *model) runExport(path string) {
	var err error
	switch m.fileOp {
	case FileOpExportJSON:
		err = ExportJSON(m.editor, path)
	case FileOpExportSVG:
		err = ExportSVG(m.editor, path)
	case FileOpExportPNG:
		err = ExportPNG(m.editor, path, pngExportScale)
	case FileOpExportPDF:
		err = ExportPDF(m.editor, path)
	case FileOpExportVisualTXT:
		w, h := m.surfaceSize()
		err = ExportVisualTXT(m.editor, path, w, h)
	}
	if err != nil {
		log.Printf("export %s: %v", path, err)
		m.errorMessage = err.Error()
		m.mode = ModeFileInput
		return
	}
	log.Printf("exported %s", path)
	m.mode = ModeNormal
	m.errorMessage = ""
	m.successMessage = "Exported " + path
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	w, h := m.surfaceSize()
	lines := m.editor.Render(w, h, m.cursorX, m.cursorY, m.mode == ModeNormal)
	body := strings.Join(lines, "\n")
	if m.panelVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.panelView(h))
	}

	status := StatusBarStyle.MaxWidth(max(m.width, 1)).Render(m.statusLine())
	return body + "\n" + status
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpExportJSON:
			opStr = "Export JSON"
		case FileOpExportSVG:
			opStr = "Export SVG"
		case FileOpExportPNG:
			opStr = "Export PNG"
		case FileOpExportPDF:
			opStr = "Print PDF"
		case FileOpExportVisualTXT:
			opStr = "Export TXT"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | %s | %s filename: %s | Enter=retry, Esc=cancel",
				ErrorStyle.Render("ERROR: "+m.errorMessage), opStr, m.fileInput.View())
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.fileInput.View())

	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteElement:
			message = fmt.Sprintf("Delete %s? (y/n)", describeElement(m.editor, m.confirmKind, m.confirmID))
		case ConfirmClearAll:
			message = "Clear the scheme? Everything except the main canal is removed. (y/n)"
		case ConfirmLoadBaseScheme:
			message = "Load the base scheme? Current parcels and sluices are replaced. (y/n)"
		case ConfirmQuit:
			message = "Quit canalplan? Unexported changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.exportPath)
		case ConfirmChooseExportType:
			message = "Export as: j=JSON s=SVG p=PNG d=PDF t=TXT, Esc=cancel"
		}
		return "Mode: CONFIRM | " + message
	}

	status := fmt.Sprintf("Mode: NORMAL | Tool: %s", m.editor.Tool())
	if m.editor.Tool() == ToolCanal {
		status += fmt.Sprintf(" (%s)", m.editor.Category())
	}
	if p, ok := m.cursorPoint(); ok {
		status += fmt.Sprintf(" | Cursor: (%.0f,%.0f)", p.X, p.Y)
	}
	if p, ok := m.editor.Pending(); ok {
		status += fmt.Sprintf(" | Canal from (%.0f,%.0f)", p.X, p.Y)
	}
	if m.successMessage != "" {
		status += " | " + SuccessStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + ErrorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) panelView(height int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tool"))
	b.WriteString("\n")
	tool := m.editor.Tool().String()
	if m.editor.Tool() == ToolCanal {
		tool += " / " + string(m.editor.Category())
	}
	b.WriteString(tool)
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render("Layers"))
	b.WriteString("\n")
	for l, k := range []string{"!", "@", "#", "$"} {
		layer := Layer(l)
		visible := m.editor.LayerVisible(layer)
		mark := "[ ]"
		if visible {
			mark = "[x]"
		}
		b.WriteString(layerStyle(visible).Render(fmt.Sprintf("%s %-11s", mark, layer)))
		b.WriteString(LabelStyle.Render(" " + k))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(TitleStyle.Render("Legend"))
	b.WriteString("\n")
	for _, line := range legendLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(TitleStyle.Render("Technical info"))
	b.WriteString("\n")
	b.WriteString(strings.Join(summaryLines(m.editor.Summary()), "\n"))

	// border takes two columns and two rows, padding two more columns
	return PanelStyle.
		Width(panelWidth - 2).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(b.String())
}

var helpLines = []string{
	TitleStyle.Render("canalplan help"),
	"==============",
	"",
	"Navigation:",
	"-----------",
	"  h/←/j/↓/k/↑/l/→  Move cursor around the scheme",
	"  Shift+h/j/k/l    Move cursor 2x faster",
	"  Mouse click      Click on the scheme with the active tool",
	"  Space/Enter      Click at the cursor with the active tool",
	"",
	"Tools:",
	"------",
	"  1/v              Select: show what is under the click",
	"  2/c              Canal: first click starts, second click finishes",
	"  3/p              Parcel: one click places a parcel centered on it",
	"  4/s              Sluice: one click places a sluice",
	"  Tab              Cycle canal category (main/secondary/tertiary)",
	"  Esc              Drop an unfinished canal",
	"",
	"Layers:",
	"-------",
	"  !                Main canal",
	"  @                Parcels",
	"  #                Sluices",
	"  $                Pipes (secondary and tertiary canals)",
	"",
	"Editing:",
	"--------",
	"  d/x              Delete element under cursor",
	"  C                Clear all (keeps the main canal)",
	"  b                Load the base scheme",
	"",
	"Export:",
	"-------",
	"  e                Export project JSON",
	"  E                Export as JSON, SVG, PNG, PDF print sheet or TXT",
	"  y                Copy project JSON to the clipboard",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := m.helpHeight()
	startLine := min(m.helpScroll, m.helpMaxScroll())
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + StatusBarStyle.Render(statusLine)
}

func (m model) helpHeight() int {
	return max(m.height-1, 1) // Leave room for status line
}

func (m model) helpMaxScroll() int {
	return max(len(helpLines)-m.helpHeight(), 0)
}

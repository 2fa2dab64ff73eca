package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpExportJSON FileOperation = iota
	FileOpExportSVG
	FileOpExportPNG
	FileOpExportPDF
	FileOpExportVisualTXT
)

type ConfirmAction int

const (
	ConfirmDeleteElement ConfirmAction = iota
	ConfirmClearAll
	ConfirmLoadBaseScheme
	ConfirmQuit
	ConfirmOverwriteFile
	ConfirmChooseExportType
)

// Tool decides how a click on the surface is interpreted.
type Tool int

const (
	ToolSelect Tool = iota
	ToolCanal
	ToolParcel
	ToolSluice
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolCanal:
		return "canal"
	case ToolParcel:
		return "parcel"
	case ToolSluice:
		return "sluice"
	default:
		return "unknown"
	}
}

type CanalCategory string

const (
	CanalMain      CanalCategory = "main"
	CanalSecondary CanalCategory = "secondary"
	CanalTertiary  CanalCategory = "tertiary"
)

// StrokeWidth is the drawn width of a committed canal of this category.
func (c CanalCategory) StrokeWidth() float64 {
	switch c {
	case CanalMain:
		return 8
	case CanalSecondary:
		return 4
	case CanalTertiary:
		return 2
	default:
		return 2
	}
}

type ElementKind string

const (
	KindCanal  ElementKind = "canal"
	KindParcel ElementKind = "parcel"
	KindSluice ElementKind = "sluice"
)

// Layer flags only affect drawing, never the collections.
type Layer int

const (
	LayerMainCanal Layer = iota
	LayerParcels
	LayerSluices
	LayerPipes
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerMainCanal:
		return "Main canal"
	case LayerParcels:
		return "Parcels"
	case LayerSluices:
		return "Sluices"
	case LayerPipes:
		return "Pipes"
	default:
		return "Unknown"
	}
}

const (
	logicalWidth  = 800.0
	logicalHeight = 600.0

	defaultParcelWidth  = 60.0
	defaultParcelHeight = 40.0
	defaultParcelArea   = 1.2
	defaultCropType     = "wheat"

	// max distance from a canal for a new sluice to attach to it
	sluiceSnapDistance = 20.0
	sluiceHitRadius    = 8.0
	minCanalHitWidth   = 6.0

	defaultProjectFile = "irrigation-project.json"
	defaultSchemeBase  = "irrigation-scheme"

	panelWidth    = 30
	minPanelWidth = 100 // terminal columns needed before the side panel shows
)

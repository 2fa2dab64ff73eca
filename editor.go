package main

import (
	"time"

	"github.com/google/uuid"
)

type drawState int

const (
	drawIdle drawState = iota
	drawPending
)

type ClickOutcome int

const (
	OutcomeIgnored ClickOutcome = iota
	OutcomeNone
	OutcomeCanalStarted
	OutcomeCanalCommitted
	OutcomeParcelAdded
	OutcomeSluiceAdded
)

// ClickResult reports what a click did. For the select tool Kind and ID
// name the element under the click, if any.
type ClickResult struct {
	Outcome ClickOutcome
	At      Point
	Kind    ElementKind
	ID      string
}

type ElementDefaults struct {
	ParcelWidth  float64
	ParcelHeight float64
	ParcelArea   float64
	CropType     string
}

func defaultElementDefaults() ElementDefaults {
	return ElementDefaults{
		ParcelWidth:  defaultParcelWidth,
		ParcelHeight: defaultParcelHeight,
		ParcelArea:   defaultParcelArea,
		CropType:     defaultCropType,
	}
}

// Editor owns every piece of scheme state: the element collections, the
// active tool and the two-click canal draw.
type Editor struct {
	canals  []Canal
	parcels []Parcel
	sluices []Sluice

	tool     Tool
	category CanalCategory
	draw     drawState
	pending  Point
	hidden   [layerCount]bool

	defaults     ElementDefaults
	parcelNumber int
	sluiceNumber int

	newID func(kind ElementKind) string
	now   func() time.Time
}

type EditorOption func(*Editor)

func WithIDSource(fn func(kind ElementKind) string) EditorOption {
	return func(e *Editor) {
		e.newID = fn
	}
}

func WithClock(fn func() time.Time) EditorOption {
	return func(e *Editor) {
		e.now = fn
	}
}

func WithDefaults(d ElementDefaults) EditorOption {
	return func(e *Editor) {
		e.defaults = d
	}
}

func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{
		tool:     ToolSelect,
		category: CanalMain,
		defaults: defaultElementDefaults(),
		newID: func(kind ElementKind) string {
			return string(kind) + "-" + uuid.NewString()
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.canals = []Canal{defaultMainCanal()}
	e.parcels = []Parcel{}
	e.sluices = []Sluice{}
	return e
}

func (e *Editor) Tool() Tool { return e.tool }
func (e *Editor) Category() CanalCategory { return e.category }
func (e *Editor) Defaults() ElementDefaults { return e.defaults }

// Pending returns the first point of an unfinished canal.
func (e *Editor) Pending() (Point, bool) {
	if e.draw != drawPending {
		return Point{}, false
	}
	return e.pending, true
}

func (e *Editor) Canals() []Canal { return append([]Canal(nil), e.canals...) }
func (e *Editor) Parcels() []Parcel { return append([]Parcel(nil), e.parcels...) }
func (e *Editor) Sluices() []Sluice { return append([]Sluice(nil), e.sluices...) }

// SelectTool switches tools. A pending canal is dropped without a trace.
func (e *Editor) SelectTool(tool Tool) {
	e.abandonDraw()
	e.tool = tool
}

func (e *Editor) SelectCategory(cat CanalCategory) {
	e.category = cat
}

func (e *Editor) CycleCategory() CanalCategory {
	switch e.category {
	case CanalMain:
		e.category = CanalSecondary
	case CanalSecondary:
		e.category = CanalTertiary
	default:
		e.category = CanalMain
	}
	return e.category
}

func (e *Editor) abandonDraw() {
	e.draw = drawIdle
	e.pending = Point{}
}

// HandleClick maps a raw pointer position and applies the active tool there.
// New elements go exactly at the mapped point; the select tool hit-tests the
// whole raw unit under the pointer.
func (e *Editor) HandleClick(rawX, rawY, surfaceWidth, surfaceHeight float64) ClickResult {
	p, ok := MapToLogical(rawX, rawY, surfaceWidth, surfaceHeight)
	if !ok {
		return ClickResult{Outcome: OutcomeIgnored}
	}
	center, slack, _ := PointerArea(rawX, rawY, surfaceWidth, surfaceHeight)
	return e.click(p, center, slack)
}

// ClickAt applies the active tool at a point already in logical space.
func (e *Editor) ClickAt(p Point) ClickResult {
	return e.click(p, p, 0)
}

func (e *Editor) click(p, hit Point, slack float64) ClickResult {
	res := ClickResult{At: p}
	switch e.tool {
	case ToolCanal:
		if e.draw == drawIdle {
			e.draw = drawPending
			e.pending = p
			res.Outcome = OutcomeCanalStarted
			return res
		}
		canal := Canal{
			ID:       e.newID(KindCanal),
			Points:   []Point{e.pending, p},
			Category: e.category,
			Width:    e.category.StrokeWidth(),
		}
		e.canals = append(append([]Canal(nil), e.canals...), canal)
		e.abandonDraw()
		res.Outcome = OutcomeCanalCommitted
		res.Kind, res.ID = KindCanal, canal.ID
	case ToolParcel:
		e.parcelNumber++
		d := e.defaults
		parcel := Parcel{
			ID:       e.newID(KindParcel),
			Number:   e.parcelNumber,
			X:        p.X - d.ParcelWidth/2,
			Y:        p.Y - d.ParcelHeight/2,
			Width:    d.ParcelWidth,
			Height:   d.ParcelHeight,
			Area:     d.ParcelArea,
			CropType: d.CropType,
		}
		e.parcels = append(append([]Parcel(nil), e.parcels...), parcel)
		res.Outcome = OutcomeParcelAdded
		res.Kind, res.ID = KindParcel, parcel.ID
	case ToolSluice:
		e.sluiceNumber++
		sluice := Sluice{
			ID:      e.newID(KindSluice),
			Number:  e.sluiceNumber,
			X:       p.X,
			Y:       p.Y,
			CanalID: e.nearestCanal(p),
		}
		e.sluices = append(append([]Sluice(nil), e.sluices...), sluice)
		res.Outcome = OutcomeSluiceAdded
		res.Kind, res.ID = KindSluice, sluice.ID
	default:
		res.Outcome = OutcomeNone
		if kind, id, ok := e.ElementWithin(hit, slack); ok {
			res.Kind, res.ID = kind, id
		}
	}
	return res
}

func (e *Editor) nearestCanal(p Point) string {
	bestID := ""
	best := sluiceSnapDistance
	for _, c := range e.canals {
		if d := distanceToPath(c.Points, p); d <= best {
			best = d
			bestID = c.ID
		}
	}
	return bestID
}

// ElementAt finds the topmost element under p: sluices, then parcels, then canals.
func (e *Editor) ElementAt(p Point) (ElementKind, string, bool) {
	return e.ElementWithin(p, 0)
}

// ElementWithin is ElementAt for a pointer that covers a disc of radius slack
// around p. A parcel that contains p still wins over a canal that is merely
// within reach.
func (e *Editor) ElementWithin(p Point, slack float64) (ElementKind, string, bool) {
	for i := len(e.sluices) - 1; i >= 0; i-- {
		s := e.sluices[i]
		if distance(Point{X: s.X, Y: s.Y}, p) <= max(sluiceHitRadius, slack) {
			return KindSluice, s.ID, true
		}
	}
	for i := len(e.parcels) - 1; i >= 0; i-- {
		if e.parcels[i].Contains(p) {
			return KindParcel, e.parcels[i].ID, true
		}
	}
	for i := len(e.canals) - 1; i >= 0; i-- {
		c := e.canals[i]
		if distanceToPath(c.Points, p) <= max(c.Width, minCanalHitWidth, slack) {
			return KindCanal, c.ID, true
		}
	}
	if slack > 0 {
		for i := len(e.parcels) - 1; i >= 0; i-- {
			if e.parcels[i].Near(p, slack) {
				return KindParcel, e.parcels[i].ID, true
			}
		}
	}
	return "", "", false
}

// DeleteElement removes the element with the given id. Unknown ids are a no-op.
func (e *Editor) DeleteElement(kind ElementKind, id string) bool {
	switch kind {
	case KindCanal:
		kept := make([]Canal, 0, len(e.canals))
		for _, c := range e.canals {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		removed := len(kept) != len(e.canals)
		e.canals = kept
		return removed
	case KindParcel:
		kept := make([]Parcel, 0, len(e.parcels))
		for _, p := range e.parcels {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		removed := len(kept) != len(e.parcels)
		e.parcels = kept
		return removed
	case KindSluice:
		kept := make([]Sluice, 0, len(e.sluices))
		for _, s := range e.sluices {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		removed := len(kept) != len(e.sluices)
		e.sluices = kept
		return removed
	}
	return false
}

// ClearAll is a fixed reset to the default main canal, not an undo.
func (e *Editor) ClearAll() {
	e.canals = []Canal{defaultMainCanal()}
	e.parcels = []Parcel{}
	e.sluices = []Sluice{}
	e.parcelNumber = 0
	e.sluiceNumber = 0
	e.abandonDraw()
}

func (e *Editor) LoadBaseScheme() {
	parcels, sluices := baseScheme()
	for i := range sluices {
		sluices[i].CanalID = e.nearestCanal(Point{X: sluices[i].X, Y: sluices[i].Y})
	}
	e.parcels = parcels
	e.sluices = sluices
	e.parcelNumber = len(parcels)
	e.sluiceNumber = len(sluices)
}

func (e *Editor) ToggleLayer(l Layer) bool {
	if l < 0 || l >= layerCount {
		return false
	}
	e.hidden[l] = !e.hidden[l]
	return !e.hidden[l]
}

func (e *Editor) LayerVisible(l Layer) bool {
	if l < 0 || l >= layerCount {
		return false
	}
	return !e.hidden[l]
}

// canalVisible maps canal categories onto layers: main canals on their own
// layer, everything smaller on the pipes layer.
func (e *Editor) canalVisible(c Canal) bool {
	if c.Category == CanalMain {
		return e.LayerVisible(LayerMainCanal)
	}
	return e.LayerVisible(LayerPipes)
}

func (e *Editor) TotalArea() float64 {
	total := 0.0
	for _, p := range e.parcels {
		total += p.Area
	}
	return total
}

func (e *Editor) ExportSnapshot() Snapshot {
	canals := make([]Canal, len(e.canals))
	for i, c := range e.canals {
		c.Points = append([]Point(nil), c.Points...)
		canals[i] = c
	}
	parcels := append(make([]Parcel, 0, len(e.parcels)), e.parcels...)
	sluices := append(make([]Sluice, 0, len(e.sluices)), e.sluices...)
	return Snapshot{
		Canals:  canals,
		Parcels: parcels,
		Sluices: sluices,
		Metadata: Metadata{
			CreatedAt: e.now(),
			TotalArea: e.TotalArea(),
			Counts: Counts{
				Canals:  len(canals),
				Parcels: len(parcels),
				Sluices: len(sluices),
			},
		},
	}
}

func (e *Editor) Summary() Summary {
	mainLength := 0.0
	for _, c := range e.canals {
		if c.Category == CanalMain {
			mainLength += pathLength(c.Points)
		}
	}
	return Summary{
		Parcels:         len(e.parcels),
		Sluices:         len(e.sluices),
		MainCanalLength: mainLength,
		TotalArea:       e.TotalArea(),
	}
}

func (e *Editor) findCanal(id string) (Canal, bool) {
	for _, c := range e.canals {
		if c.ID == id {
			return c, true
		}
	}
	return Canal{}, false
}

func (e *Editor) findParcel(id string) (Parcel, bool) {
	for _, p := range e.parcels {
		if p.ID == id {
			return p, true
		}
	}
	return Parcel{}, false
}

func (e *Editor) findSluice(id string) (Sluice, bool) {
	for _, s := range e.sluices {
		if s.ID == id {
			return s, true
		}
	}
	return Sluice{}, false
}

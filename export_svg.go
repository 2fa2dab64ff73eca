package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

const svgTextStyle = "font-family:monospace;font-size:12px;fill:black"

func ExportSVG(e *Editor, filename string) error {
	return writeFile(filename, func(w io.Writer) error {
		writeSVG(w, e)
		return nil
	})
}

// writeSVG draws the scheme in the same 800x600 user space the editor uses,
// so element coordinates go straight into the document.
func writeSVG(w io.Writer, e *Editor) {
	canvas := svg.New(w)
	canvas.Startview(int(logicalWidth), int(logicalHeight), 0, 0, int(logicalWidth), int(logicalHeight))
	canvas.Title("Irrigation system scheme")
	canvas.Rect(0, 0, int(logicalWidth), int(logicalHeight), "fill:white;stroke:black;stroke-width:2")

	canvas.Gtransform("translate(50, 50)")
	canvas.Path("M 0 -15 L -6 6 L 0 3 L 6 6 Z", "fill:black;stroke:black;stroke-width:1")
	canvas.Text(-3, 20, "N", svgTextStyle)
	canvas.Gend()

	if e.LayerVisible(LayerParcels) {
		for _, p := range e.parcels {
			canvas.Rect(round(p.X), round(p.Y), round(p.Width), round(p.Height), "fill:none;stroke:black;stroke-width:1")
			c := p.Center()
			canvas.Text(round(c.X), round(c.Y)+4, strconv.Itoa(p.Number), svgTextStyle+";text-anchor:middle")
		}
	}

	for _, c := range e.canals {
		if !e.canalVisible(c) || len(c.Points) < 2 {
			continue
		}
		xs := make([]int, len(c.Points))
		ys := make([]int, len(c.Points))
		for i, pt := range c.Points {
			xs[i], ys[i] = round(pt.X), round(pt.Y)
		}
		canvas.Polyline(xs, ys, canalSVGStyle(c))
	}

	if e.LayerVisible(LayerSluices) {
		for _, s := range e.sluices {
			canvas.Circle(round(s.X), round(s.Y), 4, "fill:black")
		}
	}

	canvas.Gtransform("translate(650, 550)")
	canvas.Line(0, 0, 60, 0, "stroke:black;stroke-width:2")
	canvas.Line(0, -3, 0, 3, "stroke:black;stroke-width:1")
	canvas.Line(60, -3, 60, 3, "stroke:black;stroke-width:1")
	canvas.Text(15, -8, "0  60m", svgTextStyle)
	canvas.Gend()

	canvas.End()
}

func canalSVGStyle(c Canal) string {
	style := fmt.Sprintf("fill:none;stroke:black;stroke-width:%g", canalStroke(c))
	if c.Category == CanalTertiary {
		style += ";stroke-dasharray:2,2"
	}
	return style
}

// canalStroke is the drawn line width; the stored width is the channel's
// nominal width which reads too heavy at 1:1.
func canalStroke(c Canal) float64 {
	return c.Width / 2
}

func round(v float64) int {
	return int(math.Round(v))
}

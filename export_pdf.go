package main

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Print sheet layout, millimetres on A4 landscape.
const (
	pdfMargin      = 15.0
	pdfSchemeTop   = 32.0
	pdfSchemeScale = 0.25 // mm per logical unit
	pdfPanelGap    = 8.0
)

func ExportPDF(e *Editor, filename string) error {
	return writeFile(filename, func(w io.Writer) error {
		return writePDF(w, e)
	})
}

func writePDF(w io.Writer, e *Editor) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "IRRIGATION SYSTEM SCHEME", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Plot No. 1 - Scale 1:1000", "", 1, "C", false, 0, "")

	x0, y0 := pdfMargin, pdfSchemeTop
	tf := func(p Point) (float64, float64) {
		return x0 + p.X*pdfSchemeScale, y0 + p.Y*pdfSchemeScale
	}
	schemeW := logicalWidth * pdfSchemeScale
	schemeH := logicalHeight * pdfSchemeScale

	pdf.SetLineWidth(0.5)
	pdf.Rect(x0, y0, schemeW, schemeH, "D")

	ax, ay := tf(Point{X: 50, Y: 50})
	pdf.Polygon([]gofpdf.PointType{
		{X: ax, Y: ay - 15*pdfSchemeScale},
		{X: ax - 6*pdfSchemeScale, Y: ay + 6*pdfSchemeScale},
		{X: ax, Y: ay + 3*pdfSchemeScale},
		{X: ax + 6*pdfSchemeScale, Y: ay + 6*pdfSchemeScale},
	}, "F")
	pdf.SetFont("Courier", "", 7)
	pdf.Text(ax-1, ay+20*pdfSchemeScale+1, "N")

	if e.LayerVisible(LayerParcels) {
		pdf.SetLineWidth(0.2)
		for _, p := range e.parcels {
			px, py := tf(Point{X: p.X, Y: p.Y})
			pdf.Rect(px, py, p.Width*pdfSchemeScale, p.Height*pdfSchemeScale, "D")
			cx, cy := tf(p.Center())
			label := strconv.Itoa(p.Number)
			pdf.Text(cx-pdf.GetStringWidth(label)/2, cy+1, label)
		}
	}

	for _, c := range e.canals {
		if !e.canalVisible(c) || len(c.Points) < 2 {
			continue
		}
		pdf.SetLineWidth(canalStroke(c) * pdfSchemeScale)
		if c.Category == CanalTertiary {
			pdf.SetDashPattern([]float64{1, 1}, 0)
		}
		for i := 0; i < len(c.Points)-1; i++ {
			x1, y1 := tf(c.Points[i])
			x2, y2 := tf(c.Points[i+1])
			pdf.Line(x1, y1, x2, y2)
		}
		pdf.SetDashPattern([]float64{}, 0)
	}

	if e.LayerVisible(LayerSluices) {
		for _, s := range e.sluices {
			sx, sy := tf(Point{X: s.X, Y: s.Y})
			pdf.Circle(sx, sy, 4*pdfSchemeScale, "F")
		}
	}

	bx, by := tf(Point{X: 650, Y: 550})
	pdf.SetLineWidth(0.5)
	pdf.Line(bx, by, bx+60*pdfSchemeScale, by)
	pdf.SetLineWidth(0.2)
	pdf.Line(bx, by-1, bx, by+1)
	pdf.Line(bx+60*pdfSchemeScale, by-1, bx+60*pdfSchemeScale, by+1)
	pdf.Text(bx, by-2, "0  60m")

	writePDFPanel(pdf, e, x0+schemeW+pdfPanelGap, y0)

	if err := pdf.Output(w); err != nil {
		return err
	}
	return pdf.Error()
}

// writePDFPanel prints the legend and technical info next to the scheme.
func writePDFPanel(pdf *gofpdf.Fpdf, e *Editor, x, y float64) {
	pageW, _ := pdf.GetPageSize()
	w := pageW - pdfMargin - x

	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(w, 6, "Legend", "B", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	legend := []struct {
		label string
		draw  func(lx, ly float64)
	}{
		{"1. Main canal", func(lx, ly float64) {
			pdf.SetLineWidth(0.8)
			pdf.Line(lx, ly, lx+8, ly)
		}},
		{"2. Pipe", func(lx, ly float64) {
			pdf.SetLineWidth(0.3)
			pdf.SetDashPattern([]float64{1, 1}, 0)
			pdf.Line(lx, ly, lx+8, ly)
			pdf.SetDashPattern([]float64{}, 0)
		}},
		{"3. Parcel", func(lx, ly float64) {
			pdf.SetLineWidth(0.2)
			pdf.Rect(lx+2, ly-2, 4, 4, "D")
		}},
		{"4. Sluice", func(lx, ly float64) {
			pdf.Circle(lx+4, ly, 1, "F")
		}},
	}
	for _, item := range legend {
		ly := pdf.GetY() + 3
		item.draw(x, ly)
		pdf.SetX(x + 11)
		pdf.CellFormat(w-11, 6, item.label, "", 2, "L", false, 0, "")
		pdf.SetX(x)
	}

	pdf.Ln(2)
	pdf.SetX(x)
	pdf.SetFont("Courier", "", 8)
	for _, line := range []string{
		"Scale 1:1000",
		"Sheet 1 of 1",
		"Date: " + e.now().Format("02.01.2006"),
	} {
		pdf.SetX(x)
		pdf.CellFormat(w, 4, line, "", 2, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(w, 6, "Technical information", "B", 2, "L", false, 0, "")
	pdf.SetFont("Courier", "", 8)
	for _, line := range summaryLines(e.Summary()) {
		pdf.SetX(x)
		pdf.CellFormat(w, 5, line, "", 2, "L", false, 0, "")
	}
}

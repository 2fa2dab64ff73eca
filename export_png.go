package main

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

func ExportPNG(e *Editor, filename string, scale float64) error {
	return writeFile(filename, func(w io.Writer) error {
		return encodeSchemePNG(w, e, scale)
	})
}

func drawSchemePNG(e *Editor, scale float64) (*gg.Context, error) {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(logicalWidth*scale), int(logicalHeight*scale))
	dc.SetColor(color.White)
	dc.Clear()
	dc.Scale(scale, scale)
	dc.SetColor(color.Black)

	// Load font for text rendering
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72 * scale,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	dc.SetLineWidth(2)
	dc.DrawRectangle(1, 1, logicalWidth-2, logicalHeight-2)
	dc.Stroke()

	drawNorthArrowPNG(dc, 50, 50)

	if e.LayerVisible(LayerParcels) {
		dc.SetLineWidth(1)
		for _, p := range e.parcels {
			dc.DrawRectangle(p.X, p.Y, p.Width, p.Height)
			dc.Stroke()
			c := p.Center()
			dc.DrawStringAnchored(strconv.Itoa(p.Number), c.X, c.Y, 0.5, 0.5)
		}
	}

	for _, c := range e.canals {
		if e.canalVisible(c) {
			drawCanalPNG(dc, c)
		}
	}

	if e.LayerVisible(LayerSluices) {
		for _, s := range e.sluices {
			dc.DrawCircle(s.X, s.Y, 4)
			dc.Fill()
		}
	}

	drawScaleBarPNG(dc, 650, 550)
	return dc, nil
}

func drawCanalPNG(dc *gg.Context, c Canal) {
	if len(c.Points) < 2 {
		return
	}
	dc.SetLineWidth(canalStroke(c))
	if c.Category == CanalTertiary {
		dc.SetDash(2, 2)
	}
	dc.MoveTo(c.Points[0].X, c.Points[0].Y)
	for _, pt := range c.Points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.Stroke()
	dc.SetDash()
}

func drawNorthArrowPNG(dc *gg.Context, x, y float64) {
	dc.MoveTo(x, y-15)
	dc.LineTo(x-6, y+6)
	dc.LineTo(x, y+3)
	dc.LineTo(x+6, y+6)
	dc.ClosePath()
	dc.Fill()
	dc.DrawString("N", x-3, y+20)
}

func drawScaleBarPNG(dc *gg.Context, x, y float64) {
	dc.SetLineWidth(2)
	dc.DrawLine(x, y, x+60, y)
	dc.Stroke()
	dc.SetLineWidth(1)
	dc.DrawLine(x, y-3, x, y+3)
	dc.DrawLine(x+60, y-3, x+60, y+3)
	dc.Stroke()
	dc.DrawString("0  60m", x+15, y-8)
}

func encodeSchemePNG(w io.Writer, e *Editor, scale float64) error {
	dc, err := drawSchemePNG(e, scale)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

package main

import "math"

// MapToLogical scales a raw pointer position inside a surface of the given
// size into the fixed 800x600 logical space. The scale is always relative
// to the surface's own box, whatever size it is rendered at.
func MapToLogical(rawX, rawY, surfaceWidth, surfaceHeight float64) (Point, bool) {
	if surfaceWidth <= 0 || surfaceHeight <= 0 {
		return Point{}, false
	}
	return Point{
		X: rawX / surfaceWidth * logicalWidth,
		Y: rawY / surfaceHeight * logicalHeight,
	}, true
}

// PointerArea is the logical center of the raw unit at (rawX, rawY), such as
// a terminal cell, and the radius of the disc that covers that unit.
func PointerArea(rawX, rawY, surfaceWidth, surfaceHeight float64) (Point, float64, bool) {
	center, ok := MapToLogical(rawX+0.5, rawY+0.5, surfaceWidth, surfaceHeight)
	if !ok {
		return Point{}, 0, false
	}
	return center, math.Hypot(logicalWidth/surfaceWidth, logicalHeight/surfaceHeight) / 2, true
}

// logicalToCell is the inverse of MapToLogical for a grid of cells.
func logicalToCell(p Point, cols, rows int) (int, int) {
	x := int(math.Floor(p.X / logicalWidth * float64(cols)))
	y := int(math.Floor(p.Y / logicalHeight * float64(rows)))
	return clampInt(x, 0, cols-1), clampInt(y, 0, rows-1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func closestPointOnSegment(a, b, p Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func distanceToPath(points []Point, p Point) float64 {
	switch len(points) {
	case 0:
		return math.Inf(1)
	case 1:
		return distance(points[0], p)
	}
	best := math.Inf(1)
	for i := 0; i < len(points)-1; i++ {
		d := distance(closestPointOnSegment(points[i], points[i+1], p), p)
		if d < best {
			best = d
		}
	}
	return best
}

func pathLength(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += distance(points[i-1], points[i])
	}
	return total
}

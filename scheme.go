package main

import "time"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Canal struct {
	ID       string        `json:"id"`
	Points   []Point       `json:"points"`
	Category CanalCategory `json:"type"`
	Width    float64       `json:"width"`
}

// Parcel X,Y is the top-left corner of its bounding box.
type Parcel struct {
	ID       string  `json:"id"`
	Number   int     `json:"number"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Area     float64 `json:"area"`
	CropType string  `json:"cropType"`
}

func (p Parcel) Center() Point {
	return Point{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}

func (p Parcel) Contains(pt Point) bool {
	return p.Near(pt, 0)
}

// Near reports whether pt lies inside the parcel grown by d on every side.
func (p Parcel) Near(pt Point, d float64) bool {
	return pt.X >= p.X-d && pt.X <= p.X+p.Width+d &&
		pt.Y >= p.Y-d && pt.Y <= p.Y+p.Height+d
}

type Sluice struct {
	ID      string  `json:"id"`
	Number  int     `json:"number"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	CanalID string  `json:"canalId"`
}

type Counts struct {
	Canals  int `json:"canals"`
	Parcels int `json:"parcels"`
	Sluices int `json:"sluices"`
}

type Metadata struct {
	CreatedAt time.Time `json:"createdAt"`
	TotalArea float64   `json:"totalArea"`
	Counts    Counts    `json:"counts"`
}

// Snapshot is the exported form of an editor. It shares no slices with it.
type Snapshot struct {
	Canals   []Canal  `json:"canals"`
	Parcels  []Parcel `json:"parcels"`
	Sluices  []Sluice `json:"sluices"`
	Metadata Metadata `json:"metadata"`
}

// Summary is the technical info block shown in the side panel and print sheet.
type Summary struct {
	Parcels         int
	Sluices         int
	MainCanalLength float64 // meters, 1 logical unit = 1 m
	TotalArea       float64 // hectares
}

func defaultMainCanal() Canal {
	return Canal{
		ID:       "main-canal",
		Points:   []Point{{X: 120, Y: 120}, {X: 680, Y: 120}},
		Category: CanalMain,
		Width:    CanalMain.StrokeWidth(),
	}
}

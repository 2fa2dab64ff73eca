package main

import "fmt"

// Reference layout of the surveyed plot: nine strip parcels along the left
// side under the main canal and six sluices on the canal itself.
var (
	baseParcelAreas = []float64{1.2, 1.8, 2.5, 1.5, 2.0, 1.6, 2.2, 1.9, 1.4}
	baseParcelCrops = []string{"wheat", "corn", "wheat", "alfalfa", "corn", "wheat", "cotton", "alfalfa", "corn"}
	baseSluiceXs    = []float64{180, 250, 350, 450, 480, 600}
)

const (
	baseGridX      = 120.0
	baseGridY      = 120.0
	baseGridWidth  = 60.0
	baseGridHeight = 40.0
	baseSluiceY    = 120.0
)

// baseScheme builds fresh slices on every call. Sluices come back without a
// canal id; the editor attaches them to its own canals.
func baseScheme() ([]Parcel, []Sluice) {
	parcels := make([]Parcel, 0, len(baseParcelAreas))
	for i, area := range baseParcelAreas {
		parcels = append(parcels, Parcel{
			ID:       fmt.Sprintf("parcel-%d", i+1),
			Number:   i + 1,
			X:        baseGridX,
			Y:        baseGridY + float64(i)*baseGridHeight,
			Width:    baseGridWidth,
			Height:   baseGridHeight,
			Area:     area,
			CropType: baseParcelCrops[i],
		})
	}

	sluices := make([]Sluice, 0, len(baseSluiceXs))
	for i, x := range baseSluiceXs {
		sluices = append(sluices, Sluice{
			ID:     fmt.Sprintf("sluice-%d", i+1),
			Number: i + 1,
			X:      x,
			Y:      baseSluiceY,
		})
	}
	return parcels, sluices
}

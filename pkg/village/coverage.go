package village

import "github.com/ChicagoDave/rangeviewer/pkg/geo"

// Hit is a range band that reaches a queried point.
type Hit struct {
	Building string    `json:"building"`
	Index    int       `json:"index"`
	Band     RangeBand `json:"band"`
	Distance float64   `json:"distance"`
}

// Covers returns the indexes of the bands whose outline encloses pt.
func (b *Building) Covers(pt geo.Point2D) []int {
	var idx []int
	for i, band := range b.bands {
		if b.square.Stadium(band.Radius).Contains(pt) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Coverage lists every band of every building that reaches pt, in
// building then band order. Distance is measured from the building square.
func (v *Village) Coverage(pt geo.Point2D) []Hit {
	var hits []Hit
	for _, b := range v.buildings {
		d := b.square.DistanceTo(pt)
		for _, i := range b.Covers(pt) {
			hits = append(hits, Hit{Building: b.name, Index: i, Band: b.bands[i], Distance: d})
		}
	}
	return hits
}

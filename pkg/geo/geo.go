package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

const (
	earthRadiusKM = 6371.0
	kmPerDegree   = earthRadiusKM * math.Pi / 180
)

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula.
func Distance(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}

// Encode returns the geohash cell of a point at the given precision.
func Encode(p Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// cellSpans holds the angular size of a geohash cell per precision.
// Each character adds five bits, split longitude first, so the
// east-west and north-south spans alternate between equal and halved.
var cellSpans = [...]struct{ lonDeg, latDeg float64 }{
	{360, 180}, // precision 0, never selected
	{45, 45},
	{11.25, 5.625},
	{1.40625, 1.40625},
	{0.3515625, 0.17578125},
	{0.0439453125, 0.0439453125},
	{0.010986328125, 0.0054931640625},
}

// CoverCells returns the geohash cells a radius search around p has to
// scan: every cell intersecting the bounding box of the query circle.
// Cell width shrinks with latitude, so the box, not a fixed neighbor
// ring, decides the cover. Candidates outside the radius survive the
// cover and must be filtered by exact distance.
func CoverCells(p Point, radiusKM float64) []string {
	latDelta := radiusKM / kmPerDegree
	lonDelta := lonDeltaFor(p.Latitude, radiusKM)

	precision := precisionFor(latDelta, lonDelta)
	spans := cellSpans[precision]

	rowMax := int(180/spans.latDeg) - 1
	rowLo := cellIndex(p.Latitude-latDelta+90, spans.latDeg, rowMax)
	rowHi := cellIndex(p.Latitude+latDelta+90, spans.latDeg, rowMax)

	cols := int(360 / spans.lonDeg)
	colLo := int(math.Floor((p.Longitude - lonDelta + 180) / spans.lonDeg))
	colHi := int(math.Floor((p.Longitude + lonDelta + 180) / spans.lonDeg))
	if colHi-colLo+1 > cols {
		colLo, colHi = 0, cols-1
	}

	cells := make([]string, 0, (rowHi-rowLo+1)*(colHi-colLo+1))
	seen := make(map[string]struct{}, cap(cells))
	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			wrapped := ((col % cols) + cols) % cols
			cellLat := -90 + (float64(row)+0.5)*spans.latDeg
			cellLon := -180 + (float64(wrapped)+0.5)*spans.lonDeg
			cell := geohash.EncodeWithPrecision(cellLat, cellLon, precision)
			if _, ok := seen[cell]; ok {
				continue
			}
			seen[cell] = struct{}{}
			cells = append(cells, cell)
		}
	}

	return cells
}

// precisionFor picks the finest precision whose cell spans are at least
// the bounding-box half-size on both axes. The box then intersects at
// most three rows and three columns of cells.
func precisionFor(latDelta, lonDelta float64) uint {
	for precision := uint(len(cellSpans) - 1); precision > 1; precision-- {
		if cellSpans[precision].latDeg >= latDelta && cellSpans[precision].lonDeg >= lonDelta {
			return precision
		}
	}
	return 1
}

// lonDeltaFor returns the half-width in degrees of the bounding box of
// a circle of radiusKM around a point at the given latitude. A circle
// that reaches a pole spans every longitude.
func lonDeltaFor(latitude, radiusKM float64) float64 {
	r := radiusKM / earthRadiusKM
	lat := math.Abs(latitude) * math.Pi / 180
	if lat+r >= math.Pi/2 {
		return 360
	}
	return math.Asin(math.Sin(r)/math.Cos(lat)) * 180 / math.Pi
}

func cellIndex(offsetDeg, spanDeg float64, indexMax int) int {
	index := int(math.Floor(offsetDeg / spanDeg))
	if index < 0 {
		return 0
	}
	if index > indexMax {
		return indexMax
	}
	return index
}

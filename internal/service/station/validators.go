package station

import (
	"strings"

	"truckboard/internal/entities"
)

// maxRadiusKM caps the nearby search; a wider radius degenerates into a
// full scan of the station set.
const maxRadiusKM = 500.0

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidType(stationType entities.StationType) bool {
	switch stationType {
	case entities.StationFuel, entities.StationRest, entities.StationEV:
		return true
	default:
		return false
	}
}

func isValidRadius(radiusKM float64) bool {
	return radiusKM > 0 && radiusKM <= maxRadiusKM
}

package transform

// Upstream encodes WGS84 coordinates as integers scaled by 1,000,000
// in (longitude, latitude) order.
const coordinateScale = 1000000

// ScaleCoords converts an upstream coordinate pair into decimal degrees,
// swapping to (latitude, longitude) order. A missing or short pair
// returns nil fields rather than an error.
func ScaleCoords(raw []float64) (latitude *float64, longitude *float64) {
	if len(raw) < 2 {
		return nil, nil
	}

	lat := raw[1] / coordinateScale
	lng := raw[0] / coordinateScale

	return &lat, &lng
}

package geo

import "math"

// Distance menghitung jarak planar antara dua titik koordinat dalam satuan
// derajat. Ini bukan jarak geodesik; pendekatan ini hanya memadai untuk area
// kecil di sekitar satu toko.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Sqrt(math.Pow(lat2-lat1, 2) + math.Pow(lon2-lon1, 2))
}

// WithinRadius reports whether the two coordinates are at most radius degrees
// apart. The boundary is inclusive.
func WithinRadius(lat1, lon1, lat2, lon2, radius float64) bool {
	return Distance(lat1, lon1, lat2, lon2) <= radius
}

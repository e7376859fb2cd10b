// Package entity contains the core business objects of the project.
package entity

// Coordinate is a WGS84 latitude/longitude pair.
// Latitude is expected in [-90, 90] and longitude in [-180, 180]; range
// checking happens at the HTTP boundary, not here.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Geographic latitude in degrees.
	Longitude float64 `json:"longitude"` // Geographic longitude in degrees.
}

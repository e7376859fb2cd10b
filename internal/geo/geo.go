// Package geo provides pure great-circle geometry over restaurant locations.
package geo

import (
	"math"

	"stampcard/internal/domain/entity"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two coordinates in
// meters, computed with the haversine formula. It is a total function:
// out-of-range coordinates are the caller's responsibility.
func Distance(a, b entity.Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// FindNearby returns the restaurants whose distance from the user position is
// within their own notification radius. Input order is preserved. Linear scan:
// a tenant directory is at most a few thousand rows, so no spatial index.
func FindNearby(user entity.Coordinate, restaurants []*entity.RestaurantLocation) []*entity.RestaurantLocation {
	nearby := make([]*entity.RestaurantLocation, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if Distance(user, restaurant.Coordinate) <= restaurant.NotificationRadius {
			nearby = append(nearby, restaurant)
		}
	}

	return nearby
}

package geo

import (
	"testing"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(lat, lon float64) entity.Coordinate {
	return entity.Coordinate{Latitude: lat, Longitude: lon}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []entity.Coordinate{
		coord(0, 0),
		coord(25.033, 121.5654),
		coord(-90, 180),
		coord(51.5007, -0.1246),
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := coord(25.033, 121.5654)
	b := coord(25.0478, 121.517)

	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistance_KnownValue(t *testing.T) {
	// Taipei 101 to Taipei Main Station, roughly 5 km apart.
	a := coord(25.033976, 121.564421)
	b := coord(25.047708, 121.517055)

	d := Distance(a, b)
	assert.InDelta(t, 5000, d, 300)
}

func TestFindNearby_FiltersByOwnRadius(t *testing.T) {
	user := coord(25.0330, 121.5654)

	near := &entity.RestaurantLocation{
		ID:                 uuid.New(),
		Name:               "corner cafe",
		Coordinate:         coord(25.0335, 121.5650), // ~70m away
		NotificationRadius: 500,
	}
	tightRadius := &entity.RestaurantLocation{
		ID:                 uuid.New(),
		Name:               "strict bistro",
		Coordinate:         coord(25.0335, 121.5650), // same spot, radius too small
		NotificationRadius: 10,
	}
	far := &entity.RestaurantLocation{
		ID:                 uuid.New(),
		Name:               "other district",
		Coordinate:         coord(25.0478, 121.5170),
		NotificationRadius: 500,
	}

	nearby := FindNearby(user, []*entity.RestaurantLocation{near, tightRadius, far})

	require.Len(t, nearby, 1)
	assert.Equal(t, near.ID, nearby[0].ID)
}

func TestFindNearby_NeverExceedsRadius(t *testing.T) {
	user := coord(25.0330, 121.5654)
	restaurants := []*entity.RestaurantLocation{
		{ID: uuid.New(), Coordinate: coord(25.0331, 121.5655), NotificationRadius: 500},
		{ID: uuid.New(), Coordinate: coord(25.0400, 121.5700), NotificationRadius: 200},
		{ID: uuid.New(), Coordinate: coord(25.0330, 121.5654), NotificationRadius: 1},
	}

	for _, r := range FindNearby(user, restaurants) {
		assert.LessOrEqual(t, Distance(user, r.Coordinate), r.NotificationRadius)
	}
}

func TestFindNearby_CoLocatedAlwaysIncluded(t *testing.T) {
	user := coord(40.7128, -74.0060)
	coLocated := &entity.RestaurantLocation{
		ID:                 uuid.New(),
		Coordinate:         user,
		NotificationRadius: 1, // any positive radius keeps a co-located restaurant
	}

	nearby := FindNearby(user, []*entity.RestaurantLocation{coLocated})

	require.Len(t, nearby, 1)
}

func TestFindNearby_PreservesInputOrder(t *testing.T) {
	user := coord(0, 0)
	first := &entity.RestaurantLocation{ID: uuid.New(), Coordinate: coord(0.001, 0), NotificationRadius: 1000}
	second := &entity.RestaurantLocation{ID: uuid.New(), Coordinate: coord(0.0001, 0), NotificationRadius: 1000}

	nearby := FindNearby(user, []*entity.RestaurantLocation{first, second})

	require.Len(t, nearby, 2)
	assert.Equal(t, first.ID, nearby[0].ID)
	assert.Equal(t, second.ID, nearby[1].ID)
}

func TestFindNearby_EmptyInput(t *testing.T) {
	assert.Empty(t, FindNearby(coord(0, 0), nil))
}

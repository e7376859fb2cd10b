package impl

import (
	"testing"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testRestaurant(name string) *entity.RestaurantLocation {
	return &entity.RestaurantLocation{
		ID:   uuid.New(),
		Name: name,
	}
}

func testCard(restaurantID uuid.UUID, collected, required int) *entity.LoyaltyCard {
	return &entity.LoyaltyCard{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		StampsCollected: collected,
		StampsRequired:  required,
	}
}

func TestTemplateNotification_RewardReady(t *testing.T) {
	restaurant := testRestaurant("Blue Bottle")
	card := testCard(restaurant.ID, 10, 10)

	content := templateNotification(restaurant, card)

	assert.Equal(t, "Your reward is ready!", content.Heading)
	assert.Equal(t, "Stop by Blue Bottle to claim your free reward.", content.Body)
}

func TestTemplateNotification_RewardReady_OverThreshold(t *testing.T) {
	restaurant := testRestaurant("Blue Bottle")
	card := testCard(restaurant.ID, 12, 10)

	content := templateNotification(restaurant, card)

	assert.Equal(t, "Your reward is ready!", content.Heading)
}

func TestTemplateNotification_AlmostThere_OneStamp(t *testing.T) {
	restaurant := testRestaurant("Nonna's")
	card := testCard(restaurant.ID, 9, 10)

	content := templateNotification(restaurant, card)

	assert.Equal(t, "Almost there!", content.Heading)
	assert.Equal(t, "Only 1 stamp to go at Nonna's.", content.Body)
}

func TestTemplateNotification_AlmostThere_TwoStamps(t *testing.T) {
	restaurant := testRestaurant("Nonna's")
	card := testCard(restaurant.ID, 8, 10)

	content := templateNotification(restaurant, card)

	assert.Equal(t, "Almost there!", content.Heading)
	assert.Equal(t, "Only 2 stamps to go at Nonna's.", content.Body)
}

func TestTemplateNotification_GenericProgress(t *testing.T) {
	restaurant := testRestaurant("Taco Row")
	card := testCard(restaurant.ID, 5, 10)

	content := templateNotification(restaurant, card)

	assert.Equal(t, "Taco Row is nearby", content.Heading)
	assert.Equal(t, "You have 5/10 stamps at Taco Row. Come collect another!", content.Body)
}

func TestTemplateNotification_ThreeRemaining_IsGeneric(t *testing.T) {
	restaurant := testRestaurant("Taco Row")
	card := testCard(restaurant.ID, 7, 10)

	content := templateNotification(restaurant, card)

	assert.Equal(t, "Taco Row is nearby", content.Heading)
	assert.Equal(t, "You have 7/10 stamps at Taco Row. Come collect another!", content.Body)
}

func TestTemplateNotification_NoCard_CustomMessage(t *testing.T) {
	restaurant := testRestaurant("Pho Corner")
	restaurant.NotificationMessage = "Happy hour until 6pm!"

	content := templateNotification(restaurant, nil)

	assert.Equal(t, "Pho Corner is nearby", content.Heading)
	assert.Equal(t, "Happy hour until 6pm!", content.Body)
}

func TestTemplateNotification_NoCard_NoCustomMessage(t *testing.T) {
	restaurant := testRestaurant("Pho Corner")

	content := templateNotification(restaurant, nil)

	assert.Equal(t, "Pho Corner is nearby", content.Heading)
	assert.Equal(t, "You're near Pho Corner. Drop in and collect a stamp!", content.Body)
}

func TestTemplateNotification_CardForOtherRestaurant_IsGeneric(t *testing.T) {
	restaurant := testRestaurant("Pho Corner")
	otherCard := testCard(uuid.New(), 9, 10)

	content := templateNotification(restaurant, otherCard)

	assert.Equal(t, "Pho Corner is nearby", content.Heading)
	assert.Equal(t, "You're near Pho Corner. Drop in and collect a stamp!", content.Body)
}

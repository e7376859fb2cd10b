package impl

import (
	"fmt"

	"stampcard/internal/domain/entity"
)

// almostThereThreshold is the remaining-stamp count at or below which the
// "almost there" tier fires.
const almostThereThreshold = 2

// notificationContent is a templated heading/body pair for one geo-push.
type notificationContent struct {
	Heading string
	Body    string
}

// templateNotification builds the notification content for one restaurant,
// tiered by the client's loyalty state when a matching card is present:
// reward ready, then almost there, then generic progress. Without a matching
// card the restaurant's custom message wins over the generic nearby line.
func templateNotification(restaurant *entity.RestaurantLocation, card *entity.LoyaltyCard) notificationContent {
	if card != nil && card.RestaurantID == restaurant.ID {
		switch {
		case card.RewardReady():
			return notificationContent{
				Heading: "Your reward is ready!",
				Body:    fmt.Sprintf("Stop by %s to claim your free reward.", restaurant.Name),
			}
		case card.StampsRemaining() <= almostThereThreshold:
			remaining := card.StampsRemaining()
			noun := "stamps"
			if remaining == 1 {
				noun = "stamp"
			}

			return notificationContent{
				Heading: "Almost there!",
				Body:    fmt.Sprintf("Only %d %s to go at %s.", remaining, noun, restaurant.Name),
			}
		default:
			return notificationContent{
				Heading: fmt.Sprintf("%s is nearby", restaurant.Name),
				Body: fmt.Sprintf("You have %d/%d stamps at %s. Come collect another!",
					card.StampsCollected, card.StampsRequired, restaurant.Name),
			}
		}
	}

	body := restaurant.NotificationMessage
	if body == "" {
		body = fmt.Sprintf("You're near %s. Drop in and collect a stamp!", restaurant.Name)
	}

	return notificationContent{
		Heading: fmt.Sprintf("%s is nearby", restaurant.Name),
		Body:    body,
	}
}

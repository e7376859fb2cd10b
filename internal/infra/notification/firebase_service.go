package notification

import (
	"context"
	"fmt"
	"strconv"

	"stampcard/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase geo-push service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendGeoPush submits one radius-targeted notification. Audience selection
// happens on the provider side: devices subscribe to the restaurant's geo
// topic when they report a position inside its radius, so one topic send
// reaches every opted-in device currently nearby. The delivery radius and
// center travel in the data payload so the client SDK can re-check locally.
func (s *firebaseService) SendGeoPush(ctx context.Context, msg *service.GeoPushMessage) (string, error) {
	data := make(map[string]string, len(msg.Data)+3)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["latitude"] = strconv.FormatFloat(msg.Center.Latitude, 'f', -1, 64)
	data["longitude"] = strconv.FormatFloat(msg.Center.Longitude, 'f', -1, 64)
	data["radius_meters"] = strconv.FormatFloat(msg.RadiusMeters, 'f', -1, 64)

	message := &messaging.Message{
		Topic: geoTopic(msg.Data["restaurant_id"]),
		Notification: &messaging.Notification{
			Title: msg.Heading,
			Body:  msg.Body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send geo push: %w", err)
	}

	return messageID, nil
}

// geoTopic maps a restaurant to its FCM geo topic. Topic names only allow
// [a-zA-Z0-9-_.~%]; UUID strings are already in that alphabet.
func geoTopic(restaurantID string) string {
	return "geo-" + restaurantID
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stampcard/internal/delivery/http/middleware"
	"stampcard/internal/domain/entity"
	mockusecase "stampcard/internal/mocks/usecase"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTriggerContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/geo/trigger", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTriggerGeoPush_MissingCoordinates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "missing longitude", body: `{"latitude": 40.7128}`},
		{name: "missing latitude", body: `{"longitude": -74.0060}`},
		{name: "malformed json", body: `{"latitude": `},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockGeoPushUsecase(t)
			h := NewGeoPushHandler(uc, discardLogger())

			c, rec := newTriggerContext(t, tc.body)
			require.NoError(t, h.TriggerGeoPush(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Latitude and longitude are required"}`, rec.Body.String())
			uc.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTriggerGeoPush_ZeroCoordinatesAreValid(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	uc.EXPECT().
		Dispatch(mock.Anything, entity.Coordinate{Latitude: 0, Longitude: 0}, usecase.Identity{}).
		Return(&usecase.DispatchResult{}, nil)

	c, rec := newTriggerContext(t, `{"latitude": 0, "longitude": 0}`)
	require.NoError(t, h.TriggerGeoPush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"No nearby restaurants found"}`, rec.Body.String())
}

func TestTriggerGeoPush_NoNearbyRestaurants(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	uc.EXPECT().
		Dispatch(mock.Anything, entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, usecase.Identity{}).
		Return(&usecase.DispatchResult{NearbyCount: 0}, nil)

	c, rec := newTriggerContext(t, `{"latitude": 40.7128, "longitude": -74.0060}`)
	require.NoError(t, h.TriggerGeoPush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"No nearby restaurants found"}`, rec.Body.String())
}

func TestTriggerGeoPush_NotificationsProcessed(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	uc.EXPECT().
		Dispatch(mock.Anything, entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, usecase.Identity{}).
		Return(&usecase.DispatchResult{NearbyCount: 3, SentCount: 2}, nil)

	c, rec := newTriggerContext(t, `{"latitude": 40.7128, "longitude": -74.0060}`)
	require.NoError(t, h.TriggerGeoPush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Geo-push notifications processed","nearbyRestaurants":3,"notificationsSent":2}`, rec.Body.String())
}

func TestTriggerGeoPush_DispatchFailure(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	uc.EXPECT().
		Dispatch(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("directory unavailable"))

	c, rec := newTriggerContext(t, `{"latitude": 40.7128, "longitude": -74.0060}`)
	require.NoError(t, h.TriggerGeoPush(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestTriggerGeoPush_ForwardsTokenIdentity(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	clientID := uuid.New()

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	uc.EXPECT().
		Dispatch(mock.Anything, mock.Anything, usecase.Identity{UserID: &userID, ClientID: &clientID}).
		Return(&usecase.DispatchResult{NearbyCount: 1, SentCount: 1}, nil)

	c, rec := newTriggerContext(t, `{"latitude": 40.7128, "longitude": -74.0060}`)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyClientID, clientID)

	require.NoError(t, h.TriggerGeoPush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTriggerHistory(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()
	logs := []*entity.GeoTriggerLog{
		{ID: uuid.New(), ClientID: &clientID, NotificationsSent: 2},
	}

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	uc.EXPECT().
		GetClientTriggerHistory(mock.Anything, clientID, 5, 10).
		Return(logs, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/geo/history?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyClientID, clientID)

	require.NoError(t, h.GetTriggerHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestGetTriggerHistory_MissingClientIdentity(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockGeoPushUsecase(t)
	h := NewGeoPushHandler(uc, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/geo/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetTriggerHistory(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

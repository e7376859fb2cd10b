package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stampcard/internal/delivery/http/validator"
	"stampcard/internal/domain/entity"
	mockusecase "stampcard/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCardContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCreateCard_ValidationFailure(t *testing.T) {
	t.Parallel()

	restaurantID := uuid.New()

	testCases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "missing client_id", body: `{"restaurant_id": "` + restaurantID.String() + `"}`},
		{name: "missing restaurant_id", body: `{"client_id": "` + uuid.New().String() + `"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockLoyaltyUsecase(t)
			h := NewLoyaltyHandler(uc, discardLogger())

			c, rec := newCardContext(t, http.MethodPost, "/cards", tc.body)
			require.NoError(t, h.CreateCard(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
			uc.AssertNotCalled(t, "CreateCard", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCard_Success(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()
	restaurantID := uuid.New()

	uc := mockusecase.NewMockLoyaltyUsecase(t)
	h := NewLoyaltyHandler(uc, discardLogger())

	uc.EXPECT().
		CreateCard(mock.Anything, clientID, restaurantID).
		Return(&entity.LoyaltyCard{ID: uuid.New(), ClientID: clientID, RestaurantID: restaurantID, StampsRequired: 10}, nil)

	body := `{"client_id": "` + clientID.String() + `", "restaurant_id": "` + restaurantID.String() + `"}`
	c, rec := newCardContext(t, http.MethodPost, "/cards", body)
	require.NoError(t, h.CreateCard(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCollectStamp_ValidationFailure(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "empty qr_data", body: `{"qr_data": ""}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockLoyaltyUsecase(t)
			h := NewLoyaltyHandler(uc, discardLogger())

			c, rec := newCardContext(t, http.MethodPost, "/cards/stamps/collect", tc.body)
			require.NoError(t, h.CollectStamp(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
			uc.AssertNotCalled(t, "CollectStamp", mock.Anything, mock.Anything)
		})
	}
}

func TestCollectStamp_Success(t *testing.T) {
	t.Parallel()

	clientID := uuid.New()

	uc := mockusecase.NewMockLoyaltyUsecase(t)
	h := NewLoyaltyHandler(uc, discardLogger())

	uc.EXPECT().
		CollectStamp(mock.Anything, `{"card_id":"abc","type":"stamp"}`).
		Return(&entity.LoyaltyCard{ID: uuid.New(), ClientID: clientID, StampsCollected: 3, StampsRequired: 10}, nil)

	body := `{"qr_data": "{\"card_id\":\"abc\",\"type\":\"stamp\"}"}`
	c, rec := newCardContext(t, http.MethodPost, "/cards/stamps/collect", body)
	require.NoError(t, h.CollectStamp(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

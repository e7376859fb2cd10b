package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stampcard/internal/delivery/http/validator"
	"stampcard/internal/domain/entity"
	mockusecase "stampcard/internal/mocks/usecase"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateRestaurantContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/restaurants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCreateRestaurant_ValidationFailure(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()

	testCases := []struct {
		name string
		body string
	}{
		{name: "missing tenant_id", body: `{"name": "Corner Cafe", "latitude": 40.0, "longitude": -74.0}`},
		{name: "missing name", body: `{"tenant_id": "` + tenantID.String() + `", "latitude": 40.0, "longitude": -74.0}`},
		{name: "latitude out of range", body: `{"tenant_id": "` + tenantID.String() + `", "name": "Corner Cafe", "latitude": 91.0, "longitude": -74.0}`},
		{name: "longitude out of range", body: `{"tenant_id": "` + tenantID.String() + `", "name": "Corner Cafe", "latitude": 40.0, "longitude": -181.0}`},
		{name: "malformed owner email", body: `{"tenant_id": "` + tenantID.String() + `", "name": "Corner Cafe", "latitude": 40.0, "longitude": -74.0, "owner_email": "not-an-email"}`},
		{name: "negative radius", body: `{"tenant_id": "` + tenantID.String() + `", "name": "Corner Cafe", "latitude": 40.0, "longitude": -74.0, "notification_radius": -5}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := mockusecase.NewMockRestaurantUsecase(t)
			h := NewRestaurantHandler(uc, discardLogger())

			c, rec := newCreateRestaurantContext(t, tc.body)
			require.NoError(t, h.CreateRestaurant(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
			uc.AssertNotCalled(t, "CreateRestaurant", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateRestaurant_Success(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()

	uc := mockusecase.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, discardLogger())

	uc.EXPECT().
		CreateRestaurant(mock.Anything, &usecase.RestaurantInput{
			TenantID:   tenantID,
			Name:       "Corner Cafe",
			OwnerEmail: "owner@cornercafe.com",
			Latitude:   40.7128,
			Longitude:  -74.0060,
		}).
		Return(&entity.RestaurantLocation{ID: uuid.New(), TenantID: tenantID, Name: "Corner Cafe"}, nil)

	body := `{"tenant_id": "` + tenantID.String() + `", "name": "Corner Cafe", "owner_email": "owner@cornercafe.com", "latitude": 40.7128, "longitude": -74.0060}`
	c, rec := newCreateRestaurantContext(t, body)
	require.NoError(t, h.CreateRestaurant(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

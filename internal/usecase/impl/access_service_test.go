package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	mockRepo "stampcard/internal/mocks/repository"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAccessService(t *testing.T) (usecase.AccessUsecase, *mockRepo.MockRestaurantRepository) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	resolver := NewAccessService(AccessServiceParams{
		RestaurantRepo: restaurantRepo,
		Config: &config.Config{
			AccessPolicy: &config.AccessPolicyConfig{
				PlatformAdminEmails:  []string{"admin@zerioncore.com"},
				CorporateAdminEmails: []string{"ops@bigchain.com"},
			},
		},
		Logger: logger,
	})

	return resolver, restaurantRepo
}

func TestAccessService_ResolveAccess_PlatformAdmin(t *testing.T) {
	resolver, _ := createTestAccessService(t)

	access := resolver.ResolveAccess(context.Background(), usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "admin@zerioncore.com",
	})

	assert.Equal(t, entity.RolePlatformAdmin, access.Role)
	assert.True(t, access.Permissions.CanManagePlatform)
	assert.True(t, access.Permissions.CanSendGeoPush)
	assert.Nil(t, access.RestaurantID)
}

func TestAccessService_ResolveAccess_PlatformAdmin_CaseInsensitive(t *testing.T) {
	resolver, _ := createTestAccessService(t)

	access := resolver.ResolveAccess(context.Background(), usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "  Admin@ZerionCore.COM ",
	})

	assert.Equal(t, entity.RolePlatformAdmin, access.Role)
}

func TestAccessService_ResolveAccess_CorporateAdmin(t *testing.T) {
	resolver, _ := createTestAccessService(t)

	access := resolver.ResolveAccess(context.Background(), usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "ops@bigchain.com",
	})

	assert.Equal(t, entity.RoleCorporateAdmin, access.Role)
	assert.False(t, access.Permissions.CanManagePlatform)
	assert.True(t, access.Permissions.CanManageRestaurants)
}

func TestAccessService_ResolveAccess_RestaurantOwner(t *testing.T) {
	resolver, restaurantRepo := createTestAccessService(t)

	ctx := context.Background()
	restaurant := &entity.RestaurantLocation{
		ID:         uuid.New(),
		Name:       "Corner Cafe",
		OwnerEmail: "owner@cornercafe.com",
	}

	restaurantRepo.EXPECT().
		FindRestaurantByOwnerEmail(ctx, "owner@cornercafe.com").
		Return(restaurant, nil)

	access := resolver.ResolveAccess(ctx, usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "owner@cornercafe.com",
	})

	assert.Equal(t, entity.RoleRestaurantOwner, access.Role)
	require.NotNil(t, access.RestaurantID)
	assert.Equal(t, restaurant.ID, *access.RestaurantID)
	assert.Equal(t, "Corner Cafe", access.RestaurantName)
	assert.True(t, access.Permissions.CanSendGeoPush)
	assert.True(t, access.Permissions.CanStampCards)
}

func TestAccessService_ResolveAccess_DefaultLocationStaff(t *testing.T) {
	resolver, restaurantRepo := createTestAccessService(t)

	ctx := context.Background()
	restaurantRepo.EXPECT().
		FindRestaurantByOwnerEmail(ctx, "somebody@example.com").
		Return(nil, repository.ErrRestaurantNotFound)

	access := resolver.ResolveAccess(ctx, usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "somebody@example.com",
	})

	assert.Equal(t, entity.RoleLocationStaff, access.Role)
	assert.False(t, access.Permissions.CanViewAnalytics)
	assert.False(t, access.Permissions.CanSendGeoPush)
	assert.True(t, access.Permissions.CanStampCards)
	assert.Nil(t, access.RestaurantID)
}

func TestAccessService_ResolveAccess_LookupErrorFallsBackToStaff(t *testing.T) {
	resolver, restaurantRepo := createTestAccessService(t)

	ctx := context.Background()
	restaurantRepo.EXPECT().
		FindRestaurantByOwnerEmail(ctx, "somebody@example.com").
		Return(nil, errors.New("db connection lost"))

	access := resolver.ResolveAccess(ctx, usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "somebody@example.com",
	})

	// Resolution never fails, a broken lookup lands on the lowest tier.
	assert.Equal(t, entity.RoleLocationStaff, access.Role)
}

func TestAccessService_ResolveAccess_EmptyEmailSkipsLookup(t *testing.T) {
	resolver, _ := createTestAccessService(t)

	access := resolver.ResolveAccess(context.Background(), usecase.AuthIdentity{
		UserID: uuid.New(),
	})

	assert.Equal(t, entity.RoleLocationStaff, access.Role)
}

func TestAccessService_ResolveAccess_VisibleSections(t *testing.T) {
	resolver, _ := createTestAccessService(t)

	access := resolver.ResolveAccess(context.Background(), usecase.AuthIdentity{
		UserID: uuid.New(),
		Email:  "admin@zerioncore.com",
	})

	assert.Contains(t, access.VisibleSections, "platform-settings")
	assert.Contains(t, access.VisibleSections, "analytics")
}

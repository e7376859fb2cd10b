package impl

import (
	"context"
	"log/slog"
	"strings"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"
	"stampcard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accessService struct {
	restaurantRepo repository.RestaurantRepository
	policy         *config.AccessPolicyConfig
	logger         *slog.Logger
}

// AccessServiceParams holds dependencies for the access resolver, injected by Fx.
type AccessServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAccessService creates a new role/permission resolver instance
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	policy := params.Config.AccessPolicy
	if policy == nil {
		policy = &config.AccessPolicyConfig{}
	}

	return &accessService{
		restaurantRepo: params.RestaurantRepo,
		policy:         policy,
		logger:         params.Logger,
	}
}

// ResolveAccess classifies the identity against the policy snapshot. Rules are
// evaluated in fixed priority order and the first match wins:
// platform admin allow-list, corporate admin allow-list, restaurant ownership,
// then the locationStaff default.
func (s *accessService) ResolveAccess(ctx context.Context, identity usecase.AuthIdentity) *entity.Access {
	email := normalizeEmail(identity.Email)

	if containsEmail(s.policy.PlatformAdminEmails, email) {
		return accessForRole(entity.RolePlatformAdmin)
	}

	if containsEmail(s.policy.CorporateAdminEmails, email) {
		return accessForRole(entity.RoleCorporateAdmin)
	}

	if email != "" {
		restaurant, err := s.restaurantRepo.FindRestaurantByOwnerEmail(ctx, email)
		switch {
		case err == nil:
			access := accessForRole(entity.RoleRestaurantOwner)
			id := restaurant.ID
			access.RestaurantID = &id
			access.RestaurantName = restaurant.Name

			return access
		case errors.Is(err, repository.ErrRestaurantNotFound):
			// Not an owner, fall through to the default tier.
		default:
			// A failed lookup is treated as "no match", never surfaced.
			s.logger.Warn("ownership lookup failed, falling back to staff role",
				slog.String("email", email),
				slog.Any("error", err),
			)
		}
	}

	return accessForRole(entity.RoleLocationStaff)
}

func accessForRole(role entity.Role) *entity.Access {
	return &entity.Access{
		Role:            role,
		Permissions:     entity.PermissionsForRole(role),
		VisibleSections: entity.VisibleSectionsForRole(role),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func containsEmail(list []string, email string) bool {
	if email == "" {
		return false
	}

	for _, candidate := range list {
		if normalizeEmail(candidate) == email {
			return true
		}
	}

	return false
}

package usecase

import (
	"context"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthIdentity is the authenticated identity supplied by the session provider.
type AuthIdentity struct {
	UserID uuid.UUID
	Email  string
}

// AccessUsecase defines the interface for role and permission resolution.
type AccessUsecase interface {
	// ResolveAccess classifies the identity into one of the fixed role tiers
	// and derives its permissions and visible sections. Resolution never
	// fails: lookup errors fall through to the default locationStaff tier.
	ResolveAccess(ctx context.Context, identity AuthIdentity) *entity.Access
}

package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents one of the fixed access tiers of the platform.
// Roles are derived fresh per session from identity attributes; they are
// never stored.
type Role string

const (
	// RolePlatformAdmin has full control over every tenant on the platform.
	RolePlatformAdmin Role = "platform_admin"
	// RoleCorporateAdmin manages all restaurants of one corporate tenant.
	RoleCorporateAdmin Role = "corporate_admin"
	// RoleRestaurantOwner owns exactly one restaurant location.
	RoleRestaurantOwner Role = "restaurant_owner"
	// RoleLocationStaff is the default tier for any other authenticated identity.
	RoleLocationStaff Role = "location_staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePlatformAdmin, RoleCorporateAdmin, RoleRestaurantOwner, RoleLocationStaff:
		return true
	default:
		return false
	}
}

// Permissions is the capability table derived from a Role. It is a pure
// function of the role: same role, same flags.
type Permissions struct {
	CanManagePlatform    bool `json:"can_manage_platform"`
	CanManageClients     bool `json:"can_manage_clients"`
	CanManageRestaurants bool `json:"can_manage_restaurants"`
	CanSendGeoPush       bool `json:"can_send_geo_push"`
	CanViewAnalytics     bool `json:"can_view_analytics"`
	CanStampCards        bool `json:"can_stamp_cards"`
}

// Access is the fully resolved authorization surface for one session:
// the role tier, its capability flags, the navigation sections the session
// may see, and the owned-restaurant scope when the role carries one.
type Access struct {
	Role            Role        `json:"role"`
	Permissions     Permissions `json:"permissions"`
	VisibleSections []string    `json:"visible_sections"`
	RestaurantID    *uuid.UUID  `json:"restaurant_id,omitempty"`   // Set for restaurant owners.
	RestaurantName  string      `json:"restaurant_name,omitempty"` // Set for restaurant owners.
}

// permissionsByRole is the fixed Role -> Permissions table.
var permissionsByRole = map[Role]Permissions{
	RolePlatformAdmin: {
		CanManagePlatform:    true,
		CanManageClients:     true,
		CanManageRestaurants: true,
		CanSendGeoPush:       true,
		CanViewAnalytics:     true,
		CanStampCards:        true,
	},
	RoleCorporateAdmin: {
		CanManageClients:     true,
		CanManageRestaurants: true,
		CanSendGeoPush:       true,
		CanViewAnalytics:     true,
		CanStampCards:        true,
	},
	RoleRestaurantOwner: {
		CanManageRestaurants: true,
		CanSendGeoPush:       true,
		CanViewAnalytics:     true,
		CanStampCards:        true,
	},
	RoleLocationStaff: {
		CanStampCards: true,
	},
}

// sectionsByRole is the fixed Role -> visible navigation table. Order matters:
// it is the order the front end renders the sections in.
var sectionsByRole = map[Role][]string{
	RolePlatformAdmin:   {"dashboard", "clients", "restaurants", "stamp-cards", "geo-push", "analytics", "platform-settings"},
	RoleCorporateAdmin:  {"dashboard", "clients", "restaurants", "stamp-cards", "geo-push", "analytics"},
	RoleRestaurantOwner: {"dashboard", "stamp-cards", "geo-push", "analytics"},
	RoleLocationStaff:   {"dashboard", "stamp-cards"},
}

// PermissionsForRole returns the capability flags for a role. Unknown roles
// get the locationStaff permissions.
func PermissionsForRole(r Role) Permissions {
	if p, ok := permissionsByRole[r]; ok {
		return p
	}

	return permissionsByRole[RoleLocationStaff]
}

// VisibleSectionsForRole returns a copy of the ordered navigation sections
// visible to a role.
func VisibleSectionsForRole(r Role) []string {
	sections, ok := sectionsByRole[r]
	if !ok {
		sections = sectionsByRole[RoleLocationStaff]
	}

	return slices.Clone(sections)
}

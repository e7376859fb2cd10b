// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"
	"stampcard/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys populated by the authentication middlewares.
const (
	ContextKeyUserID   = "userID"
	ContextKeyClientID = "clientID"
	ContextKeyEmail    = "email"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accessUC usecase.AccessUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accessUC usecase.AccessUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accessUC: accessUC, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.parseClaims(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		userID, ok := subjectID(claims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}

		// Set identity info on the context for handlers to use
		c.Set(ContextKeyUserID, userID)
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextKeyEmail, email)
		}
		if clientID, ok := optionalUUIDClaim(claims, "client_id"); ok {
			c.Set(ContextKeyClientID, clientID)
		}

		return next(c)
	}
}

// WithIdentity attaches token identity to the context when a valid Bearer
// token is present but lets the request through either way. Anonymous geo
// trigger requests depend on this.
func (m *AuthMiddleware) WithIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return next(c)
		}

		claims, err := m.parseClaims(tokenString)
		if err != nil {
			return next(c)
		}

		if userID, ok := subjectID(claims); ok {
			c.Set(ContextKeyUserID, userID)
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextKeyEmail, email)
		}
		if clientID, ok := optionalUUIDClaim(claims, "client_id"); ok {
			c.Set(ContextKeyClientID, clientID)
		}

		return next(c)
	}
}

// RequirePermission is a middleware factory gating a route on a resolved
// permission. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(allowed func(entity.Permissions) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity information missing"})
			}
			email, _ := c.Get(ContextKeyEmail).(string)

			access := m.accessUC.ResolveAccess(c.Request().Context(), usecase.AuthIdentity{
				UserID: userID,
				Email:  email,
			})
			if !allowed(access.Permissions) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied"})
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

func subjectID(claims jwt.MapClaims) (uuid.UUID, bool) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func optionalUUIDClaim(claims jwt.MapClaims, key string) (uuid.UUID, bool) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

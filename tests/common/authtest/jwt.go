//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"clubhouse/internal/domain/user"
	"clubhouse/internal/pkg/config"
	clubjwt "clubhouse/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens shaped like the hosted auth provider's, signed with
// the configured shared secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.claims(userID, string(role), time.Now().Add(time.Hour)))
}

// GenerateTokenWithoutRole mimics a user the club has not assigned a role yet.
func (h *JWTHelper) GenerateTokenWithoutRole(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.sign(t, h.claims(userID, "", time.Now().Add(time.Hour)))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.claims(userID, string(role), time.Now().Add(-time.Minute)))
}

func (h *JWTHelper) claims(userID uuid.UUID, role string, expiresAt time.Time) clubjwt.Claims {
	return clubjwt.Claims{
		Email:       userID.String()[:8] + "@example.com",
		AppMetadata: clubjwt.AppMetadata{Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{h.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func (h *JWTHelper) sign(t *testing.T, claims clubjwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}

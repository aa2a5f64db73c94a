//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"clubhouse/internal/domain/user"
	clubjwt "clubhouse/internal/pkg/jwt"
	"clubhouse/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, subject, role string) string {
	t.Helper()
	claims := clubjwt.Claims{
		AppMetadata: clubjwt.AppMetadata{Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestTokenValidator_ValidateToken(t *testing.T) {
	validator := usecase.NewTokenValidator(clubjwt.NewService("secret", "authenticated"))
	userID := uuid.New()

	tests := []struct {
		name     string
		token    string
		wantRole user.Role
		wantErr  bool
	}{
		{name: "staff role from app metadata", token: signed(t, userID.String(), "staff"), wantRole: user.RoleStaff},
		{name: "missing role defaults to member", token: signed(t, userID.String(), ""), wantRole: user.RoleMember},
		{name: "unknown role rejected", token: signed(t, userID.String(), "owner"), wantErr: true},
		{name: "non-uuid subject rejected", token: signed(t, "not-a-uuid", "admin"), wantErr: true},
		{name: "garbage token rejected", token: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, role, err := validator.ValidateToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, id)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

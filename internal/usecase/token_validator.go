package usecase

import (
	"clubhouse/internal/domain/user"
	"clubhouse/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken treats a token without a club role as a plain member.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	userID, err := claims.UserID()
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	if claims.AppMetadata.Role == "" {
		return userID, user.RoleMember, nil
	}
	role, err := user.NewRole(claims.AppMetadata.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return userID, role, nil
}

// Package auth mints and validates session tokens. Tokens are HS256 JWTs
// signed with a per-install secret; the random jti makes every login's
// token unique.
package auth

import (
	"time"

	"github.com/glasses-man/exampilot/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the registered claims plus the profile id.
type Claims struct {
	jwt.RegisteredClaims
	ProfileID string
}

// GenerateToken signs a fresh session token for the given profile.
func GenerateToken(profileID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		ProfileID: profileID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetProfileIDFromToken parses and validates a session token and returns
// the profile id it was minted for. Expired or tampered tokens yield
// common.ErrInvalidToken.
func GetProfileIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.ProfileID, nil
}

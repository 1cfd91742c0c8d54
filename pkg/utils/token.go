package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sacknest/sacknest-backend/internal/config"
)

// Claims carries the admin identity inside a signed session token.
type Claims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// TokenTTL is fixed at issuance; expired tokens require a fresh login.
const TokenTTL = 7 * 24 * time.Hour

// GenerateToken issues an HS256-signed bearer token for an admin user.
func GenerateToken(adminID string) (string, error) {
	now := time.Now()

	claims := &Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "sacknest-backend",
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and verifies a bearer token. Any parse, signature,
// or expiry failure yields an error; callers treat all of them as invalid.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// JTI returns the token's unique identifier, used for revocation.
func (c *Claims) JTI() string {
	return c.RegisteredClaims.ID
}

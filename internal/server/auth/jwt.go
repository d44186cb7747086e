// Package auth implements token and password primitives for the server:
// HS256 JWTs carrying the user id, and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"fintrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims embeds the registered claims and adds the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// GenerateToken signs a token embedding userID with an expiry of
// now+validityDuration. No server-side state is created.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates the signature and expiry of tokenString and
// returns the embedded user id. Expired tokens yield common.ErrorTokenExpired,
// any other parse or signature failure common.ErrorInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrorInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrorTokenExpired
		}
		return 0, common.ErrorInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrorInvalidToken
	}

	return claims.UserID, nil
}

package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
)

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.StandardClaims
}

// GenerateSessionToken signs the session id with HS256. A zero ttl issues
// a token without expiry.
func GenerateSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	claims := SessionClaims{SessionID: sessionID}
	claims.IssuedAt = time.Now().Unix()
	if ttl > 0 {
		claims.ExpiresAt = time.Now().Add(ttl).Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("SignedString: %w", err)
	}
	return token, nil
}

func ParseSessionToken(token, secret string) (*SessionClaims, error) {
	claims := new(SessionClaims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}

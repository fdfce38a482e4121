package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
)

func TestSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("abc", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseSessionToken(token, "secret")
	if err != nil || claims.SessionID != "abc" {
		t.Fatalf("ParseSessionToken = %+v, %v", claims, err)
	}

	if _, err = ParseSessionToken(token, "other"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Errorf("wrong secret: err = %v", err)
	}
	if _, err = ParseSessionToken("garbage", "secret"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Errorf("garbage: err = %v", err)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	claims := SessionClaims{SessionID: "abc"}
	claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err = ParseSessionToken(token, "secret"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Errorf("expired: err = %v", err)
	}
}

func TestSessionToken_NoExpiry(t *testing.T) {
	token, err := GenerateSessionToken("abc", "secret", 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ParseSessionToken(token, "secret"); err != nil {
		t.Errorf("err = %v", err)
	}
}

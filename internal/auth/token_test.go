package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kimgang91/md-dashboard/models"
)

const testSecret = "test-secret"

func TestSignAndVerifyToken(t *testing.T) {
	user := models.User{ID: "recabc", Email: "md@example.com", Name: "김엠디", Role: models.RoleMD}

	token, err := SignToken(testSecret, user)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if got := claims.User(); got != user {
		t.Fatalf("claims user = %+v, want %+v", got, user)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, models.User{ID: "x"})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := VerifyToken("other-secret", token); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	if _, err := VerifyToken(testSecret, "not-a-token"); err == nil {
		t.Fatalf("expected verification failure for malformed token")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	claims := Claims{
		UserID: "x",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	if _, err := VerifyToken(testSecret, token); err == nil {
		t.Fatalf("expected verification failure for expired token")
	}
}

func TestExtractBearer(t *testing.T) {
	if got := ExtractBearer("Bearer abc123"); got != "abc123" {
		t.Fatalf("ExtractBearer = %q, want abc123", got)
	}
	for _, header := range []string{"", "Basic abc123", "bearer abc123", "Bearerabc"} {
		if got := ExtractBearer(header); got != "" {
			t.Fatalf("ExtractBearer(%q) = %q, want empty", header, got)
		}
	}
}

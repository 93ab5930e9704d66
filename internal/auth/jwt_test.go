package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateToken(t *testing.T) {
	userID := uuid.New()
	secret := "test-secret"

	signed, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error = %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("GenerateToken() produced an invalid token")
	}
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		t.Errorf("GenerateToken() alg = %v, want %v", token.Method.Alg(), jwt.SigningMethodHS256.Alg())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("token claims are not a map")
	}
	if claims["user_id"] != userID.String() {
		t.Errorf("GenerateToken() user_id = %v, want %v", claims["user_id"], userID)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("failed to read expiry: %v", err)
	}
	ttl := time.Until(exp.Time)
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Errorf("GenerateToken() ttl = %v, want about an hour", ttl)
	}
}

func TestGenerateToken_DifferentSecretsDiffer(t *testing.T) {
	userID := uuid.New()

	a, err := GenerateToken(userID, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error = %v", err)
	}

	if _, err := jwt.Parse(a, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	}); err == nil {
		t.Error("a token verified against the wrong secret")
	}
}

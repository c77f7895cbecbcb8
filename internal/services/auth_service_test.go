package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/config"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 168 * time.Hour,
	}
	svc := NewAuthService(nil, cfg)
	userID := uuid.New()

	signed, err := svc.GenerateToken(userID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	if sub, _ := claims["sub"].(string); sub != userID.String() {
		t.Errorf("sub = %q, want %q", sub, userID)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	remaining := time.Until(exp.Time)
	if remaining < 167*time.Hour || remaining > 169*time.Hour {
		t.Errorf("token validity window = %s, want ~168h", remaining)
	}
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewAuthService(nil, &config.Config{JWTSecret: "right", JWTExpiry: time.Hour})
	signed, err := svc.GenerateToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	if err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

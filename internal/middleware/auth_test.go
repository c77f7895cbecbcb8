package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/config"
	"github.com/rangachimalgi/real-estate-crm-backend/internal/dto"
)

const testSecret = "unit-test-secret"

func protectedApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Get("/protected", JWTProtected(cfg), func(c *fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		return c.SendString(id.String())
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func errorBody(t *testing.T, body io.Reader) string {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestJWTProtectedMissingToken(t *testing.T) {
	app := protectedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}
	if msg := errorBody(t, res.Body); msg != "Access token required" {
		t.Errorf("error = %q", msg)
	}
}

func TestJWTProtectedInvalidToken(t *testing.T) {
	app := protectedApp(t)

	for name, token := range map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": signToken(t, "other-secret", jwt.MapClaims{"sub": uuid.NewString()}),
		"expired": signToken(t, testSecret, jwt.MapClaims{
			"sub": uuid.NewString(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		}),
	} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", name, err)
		}
		if res.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, res.StatusCode)
		}
		if msg := errorBody(t, res.Body); msg != "Invalid or expired token" {
			t.Errorf("%s: error = %q", name, msg)
		}
	}
}

func TestJWTProtectedValidToken(t *testing.T) {
	app := protectedApp(t)
	userID := uuid.New()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if string(body) != userID.String() {
		t.Errorf("UserID returned %q, want %q", body, userID)
	}
}

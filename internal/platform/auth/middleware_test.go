package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var testSigningKey = []byte("test-signing-key")

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSigningKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, uuid.UUID, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var captured uuid.UUID
	handler := mw(func(c echo.Context) error {
		captured = UserIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec, captured, err
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	_, captured, err := invoke(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != userID {
		t.Errorf("expected user id %s on context, got %s", userID, captured)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, err := invoke(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}), req)
	if err == nil {
		t.Fatal("expected error for missing header")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	_, _, err := invoke(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}), req)
	if err == nil {
		t.Fatal("expected error for malformed header")
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, _, err := invoke(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}), req)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTMiddleware_NonUUIDSubject(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, _, err := invoke(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}), req)
	if err == nil {
		t.Fatal("expected error for non-uuid subject")
	}
}

func TestJWTMiddleware_WrongIssuer(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		Issuer:    "https://other.example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, _, err := invoke(JWTMiddleware(JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "https://auth.example.com",
	}), req)
	if err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestJWTMiddleware_RejectsNonHMACAlg(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	_, _, err = invoke(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}), req)
	if err == nil {
		t.Fatal("expected error for RS256 token")
	}
}

func TestJWTMiddleware_HealthBypassesAuth(t *testing.T) {
	e := echo.New()
	e.Use(JWTMiddleware(JWTConfig{SigningKey: testSigningKey}))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/v1/water-intake", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/health", "/health/db"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200 without a token, got %d", path, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/water-intake", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated request, got %d", rec.Code)
	}
}

func TestDevAuthMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, captured, err := invoke(DevAuthMiddleware(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != DevUserID {
		t.Errorf("expected dev user id, got %s", captured)
	}
}

func TestIsPublicPath(t *testing.T) {
	if !IsPublicPath("/health") || !IsPublicPath("/health/db") {
		t.Error("health endpoints must be public")
	}
	if IsPublicPath("/api/v1/routines") {
		t.Error("api routes must not be public")
	}
}

func TestUserIDFromContext_Unset(t *testing.T) {
	if got := UserIDFromContext(context.Background()); got != uuid.Nil {
		t.Errorf("expected uuid.Nil for unset context, got %s", got)
	}
}

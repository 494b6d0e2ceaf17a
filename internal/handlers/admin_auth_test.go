package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"foodfest/internal/config"
)

func performLogin(t *testing.T, cfg config.Config, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/admin/login", AdminLogin(cfg))

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeLogin(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	return resp
}

func TestAdminLoginStaticToken(t *testing.T) {
	cfg := config.Config{
		AdminPassword: "admin123",
		AdminToken:    "admin-authenticated",
		AuthMode:      config.AuthModeStatic,
	}

	w := performLogin(t, cfg, `{"password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeLogin(t, w)
	if resp["token"] != "admin-authenticated" {
		t.Fatalf("expected the shared static token, got %v", resp["token"])
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	cfg := config.Config{
		AdminPassword: "admin123",
		AdminToken:    "admin-authenticated",
		AuthMode:      config.AuthModeStatic,
	}

	for _, body := range []string{`{"password":"nope"}`, `{"password":""}`, `{}`} {
		w := performLogin(t, cfg, body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for body %s, got %d", body, w.Code)
		}
		resp := decodeLogin(t, w)
		if resp["success"] != false {
			t.Fatalf("expected success=false envelope, got %v", resp)
		}
	}
}

func TestAdminLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{
		AdminPassword:     "ignored-when-hash-set",
		AdminPasswordHash: string(hash),
		AdminToken:        "admin-authenticated",
		AuthMode:          config.AuthModeStatic,
	}

	if w := performLogin(t, cfg, `{"password":"s3cret"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200 with correct password, got %d", w.Code)
	}
	if w := performLogin(t, cfg, `{"password":"ignored-when-hash-set"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("plaintext fallback must be disabled when a hash is set, got %d", w.Code)
	}
}

func TestAdminLoginJWTMode(t *testing.T) {
	cfg := config.Config{
		AdminPassword:  "admin123",
		AuthMode:       config.AuthModeJWT,
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
	}

	w := performLogin(t, cfg, `{"password":"admin123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeLogin(t, w)
	raw, _ := resp["token"].(string)
	if raw == "" {
		t.Fatal("expected a token in the response")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected a valid signed token, got %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" {
		t.Fatalf("expected role=admin claim, got %v", claims["role"])
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected an expiry claim: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatal("expected expiry in the future")
	}
}

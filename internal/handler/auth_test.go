package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/config"
)

func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(config.Config{
		JWTSecret:    "test-secret",
		AccessTTLMin: 60,
	})
}

func TestIssueTokenReturnsVerifiableToken(t *testing.T) {
	h := newTestAuthHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.IssueToken(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["token"] == "" {
		t.Fatal("response missing token")
	}

	tok, err := jwt.Parse(resp["token"], func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["email"] != "a@x.com" {
		t.Errorf("email claim = %v, want a@x.com", claims["email"])
	}
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	h := newTestAuthHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.IssueToken(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

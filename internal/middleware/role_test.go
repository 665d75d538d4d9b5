package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// fakeRoleSource serves canned roles keyed by email.
type fakeRoleSource struct {
	roles map[string]string
}

func (f *fakeRoleSource) RoleOf(_ context.Context, email string) (string, error) {
	role, ok := f.roles[email]
	if !ok {
		return "", repository.ErrUserNotFound
	}
	return role, nil
}

func runRoleGuard(t *testing.T, src RoleSource, role, tokenEmail string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tokenEmail != "" {
		c.Set(ContextEmailKey, tokenEmail)
	}

	reached := false
	h := RequireRole(src, role)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, reached
}

func TestRequireRoleNoIdentity(t *testing.T) {
	src := &fakeRoleSource{roles: map[string]string{}}
	rec, reached := runRoleGuard(t, src, repository.RoleAdmin, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Error("handler must not run without an authenticated email")
	}
}

func TestRequireRoleUnknownUser(t *testing.T) {
	src := &fakeRoleSource{roles: map[string]string{}}
	rec, reached := runRoleGuard(t, src, repository.RoleAdmin, "ghost@x.com")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Error("handler must not run for an unknown user")
	}
}

func TestRequireRoleMismatch(t *testing.T) {
	src := &fakeRoleSource{roles: map[string]string{"a@x.com": repository.RoleStudent}}
	rec, reached := runRoleGuard(t, src, repository.RoleAdmin, "a@x.com")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Error("handler must not run when the stored role differs")
	}
}

func TestRequireRoleMatch(t *testing.T) {
	src := &fakeRoleSource{roles: map[string]string{"a@x.com": repository.RoleAdmin}}
	rec, reached := runRoleGuard(t, src, repository.RoleAdmin, "a@x.com")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Error("handler should run for a matching role")
	}
}

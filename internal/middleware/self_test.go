package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runSelfGuard(t *testing.T, tokenEmail, paramEmail string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues(paramEmail)
	if tokenEmail != "" {
		c.Set(ContextEmailKey, tokenEmail)
	}

	reached := false
	h := RequireSelf("email")(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, reached
}

// A mismatch must hard-terminate the request; the inner handler never runs
// and no second response write can happen.
func TestRequireSelfMismatchTerminates(t *testing.T) {
	rec, reached := runSelfGuard(t, "a@x.com", "b@x.com")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Error("handler must not run when the path email is not the caller's")
	}
}

func TestRequireSelfNoIdentity(t *testing.T) {
	rec, reached := runSelfGuard(t, "", "a@x.com")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Error("handler must not run without an authenticated email")
	}
}

func TestRequireSelfMatch(t *testing.T) {
	rec, reached := runSelfGuard(t, "a@x.com", "a@x.com")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Error("handler should run when the caller asks about themselves")
	}
}

// Case differences in the requested email must not bypass the guard or
// cause a false mismatch; comparison is on the normalized form.
func TestRequireSelfNormalizesCase(t *testing.T) {
	rec, reached := runSelfGuard(t, "a@x.com", "A@X.COM")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Error("handler should run for a case-insensitive match")
	}
}

func TestRequireSelfQueryMismatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?email=b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextEmailKey, "a@x.com")

	reached := false
	h := RequireSelfQuery("email")(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if reached {
		t.Error("handler must not run for another user's selections")
	}
}

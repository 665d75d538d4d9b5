package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/creativecamper/creativecamper-server/internal/repository"
)

// fakeSelectionStore keeps selections in a map keyed by class id, mirroring
// the unique key the real store enforces.
type fakeSelectionStore struct {
	byClass map[uint64]repository.SelectedClass
	next    uint64
}

func newFakeSelectionStore() *fakeSelectionStore {
	return &fakeSelectionStore{byClass: make(map[uint64]repository.SelectedClass)}
}

func (f *fakeSelectionStore) Create(_ context.Context, classID uint64, email string) (uint64, error) {
	if _, ok := f.byClass[classID]; ok {
		return 0, repository.ErrAlreadySelected
	}
	f.next++
	f.byClass[classID] = repository.SelectedClass{ID: f.next, ClassID: classID, Email: email}
	return f.next, nil
}

func (f *fakeSelectionStore) ListByEmail(_ context.Context, email string) ([]repository.SelectedClass, error) {
	out := make([]repository.SelectedClass, 0)
	for _, s := range f.byClass {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSelectionStore) Delete(_ context.Context, id uint64) (int64, error) {
	for classID, s := range f.byClass {
		if s.ID == id {
			delete(f.byClass, classID)
			return 1, nil
		}
	}
	return 0, nil
}

func postSelection(t *testing.T, h *SelectedClassHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/selectedClasses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

// Selecting a class that already has a selection answers 403 with the
// Already Selected body, whoever holds the existing selection.
func TestCreateSelectionDuplicateClass(t *testing.T) {
	store := newFakeSelectionStore()
	h := NewSelectedClassHandler(store)

	first := postSelection(t, h, `{"classId":1,"email":"s@x.com"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first call status = %d, want 201", first.Code)
	}

	second := postSelection(t, h, `{"classId":1,"email":"other@x.com"}`)
	if second.Code != http.StatusForbidden {
		t.Fatalf("second call status = %d, want 403", second.Code)
	}
	var resp struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Error {
		t.Error("error = false, want true")
	}
	if resp.Message != "Already Selected" {
		t.Errorf("message = %q, want %q", resp.Message, "Already Selected")
	}

	if len(store.byClass) != 1 {
		t.Errorf("stored %d selections, want 1", len(store.byClass))
	}
}

// Validation failures must be rejected before any store access, so a handler
// built on a nil repository is safe to exercise here.
func TestCreateSelectionRequiresClassAndEmail(t *testing.T) {
	h := NewSelectedClassHandler(nil)

	for _, body := range []string{`{}`, `{"classId":1}`, `{"email":"s@x.com"}`, `{"classId":0,"email":"s@x.com"}`} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/selectedClasses", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := h.Create(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestDeleteSelectionRejectsBadID(t *testing.T) {
	h := NewSelectedClassHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/selectedClasses/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

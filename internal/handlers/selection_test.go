package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/config"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

func newSelectionRouter() *mux.Router {
	service := services.NewSelectionService(store.NewMemoryCollection(), config.SelectionScopeGlobal)
	handler := NewSelectionHandler(service, http.StatusConflict)

	router := mux.NewRouter()
	router.HandleFunc("/selected", handler.GetSelected).Methods("GET")
	router.HandleFunc("/selected", handler.AddSelected).Methods("POST")
	router.HandleFunc("/selected", handler.DeleteSelectedByEmail).Methods("DELETE")
	router.HandleFunc("/selected/{id}", handler.IsSelected).Methods("GET")
	router.HandleFunc("/selected/{id}", handler.DeleteSelected).Methods("DELETE")
	return router
}

func TestSelectionMembershipProbe(t *testing.T) {
	router := newSelectionRouter()
	body := `{"class_id":"64b000000000000000000001","student_email":"alice@example.com"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/selected", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /selected status = %d, want 201", rec.Code)
	}

	probe := httptest.NewRecorder()
	router.ServeHTTP(probe, httptest.NewRequest("GET", "/selected/64b000000000000000000001?email=alice@example.com", nil))
	if probe.Code != http.StatusOK {
		t.Fatalf("probe status = %d, want 200", probe.Code)
	}
	if strings.TrimSpace(probe.Body.String()) != "true" {
		t.Errorf("probe body = %s, want true", probe.Body.String())
	}

	miss := httptest.NewRecorder()
	router.ServeHTTP(miss, httptest.NewRequest("GET", "/selected/64b000000000000000000009?email=alice@example.com", nil))
	if strings.TrimSpace(miss.Body.String()) != "false" {
		t.Errorf("miss body = %s, want false", miss.Body.String())
	}
}

// Duplicate selections are detected on class_id alone, so a second student
// selecting the same class is rejected. Known defect, asserted on purpose.
func TestSelectionDuplicateAcrossStudents(t *testing.T) {
	router := newSelectionRouter()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("POST", "/selected",
		strings.NewReader(`{"class_id":"64b000000000000000000001","student_email":"alice@example.com"}`)))
	if first.Code != http.StatusCreated {
		t.Fatalf("first POST /selected status = %d, want 201", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("POST", "/selected",
		strings.NewReader(`{"class_id":"64b000000000000000000001","student_email":"bob@example.com"}`)))
	if second.Code != http.StatusConflict {
		t.Fatalf("second POST /selected status = %d, want 409", second.Code)
	}
}

func TestDeleteSelectionsByEmail(t *testing.T) {
	router := newSelectionRouter()

	for _, body := range []string{
		`{"class_id":"64b000000000000000000001","student_email":"alice@example.com"}`,
		`{"class_id":"64b000000000000000000002","student_email":"alice@example.com"}`,
		`{"class_id":"64b000000000000000000003","student_email":"bob@example.com"}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/selected", strings.NewReader(body)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed POST /selected status = %d", rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/selected?email=alice@example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE /selected status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"deletedCount":2`) {
		t.Errorf("unexpected delete result: %s", rec.Body.String())
	}

	bobs := httptest.NewRecorder()
	router.ServeHTTP(bobs, httptest.NewRequest("GET", "/selected?email=bob@example.com", nil))
	if !strings.Contains(bobs.Body.String(), "64b000000000000000000003") {
		t.Errorf("bob's selection disappeared: %s", bobs.Body.String())
	}
}

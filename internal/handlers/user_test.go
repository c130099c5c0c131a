package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/services"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

func newUserRouter(conflictStatus int) *mux.Router {
	service := services.NewUserService(store.NewMemoryCollection())
	handler := NewUserHandler(service, conflictStatus)

	router := mux.NewRouter()
	router.HandleFunc("/users", handler.GetUsers).Methods("GET")
	router.HandleFunc("/users", handler.CreateUser).Methods("POST")
	router.HandleFunc("/users/{email}", handler.GetUserByEmail).Methods("GET")
	return router
}

func TestCreateUserConflict(t *testing.T) {
	router := newUserRouter(http.StatusConflict)
	body := `{"name":"Mia","email":"mia@example.com","role":"student"}`

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	if first.Code != http.StatusCreated {
		t.Fatalf("first POST /users status = %d, want 201", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	if second.Code != http.StatusConflict {
		t.Fatalf("second POST /users status = %d, want 409", second.Code)
	}
	if !strings.Contains(second.Body.String(), "already exists") {
		t.Errorf("unexpected conflict body: %s", second.Body.String())
	}
}

// The legacy policy answered duplicates with 200 plus a message body; the
// status stays configurable so both vintages are expressible.
func TestCreateUserConflictLegacyStatus(t *testing.T) {
	router := newUserRouter(http.StatusOK)
	body := `{"name":"Mia","email":"mia@example.com"}`

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("POST", "/users", strings.NewReader(body)))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	if second.Code != http.StatusOK {
		t.Fatalf("second POST /users status = %d, want 200 under legacy policy", second.Code)
	}
	if !strings.Contains(second.Body.String(), "already exists") {
		t.Errorf("legacy conflict response lost its message: %s", second.Body.String())
	}
}

func TestGetUserByEmailMiss(t *testing.T) {
	router := newUserRouter(http.StatusConflict)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/nobody@example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /users/{email} miss status = %d, want 200", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Errorf("expected null body for a miss, got %s", rec.Body.String())
	}
}

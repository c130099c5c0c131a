package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
	"github.com/chromacraft/chromacraft-gobackend/internal/store"
)

func TestIncrementEnrolledEndpoint(t *testing.T) {
	service := services.NewClassService(store.NewMemoryCollection())
	handler := NewClassHandler(service)

	router := mux.NewRouter()
	router.HandleFunc("/count", handler.IncrementEnrolled).Methods("PATCH")
	router.HandleFunc("/classes/{id}", handler.GetClass).Methods("GET")

	var ids []string
	for i := 0; i < 2; i++ {
		class := models.Class{Name: "Oil Painting", InstructorEmail: "ina@example.com"}
		id, err := service.CreateClass(context.Background(), &class)
		if err != nil {
			t.Fatalf("CreateClass failed: %v", err)
		}
		ids = append(ids, id)
	}

	body := fmt.Sprintf(`["%s","%s","64b0000000000000000000ff"]`, ids[0], ids[1])
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PATCH", "/count", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH /count status = %d, want 200", rec.Code)
	}

	var result store.UpdateResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad result body: %v", err)
	}
	if result.MatchedCount != 2 || result.ModifiedCount != 2 {
		t.Errorf("unexpected result: %+v", result)
	}

	for _, id := range ids {
		get := httptest.NewRecorder()
		router.ServeHTTP(get, httptest.NewRequest("GET", "/classes/"+id, nil))
		var class models.Class
		if err := json.Unmarshal(get.Body.Bytes(), &class); err != nil {
			t.Fatalf("bad class body: %v", err)
		}
		if class.Enrolled != 1 {
			t.Errorf("class %s enrolled = %d, want 1", id, class.Enrolled)
		}
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type SelectionHandler struct {
	service        *services.SelectionService
	conflictStatus int
}

func NewSelectionHandler(service *services.SelectionService, conflictStatus int) *SelectionHandler {
	return &SelectionHandler{service: service, conflictStatus: conflictStatus}
}

// GetSelected handles GET /selected?email=
func (h *SelectionHandler) GetSelected(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	selections, err := h.service.ByStudent(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch selections for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch selections")
		return
	}
	respondJSON(w, http.StatusOK, selections)
}

// IsSelected handles GET /selected/{id}?email= and answers a bare boolean.
func (h *SelectionHandler) IsSelected(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["id"]
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	selected, err := h.service.IsSelected(r.Context(), email, classID)
	if err != nil {
		log.Printf("Failed to probe selection for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to check selection")
		return
	}
	respondJSON(w, http.StatusOK, selected)
}

// AddSelected handles POST /selected
func (h *SelectionHandler) AddSelected(w http.ResponseWriter, r *http.Request) {
	var selection models.Selection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if selection.ClassID == "" || selection.StudentEmail == "" {
		respondError(w, http.StatusBadRequest, "class_id and student_email are required")
		return
	}

	id, err := h.service.Add(r.Context(), &selection)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			respondError(w, h.conflictStatus, "class already selected")
			return
		}
		log.Printf("Failed to add selection: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add selection")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// DeleteSelected handles DELETE /selected/{id}
func (h *SelectionHandler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete selection %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete selection")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// DeleteSelectedByEmail handles DELETE /selected?email=
func (h *SelectionHandler) DeleteSelectedByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	deleted, err := h.service.RemoveByStudent(r.Context(), email)
	if err != nil {
		log.Printf("Failed to delete selections for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete selections")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type ClassHandler struct {
	service *services.ClassService
}

func NewClassHandler(service *services.ClassService) *ClassHandler {
	return &ClassHandler{service: service}
}

// GetClasses handles GET /classes
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.ClassList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch classes: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch classes")
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// GetClass handles GET /classes/{id}
func (h *ClassHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	class, err := h.service.GetClass(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid class ID")
		return
	}
	respondJSON(w, http.StatusOK, class)
}

// GetClassesByCategory handles GET /categories/classes/{id}
func (h *ClassHandler) GetClassesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	classes, err := h.service.ClassesByCategory(r.Context(), categoryID)
	if err != nil {
		log.Printf("Failed to fetch classes for category %d: %v", categoryID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch classes")
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// GetClassesByInstructor handles GET /instructors/classes/{id}
func (h *ClassHandler) GetClassesByInstructor(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid instructor ID")
		return
	}

	classes, err := h.service.ClassesByInstructor(r.Context(), instructorID)
	if err != nil {
		log.Printf("Failed to fetch classes for instructor %d: %v", instructorID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch classes")
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// GetClassesByInstructorEmail handles GET /instructors/classes?email=
func (h *ClassHandler) GetClassesByInstructorEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	classes, err := h.service.ClassesByInstructorEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch classes for instructor %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch classes")
		return
	}
	respondJSON(w, http.StatusOK, classes)
}

// CreateClass handles POST /classes
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var class models.Class
	if err := json.NewDecoder(r.Body).Decode(&class); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if class.Name == "" || class.InstructorEmail == "" {
		respondError(w, http.StatusBadRequest, "Class name and instructor email are required")
		return
	}

	id, err := h.service.CreateClass(r.Context(), &class)
	if err != nil {
		log.Printf("Failed to create class: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create class")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// UpdateClass handles PATCH /classes/{id}
func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update models.ClassUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateClass(r.Context(), id, update)
	if err != nil {
		log.Printf("Failed to update class %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update class")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DeleteClass handles DELETE /classes/{id}
func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.DeleteClass(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete class %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete class")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// IncrementEnrolled handles PATCH /count. The body is a JSON array of class
// ids; every matching class gets its enrolled counter bumped by one, ids
// that match nothing are skipped.
func (h *ClassHandler) IncrementEnrolled(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.IncrementEnrolled(r.Context(), ids)
	if err != nil {
		log.Printf("Failed to increment enrolled counts: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update enrolled counts")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type EnrollmentHandler struct {
	service *services.EnrollmentService
}

func NewEnrollmentHandler(service *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// GetEnrolled handles GET /enrolled?email=
func (h *EnrollmentHandler) GetEnrolled(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	enrollments, err := h.service.ByStudent(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch enrollments for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}
	respondJSON(w, http.StatusOK, enrollments)
}

// IsEnrolled handles GET /enrolled/{id}?email= and answers a bare boolean.
func (h *EnrollmentHandler) IsEnrolled(w http.ResponseWriter, r *http.Request) {
	classID := mux.Vars(r)["id"]
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	enrolled, err := h.service.IsEnrolled(r.Context(), email, classID)
	if err != nil {
		log.Printf("Failed to probe enrollment for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to check enrollment")
		return
	}
	respondJSON(w, http.StatusOK, enrolled)
}

// Enroll handles POST /enrolled. The body is one enrollment per paid class;
// it is written as a single bulk insert after checkout.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var enrollments []models.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&enrollments); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(enrollments) == 0 {
		respondError(w, http.StatusBadRequest, "At least one enrollment is required")
		return
	}

	ids, err := h.service.AddMany(r.Context(), enrollments)
	if err != nil {
		log.Printf("Failed to create enrollments: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create enrollments")
		return
	}
	respondJSON(w, http.StatusCreated, map[string][]string{"insertedIds": ids})
}

// DeleteEnrolled handles DELETE /enrolled/{id}
func (h *EnrollmentHandler) DeleteEnrolled(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete enrollment %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete enrollment")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

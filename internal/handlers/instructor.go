package handlers

import (
	"log"
	"net/http"

	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type InstructorHandler struct {
	service *services.InstructorService
}

func NewInstructorHandler(service *services.InstructorService) *InstructorHandler {
	return &InstructorHandler{service: service}
}

// GetInstructors handles GET /instructors
func (h *InstructorHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.service.InstructorList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch instructors: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch instructors")
		return
	}
	respondJSON(w, http.StatusOK, instructors)
}

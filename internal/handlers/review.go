package handlers

import (
	"log"
	"net/http"

	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type ReviewHandler struct {
	service *services.ReviewService
}

func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ReviewList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type StripeHandler struct {
	service *services.StripeService
}

func NewStripeHandler(service *services.StripeService) *StripeHandler {
	return &StripeHandler{service: service}
}

// CreatePaymentIntent handles POST /create-payment-intent. The price must
// be a positive number; anything else is rejected before the provider is
// contacted.
func (h *StripeHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price *float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "price must be a number")
		return
	}
	if body.Price == nil {
		respondError(w, http.StatusBadRequest, "price is required")
		return
	}

	clientSecret, err := h.service.CreateIntent(r.Context(), *body.Price)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			respondError(w, http.StatusBadRequest, "price must be a positive number")
			return
		}
		log.Printf("Failed to create payment intent: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

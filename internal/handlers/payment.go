package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/models"
	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// GetPayments handles GET /payments?email=
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	payments, err := h.service.ByStudent(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch payments for %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payment.StudentEmail == "" {
		respondError(w, http.StatusBadRequest, "student_email is required")
		return
	}
	if payment.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	id, err := h.service.CreatePayment(r.Context(), &payment)
	if err != nil {
		log.Printf("Failed to record payment: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// UpdatePayment handles PATCH /payments/{id}
func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update models.PaymentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdatePayment(r.Context(), id, update)
	if err != nil {
		log.Printf("Failed to update payment %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update payment")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DeletePayment handles DELETE /payments/{id}
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.DeletePayment(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete payment %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete payment")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/chromacraft/chromacraft-gobackend/internal/auth"
)

type TokenHandler struct {
	service *auth.TokenService
}

func NewTokenHandler(service *auth.TokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

// IssueToken handles POST /jwt. The whole request body becomes the token
// payload; the client keeps the token for the gated routes.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Issue(payload)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chromacraft/chromacraft-gobackend/internal/services"
)

type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GetCategories handles GET /categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.CategoryList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch categories: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		log.Printf("Failed to fetch category %d: %v", categoryID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

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

type UserHandler struct {
	service        *services.UserService
	conflictStatus int
}

func NewUserHandler(service *services.UserService, conflictStatus int) *UserHandler {
	return &UserHandler{service: service, conflictStatus: conflictStatus}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.UserList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetStudents handles GET /students
func (h *UserHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.StudentList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch students: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch students")
		return
	}
	respondJSON(w, http.StatusOK, students)
}

// GetUserByEmail handles GET /users/{email}. A missing user answers with a
// null body, not a 404.
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch user %s: %v", email, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /users. A second submission with the same email
// does not create a second record; it answers with the configured conflict
// status.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if user.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	id, err := h.service.CreateUser(r.Context(), &user)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			respondError(w, h.conflictStatus, "user already exists")
			return
		}
		log.Printf("Failed to create user: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// UpdateUser handles PATCH /users/{id} and PATCH /students/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateUser(r.Context(), id, update)
	if err != nil {
		log.Printf("Failed to update user %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete user %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

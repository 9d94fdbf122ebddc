// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"userbase/internal/domain"
	"userbase/internal/service"
	"userbase/internal/util"
	"userbase/internal/validation"
)

// DefaultTimeout bounds how long a single request may run.
const DefaultTimeout = 60 * time.Second

// UserHandler handles HTTP requests for the users resource. Each handler
// runs the same linear flow: parse, validate, invoke the service, respond.
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper to send JSON responses.
func (h *UserHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper to send error responses. Internal failures never leak storage
// detail beyond the generic message.
func (h *UserHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusConflict
		message = "Username or email already exists"
	case util.IsError(err, util.ErrUserNotFound), util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "User not found"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// CreateUser handles user creation.
// POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var params domain.CreateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	if err := validation.ValidateCreate(params); err != nil {
		h.respondWithError(w, err)
		return
	}

	user, err := h.service.CreateUser(r.Context(), params)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, user)
}

// ListUsers handles the filtered listing.
// GET /api/users?username=&email=&name=&gender=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.UserFilter{
		Username: query.Get("username"),
		Email:    query.Get("email"),
		Name:     query.Get("name"),
		Gender:   query.Get("gender"),
	}

	users, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, users)
}

// GetUser handles the fetch of a single user.
// GET /api/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")
	if err := validation.ValidateUserID(id); err != nil {
		h.respondWithError(w, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, user)
}

// UpdateUser handles a partial update.
// PUT /api/users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")
	if err := validation.ValidateUserID(id); err != nil {
		h.respondWithError(w, err)
		return
	}

	var params domain.UpdateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	if err := validation.ValidateUpdate(params); err != nil {
		h.respondWithError(w, err)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, params)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, user)
}

// DeleteUser handles user removal.
// DELETE /api/users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")
	if err := validation.ValidateUserID(id); err != nil {
		h.respondWithError(w, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

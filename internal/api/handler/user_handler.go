package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apimw "github.com/arco/demo/internal/api/middleware"
	"github.com/arco/demo/internal/domain"
	"github.com/arco/demo/internal/service"
)

// UserHandler handles the users CRUD endpoints.
type UserHandler struct {
	svc    *service.UserService
	logger *zap.Logger
}

func NewUserHandler(svc *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// Create handles POST /users
//
// @Summary  Create a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body  body      domain.CreateUserRequest  true  "User payload"
// @Success  201   {object}  domain.User
// @Failure  409   {object}  map[string]string
// @Failure  422   {object}  map[string]string
// @Router   /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	u, err := h.svc.Create(r.Context(), req)
	if err != nil {
		h.logFailure(r, "create user failed", err)
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, u)
}

// GetByID handles GET /users/{id}
//
// @Summary  Get a user by ID
// @Tags     users
// @Produce  json
// @Param    id   path      string  true  "User ID"
// @Success  200  {object}  domain.User
// @Failure  404  {object}  map[string]string
// @Router   /users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logFailure(r, "get user failed", err)
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// Update handles PUT /users/{id}
//
// @Summary  Rename a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id    path      string                    true  "User ID"
// @Param    body  body      domain.UpdateUserRequest  true  "New name"
// @Success  200   {object}  domain.User
// @Failure  404   {object}  map[string]string
// @Failure  422   {object}  map[string]string
// @Router   /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	u, err := h.svc.UpdateName(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.logFailure(r, "update user failed", err)
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// Delete handles DELETE /users/{id}
//
// @Summary  Delete a user
// @Tags     users
// @Produce  json
// @Param    id   path      string  true  "User ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logFailure(r, "delete user failed", err)
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// logFailure logs unexpected errors at error level and domain errors at debug.
func (h *UserHandler) logFailure(r *http.Request, msg string, err error) {
	fields := []zap.Field{
		zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
		zap.Error(err),
	}
	if isDomainError(err) {
		h.logger.Debug(msg, fields...)
		return
	}
	h.logger.Error(msg, fields...)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound,
		domain.ErrConflict,
		domain.ErrInvalidUserID,
		domain.ErrInvalidName,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

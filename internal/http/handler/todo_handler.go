package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tasklight/todo-api/internal/auth"
	"github.com/tasklight/todo-api/internal/domain"
	"github.com/tasklight/todo-api/internal/service"
	"go.uber.org/zap"
)

// TodoHandler handles HTTP requests for todos
type TodoHandler struct {
	todoService *service.TodoService
	logger      *zap.Logger
}

// NewTodoHandler creates a new TodoHandler instance
func NewTodoHandler(todoService *service.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// List returns all todos owned by the authenticated user
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	todos, err := h.todoService.List(r.Context(), userCtx.UserID)
	if err != nil {
		h.logger.Error("failed to list todos", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list todos")
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

// Create adds a todo for the authenticated user; status defaults to pending
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req domain.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	todo, err := h.todoService.Create(r.Context(), userCtx.UserID, req.Title, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			respondWithError(w, http.StatusBadRequest, "Invalid todo status")
			return
		}
		h.logger.Error("failed to create todo", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	respondJSON(w, http.StatusCreated, todo)
}

// Update replaces title and status of a todo owned by the authenticated user.
// Todos that don't exist and todos owned by someone else both return 404.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID format")
		return
	}

	var req domain.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.todoService.Update(r.Context(), userCtx.UserID, id, req.Title, req.Status); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondWithError(w, http.StatusNotFound, "Todo not found")
			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			respondWithError(w, http.StatusBadRequest, "Invalid todo status")
			return
		}
		h.logger.Error("failed to update todo", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "Todo updated successfully"})
}

// Delete removes a todo owned by the authenticated user
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID format")
		return
	}

	if err := h.todoService.Delete(r.Context(), userCtx.UserID, id); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondWithError(w, http.StatusNotFound, "Todo not found")
			return
		}
		h.logger.Error("failed to delete todo", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "Todo deleted successfully"})
}

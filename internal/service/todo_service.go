package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tasklight/todo-api/internal/domain"
	"github.com/tasklight/todo-api/internal/mapper"
	"github.com/tasklight/todo-api/internal/repository"
	"go.uber.org/zap"
)

// TodoService handles business logic for todos. Every operation is scoped to
// the owning user; there is no cross-user access path.
type TodoService struct {
	todoRepo *repository.TodoRepository
	logger   *zap.Logger
}

// NewTodoService creates a new TodoService instance
func NewTodoService(todoRepo *repository.TodoRepository, logger *zap.Logger) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// List returns all todos owned by userID
func (s *TodoService) List(ctx context.Context, userID uuid.UUID) ([]domain.TodoDTO, error) {
	todos, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return mapper.ToTodoDTOs(todos), nil
}

// Create persists a new todo for userID. An empty status defaults to pending.
func (s *TodoService) Create(ctx context.Context, userID uuid.UUID, title, status string) (*domain.TodoDTO, error) {
	if status == "" {
		status = string(domain.TodoStatusPending)
	}
	if !domain.IsValidTodoStatus(status) {
		return nil, ErrInvalidStatus
	}

	todo := &domain.Todo{
		UserID: userID,
		Title:  title,
		Status: domain.TodoStatus(status),
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Info("todo created",
		zap.String("todoID", todo.ID.String()),
		zap.String("userID", userID.String()),
	)

	dto := mapper.ToTodoDTO(todo)
	return &dto, nil
}

// Update replaces title and status of a todo owned by userID. A todo that
// does not exist and a todo owned by another user both yield ErrTodoNotFound.
func (s *TodoService) Update(ctx context.Context, userID, todoID uuid.UUID, title, status string) error {
	if !domain.IsValidTodoStatus(status) {
		return ErrInvalidStatus
	}

	rows, err := s.todoRepo.UpdateOwned(ctx, todoID, userID, title, domain.TodoStatus(status))
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	if rows == 0 {
		return ErrTodoNotFound
	}

	s.logger.Debug("todo updated",
		zap.String("todoID", todoID.String()),
		zap.String("userID", userID.String()),
	)

	return nil
}

// Delete removes a todo owned by userID, with the same not-found semantics as Update
func (s *TodoService) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	rows, err := s.todoRepo.DeleteOwned(ctx, todoID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if rows == 0 {
		return ErrTodoNotFound
	}

	s.logger.Debug("todo deleted",
		zap.String("todoID", todoID.String()),
		zap.String("userID", userID.String()),
	)

	return nil
}

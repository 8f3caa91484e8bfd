package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tasklight/todo-api/internal/domain"
	"gorm.io/gorm"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// ListByUser returns all todos owned by userID, oldest first
func (r *TodoRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&todos).Error
	return todos, err
}

func (r *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.WithContext(ctx).First(&todo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateOwned updates a todo only when it is owned by userID. The returned
// row count is zero both when the todo does not exist and when it belongs to
// another user; callers must not distinguish the two cases.
func (r *TodoRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, title string, status domain.TodoStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"title":  title,
			"status": status,
		})
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes a todo only when it is owned by userID, with the same
// row-count semantics as UpdateOwned.
func (r *TodoRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Todo{})
	return result.RowsAffected, result.Error
}

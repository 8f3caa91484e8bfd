package mapper

import (
	"github.com/tasklight/todo-api/internal/domain"
)

// ToUserDTO converts User to UserDTO, omitting the password hash
func ToUserDTO(user *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

// ToTodoDTO converts Todo to TodoDTO
func ToTodoDTO(todo *domain.Todo) domain.TodoDTO {
	return domain.TodoDTO{
		ID:        todo.ID,
		UserID:    todo.UserID,
		Title:     todo.Title,
		Status:    todo.Status,
		CreatedAt: todo.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: todo.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToTodoDTOs converts a slice of todos
func ToTodoDTOs(todos []domain.Todo) []domain.TodoDTO {
	dtos := make([]domain.TodoDTO, len(todos))
	for i := range todos {
		dtos[i] = ToTodoDTO(&todos[i])
	}
	return dtos
}

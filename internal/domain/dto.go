package domain

import (
	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
	Name     string `json:"name" validate:"required,max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,max=72"`
}

type CreateTodoRequest struct {
	Title  string `json:"title" validate:"required,max=500"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending 'in progress' done completed"`
}

type UpdateTodoRequest struct {
	Title  string `json:"title" validate:"required,max=500"`
	Status string `json:"status" validate:"required,oneof=pending 'in progress' done completed"`
}

// Response DTOs

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type TodoDTO struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Title     string     `json:"title"`
	Status    TodoStatus `json:"status"`
	CreatedAt string     `json:"createdAt"` // ISO 8601
	UpdatedAt string     `json:"updatedAt"` // ISO 8601
}

// MessageResponse carries a short confirmation for mutations that return no body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

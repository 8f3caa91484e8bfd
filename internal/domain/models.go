package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when none was set. IDs are generated in the
// application rather than the store so the same model works on both the
// postgres and sqlite drivers.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TodoStatus represents the completion state of a todo
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in progress"
	TodoStatusDone       TodoStatus = "done"
	TodoStatusCompleted  TodoStatus = "completed"
)

// validTodoStatuses contains all accepted status values. Both "done" and
// "completed" are accepted; the store keeps whichever the client sent.
var validTodoStatuses = map[TodoStatus]bool{
	TodoStatusPending:    true,
	TodoStatusInProgress: true,
	TodoStatusDone:       true,
	TodoStatusCompleted:  true,
}

// IsValidTodoStatus reports whether s is an accepted status value
func IsValidTodoStatus(s string) bool {
	return validTodoStatuses[TodoStatus(s)]
}

// User represents a registered account. PasswordHash holds a bcrypt digest;
// the plaintext password is never persisted.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash"`
	Name         string `gorm:"type:varchar(200);not null"`
	Todos        []Todo `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Todo represents a task owned by a single user
type Todo struct {
	BaseModel
	UserID uuid.UUID  `gorm:"type:uuid;not null;index;column:user_id"`
	Title  string     `gorm:"type:varchar(500);not null"`
	Status TodoStatus `gorm:"type:varchar(50);not null;default:'pending'"`
}

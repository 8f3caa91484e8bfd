package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tasklight/todo-api/internal/auth"
	"github.com/tasklight/todo-api/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an isolated in-memory sqlite database with the full
// schema. Each test gets its own database; no external services are needed.
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	// A second pooled connection would see a different :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Todo{}))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// CreateTestUser creates a user whose password is "password"
func CreateTestUser(t *testing.T, db *gorm.DB, email, name string) *domain.User {
	hasher := auth.NewPasswordHasher(4) // minimum cost, tests only
	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestTodo creates a todo owned by userID
func CreateTestTodo(t *testing.T, db *gorm.DB, user *domain.User, title string, status domain.TodoStatus) *domain.Todo {
	todo := &domain.Todo{
		UserID: user.ID,
		Title:  title,
		Status: status,
	}
	require.NoError(t, db.Create(todo).Error)
	return todo
}

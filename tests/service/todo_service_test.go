package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklight/todo-api/internal/domain"
	"github.com/tasklight/todo-api/internal/repository"
	"github.com/tasklight/todo-api/internal/service"
	"github.com/tasklight/todo-api/tests/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTodoService(t *testing.T) (*service.TodoService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	svc := service.NewTodoService(repository.NewTodoRepository(db), zap.NewNop())
	return svc, db
}

func TestTodoService_CreateDefaultsToPending(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")

	dto, err := svc.Create(ctx, alice.ID, "Buy milk", "")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", dto.Title)
	assert.Equal(t, domain.TodoStatusPending, dto.Status)
	assert.Equal(t, alice.ID, dto.UserID)
}

func TestTodoService_CreateWithStatus(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")

	for _, status := range []string{"pending", "in progress", "done", "completed"} {
		dto, err := svc.Create(ctx, alice.ID, "Task", status)
		require.NoError(t, err, "status %q", status)
		assert.Equal(t, domain.TodoStatus(status), dto.Status)
	}
}

func TestTodoService_CreateInvalidStatus(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")

	_, err := svc.Create(ctx, alice.ID, "Task", "archived")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestTodoService_ListScopedToOwner(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	bob := testutil.CreateTestUser(t, db, "bob@example.com", "Bob")

	testutil.CreateTestTodo(t, db, alice, "Alice's task", domain.TodoStatusPending)
	testutil.CreateTestTodo(t, db, bob, "Bob's task", domain.TodoStatusPending)

	todos, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Alice's task", todos[0].Title)

	empty, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTodoService_Update(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	todo := testutil.CreateTestTodo(t, db, alice, "Buy milk", domain.TodoStatusPending)

	require.NoError(t, svc.Update(ctx, alice.ID, todo.ID, "Buy oat milk", "done"))

	todos, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy oat milk", todos[0].Title)
	assert.Equal(t, domain.TodoStatusDone, todos[0].Status)

	// Repeating the same update succeeds and changes nothing further
	require.NoError(t, svc.Update(ctx, alice.ID, todo.ID, "Buy oat milk", "done"))
}

func TestTodoService_UpdateInvalidStatus(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	todo := testutil.CreateTestTodo(t, db, alice, "Buy milk", domain.TodoStatusPending)

	err := svc.Update(ctx, alice.ID, todo.ID, "Buy milk", "nonsense")
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestTodoService_UpdateCrossUser(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	bob := testutil.CreateTestUser(t, db, "bob@example.com", "Bob")
	todo := testutil.CreateTestTodo(t, db, alice, "Buy milk", domain.TodoStatusPending)

	err := svc.Update(ctx, bob.ID, todo.ID, "Hijacked", "done")
	assert.ErrorIs(t, err, service.ErrTodoNotFound)

	todos, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Title, "cross-user update must not modify the todo")
}

func TestTodoService_UpdateMissing(t *testing.T) {
	svc, db := setupTodoService(t)

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")

	err := svc.Update(context.Background(), alice.ID, uuid.New(), "Ghost", "pending")
	assert.ErrorIs(t, err, service.ErrTodoNotFound)
}

func TestTodoService_Delete(t *testing.T) {
	svc, db := setupTodoService(t)
	ctx := context.Background()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	bob := testutil.CreateTestUser(t, db, "bob@example.com", "Bob")
	todo := testutil.CreateTestTodo(t, db, alice, "Buy milk", domain.TodoStatusPending)

	assert.ErrorIs(t, svc.Delete(ctx, bob.ID, todo.ID), service.ErrTodoNotFound)

	require.NoError(t, svc.Delete(ctx, alice.ID, todo.ID))

	todos, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, todos)

	assert.ErrorIs(t, svc.Delete(ctx, alice.ID, todo.ID), service.ErrTodoNotFound)
}

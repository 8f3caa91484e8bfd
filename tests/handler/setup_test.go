package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/tasklight/todo-api/internal/auth"
	"github.com/tasklight/todo-api/internal/config"
	"github.com/tasklight/todo-api/internal/domain"
	"github.com/tasklight/todo-api/internal/http/handler"
	"github.com/tasklight/todo-api/internal/repository"
	"github.com/tasklight/todo-api/internal/service"
	"github.com/tasklight/todo-api/tests/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testEnv wires real services against an in-memory database and mounts the
// handlers on the same routes the application uses.
type testEnv struct {
	db     *gorm.DB
	router chi.Router
	tokens *auth.TokenManager
}

func setupEnv(t *testing.T) *testEnv {
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	tokens := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
		Issuer:        "todo-api-test",
	})
	hasher := auth.NewPasswordHasher(4)

	authService := service.NewAuthService(repository.NewUserRepository(db), hasher, tokens, log)
	todoService := service.NewTodoService(repository.NewTodoRepository(db), log)

	authHandler := handler.NewAuthHandler(authService, log)
	profileHandler := handler.NewProfileHandler(authService, log)
	todoHandler := handler.NewTodoHandler(todoService, log)

	authMiddleware := auth.NewMiddleware(tokens, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/profile", profileHandler.Get)
			r.Put("/profile", profileHandler.Update)
			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoHandler.List)
				r.Post("/", todoHandler.Create)
				r.Put("/{id}", todoHandler.Update)
				r.Delete("/{id}", todoHandler.Delete)
			})
		})
	})

	return &testEnv{db: db, router: r, tokens: tokens}
}

// do performs a request against the test router, JSON-encoding body when set
// and attaching token as a bearer credential when non-empty.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its id
func (e *testEnv) register(t *testing.T, email, password, name string) string {
	rec := e.do(t, http.MethodPost, "/api/auth/register", "", domain.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     name,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp domain.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ID.String()
}

// login authenticates and returns a session token
func (e *testEnv) login(t *testing.T, email, password string) string {
	rec := e.do(t, http.MethodPost, "/api/auth/login", "", domain.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/api"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/service/auth"
)

// newTestApplication wires the application against in-memory stores so
// routing can be exercised without a database.
func newTestApplication(t *testing.T) (*application, *mocks.MockJWTService) {
	t.Helper()

	log := slog.Default()
	userStore := mocks.NewMockUserStore()
	taskStore := mocks.NewMockTaskStore()
	jwt := &mocks.MockJWTService{Token: "test-token"}

	authService, err := service.NewAuthService(
		userStore, jwt, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{ShouldSucceed: true}, log)
	require.NoError(t, err)

	taskService, err := service.NewTaskService(taskStore, log)
	require.NoError(t, err)

	return &application{
		config:      &config.Config{Server: config.ServerConfig{Port: 8080}},
		logger:      log,
		userStore:   userStore,
		taskStore:   taskStore,
		jwtService:  jwt,
		authService: authService,
		taskService: taskService,
	}, jwt
}

func TestRouter_HealthCheck(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_PublicAuthEndpoints(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	body, err := json.Marshal(api.RegisterRequest{
		Name:     "Router Test",
		Email:    "router@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code, "register must be reachable without a token")
}

func TestRouter_TaskRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodGet, "/api/tasks/" + uuid.New().String()},
		{http.MethodPut, "/api/tasks/" + uuid.New().String()},
		{http.MethodPatch, "/api/tasks/" + uuid.New().String()},
		{http.MethodDelete, "/api/tasks/" + uuid.New().String()},
		{http.MethodGet, "/api/auth/me"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouter_AuthenticatedTaskFlow(t *testing.T) {
	t.Parallel()

	app, jwt := newTestApplication(t)
	router := app.setupRouter()

	userID := uuid.New()
	jwt.Claims = &auth.Claims{UserID: userID}

	create := httptest.NewRequest(http.MethodPost, "/api/tasks",
		bytes.NewReader([]byte(`{"title":"Routed task"}`)))
	create.Header.Set("Authorization", "Bearer good-token")
	wCreate := httptest.NewRecorder()
	router.ServeHTTP(wCreate, create)
	require.Equal(t, http.StatusCreated, wCreate.Code)

	var created api.TaskResponse
	require.NoError(t, json.Unmarshal(wCreate.Body.Bytes(), &created))

	list := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	list.Header.Set("Authorization", "Bearer good-token")
	wList := httptest.NewRecorder()
	router.ServeHTTP(wList, list)
	require.Equal(t, http.StatusOK, wList.Code)

	var tasks []api.TaskResponse
	require.NoError(t, json.Unmarshal(wList.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)
}

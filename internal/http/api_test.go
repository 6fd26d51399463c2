package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-directory/internal/domain"
	apphttp "user-directory/internal/http"
	"user-directory/internal/repository/memory"
	"user-directory/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewUserRepository()
	err := repo.Seed(context.Background(), []domain.User{
		{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", CreatedAt: time.Now().UTC()},
		{ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", CreatedAt: time.Now().UTC()},
	})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	router := gin.New()
	apphttp.NewHandler(service.NewUserService(repo, logger), logger).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeUser(t *testing.T, w *httptest.ResponseRecorder) apphttp.UserResponse {
	t.Helper()
	var resp apphttp.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestUserLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create gets the next id after the seed.
	w := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"firstName": "Test",
		"lastName":  "User",
		"email":     "test@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users/3", w.Header().Get("Location"))
	created := decodeUser(t, w)
	assert.Equal(t, int64(3), created.ID)
	assert.Nil(t, created.UpdatedAt)
	assert.Nil(t, created.PhoneNumber)

	// The same email in a different case is a conflict.
	w = doJSON(t, router, http.MethodPost, "/users", gin.H{
		"firstName": "Other",
		"lastName":  "User",
		"email":     "TEST@example.com",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	var conflict map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.NotEmpty(t, conflict["message"])

	// Update trims input and stamps updatedAt.
	w = doJSON(t, router, http.MethodPut, "/users/3", gin.H{
		"firstName": "  Amy  ",
		"lastName":  "User",
		"email":     "test@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeUser(t, w)
	assert.Equal(t, "Amy", updated.FirstName)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Delete, then the record is gone.
	w = doJSON(t, router, http.MethodDelete, "/users/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/users/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []apphttp.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)
}

func TestCreateUser_ValidationBodyShape(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"firstName": "A",
		"lastName":  "",
		"email":     "nope",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	assert.NotEmpty(t, fields["firstName"])
	assert.NotEmpty(t, fields["lastName"])
	assert.NotEmpty(t, fields["email"])
}

func TestCreateUser_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser_InvalidAndUnknownIDs(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/users/0", "/users/-5", "/users/abc"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	w := doJSON(t, router, http.MethodGet, "/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-me")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "trace-me", w.Header().Get("X-Request-ID"))
}

// faultyService fails every operation with an unexpected error.
type faultyService struct{}

func (faultyService) List(context.Context) ([]domain.User, error) {
	return nil, errors.New("boom")
}
func (faultyService) Get(context.Context, int64) (*domain.User, error) {
	return nil, errors.New("boom")
}
func (faultyService) Create(context.Context, service.Candidate) (*domain.User, error) {
	panic("store exploded")
}
func (faultyService) Update(context.Context, int64, service.Candidate) (*domain.User, error) {
	return nil, errors.New("boom")
}
func (faultyService) Delete(context.Context, int64) error {
	return errors.New("boom")
}

func newFaultyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	router := gin.New()
	apphttp.NewHandler(faultyService{}, logger).RegisterRoutes(router)
	return router
}

func assertFaultBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	var fault apphttp.FaultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fault))
	assert.Equal(t, http.StatusInternalServerError, fault.StatusCode)
	assert.NotEmpty(t, fault.Message)
	assert.NotEmpty(t, fault.Details)
	assert.NotContains(t, fault.Details, "boom")
	assert.NotContains(t, fault.Details, "exploded")
	assert.NotEmpty(t, fault.Timestamp)
}

func TestUnexpectedErrorReturnsFaultShape(t *testing.T) {
	router := newFaultyRouter()

	w := doJSON(t, router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assertFaultBody(t, w)
}

func TestPanicIsRecoveredIntoFaultShape(t *testing.T) {
	router := newFaultyRouter()

	w := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"firstName": "Test",
		"lastName":  "User",
		"email":     "test@example.com",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assertFaultBody(t, w)
}

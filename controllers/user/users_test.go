package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kajanthann/E-COM-FOREVER/auth"
	"github.com/kajanthann/E-COM-FOREVER/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func newUserRouter(users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/user")
	group.POST("/register", Register(users))
	group.POST("/login", Login(users))
	group.POST("/admin", AdminLogin())
	return r
}

func post(r *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, authResponse) {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	var parsed authResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &parsed)
	return rr, parsed
}

func TestRegisterThenLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	s := store.NewMemory()
	r := newUserRouter(s.Users)

	rr, resp := post(r, "/api/user/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)

	// The fresh user owns an empty cart.
	user, err := s.Users.ByID(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, user.CartData.Count())
	assert.NotEqual(t, "correct-horse", user.Password, "password must be stored hashed")

	rr, resp = post(r, "/api/user/login", gin.H{
		"email": "ada@example.com", "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, resp.Token)
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newUserRouter(store.NewMemory().Users)

	rr, _ := post(r, "/api/user/register", gin.H{
		"name": "Ada", "email": "not-an-email", "password": "correct-horse",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, _ = post(r, "/api/user/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newUserRouter(store.NewMemory().Users)

	body := gin.H{"name": "Ada", "email": "ada@example.com", "password": "correct-horse"}
	rr, _ := post(r, "/api/user/register", body)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, resp := post(r, "/api/user/register", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "User already exists", resp.Message)
}

func TestLoginFailures(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newUserRouter(store.NewMemory().Users)

	rr, _ := post(r, "/api/user/login", gin.H{"email": "ghost@example.com", "password": "whatever1"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	_, _ = post(r, "/api/user/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	})
	rr, _ = post(r, "/api/user/login", gin.H{"email": "ada@example.com", "password": "wrong-horse"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "super-secret")
	r := newUserRouter(store.NewMemory().Users)

	rr, resp := post(r, "/api/user/admin", gin.H{
		"email": "admin@example.com", "password": "super-secret",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)

	rr, _ = post(r, "/api/user/admin", gin.H{
		"email": "admin@example.com", "password": "guess",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

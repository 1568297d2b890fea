package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/api/v1/auth"
	"github.com/neha-5456/kaagjee/internal/api/v1/user"
	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{})
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	auth.RegisterRoutes(v1)
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"email":     "first@test.com",
		"password":  "password123",
		"full_name": "First User",
		"phone":     "9000000001",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status int               `json:"status"`
		Data   user.UserResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "first@test.com", resp.Data.Email)
	assert.Equal(t, "admin", resp.Data.Role, "first account becomes the admin")
	assert.NotEmpty(t, resp.Data.Token)

	// Duplicate email is rejected.
	w = postJSON(router, "/api/v1/auth/register", gin.H{
		"email":     "first@test.com",
		"password":  "password456",
		"full_name": "Imposter",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Short passwords fail validation.
	w = postJSON(router, "/api/v1/auth/register", gin.H{
		"email":     "weak@test.com",
		"password":  "short",
		"full_name": "Weak",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	w := postJSON(router, "/api/v1/auth/register", gin.H{
		"email":     "login@test.com",
		"password":  "password123",
		"full_name": "Login User",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "login@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data user.UserResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp.Data.Token)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    "login@test.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

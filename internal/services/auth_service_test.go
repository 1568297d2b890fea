package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

func setupAuthTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{})
	db.AutoMigrate(&models.User{})

	database.DB = db
}

func TestRegisterUser(t *testing.T) {
	setupAuthTestDB()

	// The first registered user becomes the admin.
	first, err := RegisterUser("admin@example.com", "password123", "Admin User", "9000000001")
	assert.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := RegisterUser("user@example.com", "password123", "Regular User", "")
	assert.NoError(t, err)
	assert.Equal(t, "user", second.Role)

	_, err = RegisterUser("user@example.com", "different", "Duplicate", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	setupAuthTestDB()

	_, err := RegisterUser("login@example.com", "password123", "Login User", "")
	assert.NoError(t, err)

	token, user, err := LoginUser("login@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "login@example.com", user.Email)

	_, _, err = LoginUser("login@example.com", "wrongpassword")
	assert.Error(t, err)

	_, _, err = LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
}

package services

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/neha-5456/kaagjee/internal/database"
	"github.com/neha-5456/kaagjee/internal/models"
)

func setupUserTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{})
	db.AutoMigrate(&models.User{})

	database.DB = db
}

func setupUserTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestFindUserByID_Cache(t *testing.T) {
	setupUserTestDB()
	mr := setupUserTestRedis()
	defer mr.Close()
	defer func() { database.RedisClient = nil }()

	user := models.User{Email: "cache@test.com", Password: "x", FullName: "Cached"}
	database.DB.Create(&user)

	got, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "cache@test.com", got.Email)

	// Second lookup is served from redis even after the row changes.
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("full_name", "Changed Behind Cache")

	got, err = FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Cached", got.FullName)

	_, err = FindUserByID(9999)
	assert.Error(t, err)
}

func TestUpdateUser_OptimisticLock(t *testing.T) {
	setupUserTestDB()
	mr := setupUserTestRedis()
	defer mr.Close()
	defer func() { database.RedisClient = nil }()

	user := models.User{Email: "lock@test.com", Password: "x", Version: 1}
	database.DB.Create(&user)

	updated, err := UpdateUser(user.ID, map[string]interface{}{"full_name": "First Writer"})
	assert.NoError(t, err)
	assert.Equal(t, "First Writer", updated.FullName)
	assert.Equal(t, 2, updated.Version)

	// A writer holding the stale version loses.
	stale := database.DB.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, 1).
		Update("full_name", "Stale Writer")
	assert.Equal(t, int64(0), stale.RowsAffected)

	// Update invalidates the cache, so reads see the new value.
	got, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "First Writer", got.FullName)
}

func TestTokenDenylist(t *testing.T) {
	mr := setupUserTestRedis()
	defer mr.Close()
	defer func() { database.RedisClient = nil }()

	denied, err := IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denied)

	assert.NoError(t, AddToDenylist("some-token", time.Minute))

	denied, err = IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.True(t, denied)

	// Expired entries fall out of the denylist.
	mr.FastForward(2 * time.Minute)
	denied, err = IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denied)
}

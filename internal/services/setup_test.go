package services

import (
	"testing"

	"github.com/hackclub/buildboard-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserAddress{},
		&models.Project{},
		&models.HackatimeProject{},
		&models.Review{},
		&models.Vote{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		SlackID:      "U123",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestProject(t *testing.T, db *gorm.DB, userID, name string) *models.Project {
	t.Helper()

	project := models.Project{
		UserID:      userID,
		Name:        name,
		Description: "a test project",
	}
	require.NoError(t, db.Create(&project).Error)
	return &project
}

func createTestHackatimeProject(t *testing.T, db *gorm.DB, userID, name string, seconds int) *models.HackatimeProject {
	t.Helper()

	hp := models.HackatimeProject{UserID: userID, Name: name, Seconds: seconds}
	require.NoError(t, db.Create(&hp).Error)
	return &hp
}

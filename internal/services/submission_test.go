package services

import (
	"testing"
	"time"

	"github.com/hackclub/buildboard-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func newTestSubmissionService(db *gorm.DB) *SubmissionService {
	return NewSubmissionServiceWithClock(db, func() time.Time { return testNow })
}

func errorFields(result *SubmissionValidationResult) []string {
	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func completeProfile(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	birthday := time.Date(2010, time.March, 14, 0, 0, 0, 0, time.UTC)
	profile := models.UserProfile{UserID: userID, FirstName: "Orpheus", Birthday: &birthday}
	require.NoError(t, db.Create(&profile).Error)
}

func completeAddress(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	address := models.UserAddress{
		UserID:       userID,
		AddressLine1: "15 Falls Road",
		City:         "Shelburne",
		Country:      "USA",
		PostCode:     "05482",
		IsPrimary:    true,
	}
	require.NoError(t, db.Create(&address).Error)
}

func completeProject(t *testing.T, db *gorm.DB, userID string) *models.Project {
	t.Helper()
	project := createTestProject(t, db, userID, "game")
	project.CodeURL = "https://github.com/acme/game"
	project.LiveURL = "https://game.example.com"
	project.AttachmentURLs = datatypes.JSONSlice[string]{"https://cdn.example.com/shot.png"}
	project.HackatimeProjects = datatypes.JSONSlice[string]{"engine"}
	require.NoError(t, db.Save(project).Error)
	return project
}

func TestValidateAllRequirementsMet(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeProfile(t, db, user.ID)
	completeAddress(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

// A bare user and bare project produce every independent violation at
// once, not just the first.
func TestValidateCollectsAllViolations(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"profile",
		"address",
		"hackatime_projects",
		"code_url",
		"live_url",
		"screenshot",
	}, errorFields(result))
}

func TestValidateProfileSubChecks(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeAddress(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	// Profile exists but first name is whitespace and birthday is unset:
	// both sub-checks fire, the profile check itself does not.
	profile := models.UserProfile{UserID: user.ID, FirstName: "   "}
	require.NoError(t, db.Create(&profile).Error)

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_name", "birthday"}, errorFields(result))
}

func TestValidateAddressFieldViolationsIndependent(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeProfile(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	address := models.UserAddress{
		UserID:       user.ID,
		AddressLine1: " ",
		City:         "",
		Country:      "\t",
		PostCode:     "",
		IsPrimary:    true,
	}
	require.NoError(t, db.Create(&address).Error)

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"address_line_1", "city", "country", "post_code"}, errorFields(result))
}

func TestValidateAgeBoundary(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeAddress(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	// 19th birthday is tomorrow: still 18 today, passes.
	birthday := time.Date(2007, time.September, 1, 0, 0, 0, 0, time.UTC)
	profile := models.UserProfile{UserID: user.ID, FirstName: "Orpheus", Birthday: &birthday}
	require.NoError(t, db.Create(&profile).Error)

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	// 19th birthday was yesterday: 19 today, fails.
	earlier := time.Date(2007, time.August, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.UserProfile{}).
		Where("user_id = ?", user.ID).
		Update("birthday", earlier).Error)

	result, err = svc.Validate(project, user)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"age"}, errorFields(result))
}

func TestValidateAgeExactBirthdayToday(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeAddress(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	// Turns 19 today: age is 19, fails the strict < 19 check.
	birthday := time.Date(2007, time.August, 31, 0, 0, 0, 0, time.UTC)
	profile := models.UserProfile{UserID: user.ID, FirstName: "Orpheus", Birthday: &birthday}
	require.NoError(t, db.Create(&profile).Error)

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"age"}, errorFields(result))
}

func TestValidateCodeURLOrRepoPath(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeProfile(t, db, user.ID)
	completeAddress(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	// Either the raw URL or the verified repo path satisfies the check.
	project.CodeURL = ""
	project.GithubRepoPath = "acme/game"
	require.NoError(t, db.Save(project).Error)

	result, err := svc.Validate(project, user)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	project.GithubRepoPath = ""
	require.NoError(t, db.Save(project).Error)

	result, err = svc.Validate(project, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"code_url"}, errorFields(result))
}

func TestSubmitInvalidLeavesProjectUnshipped(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	returned, validation, err := svc.Submit(project, user)
	require.NoError(t, err)
	assert.False(t, validation.Valid)
	assert.False(t, returned.Shipped)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.False(t, stored.Shipped)
}

func TestSubmitValidShipsProject(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestSubmissionService(db)
	user := createTestUser(t, db, "a@example.com")
	completeProfile(t, db, user.ID)
	completeAddress(t, db, user.ID)
	project := completeProject(t, db, user.ID)

	returned, validation, err := svc.Submit(project, user)
	require.NoError(t, err)
	assert.True(t, validation.Valid)
	assert.True(t, returned.Shipped)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.True(t, stored.Shipped)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "a@example.com")

	birthday := time.Date(2009, time.May, 4, 0, 0, 0, 0, time.UTC)
	profile, err := svc.UpsertProfile(user.ID, ProfileInput{
		FirstName: "Orpheus",
		Birthday:  &birthday,
	})
	require.NoError(t, err)
	assert.Equal(t, "Orpheus", profile.FirstName)

	// Upsert replaces the row, it does not create a second one.
	profile, err = svc.UpsertProfile(user.ID, ProfileInput{FirstName: "Heidi"})
	require.NoError(t, err)
	assert.Equal(t, "Heidi", profile.FirstName)
	assert.Nil(t, profile.Birthday)

	stored, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heidi", stored.FirstName)
}

func TestUpsertPrimaryAddressReplacesInPlace(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "a@example.com")

	first, err := svc.UpsertPrimaryAddress(user.ID, AddressInput{
		AddressLine1: "15 Falls Road",
		City:         "Shelburne",
		Country:      "USA",
		PostCode:     "05482",
	})
	require.NoError(t, err)

	second, err := svc.UpsertPrimaryAddress(user.ID, AddressInput{
		AddressLine1: "1 New Street",
		City:         "Burlington",
		Country:      "USA",
		PostCode:     "05401",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := svc.GetPrimaryAddress(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 New Street", stored.AddressLine1)
}

func TestGetProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "a@example.com")

	_, err := svc.GetProfile(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetPrimaryAddress(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

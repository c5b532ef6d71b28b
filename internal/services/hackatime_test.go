package services

import (
	"testing"

	"github.com/hackclub/buildboard-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProjectLinksComputesHours(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 3600)
	createTestHackatimeProject(t, db, user.ID, "levels", 1800)

	updated, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine", "levels"})
	require.NoError(t, err)

	require.NotNil(t, updated.HackatimeHours)
	assert.Equal(t, 1.5, *updated.HackatimeHours)
	assert.Equal(t, []string{"engine", "levels"}, []string(updated.HackatimeProjects))
}

func TestSetProjectLinksPreservesOrderAndDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 3600)

	// A duplicated name is stored twice and its seconds count twice.
	updated, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine", "engine"})
	require.NoError(t, err)

	assert.Equal(t, []string{"engine", "engine"}, []string(updated.HackatimeProjects))
	require.NotNil(t, updated.HackatimeHours)
	assert.Equal(t, 2.0, *updated.HackatimeHours)
}

func TestSetProjectLinksIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 5400)

	first, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine"})
	require.NoError(t, err)
	second, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine"})
	require.NoError(t, err)

	assert.Equal(t, *first.HackatimeHours, *second.HackatimeHours)
	assert.Equal(t, 1.5, *second.HackatimeHours)
}

func TestSetProjectLinksConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	projectX := createTestProject(t, db, user.ID, "x")
	projectY := createTestProject(t, db, user.ID, "y")

	createTestHackatimeProject(t, db, user.ID, "game-jam", 3600)

	_, err := svc.SetProjectLinks(projectX.ID, user.ID, []string{"game-jam"})
	require.NoError(t, err)

	_, err = svc.SetProjectLinks(projectY.ID, user.ID, []string{"game-jam"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"game-jam"}, conflict.Names)

	// X's link set is unchanged by the failed call.
	var x models.Project
	require.NoError(t, db.First(&x, "id = ?", projectX.ID).Error)
	assert.Equal(t, []string{"game-jam"}, []string(x.HackatimeProjects))

	var y models.Project
	require.NoError(t, db.First(&y, "id = ?", projectY.ID).Error)
	assert.Empty(t, []string(y.HackatimeProjects))
	assert.Nil(t, y.HackatimeHours)
}

func TestSetProjectLinksReportsAllConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	projectX := createTestProject(t, db, user.ID, "x")
	projectY := createTestProject(t, db, user.ID, "y")

	createTestHackatimeProject(t, db, user.ID, "one", 10)
	createTestHackatimeProject(t, db, user.ID, "two", 20)

	_, err := svc.SetProjectLinks(projectX.ID, user.ID, []string{"one", "two"})
	require.NoError(t, err)

	_, err = svc.SetProjectLinks(projectY.ID, user.ID, []string{"one", "two"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"one", "two"}, conflict.Names)
}

func TestSetProjectLinksMissingNames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 3600)

	_, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine", "ghost", "phantom"})
	var invalid *InvalidReferenceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"ghost", "phantom"}, invalid.Names)
}

func TestSetProjectLinksConflictCheckedBeforeExistence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	projectX := createTestProject(t, db, user.ID, "x")
	projectY := createTestProject(t, db, user.ID, "y")

	createTestHackatimeProject(t, db, user.ID, "taken", 100)
	_, err := svc.SetProjectLinks(projectX.ID, user.ID, []string{"taken"})
	require.NoError(t, err)

	// One conflicting name plus one nonexistent name: the conflict wins.
	_, err = svc.SetProjectLinks(projectY.ID, user.ID, []string{"taken", "ghost"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"taken"}, conflict.Names)
}

func TestSetProjectLinksEmptyClears(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 3600)
	_, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine"})
	require.NoError(t, err)

	updated, err := svc.SetProjectLinks(project.ID, user.ID, nil)
	require.NoError(t, err)

	assert.Empty(t, []string(updated.HackatimeProjects))
	assert.Nil(t, updated.HackatimeHours)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Nil(t, stored.HackatimeHours)
}

func TestSetProjectLinksOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")
	project := createTestProject(t, db, owner.ID, "game")

	_, err := svc.SetProjectLinks(project.ID, intruder.ID, []string{"anything"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetProjectLinksNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")

	_, err := svc.SetProjectLinks("no-such-project", user.ID, []string{"engine"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlinkedProjects(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 3600)
	createTestHackatimeProject(t, db, user.ID, "levels", 1800)
	createTestHackatimeProject(t, db, user.ID, "sound", 900)

	_, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine"})
	require.NoError(t, err)

	unlinked, err := svc.UnlinkedProjects(user.ID)
	require.NoError(t, err)

	names := make([]string, 0, len(unlinked))
	for _, hp := range unlinked {
		names = append(names, hp.Name)
	}
	assert.Equal(t, []string{"levels", "sound"}, names)
}

func TestLinkedProjects(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	other := createTestUser(t, db, "b@example.com")
	project := createTestProject(t, db, user.ID, "game")

	createTestHackatimeProject(t, db, user.ID, "engine", 3600)
	_, err := svc.SetProjectLinks(project.ID, user.ID, []string{"engine"})
	require.NoError(t, err)

	linked, err := svc.LinkedProjects(user.ID, project.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "engine", linked[0].Name)

	// A non-owner gets an empty list, not an error.
	linked, err = svc.LinkedProjects(other.ID, project.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	linked, err = svc.LinkedProjects(user.ID, "no-such-project")
	require.NoError(t, err)
	assert.Empty(t, linked)
}

// The uniqueness invariant holds across the user's whole project set after
// any sequence of relinks.
func TestLinkUniquenessAcrossProjects(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHackatimeService(db)
	user := createTestUser(t, db, "a@example.com")
	projectX := createTestProject(t, db, user.ID, "x")
	projectY := createTestProject(t, db, user.ID, "y")

	createTestHackatimeProject(t, db, user.ID, "shared", 3600)

	_, err := svc.SetProjectLinks(projectX.ID, user.ID, []string{"shared"})
	require.NoError(t, err)

	// Unlink from X, then Y can take it.
	_, err = svc.SetProjectLinks(projectX.ID, user.ID, []string{})
	require.NoError(t, err)
	_, err = svc.SetProjectLinks(projectY.ID, user.ID, []string{"shared"})
	require.NoError(t, err)

	var projects []models.Project
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&projects).Error)

	seen := make(map[string]int)
	for _, p := range projects {
		for _, name := range p.HackatimeProjects {
			seen[name]++
		}
	}
	assert.Equal(t, 1, seen["shared"])
}

package hackatime

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hackclub/buildboard-backend/internal/models"
)

const statsBody = `{
	"data": {
		"status": "ok",
		"projects": [
			{"name": "buildboard", "total_seconds": 5400},
			{"name": "buildboard", "total_seconds": 600},
			{"name": "<<LAST_PROJECT>>", "total_seconds": 9999},
			{"name": "Other", "total_seconds": 1234},
			{"name": "", "total_seconds": 77},
			{"name": "side-quest", "total_seconds": 1800}
		]
	}
}`

func TestFetchProjectStats(t *testing.T) {
	var gotPath, gotBypass, gotStart string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBypass = r.Header.Get("Rack-Attack-Bypass")
		gotStart = r.URL.Query().Get("start_date")
		w.Write([]byte(statsBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "2025-06-16T00:00:00Z", "secret")
	stats, err := client.FetchProjectStats("U12345")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/users/U12345/stats", gotPath)
	assert.Equal(t, "secret", gotBypass)
	assert.Equal(t, "2025-06-16T00:00:00Z", gotStart)

	// Duplicates summed, placeholder names dropped.
	assert.Equal(t, map[string]int{"buildboard": 6000, "side-quest": 1800}, stats)
}

func TestFetchProjectStatsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "2025-06-16T00:00:00Z", "")
	_, err := client.FetchProjectStats("U12345")
	assert.Error(t, err)
}

func TestRefreshUserUpserts(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.HackatimeProject{}))

	body := statsBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	mgr := NewSyncManager(db, NewClient(srv.URL, "2025-06-16T00:00:00Z", ""), 0)

	catalog, err := mgr.RefreshUser("user-1", "U12345")
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "buildboard", catalog[0].Name)
	assert.Equal(t, 6000, catalog[0].Seconds)

	// A second refresh overwrites seconds instead of duplicating rows.
	body = `{"data": {"status": "ok", "projects": [{"name": "buildboard", "total_seconds": 7200}]}}`
	catalog, err = mgr.RefreshUser("user-1", "U12345")
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, 7200, catalog[0].Seconds)
}

package hackatime

import (
	"log"
	"time"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncManager periodically refreshes every user's hackatime project
// catalog from the stats API.
type SyncManager struct {
	db           *gorm.DB
	client       *Client
	pollInterval time.Duration
	stopCh       chan struct{}
}

func NewSyncManager(db *gorm.DB, client *Client, pollInterval time.Duration) *SyncManager {
	return &SyncManager{
		db:           db,
		client:       client,
		pollInterval: pollInterval,
		stopCh:       make(chan struct{}),
	}
}

func (m *SyncManager) Start() {
	go m.loop()
	log.Println("[HackatimeSync] started")
}

func (m *SyncManager) Stop() {
	close(m.stopCh)
	log.Println("[HackatimeSync] stopped")
}

func (m *SyncManager) loop() {
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.refreshAll()
		}
	}
}

func (m *SyncManager) refreshAll() {
	var users []models.User
	if err := m.db.Where("slack_id != ''").Find(&users).Error; err != nil {
		log.Printf("[HackatimeSync] list users: %v", err)
		return
	}

	for _, user := range users {
		if _, err := m.RefreshUser(user.ID, user.SlackID); err != nil {
			log.Printf("[HackatimeSync] refresh %s: %v", user.ID, err)
		}
	}
}

// RefreshUser pulls current stats for one user and upserts the catalog.
// Seconds are overwritten with the API's value, which only grows.
func (m *SyncManager) RefreshUser(userID, slackID string) ([]models.HackatimeProject, error) {
	stats, err := m.client.FetchProjectStats(slackID)
	if err != nil {
		return nil, err
	}

	for name, seconds := range stats {
		hp := models.HackatimeProject{UserID: userID, Name: name, Seconds: seconds}
		err := m.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"seconds", "updated_at"}),
		}).Create(&hp).Error
		if err != nil {
			return nil, err
		}
	}

	var all []models.HackatimeProject
	if err := m.db.Where("user_id = ?", userID).Order("name ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

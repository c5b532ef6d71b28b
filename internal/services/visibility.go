package services

import (
	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
)

// Visibility levels form a total order: each level requires every
// condition of the level below it plus one more.
const (
	VisibilityHidden    = 1
	VisibilityLocal     = 2
	VisibilityCommunity = 3
	VisibilityFeatured  = 4
	VisibilityBillboard = 5
)

const HoursThreshold = 30.0

var visibilityLevelNames = map[int]string{
	VisibilityHidden:    "Hidden",
	VisibilityLocal:     "Local",
	VisibilityCommunity: "Community",
	VisibilityFeatured:  "Featured",
	VisibilityBillboard: "Billboard",
}

type VisibilityMilestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Level       int    `json:"level"`
}

type VisibilityStatus struct {
	CurrentLevel       int                   `json:"current_level"`
	CurrentLevelName   string                `json:"current_level_name"`
	NextLevel          *int                  `json:"next_level"`
	NextLevelName      *string               `json:"next_level_name"`
	ProgressPercentage int                   `json:"progress_percentage"`
	Milestones         []VisibilityMilestone `json:"milestones"`
	TotalCompleted     int                   `json:"total_completed"`
	TotalMilestones    int                   `json:"total_milestones"`
}

type visibilityState struct {
	hasGithub      bool
	hasHackatime   bool
	isShipped      bool
	isApproved     bool
	hackatimeHours float64
	hasEnoughHours bool
}

func (s visibilityState) connected() bool {
	return s.hasGithub && s.hasHackatime
}

type VisibilityService struct {
	db *gorm.DB
}

func NewVisibilityService(db *gorm.DB) *VisibilityService {
	return &VisibilityService{db: db}
}

// Calculate derives the project's visibility status fresh from its
// current facts. Nothing is stored; the tier has no transition history.
func (s *VisibilityService) Calculate(project *models.Project) (*VisibilityStatus, error) {
	var approvedCount int64
	err := s.db.Model(&models.Review{}).
		Where("project_id = ? AND decision = ?", project.ID, models.ReviewDecisionApproved).
		Count(&approvedCount).Error
	if err != nil {
		return nil, err
	}

	state := collectVisibilityState(project, approvedCount > 0)
	milestones := visibilityMilestones(state)
	level := determineLevel(state)

	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}

	status := &VisibilityStatus{
		CurrentLevel:       level,
		CurrentLevelName:   visibilityLevelNames[level],
		ProgressPercentage: calculateProgress(milestones, state),
		Milestones:         milestones,
		TotalCompleted:     completed,
		TotalMilestones:    len(milestones),
	}

	if level < VisibilityBillboard {
		next := level + 1
		nextName := visibilityLevelNames[next]
		status.NextLevel = &next
		status.NextLevelName = &nextName
	}
	return status, nil
}

func collectVisibilityState(project *models.Project, approved bool) visibilityState {
	hours := 0.0
	if project.HackatimeHours != nil {
		hours = *project.HackatimeHours
	}
	return visibilityState{
		hasGithub:      project.CodeURL != "" || project.GithubRepoPath != "",
		hasHackatime:   len(project.HackatimeProjects) > 0,
		isShipped:      project.Shipped,
		isApproved:     approved,
		hackatimeHours: hours,
		hasEnoughHours: hours >= HoursThreshold,
	}
}

// determineLevel tests from Billboard downward and returns the first tier
// whose full condition chain holds.
func determineLevel(state visibilityState) int {
	connected := state.connected()

	switch {
	case connected && state.isShipped && state.isApproved && state.hasEnoughHours:
		return VisibilityBillboard
	case connected && state.isShipped && state.isApproved:
		return VisibilityFeatured
	case connected && state.isShipped:
		return VisibilityCommunity
	case connected:
		return VisibilityLocal
	default:
		return VisibilityHidden
	}
}

func visibilityMilestones(state visibilityState) []VisibilityMilestone {
	return []VisibilityMilestone{
		{
			ID:          "github",
			Name:        "Link GitHub",
			Description: "Connect your GitHub repository",
			Completed:   state.hasGithub,
			Level:       VisibilityLocal,
		},
		{
			ID:          "hackatime",
			Name:        "Link Hackatime",
			Description: "Connect your Hackatime project to track hours",
			Completed:   state.hasHackatime,
			Level:       VisibilityLocal,
		},
		{
			ID:          "shipped",
			Name:        "Ship It",
			Description: "Mark your project as shipped",
			Completed:   state.isShipped,
			Level:       VisibilityCommunity,
		},
		{
			ID:          "approved",
			Name:        "Get Approved",
			Description: "Submit for admin review and get approved",
			Completed:   state.isApproved,
			Level:       VisibilityFeatured,
		},
		{
			ID:          "hours",
			Name:        "Log 30+ Hours",
			Description: "Track at least 30 hours in Hackatime",
			Completed:   state.hasEnoughHours,
			Level:       VisibilityBillboard,
		},
	}
}

// calculateProgress splits 100 evenly across the milestones. The hours
// milestone earns a fractional share of hours/30 so partial progress shows
// below the threshold; every other milestone is all or nothing. Matched on
// milestone id, not level, since levels may share milestones.
func calculateProgress(milestones []VisibilityMilestone, state visibilityState) int {
	share := 100.0 / float64(len(milestones))
	progress := 0.0

	for _, m := range milestones {
		if m.ID == "hours" {
			fraction := state.hackatimeHours / HoursThreshold
			if fraction > 1.0 {
				fraction = 1.0
			}
			progress += share * fraction
		} else if m.Completed {
			progress += share
		}
	}
	return int(progress)
}

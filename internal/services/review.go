package services

import (
	"errors"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func validDecision(decision string) bool {
	switch decision {
	case models.ReviewDecisionApproved,
		models.ReviewDecisionRejected,
		models.ReviewDecisionFlagged,
		models.ReviewDecisionPending:
		return true
	}
	return false
}

func (s *ReviewService) Create(projectID, reviewerUserID, comments, decision string) (*models.Review, error) {
	if !validDecision(decision) {
		return nil, errors.New("decision must be one of approved, rejected, flagged, pending")
	}

	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := models.Review{
		ProjectID:      projectID,
		ReviewerUserID: reviewerUserID,
		Comments:       comments,
		Decision:       decision,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ListByProject(projectID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

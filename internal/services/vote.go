package services

import (
	"errors"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
)

type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

func (s *VoteService) Cast(projectID, voterUserID string) (*models.Vote, error) {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if project.UserID == voterUserID {
		return nil, errors.New("you cannot vote for your own project")
	}

	var existing models.Vote
	err := s.db.Where("project_id = ? AND voter_user_id = ?", projectID, voterUserID).
		First(&existing).Error
	if err == nil {
		return nil, errors.New("you have already voted for this project")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vote := models.Vote{ProjectID: projectID, VoterUserID: voterUserID}
	if err := s.db.Create(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *VoteService) CountByProject(projectID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

package services

import (
	"errors"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectCreateInput struct {
	Name           string   `json:"name" binding:"required,min=1,max=200"`
	Description    string   `json:"description" binding:"required,min=1"`
	AttachmentURLs []string `json:"attachment_urls"`
	CodeURL        string   `json:"code_url"`
	LiveURL        string   `json:"live_url"`
	GithubRepoPath string   `json:"github_repo_path"`
}

// ProjectPatchInput is a typed partial update: only non-nil fields are
// applied. Shipped and the hackatime link fields are deliberately absent;
// those move only through SubmissionService and HackatimeService.
type ProjectPatchInput struct {
	Name           *string   `json:"name" binding:"omitempty,max=200"`
	Description    *string   `json:"description"`
	AttachmentURLs *[]string `json:"attachment_urls"`
	CodeURL        *string   `json:"code_url"`
	LiveURL        *string   `json:"live_url"`
	GithubRepoPath *string   `json:"github_repo_path"`
}

func (s *ProjectService) Create(userID string, input ProjectCreateInput) (*models.Project, error) {
	project := models.Project{
		UserID:         userID,
		Name:           input.Name,
		Description:    input.Description,
		AttachmentURLs: datatypes.JSONSlice[string](input.AttachmentURLs),
		CodeURL:        input.CodeURL,
		LiveURL:        input.LiveURL,
		GithubRepoPath: input.GithubRepoPath,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) GetByID(projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) List(userID string, skip, limit int) ([]models.Project, error) {
	query := s.db.Order("created_at DESC").Offset(skip).Limit(limit)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Patch(projectID, userID string, input ProjectPatchInput) (*models.Project, error) {
	project, err := s.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrForbidden
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.AttachmentURLs != nil {
		project.AttachmentURLs = datatypes.JSONSlice[string](*input.AttachmentURLs)
	}
	if input.CodeURL != nil {
		project.CodeURL = *input.CodeURL
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.GithubRepoPath != nil {
		project.GithubRepoPath = *input.GithubRepoPath
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(projectID, userID string) error {
	project, err := s.GetByID(projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return ErrForbidden
	}
	return s.db.Delete(project).Error
}

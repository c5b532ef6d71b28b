package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
)

const AgeLimit = 19

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SubmissionValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// SubmissionService decides whether a project may be shipped. Validation
// failures are a normal structured result, never an error value; the only
// hard errors here come from the database.
type SubmissionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// NewSubmissionServiceWithClock pins the clock used for age checks.
func NewSubmissionServiceWithClock(db *gorm.DB, now func() time.Time) *SubmissionService {
	return &SubmissionService{db: db, now: now}
}

// Validate runs every submission requirement and collects all violations
// so the caller can show the user the complete list at once.
func (s *SubmissionService) Validate(project *models.Project, user *models.User) (*SubmissionValidationResult, error) {
	result := &SubmissionValidationResult{Errors: []ValidationError{}}

	var profile models.UserProfile
	profileErr := s.db.Where("user_id = ?", user.ID).First(&profile).Error
	if profileErr != nil && !errors.Is(profileErr, gorm.ErrRecordNotFound) {
		return nil, profileErr
	}

	if profileErr != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "profile",
			Message: "User profile is required. Please complete your profile.",
		})
	} else {
		if strings.TrimSpace(profile.FirstName) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "first_name",
				Message: "First name is required.",
			})
		}

		if profile.Birthday == nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "birthday",
				Message: "Birthday is required.",
			})
		} else if s.calculateAge(*profile.Birthday) >= AgeLimit {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "age",
				Message: fmt.Sprintf("You must be under %d years old to submit.", AgeLimit),
			})
		}
	}

	var address models.UserAddress
	addressErr := s.db.Where("user_id = ? AND is_primary = ?", user.ID, true).First(&address).Error
	if addressErr != nil && !errors.Is(addressErr, gorm.ErrRecordNotFound) {
		return nil, addressErr
	}

	if addressErr != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "address",
			Message: "A shipping address is required.",
		})
	} else {
		if strings.TrimSpace(address.AddressLine1) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "address_line_1",
				Message: "Address line 1 is required.",
			})
		}
		if strings.TrimSpace(address.City) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "city",
				Message: "City is required.",
			})
		}
		if strings.TrimSpace(address.Country) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "country",
				Message: "Country is required.",
			})
		}
		if strings.TrimSpace(address.PostCode) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "post_code",
				Message: "Post/ZIP code is required.",
			})
		}
	}

	if len(project.HackatimeProjects) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "hackatime_projects",
			Message: "At least one Hackatime project must be linked.",
		})
	}

	if project.CodeURL == "" && project.GithubRepoPath == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "code_url",
			Message: "A GitHub repository URL is required.",
		})
	}

	if project.LiveURL == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "live_url",
			Message: "A live/playable project URL is required.",
		})
	}

	if len(project.AttachmentURLs) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "screenshot",
			Message: "At least one screenshot is required.",
		})
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

// Submit validates and, only on a clean result, marks the project shipped.
// On a failed validation the project is returned unmodified.
func (s *SubmissionService) Submit(project *models.Project, user *models.User) (*models.Project, *SubmissionValidationResult, error) {
	validation, err := s.Validate(project, user)
	if err != nil {
		return nil, nil, err
	}
	if !validation.Valid {
		return project, validation, nil
	}

	if err := s.db.Model(project).Update("shipped", true).Error; err != nil {
		return nil, nil, err
	}
	project.Shipped = true
	return project, validation, nil
}

// calculateAge counts whole years, subtracting one when the birthday has
// not yet occurred this year.
func (s *SubmissionService) calculateAge(birthday time.Time) int {
	today := s.now()
	age := today.Year() - birthday.Year()
	if today.Month() < birthday.Month() ||
		(today.Month() == birthday.Month() && today.Day() < birthday.Day()) {
		age--
	}
	return age
}

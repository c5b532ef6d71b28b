package services

import (
	"errors"
	"math"

	"github.com/hackclub/buildboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HackatimeService struct {
	db *gorm.DB
}

func NewHackatimeService(db *gorm.DB) *HackatimeService {
	return &HackatimeService{db: db}
}

// withRowLock adds FOR UPDATE on postgres. SQLite has no row locks and
// serializes writing transactions on its own.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// SetProjectLinks replaces the full set of hackatime project names linked
// to one project and recomputes its aggregated hours. A hackatime project
// name can be linked to at most one of the user's projects at a time, so
// the whole read-then-write runs in one transaction with the user's
// project rows locked.
//
// An empty names list clears the link set and nulls the hours. Otherwise
// conflicts against the user's other projects are checked first, then
// catalog existence; both failures carry the complete offending name list.
// The names are stored as given: order preserved, duplicates passed
// through (and a duplicated name counts its seconds twice).
func (s *HackatimeService) SetProjectLinks(projectID, userID string, names []string) (*models.Project, error) {
	var updated *models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := withRowLock(tx).
			Where("id = ?", projectID).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if project.UserID != userID {
			return ErrForbidden
		}

		if len(names) == 0 {
			project.HackatimeProjects = []string{}
			project.HackatimeHours = nil
			if err := tx.Model(&project).Updates(map[string]interface{}{
				"hackatime_projects": project.HackatimeProjects,
				"hackatime_hours":    nil,
			}).Error; err != nil {
				return err
			}
			updated = &project
			return nil
		}

		var others []models.Project
		if err := withRowLock(tx).
			Where("user_id = ? AND id <> ?", userID, projectID).
			Find(&others).Error; err != nil {
			return err
		}

		linkedElsewhere := make(map[string]bool)
		for _, other := range others {
			for _, name := range other.HackatimeProjects {
				linkedElsewhere[name] = true
			}
		}

		var conflicts []string
		for _, name := range names {
			if linkedElsewhere[name] {
				conflicts = append(conflicts, name)
			}
		}
		if len(conflicts) > 0 {
			return &ConflictError{Names: conflicts}
		}

		var catalog []models.HackatimeProject
		if err := tx.Where("user_id = ? AND name IN ?", userID, []string(names)).
			Find(&catalog).Error; err != nil {
			return err
		}

		seconds := make(map[string]int, len(catalog))
		for _, hp := range catalog {
			seconds[hp.Name] = hp.Seconds
		}

		var missing []string
		for _, name := range names {
			if _, ok := seconds[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return &InvalidReferenceError{Names: missing}
		}

		totalSeconds := 0
		for _, name := range names {
			totalSeconds += seconds[name]
		}
		hours := math.Round(float64(totalSeconds)/3600.0*100) / 100

		project.HackatimeProjects = names
		project.HackatimeHours = &hours
		if err := tx.Model(&project).Updates(map[string]interface{}{
			"hackatime_projects": project.HackatimeProjects,
			"hackatime_hours":    hours,
		}).Error; err != nil {
			return err
		}

		updated = &project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UnlinkedProjects returns the user's hackatime projects not currently
// linked to any of their projects.
func (s *HackatimeService) UnlinkedProjects(userID string) ([]models.HackatimeProject, error) {
	var all []models.HackatimeProject
	if err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&all).Error; err != nil {
		return nil, err
	}

	var projects []models.Project
	if err := s.db.Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		return nil, err
	}

	linked := make(map[string]bool)
	for _, p := range projects {
		for _, name := range p.HackatimeProjects {
			linked[name] = true
		}
	}

	unlinked := make([]models.HackatimeProject, 0, len(all))
	for _, hp := range all {
		if !linked[hp.Name] {
			unlinked = append(unlinked, hp)
		}
	}
	return unlinked, nil
}

// LinkedProjects resolves a project's link list back to full hackatime
// records. A missing project or one owned by someone else yields an empty
// list rather than an error so callers cannot probe for existence.
func (s *HackatimeService) LinkedProjects(userID, projectID string) ([]models.HackatimeProject, error) {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.HackatimeProject{}, nil
		}
		return nil, err
	}
	if project.UserID != userID || len(project.HackatimeProjects) == 0 {
		return []models.HackatimeProject{}, nil
	}

	var linked []models.HackatimeProject
	if err := s.db.Where("user_id = ? AND name IN ?", userID, []string(project.HackatimeProjects)).
		Find(&linked).Error; err != nil {
		return nil, err
	}
	return linked, nil
}

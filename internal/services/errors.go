package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ConflictError reports every hackatime project name that is already
// linked to another of the user's projects, not just the first.
type ConflictError struct {
	Names []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"these hackatime projects are already linked to another project: %s",
		strings.Join(e.Names, ", "),
	)
}

// InvalidReferenceError reports every requested hackatime project name
// missing from the user's catalog.
type InvalidReferenceError struct {
	Names []string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf(
		"hackatime projects not found: %s. Please refresh your hackatime stats first",
		strings.Join(e.Names, ", "),
	)
}

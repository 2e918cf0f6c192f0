package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if !validCategory(p.Category) {
		return errors.New("unknown category: " + p.Category)
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate assigns the identifier and creation time. The ID is set
// exactly once and never reused, even after the post is deleted.
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// TogglePublish flips the publish flag and reports the new state.
func (p *Post) TogglePublish() bool {
	p.IsPublished = !p.IsPublished
	return p.IsPublished
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate assigns the identifier and creation time, and forces the
// comment into the pending state. A visitor submission can never arrive
// pre-approved.
func (c *Comment) BeforeCreate() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.IsApproved = false
}

// ToggleApprove flips the moderation flag and reports the new state.
func (c *Comment) ToggleApprove() bool {
	c.IsApproved = !c.IsApproved
	return c.IsApproved
}

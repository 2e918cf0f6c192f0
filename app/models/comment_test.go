package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validComment() *Comment {
	return &Comment{
		ID:        "c-1",
		BlogID:    "p-1",
		Name:      "Ana",
		Content:   "Nice post",
		CreatedAt: time.Now(),
	}
}

func TestCommentValidate(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		assert.NoError(t, validComment().Validate())
	})

	t.Run("missing blog reference", func(t *testing.T) {
		c := validComment()
		c.BlogID = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		c := validComment()
		c.Name = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		c := validComment()
		c.Content = ""
		assert.Error(t, c.Validate())
	})

	t.Run("content too long", func(t *testing.T) {
		c := validComment()
		c.Content = strings.Repeat("a", 1001)
		assert.Error(t, c.Validate())
	})
}

func TestCommentBeforeCreate(t *testing.T) {
	t.Run("assigns id and timestamp", func(t *testing.T) {
		c := &Comment{BlogID: "p-1", Name: "Ana", Content: "Nice post"}
		c.BeforeCreate()
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("forces pending state even when input claims approval", func(t *testing.T) {
		c := &Comment{BlogID: "p-1", Name: "Ana", Content: "Nice post", IsApproved: true}
		c.BeforeCreate()
		assert.False(t, c.IsApproved)
	})
}

func TestCommentToggleApprove(t *testing.T) {
	c := validComment()

	assert.True(t, c.ToggleApprove())
	assert.True(t, c.IsApproved)

	assert.False(t, c.ToggleApprove())
	assert.False(t, c.IsApproved)
}

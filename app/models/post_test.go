package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	return &Post{
		ID:          "p-1",
		Title:       "Scaling a startup",
		SubTitle:    "Lessons from year one",
		Description: "<p>Some rich content</p>",
		Category:    "Startup",
		Image:       "/assets/abc123",
		CreatedAt:   time.Now(),
	}
}

func TestPostValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		assert.NoError(t, validPost().Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		p := validPost()
		p.Title = ""
		assert.Error(t, p.Validate())
	})

	t.Run("missing subtitle", func(t *testing.T) {
		p := validPost()
		p.SubTitle = ""
		assert.Error(t, p.Validate())
	})

	t.Run("missing image", func(t *testing.T) {
		p := validPost()
		p.Image = ""
		assert.Error(t, p.Validate())
	})

	t.Run("unknown category", func(t *testing.T) {
		p := validPost()
		p.Category = "Gardening"
		assert.Error(t, p.Validate())
	})

	t.Run("zero created_at", func(t *testing.T) {
		p := validPost()
		p.CreatedAt = time.Time{}
		assert.Error(t, p.Validate())
	})
}

func TestPostBeforeCreate(t *testing.T) {
	t.Run("assigns id and timestamp once", func(t *testing.T) {
		p := &Post{Title: "T", SubTitle: "S", Category: "Startup", Image: "/assets/x"}
		p.BeforeCreate()
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())

		id, created := p.ID, p.CreatedAt
		p.BeforeCreate()
		assert.Equal(t, id, p.ID)
		assert.Equal(t, created, p.CreatedAt)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := &Post{}
		b := &Post{}
		a.BeforeCreate()
		b.BeforeCreate()
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("publish flag defaults to false", func(t *testing.T) {
		p := &Post{}
		p.BeforeCreate()
		assert.False(t, p.IsPublished)
	})

	t.Run("explicit publish flag survives creation", func(t *testing.T) {
		p := &Post{IsPublished: true}
		p.BeforeCreate()
		assert.True(t, p.IsPublished)
	})
}

func TestPostTogglePublish(t *testing.T) {
	p := validPost()

	assert.True(t, p.TogglePublish())
	assert.True(t, p.IsPublished)

	// Toggling twice restores the original state.
	assert.False(t, p.TogglePublish())
	assert.False(t, p.IsPublished)
}

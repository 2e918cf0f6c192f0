package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for all model types.
var validate = validator.New()

// Categories a post may belong to. "All" is a client-side filter value,
// never stored.
var Categories = []string{"Startup", "Technology", "Lifestyle", "Finance"}

// Post represents a blog article with publish state.
type Post struct {
	ID          string    `json:"_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	SubTitle    string    `json:"subTitle" validate:"required,min=1,max=300"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	Image       string    `json:"image" validate:"required"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
}

// Comment represents a visitor-submitted reply to a post with moderation
// state. BlogID is a weak reference: it must name an existing post at
// creation time only.
type Comment struct {
	ID         string    `json:"_id" validate:"required"`
	BlogID     string    `json:"blog" validate:"required"`
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	Content    string    `json:"content" validate:"required,min=1,max=1000"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
}

// Asset is an uploaded image blob, keyed by the digest of its content.
type Asset struct {
	ID          string `json:"id"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

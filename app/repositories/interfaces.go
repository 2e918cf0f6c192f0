package repositories

import "quillpress/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	ListByPost(blogID string) ([]*models.Comment, error)
	List() ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id string) error
}

// AssetRepository defines the interface for stored image blobs
type AssetRepository interface {
	Put(asset *models.Asset) error
	Get(id string) (*models.Asset, error)
	Delete(id string) error
}

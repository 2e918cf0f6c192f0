package services

import (
	"fmt"
	"sort"

	"quillpress/app/models"
	"quillpress/app/repositories"
)

// PostService owns the publish state machine and the visibility rules
// derived from it.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new post with validation. The post starts as a
// draft unless the caller explicitly set IsPublished.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := validatePost(post); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	post.BeforeCreate()

	// Full model validation, including category membership, runs after
	// BeforeCreate so the generated ID and timestamp are in place.
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.postRepo.Create(post)
}

// GetPublishedPost retrieves a post through the public visibility rule:
// a draft is indistinguishable from a missing post.
func (s *PostService) GetPublishedPost(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, ErrNotFound
	}
	return post, nil
}

// GetPost retrieves a post by ID regardless of publish state.
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPublished retrieves all published posts, newest first.
func (s *PostService) ListPublished() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	published := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if post.IsPublished {
			published = append(published, post)
		}
	}
	sortPosts(published)
	return published, nil
}

// ListAll retrieves every post regardless of publish state, newest first.
func (s *PostService) ListAll() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}
	sortPosts(posts)
	return posts, nil
}

// TogglePublish flips the publish flag and returns the updated post.
// Toggling twice restores the original state.
func (s *PostService) TogglePublish(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.TogglePublish()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and all its comments. The delete is
// unconditional and irreversible.
func (s *PostService) DeletePost(id string) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return fmt.Errorf("failed to list comments: %v", err)
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %s: %v", comment.ID, err)
		}
	}

	return s.postRepo.Delete(id)
}

// sortPosts orders posts newest first, ties broken by ID for a stable
// listing.
func sortPosts(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID < posts[j].ID
	})
}

// validatePost validates a post's required fields
func validatePost(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if post.SubTitle == "" {
		return fmt.Errorf("subtitle is required")
	}
	if post.Category == "" {
		return fmt.Errorf("category is required")
	}
	if post.Image == "" {
		return fmt.Errorf("image is required")
	}
	return nil
}

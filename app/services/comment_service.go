package services

import (
	"errors"
	"fmt"
	"sort"

	"quillpress/app/models"
	"quillpress/app/repositories"
)

// CommentService owns the moderation state machine for comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a new comment against an existing post. The
// comment always starts pending; whatever approval flag the caller sent
// is discarded.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := validateComment(comment); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// A comment against an unknown post is a bad request, not a miss.
	if _, err := s.postRepo.GetByID(comment.BlogID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: blog %s does not exist", ErrValidation, comment.BlogID)
		}
		return err
	}

	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.commentRepo.Create(comment)
}

// ListApprovedForPost retrieves the approved comments for a post, newest
// first. Pending comments never appear on the public surface.
func (s *CommentService) ListApprovedForPost(blogID string) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(blogID)
	if err != nil {
		return nil, err
	}

	approved := make([]*models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.IsApproved {
			approved = append(approved, comment)
		}
	}
	sortComments(approved)
	return approved, nil
}

// ListAll retrieves every comment across all posts, newest first. This
// drives the admin dashboard's pending/approved tabs.
func (s *CommentService) ListAll() ([]*models.Comment, error) {
	comments, err := s.commentRepo.List()
	if err != nil {
		return nil, err
	}
	sortComments(comments)
	return comments, nil
}

// ToggleApprove flips the moderation flag and returns the updated
// comment. Toggling twice restores the original state.
func (s *CommentService) ToggleApprove(id string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comment.ToggleApprove()

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// sortComments orders comments newest first, ties broken by ID.
func sortComments(comments []*models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
}

// validateComment validates a comment's required fields
func validateComment(comment *models.Comment) error {
	if comment.BlogID == "" {
		return fmt.Errorf("blog reference is required")
	}
	if comment.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(comment.Name) > 100 {
		return fmt.Errorf("name is too long (maximum 100 characters)")
	}
	if comment.Content == "" {
		return fmt.Errorf("content is required")
	}
	if len(comment.Content) > 1000 {
		return fmt.Errorf("content is too long (maximum 1000 characters)")
	}
	return nil
}

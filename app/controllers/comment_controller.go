package controllers

import (
	"fmt"
	"net/http"

	"quillpress/app/models"
	"quillpress/app/services"
)

// CommentController handles HTTP requests for comments.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// ListForPost handles POST /api/add/comment with body {blogId}. Only
// approved comments are returned; moderation would be pointless if
// pending comments already showed publicly.
func (cc *CommentController) ListForPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BlogID string `json:"blogId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err))
		return
	}

	comments, err := cc.commentService.ListApprovedForPost(req.BlogID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, envelope{"comments": comments})
}

// Create handles POST /api/add/add-comment with body {blog, name,
// content}. No auth: any visitor may comment, but the comment always
// lands in the pending state.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Blog    string `json:"blog"`
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err))
		return
	}

	comment := models.Comment{
		BlogID:  req.Blog,
		Name:    req.Name,
		Content: req.Content,
	}
	if err := cc.commentService.CreateComment(&comment); err != nil {
		sendError(w, err)
		return
	}

	sendSuccess(w, envelope{"message": "Comment submitted for review"})
}

// ListAll handles GET /api/admin/comment, returning every comment across
// all posts for the pending/approved dashboard tabs.
func (cc *CommentController) ListAll(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListAll()
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, envelope{"comments": comments})
}

// ToggleApprove handles POST /api/admin/toggle-approve with body {id}.
func (cc *CommentController) ToggleApprove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err))
		return
	}

	if _, err := cc.commentService.ToggleApprove(req.ID); err != nil {
		sendError(w, err)
		return
	}

	sendSuccess(w, envelope{"message": "Comment status updated"})
}

package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"quillpress/app/models"
	"quillpress/app/repositories"
	"quillpress/app/services"

	"github.com/gorilla/mux"
)

// maxUploadSize bounds the multipart create-post request body.
const maxUploadSize = 10 << 20

// BlogController handles HTTP requests for posts.
type BlogController struct {
	postService *services.PostService
	assetRepo   repositories.AssetRepository
}

// NewBlogController creates a new BlogController
func NewBlogController(postService *services.PostService, assetRepo repositories.AssetRepository) *BlogController {
	return &BlogController{
		postService: postService,
		assetRepo:   assetRepo,
	}
}

// Create handles POST /api/add/blogs. The request is a multipart form
// carrying the post fields and the cover image file.
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		sendError(w, fmt.Errorf("%w: invalid multipart form: %v", services.ErrValidation, err))
		return
	}

	post := models.Post{
		Title:       r.FormValue("title"),
		SubTitle:    r.FormValue("subTitle"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}
	// The create form exposes the publish toggle directly, so a post may
	// be born published.
	if v, err := strconv.ParseBool(r.FormValue("isPublished")); err == nil {
		post.IsPublished = v
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		sendError(w, fmt.Errorf("%w: image is required", services.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		sendError(w, fmt.Errorf("%w: image is empty", services.ErrValidation))
		return
	}

	// Reference the blob by its content address, but store it only once
	// the post itself is accepted, so a rejected create leaves no
	// orphaned asset behind.
	assetID := repositories.AssetID(data)
	post.Image = "/assets/" + assetID

	if err := bc.postService.CreatePost(&post); err != nil {
		sendError(w, err)
		return
	}

	asset := &models.Asset{
		ID:          assetID,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	if err := bc.assetRepo.Put(asset); err != nil {
		// A post pointing at a missing blob is worse than no post.
		bc.postService.DeletePost(post.ID)
		sendError(w, err)
		return
	}

	sendSuccess(w, envelope{
		"message": "Blog added",
		"id":      post.ID,
	})
}

// ListPublished handles GET /api/add/blogs, the public listing. Drafts
// never appear here.
func (bc *BlogController) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.postService.ListPublished()
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, envelope{"blogs": posts})
}

// Show handles GET /api/add/blog/{id}. Public detail follows the same
// visibility rule as the public listing: a draft reads as not found.
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	post, err := bc.postService.GetPublishedPost(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, envelope{"blog": post})
}

// ListAll handles GET /api/admin/blogs, bypassing the publish filter.
func (bc *BlogController) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.postService.ListAll()
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, envelope{"blogs": posts})
}

// Delete handles POST /api/add/delete with body {id}. The delete cascades
// to the post's comments.
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err))
		return
	}

	if err := bc.postService.DeletePost(req.ID); err != nil {
		sendError(w, err)
		return
	}

	sendSuccess(w, envelope{"message": "Blog deleted successfully"})
}

// TogglePublish handles POST /api/add/toggle-publish with body {id}.
func (bc *BlogController) TogglePublish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err))
		return
	}

	if _, err := bc.postService.TogglePublish(req.ID); err != nil {
		sendError(w, err)
		return
	}

	sendSuccess(w, envelope{"message": "Blog status updated"})
}

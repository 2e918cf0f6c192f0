package controllers

import (
	"fmt"
	"net/http"

	"quillpress/app/clipdrop"
	"quillpress/app/services"
)

// ImageController is the generation proxy: it forwards a prompt to the
// text-to-image provider and relays the result inline.
type ImageController struct {
	generator *clipdrop.Client
}

// NewImageController creates a new ImageController
func NewImageController(generator *clipdrop.Client) *ImageController {
	return &ImageController{generator: generator}
}

// Generate handles POST /api/image/generate-image with body {prompt}.
func (ic *ImageController) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err))
		return
	}

	imageURL, err := ic.generator.GenerateImage(req.Prompt)
	if err != nil {
		sendError(w, err)
		return
	}

	sendSuccess(w, envelope{"imageUrl": imageURL})
}

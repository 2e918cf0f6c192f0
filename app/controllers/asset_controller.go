package controllers

import (
	"net/http"

	"quillpress/app/repositories"

	"github.com/gorilla/mux"
)

// AssetController serves stored image blobs.
type AssetController struct {
	assetRepo repositories.AssetRepository
}

// NewAssetController creates a new AssetController
func NewAssetController(assetRepo repositories.AssetRepository) *AssetController {
	return &AssetController{assetRepo: assetRepo}
}

// Show handles GET /assets/{id}.
func (ac *AssetController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	asset, err := ac.assetRepo.Get(id)
	if err != nil {
		sendError(w, err)
		return
	}

	contentType := asset.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(asset.Data)
	}
	w.Header().Set("Content-Type", contentType)
	// Content-addressed IDs never change, so the blob can be cached hard.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(asset.Data)
}

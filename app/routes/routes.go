package routes

import (
	"net/http"

	"quillpress/app/clipdrop"
	"quillpress/app/config"
	"quillpress/app/controllers"
	"quillpress/app/middleware"
	"quillpress/app/repositories"
	"quillpress/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes builds the full router over the given Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	return SetupRoutesWithGenerator(db, cfg, clipdrop.NewClient(cfg.ClipdropAPIKey))
}

// SetupRoutesWithGenerator is SetupRoutes with an injectable image
// generator, used by tests to point at a fake provider.
func SetupRoutesWithGenerator(db *badger.DB, cfg *config.Config, generator *clipdrop.Client) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	assetRepo := repositories.NewBadgerAssetRepository(db)

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	blogController := controllers.NewBlogController(postService, assetRepo)
	commentController := controllers.NewCommentController(commentService)
	imageController := controllers.NewImageController(generator)
	assetController := controllers.NewAssetController(assetRepo)

	admin := middleware.AdminGate(cfg.AdminSecret)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS)

	// mux runs Use middleware only on matched routes, so browser
	// preflights (OPTIONS against POST/GET routes) and unknown paths
	// would otherwise miss the CORS headers entirely.
	router.MethodNotAllowedHandler = middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	router.NotFoundHandler = middleware.CORS(http.NotFoundHandler())

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Backend is running."))
	}).Methods("GET")

	// Stored images
	router.HandleFunc("/assets/{id}", assetController.Show).Methods("GET")

	// Content endpoints. The /api/add prefix mixes public and admin
	// operations, so the gate wraps individual handlers.
	add := router.PathPrefix("/api/add").Subrouter()
	add.HandleFunc("/blogs", blogController.ListPublished).Methods("GET")
	add.HandleFunc("/blogs", admin(blogController.Create)).Methods("POST")
	add.HandleFunc("/blog/{id}", blogController.Show).Methods("GET")
	add.HandleFunc("/comment", commentController.ListForPost).Methods("POST")
	add.HandleFunc("/add-comment", commentController.Create).Methods("POST")
	add.HandleFunc("/delete", admin(blogController.Delete)).Methods("POST")
	add.HandleFunc("/toggle-publish", admin(blogController.TogglePublish)).Methods("POST")

	// Admin dashboard endpoints
	adminRoutes := router.PathPrefix("/api/admin").Subrouter()
	adminRoutes.HandleFunc("/blogs", admin(blogController.ListAll)).Methods("GET")
	adminRoutes.HandleFunc("/comment", admin(commentController.ListAll)).Methods("GET")
	adminRoutes.HandleFunc("/toggle-approve", admin(commentController.ToggleApprove)).Methods("POST")

	// Generation proxy
	router.HandleFunc("/api/image/generate-image", admin(imageController.Generate)).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}

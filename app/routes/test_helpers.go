package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"quillpress/app/clipdrop"
	"quillpress/app/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "test-secret"

// fakePNG stands in for provider image bytes in tests.
var fakePNG = []byte("\x89PNG\r\n\x1a\nfake image bytes")

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestRouter builds the full router over an in-memory DB with the
// image generator pointed at a local fake provider. Prompts containing
// "fail" make the fake provider error.
func setupTestRouter(t *testing.T, db *badger.DB) *mux.Router {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		if r.FormValue("prompt") == "fail" {
			http.Error(w, "provider exploded", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(fakePNG)
	}))
	t.Cleanup(provider.Close)

	cfg := &config.Config{
		Addr:           ":0",
		AdminSecret:    testAdminSecret,
		ClipdropAPIKey: "test-key",
	}
	generator := clipdrop.NewClientWithURL(cfg.ClipdropAPIKey, provider.URL)
	return SetupRoutesWithGenerator(db, cfg, generator)
}

// doJSON performs a JSON request against the router and decodes the
// envelope. token may be empty for public requests.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

type blogFields struct {
	Title       string
	SubTitle    string
	Description string
	Category    string
	IsPublished string
	Image       []byte
}

// createBlog posts a multipart create request and returns the recorder
// and decoded envelope.
func createBlog(t *testing.T, router *mux.Router, token string, fields blogFields) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	writeField := func(name, value string) {
		if value != "" {
			require.NoError(t, form.WriteField(name, value))
		}
	}
	writeField("title", fields.Title)
	writeField("subTitle", fields.SubTitle)
	writeField("description", fields.Description)
	writeField("category", fields.Category)
	writeField("isPublished", fields.IsPublished)

	if fields.Image != nil {
		part, err := form.CreateFormFile("image", "cover.png")
		require.NoError(t, err)
		_, err = part.Write(fields.Image)
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/add/blogs", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

// mustCreateBlog creates a blog and returns its assigned ID.
func mustCreateBlog(t *testing.T, router *mux.Router, fields blogFields) string {
	w, envelope := createBlog(t, router, testAdminSecret, fields)
	require.Equal(t, http.StatusOK, w.Code, "create blog failed: %s", w.Body.String())
	id, ok := envelope["id"].(string)
	require.True(t, ok, "create response missing id")
	return id
}

func defaultBlogFields(title string) blogFields {
	return blogFields{
		Title:       title,
		SubTitle:    "A subtitle",
		Description: "<p>Body</p>",
		Category:    "Startup",
		Image:       fakePNG,
	}
}

package repositories

import (
	"testing"
	"time"

	"quillpress/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(id, title string) *models.Post {
	return &models.Post{
		ID:        id,
		Title:     title,
		SubTitle:  "subtitle",
		Category:  "Technology",
		Image:     "/assets/img",
		CreatedAt: time.Now(),
	}
}

func TestBadgerPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	t.Run("create and get", func(t *testing.T) {
		post := newTestPost("p-1", "First")
		require.NoError(t, repo.Create(post))

		got, err := repo.GetByID("p-1")
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
		assert.Equal(t, "subtitle", got.SubTitle)
		assert.False(t, got.IsPublished)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		post := newTestPost("p-2", "Second")
		require.NoError(t, repo.Create(post))

		post.IsPublished = true
		require.NoError(t, repo.Update(post))

		got, err := repo.GetByID("p-2")
		require.NoError(t, err)
		assert.True(t, got.IsPublished)
	})

	t.Run("update missing", func(t *testing.T) {
		err := repo.Update(newTestPost("ghost", "Ghost"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		posts, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("p-1"))

		_, err := repo.GetByID("p-1")
		assert.ErrorIs(t, err, ErrNotFound)

		posts, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete("p-1"), ErrNotFound)
	})
}

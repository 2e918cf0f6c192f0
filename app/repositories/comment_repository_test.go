package repositories

import (
	"testing"
	"time"

	"quillpress/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComment(id, blogID, name string) *models.Comment {
	return &models.Comment{
		ID:        id,
		BlogID:    blogID,
		Name:      name,
		Content:   "some content",
		CreatedAt: time.Now(),
	}
}

func TestBadgerCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	t.Run("create and get", func(t *testing.T) {
		comment := newTestComment("c-1", "p-1", "Ana")
		require.NoError(t, repo.Create(comment))

		got, err := repo.GetByID("c-1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name)
		assert.Equal(t, "p-1", got.BlogID)
		assert.False(t, got.IsApproved)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by post filters on blog reference", func(t *testing.T) {
		require.NoError(t, repo.Create(newTestComment("c-2", "p-1", "Ben")))
		require.NoError(t, repo.Create(newTestComment("c-3", "p-2", "Cara")))

		comments, err := repo.ListByPost("p-1")
		require.NoError(t, err)
		assert.Len(t, comments, 2)

		comments, err = repo.ListByPost("p-2")
		require.NoError(t, err)
		assert.Len(t, comments, 1)

		comments, err = repo.ListByPost("p-none")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("list all", func(t *testing.T) {
		comments, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, comments, 3)
	})

	t.Run("update", func(t *testing.T) {
		comment, err := repo.GetByID("c-1")
		require.NoError(t, err)

		comment.IsApproved = true
		require.NoError(t, repo.Update(comment))

		got, err := repo.GetByID("c-1")
		require.NoError(t, err)
		assert.True(t, got.IsApproved)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("c-1"))
		_, err := repo.GetByID("c-1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete("c-1"), ErrNotFound)
	})
}

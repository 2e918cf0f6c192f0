package repositories

import (
	"quillpress/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create persists a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set([]byte(CommentKeyPrefix+comment.ID), data)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(CommentKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments referencing the given post
func (r *BadgerCommentRepository) ListByPost(blogID string) ([]*models.Comment, error) {
	comments, err := r.List()
	if err != nil {
		return nil, err
	}

	var filtered []*models.Comment
	for _, comment := range comments {
		if comment.BlogID == blogID {
			filtered = append(filtered, comment)
		}
	}
	return filtered, nil
}

// List retrieves every comment in the store
func (r *BadgerCommentRepository) List() ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates an existing comment
func (r *BadgerCommentRepository) Update(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(CommentKeyPrefix + comment.ID)

		// Verify comment exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete removes a comment by ID
func (r *BadgerCommentRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(CommentKeyPrefix + id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

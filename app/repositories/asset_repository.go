package repositories

import (
	"encoding/hex"

	"quillpress/app/models"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/sha3"
)

// BadgerAssetRepository stores uploaded image blobs in BadgerDB, keyed by
// the digest of their content. Re-uploading identical bytes yields the
// same asset ID.
type BadgerAssetRepository struct {
	db *badger.DB
}

// NewBadgerAssetRepository creates a new BadgerAssetRepository
func NewBadgerAssetRepository(db *badger.DB) *BadgerAssetRepository {
	return &BadgerAssetRepository{db: db}
}

// AssetID derives the content-addressed identifier for a blob.
func AssetID(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// Put stores an asset. If the asset has no ID it is derived from the data.
func (r *BadgerAssetRepository) Put(asset *models.Asset) error {
	if asset.ID == "" {
		asset.ID = AssetID(asset.Data)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(asset)
		if err != nil {
			return err
		}
		return txn.Set([]byte(AssetKeyPrefix+asset.ID), data)
	})
}

// Get retrieves an asset by ID
func (r *BadgerAssetRepository) Get(id string) (*models.Asset, error) {
	var asset models.Asset

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(AssetKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &asset)
		})
	})

	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// Delete removes an asset by ID
func (r *BadgerAssetRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(AssetKeyPrefix + id)

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

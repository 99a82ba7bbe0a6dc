// Package storage provides the on-device persistence for the catalog blob.
// One bbolt bucket, one fixed key, the whole catalog serialized as a JSON
// array. There is no schema versioning: anything unreadable is reported and
// the caller falls back to the seed list.
package storage

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/acai-real/storefront/internal/catalog"
)

var (
	bucketName = []byte("storefront")
	catalogKey = []byte("catalog")
)

// Bolt persists the catalog in a local bbolt file.
type Bolt struct {
	db *bolt.DB
}

// Open opens (or creates) the storage file at path.
func Open(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the underlying file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Load reads the catalog blob. A missing key yields (nil, nil); a blob that
// fails to parse is an error so the caller can fall back to the seed list.
func (b *Bolt) Load() ([]catalog.Item, error) {
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get(catalogKey)
		if v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var items []catalog.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse catalog blob: %w", err)
	}
	return items, nil
}

// Save overwrites the catalog blob wholesale.
func (b *Bolt) Save(items []catalog.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize catalog: %w", err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(catalogKey, raw)
	})
}

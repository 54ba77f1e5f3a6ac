package statements

import (
	"context"
	"sync"
	"time"

	"mini-reconcile/core/storage"
	"mini-reconcile/core/table"

	"golang.org/x/sync/singleflight"
)

// cachedDataset holds a parsed statement dataset with its build time.
type cachedDataset struct {
	dataset *table.Dataset
	built   time.Time
	ttl     time.Duration
}

// expired returns true if this entry has outlived its TTL.
func (c *cachedDataset) expired() bool {
	if c.ttl == 0 {
		return true // no caching
	}
	return time.Since(c.built) > c.ttl
}

// DatasetCache caches storage-loaded datasets keyed by bucket and object
// name, with TTL expiry and stampede protection for concurrent fetches of
// the same statement.
type DatasetCache struct {
	mu      sync.RWMutex
	entries map[string]*cachedDataset
	sf      singleflight.Group
	ttl     time.Duration
}

// NewDatasetCache creates a cache with the given TTL. A zero TTL disables
// caching entirely; every load fetches and parses the object again.
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		entries: make(map[string]*cachedDataset),
		ttl:     ttl,
	}
}

// Load returns the dataset for the given object, fetching and parsing it on
// a miss. Concurrent loads of the same object share a single fetch.
func (dc *DatasetCache) Load(ctx context.Context, client storage.Client, bucket, objectName, label string) (*table.Dataset, error) {
	if dc.ttl == 0 {
		return LoadObject(ctx, client, bucket, objectName, label)
	}

	key := bucket + "/" + objectName

	// Fast path: fresh entry.
	dc.mu.RLock()
	entry, exists := dc.entries[key]
	dc.mu.RUnlock()
	if exists && !entry.expired() {
		return entry.dataset, nil
	}

	// Slow path: fetch under singleflight to prevent stampedes.
	result, err, _ := dc.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		dc.mu.RLock()
		entry, exists := dc.entries[key]
		dc.mu.RUnlock()
		if exists && !entry.expired() {
			return entry.dataset, nil
		}

		dataset, err := LoadObject(ctx, client, bucket, objectName, label)
		if err != nil {
			return nil, err
		}

		dc.mu.Lock()
		dc.entries[key] = &cachedDataset{dataset: dataset, built: time.Now(), ttl: dc.ttl}
		dc.mu.Unlock()

		return dataset, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*table.Dataset), nil
}

// Invalidate drops the cached entry for the given object.
func (dc *DatasetCache) Invalidate(bucket, objectName string) {
	key := bucket + "/" + objectName
	dc.mu.Lock()
	delete(dc.entries, key)
	dc.mu.Unlock()
}

package cache

import (
	"time"

	"github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/dgraph-io/ristretto/v2"
)

// RecordCache memoizes the fetched license list for a short TTL.
// A non-positive TTL disables it.
type RecordCache struct {
	cache *ristretto.Cache[string, []model.LicenseRecord]
	ttl   time.Duration
}

// NewRecordCache creates a RecordCache.
func NewRecordCache(ttl time.Duration) (*RecordCache, error) {
	if ttl <= 0 {
		return &RecordCache{}, nil
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, []model.LicenseRecord]{
		NumCounters: constant.RecordCacheNumCounters,
		MaxCost:     constant.RecordCacheMaxCost,
		BufferItems: constant.RecordCacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &RecordCache{cache: c, ttl: ttl}, nil
}

// Get returns the memoized list.
func (r *RecordCache) Get() ([]model.LicenseRecord, bool) {
	if r == nil || r.cache == nil {
		return nil, false
	}

	return r.cache.Get(constant.RecordCacheKey)
}

// Store memoizes records. The write is visible to Get once it returns.
func (r *RecordCache) Store(records []model.LicenseRecord) {
	if r == nil || r.cache == nil {
		return
	}

	r.cache.SetWithTTL(constant.RecordCacheKey, records, int64(len(records))+1, r.ttl)
	r.cache.Wait()
}

// Invalidate drops the memoized list.
func (r *RecordCache) Invalidate() {
	if r == nil || r.cache == nil {
		return
	}

	r.cache.Del(constant.RecordCacheKey)
}

// Close releases the cache goroutines.
func (r *RecordCache) Close() {
	if r == nil || r.cache == nil {
		return
	}

	r.cache.Close()
}

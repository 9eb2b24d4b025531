package constant

import "time"

// Record cache configuration constants
const (
	// RecordCacheKey is the single key under which the fetched license list is memoized
	RecordCacheKey = "license-records"
	// RecordCacheNumCounters is the number of keys to track frequency
	RecordCacheNumCounters = 1e3
	// RecordCacheMaxCost is the maximum cost of cache (1MB)
	RecordCacheMaxCost = 1 << 20
	// RecordCacheBufferItems is the number of keys per Get buffer
	RecordCacheBufferItems = 64
	// DefaultRecordCacheTTL keeps a fetched list only long enough to serve a
	// validate immediately followed by a revalidate
	DefaultRecordCacheTTL = 15 * time.Second
)

// Credential cache tiers
const (
	// TierFile is the name of the primary, file backed tier
	TierFile = "file"
	// TierKeyring is the name of the secondary, OS secret store tier
	TierKeyring = "keyring"
)

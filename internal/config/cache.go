package config

import "time"

// CacheConfig controls the response cache on the read-only
// table-status endpoint.  The status payload is small and goes stale
// harmlessly, so a short TTL is enough; there is no invalidation.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads CACHE_ENABLED, CACHE_TTL and CACHE_PREFIX
// with defaults suitable for the status endpoint.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: envBool("CACHE_ENABLED", true),
        TTL:     envDur("CACHE_TTL", 5*time.Second),
        Prefix:  envStr("CACHE_PREFIX", "cache"),
    }
}

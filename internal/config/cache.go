package config

import "time"

// CacheConfig defines settings for the movie listing cache. When Enabled is
// false or no Redis client is configured, caching is disabled and every read
// goes straight to the store. TTL bounds how long a cached listing may be
// served after the last mutation-triggered invalidation.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "5m")),
		Prefix:  getenv("CACHE_PREFIX", "movies"),
	}
}

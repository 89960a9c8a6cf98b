// Package cache provides the key/value store used to memoize translations.
//
// Two drivers implement Cache:
//
//   - memory: an in-process LRU (hashicorp/golang-lru) with per-entry expiry. Entries are
//     lost on restart and are not shared between processes.
//   - redis: a Redis server or cluster (redis/go-redis). cache.redis_url accepts one or more
//     comma-separated redis:// URLs or host:port addresses; more than one selects cluster mode.
//
// Flush empties the whole store. With the redis driver that is FLUSHDB on the configured
// database, so the cache should get a database of its own.
//
// Configuration:
//
//	CACHE_DRIVER=redis
//	CACHE_REDIS_URL=redis://localhost:6379/2
//	CACHE_SIZE=10000
package cache

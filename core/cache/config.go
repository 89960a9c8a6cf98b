package cache

// Driver names.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config holds configuration for the key/value cache.
type Config struct {
	// Driver selects the backend: memory or redis.
	Driver string `mapstructure:"driver" default:"memory"`
	// RedisURL is one or more comma-separated redis:// URLs or host:port addresses.
	RedisURL string `mapstructure:"redis_url" default:"redis://localhost:6379/0"`
	// Size is the maximum number of entries held by the memory driver.
	Size int `mapstructure:"size" default:"10000"`
}

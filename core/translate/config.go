package translate

// Config holds configuration for the translator and its HTTP backend.
type Config struct {
	// Endpoint is the base URL of the LibreTranslate-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:5000"`
	// ApiKey is sent as api_key in every request when set.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds a single backend request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Retries is the number of retries on transport errors.
	Retries int `mapstructure:"retries" default:"2"`
	// CacheMinutes is the default lifetime of cached translations.
	CacheMinutes int `mapstructure:"cache_minutes" default:"1440"`
	// DefaultTarget is used when a request names no target language.
	DefaultTarget string `mapstructure:"default_target" default:"en"`
}

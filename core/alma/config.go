package alma

// Config holds configuration for the Alma API client.
type Config struct {
	// APIKey is the Alma API key attached to every request.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the regional Alma API gateway.
	BaseURL string `mapstructure:"base_url" default:"https://api-na.hosted.exlibrisgroup.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

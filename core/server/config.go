package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// When empty, the API is unprotected.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded statement files, per request.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}

// BodyLimitBytes returns the upload cap in bytes, falling back to the
// default when unset.
func (c Config) BodyLimitBytes() int {
	limit := c.BodyLimitMB
	if limit <= 0 {
		limit = 64
	}
	return limit * 1024 * 1024
}

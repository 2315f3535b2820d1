package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitKB caps request bodies.
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"256"`
}

// BodyLimit returns the body limit in bytes, falling back to 256 KiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitKB <= 0 {
		return 256 * 1024
	}
	return c.BodyLimitKB * 1024
}

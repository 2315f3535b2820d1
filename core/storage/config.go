package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the definition documents and icons.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// DefsPrefix is the key prefix of the definition documents.
	DefsPrefix string `mapstructure:"defs_prefix" default:"definitions/"`
	// IconPrefix is prepended to a definition's icon path to form its key.
	IconPrefix string `mapstructure:"icon_prefix" default:""`
}

// DefsKey returns the object key of a definition document file name.
func (c Config) DefsKey(name string) string {
	return c.DefsPrefix + name
}

// IconKey returns the object key of an icon path.
func (c Config) IconKey(icon string) string {
	return c.IconPrefix + icon
}

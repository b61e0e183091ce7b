package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	BearerToken    string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

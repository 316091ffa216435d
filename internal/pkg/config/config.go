package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=5000"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	UploadDir string `env:"UPLOAD_DIR, default=uploads"`

	// FrontendURL is the primary allowed CORS origin in production;
	// FrontendURLs may list additional origins, comma-separated.
	FrontendURL  string `env:"FRONTEND_URL"`
	FrontendURLs string `env:"FRONTEND_URLS"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blogapp_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// AllowedOrigins returns the CORS origin allowlist. Outside production every
// local frontend is allowed; in production only the configured URLs are.
func (c *Config) AllowedOrigins() []string {
	if c.Env != "production" {
		return []string{"http://localhost:3000", "http://localhost:3001"}
	}

	origins := []string{}
	if c.FrontendURL != "" {
		origins = append(origins, strings.TrimSuffix(strings.TrimSpace(c.FrontendURL), "/"))
	}
	for _, url := range strings.Split(c.FrontendURLs, ",") {
		url = strings.TrimSuffix(strings.TrimSpace(url), "/")
		if url != "" {
			origins = append(origins, url)
		}
	}
	return origins
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins_Development(t *testing.T) {
	cfg := &Config{Env: "development", FrontendURL: "https://blog.example.com"}

	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:3001"},
		cfg.AllowedOrigins())
}

func TestAllowedOrigins_Production(t *testing.T) {
	cfg := &Config{
		Env:          "production",
		FrontendURL:  "https://blog.example.com/",
		FrontendURLs: " https://www.example.com , https://admin.example.com/ ",
	}

	assert.Equal(t, []string{
		"https://blog.example.com",
		"https://www.example.com",
		"https://admin.example.com",
	}, cfg.AllowedOrigins())
}

func TestAllowedOrigins_ProductionEmpty(t *testing.T) {
	cfg := &Config{Env: "production"}

	assert.Empty(t, cfg.AllowedOrigins())
}

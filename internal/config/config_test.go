package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBase() *Config {
	return &Config{
		Env:                   "development",
		Port:                  "8420",
		JWTSecret:             "secure-secret-at-least-32-chars-long",
		DBDriver:              "postgres",
		DBPassword:            "secure-password",
		DBSSLMode:             "disable",
		AvatarMaxUploadSizeMB: 5,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Unknown driver", func(c *Config) { c.DBDriver = "mongodb" }, true},
		{"Zero avatar upload size", func(c *Config) { c.AvatarMaxUploadSizeMB = 0 }, true},
		{"SQLite allowed in development", func(c *Config) { c.DBDriver = "sqlite" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validBase()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Default JWT secret rejected", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }, true},
		{"Short JWT secret rejected", func(c *Config) { c.JWTSecret = "short" }, true},
		{"Default DB password rejected", func(c *Config) { c.DBPassword = "password" }, true},
		{"SSL disable rejected", func(c *Config) { c.DBSSLMode = "disable" }, true},
		{"SQLite rejected", func(c *Config) { c.DBDriver = "sqlite" }, true},
		{"Hardened config accepted", func(c *Config) {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validBase()
			c.Env = "production"
			c.DBSSLMode = "require"
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

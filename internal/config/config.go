// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package config defines the Bookrec configuration model and its layered
// loading via Koanf v2 (defaults, optional YAML file, environment).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Bookrec server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// StaticDir is the frontend build directory served as a SPA.
	// Empty disables static serving.
	StaticDir string `koanf:"static_dir"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
}

// DataConfig points at the four catalog artifacts produced offline.
// The full metadata set is gzip-compressed.
type DataConfig struct {
	TitleIndexPath string `koanf:"title_index_path" validate:"required"`
	SimilarityPath string `koanf:"similarity_path" validate:"required"`
	TopBooksPath   string `koanf:"top_books_path" validate:"required"`
	FullBooksPath  string `koanf:"full_books_path" validate:"required"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// TopK is the number of similar titles returned per query.
	TopK int `koanf:"top_k" validate:"min=1,max=50"`

	// MaxQueryLength caps the accepted query string length.
	MaxQueryLength int `koanf:"max_query_length" validate:"min=1"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"min=1s"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

package main

import (
	"github.com/dmitrymomot/jobform/pkg/httpserver"
	"github.com/dmitrymomot/jobform/pkg/ratelimiter"
)

// Config is loaded from the environment and an optional .env file.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"jobform"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Title    string `env:"FORM_TITLE" envDefault:"Job Application"`

	// MaxBodySize caps request bodies in bytes.
	MaxBodySize int64 `env:"MAX_BODY_SIZE" envDefault:"1048576"`

	// TrustedIPHeaders lists the proxy headers that carry the client IP.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config

	// SubmitLimit throttles POST /applications per client IP. A zero
	// RATE_LIMIT_CAPACITY turns it off.
	SubmitLimit ratelimiter.Config
}

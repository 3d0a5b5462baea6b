// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file, and
// github.com/caarlos0/env/v11, which parses the environment into a struct
// through `env` and `envDefault` field tags:
//
//	type AppConfig struct {
//		Name     string `env:"APP_NAME" envDefault:"jobform"`
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL"`
//		HTTP     httpserver.Config
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process and cached, so Load is
// cheap to call from anywhere. Parse failures wrap ErrParsingConfig.
package config

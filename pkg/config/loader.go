package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of parsing one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache maps a config type to its *entry
	cache sync.Map

	dotenvOnce sync.Once
)

// Load fills v from environment variables using `env` and `envDefault`
// struct tags. A .env file in the working directory, when present, is read
// once before the first parse; real environment variables take precedence.
//
// Each configuration type is parsed once per process. Later calls for the
// same type, including concurrent ones, receive a copy of the first result,
// error included.
//
//	type AppConfig struct {
//		Name     string `env:"APP_NAME" envDefault:"jobform"`
//		LogLevel string `env:"LOG_LEVEL"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is fine
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	e, _ := cache.LoadOrStore(key, &entry{})
	ent := e.(*entry)

	ent.once.Do(func() {
		parsed, err := env.ParseAs[T]()
		if err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = parsed
	})

	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

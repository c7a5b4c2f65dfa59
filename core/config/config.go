package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidTarget is returned when Load receives anything other than a
	// non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("config target must be a non-nil struct pointer")
	// ErrParseFailed is returned when environment parsing fails.
	ErrParseFailed = errors.New("failed to parse environment")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> struct value
)

// Load populates cfg from the environment, reading .env files on first use.
// The result is cached per concrete type: subsequent calls for the same type
// return the originally loaded value regardless of environment changes.
func Load(cfg any) error {
	dotenvOnce.Do(func() {
		// Missing .env is the normal production case.
		_ = godotenv.Load()
	})

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	typ := v.Elem().Type()
	if cached, ok := cache.Load(typ); ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	// LoadOrStore keeps the first winner under concurrent loads so every
	// caller observes the same value.
	actual, _ := cache.LoadOrStore(typ, v.Elem().Interface())
	v.Elem().Set(reflect.ValueOf(actual))
	return nil
}

// MustLoad is Load that panics on failure, for application startup paths.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache            sync.Map // reflect.Type -> *cacheEntry
	defaultEnvLoaded sync.Once
)

// LoadEnv loads env files in order; later files override earlier ones.
// Without paths it loads ./.env.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Load parses the environment into v. Each type is parsed at most once per
// process; later calls copy the cached value, or return the cached error.
// When *T validates itself the tree is checked before the value is cached,
// and a failure is returned joined with ErrInvalidConfig.
//
//	type ServerConfig struct {
//		Addr string `env:"VALTREE_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing ./.env is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	actual, _ := cache.LoadOrStore(reflect.TypeFor[T](), &cacheEntry{})
	entry := actual.(*cacheEntry)
	entry.once.Do(func() {
		var parsed T
		entry.value, entry.err = parse(&parsed)
	})
	if entry.err != nil {
		return entry.err
	}
	*v = entry.value.(T)
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value of T and parses the environment again.
func ForceReload[T any](v *T) error {
	cache.Delete(reflect.TypeFor[T]())
	return Load(v)
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	cache.Clear()
}

func parse[T any](v *T) (T, error) {
	if err := env.Parse(v); err != nil {
		return *v, errors.Join(ErrParsingConfig, err)
	}
	if target, ok := any(v).(validator.Validatable); ok {
		if err := target.Validate(); err != nil {
			return *v, errors.Join(ErrInvalidConfig, err)
		}
	}
	return *v, nil
}

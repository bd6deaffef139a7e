package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configurations keyed by type name and prefix.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Option customises a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix string
}

// WithPrefix prepends prefix to every env tag of the target struct, so
// `env:"PROGRESSIVE"` with prefix "URANUS_" reads URANUS_PROGRESSIVE.
// The same type loaded with different prefixes is cached separately.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// Load parses environment variables into v. The default .env file is read
// once per process, if present. Each (type, prefix) pair is parsed only once;
// later calls return the cached copy.
//
//	type ServeConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServeConfig
//	if err := config.Load(&cfg, config.WithPrefix("URANUS_")); err != nil {
//		// handle
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// a missing .env file is not an error
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	key := o.prefix + getTypeName[T]()

	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if parseErr := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// allow a retry once the environment is fixed
			globalCache.mu.Lock()
			delete(globalCache.onces, key)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = parsed
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment. Later
// files override earlier ones; existing process variables are overridden too.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every loaded configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func (c *configCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.String()
}

package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache keeps one parsed copy per configuration type.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	cache = newTypeCache()

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

func newTypeCache() *typeCache {
	return &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Load parses environment variables into v. Each configuration type is
// parsed once; later calls copy the cached value.
//
// The default .env file in the working directory is loaded on first use
// if it exists. Variables already set in the environment win.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"INPUTFILTER_LOG_LEVEL" envDefault:"info"`
//		Strict   bool   `env:"INPUTFILTER_STRICT"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if cache.copyTo(key, v) {
		return nil
	}

	cache.mu.Lock()
	once, ok := cache.onces[key]
	if !ok {
		once = new(sync.Once)
		cache.onces[key] = once
	}
	cache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		cache.mu.Lock()
		cache.values[key] = *v
		cache.mu.Unlock()
	})
	if err != nil {
		// Allow a later call to retry once the environment is fixed.
		cache.mu.Lock()
		delete(cache.onces, key)
		cache.mu.Unlock()
		return err
	}

	if cache.copyTo(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value of T and parses it again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := typeKey[T]()
	cache.mu.Lock()
	delete(cache.values, key)
	delete(cache.onces, key)
	cache.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every parsed configuration and allows the default
// .env file to be loaded again.
func ResetCache() {
	cache.mu.Lock()
	cache.values = make(map[string]any)
	cache.onces = make(map[string]*sync.Once)
	cache.mu.Unlock()

	defaultEnvMu.Lock()
	defaultEnvLoaded = false
	defaultEnvMu.Unlock()
}

func (c *typeCache) copyTo(key string, v any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(v).Elem().Set(reflect.ValueOf(cached))
	return true
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// The file is optional.
	_ = godotenv.Load()
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

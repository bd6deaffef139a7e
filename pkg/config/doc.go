// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. The
// default .env file in the working directory is read once per process, if
// present. LoadEnv reads additional files explicitly and overrides values
// already in the environment.
//
// # Usage
//
// Load parses the environment into any struct using `env` and `envDefault`
// tags. WithPrefix lets one struct be shared by several binaries or
// subsystems:
//
//	type Config struct {
//		Progressive bool `env:"PROGRESSIVE" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("URANUS_")); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad and MustLoadEnv panic instead of returning an error and are
// meant for program start-up.
//
// # Caching
//
// Parsed values are cached per type and prefix for the lifetime of the
// process, so repeated Load calls are cheap and return identical values.
// A failed parse is not cached; the next Load retries. ResetCache clears
// everything and is meant for tests that change the environment.
//
// # Errors
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer and ErrConfigNotLoaded and can be checked with errors.Is.
package config

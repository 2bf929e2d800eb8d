// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags. Parsed values are cached
// per type, so configuration structs can be loaded from anywhere without
// re-reading the environment.
//
// # Usage
//
//	type Config struct {
//	    AppEnv          string `env:"APP_ENV" envDefault:"development"`
//	    DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pt"`
//	}
//
//	config.MustLoadEnv(".env.local") // optional extra files
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// tested with errors.Is. MustLoad and MustLoadEnv panic instead.
//
// Tests that change the environment between loads call ResetCache.
package config

// Package config loads application configuration from environment variables
// into tagged structs, using github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for .env files.
//
// Each configuration type is parsed once per process and cached by type:
//
//	type Config struct {
//	    ServerURL string `env:"SERVER_URL,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// A .env file in the working directory is read automatically on the first
// Load. Call LoadEnv beforehand to read other files instead. Values already
// present in the process environment always win.
//
// Errors are sentinels usable with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer. A failed Load can
// be retried after the environment is fixed. ResetCache clears cached values
// between tests.
package config

// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default .env file (when present) is loaded once per process, then the
// environment is parsed into any annotated Go struct.
//
// # Usage
//
//	type APIConfig struct {
//	    Login    string `env:"TTD_LOGIN,required"`
//	    Password string `env:"TTD_PASSWORD,required"`
//	    BaseURL  string `env:"TTD_BASE_URL" envDefault:"https://api.thetradedesk.com/v3/"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors comparable with errors.Is:
//
//   - ErrParsingConfig – failed to parse env vars into the struct.
//   - ErrNilPointer – nil pointer passed to Load/MustLoad.
//
// Parse failures from the underlying library are joined onto
// ErrParsingConfig so the original message is preserved.
package config

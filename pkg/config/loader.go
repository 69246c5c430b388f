package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided struct from environment variables using `env`
// field tags. A .env file in the working directory is loaded best-effort
// before the first parse; a missing file is not an error.
//
// Example:
//
//	type Config struct {
//	    Login    string        `env:"TTD_LOGIN,required"`
//	    Password string        `env:"TTD_PASSWORD,required"`
//	    TokenTTL time.Duration `env:"TTD_TOKEN_TTL" envDefault:"90m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Useful for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

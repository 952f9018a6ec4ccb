// Package config loads process configuration from the environment.
//
// Structs are described with `env` tags and parsed by
// github.com/caarlos0/env/v11; a `.env` file in the working directory is
// read once through github.com/joho/godotenv. Load caches one parsed value
// per type, Parse always reads the environment afresh.
//
// Request holds the knobs of the form request lifecycle and parameter logger:
//
//	var cfg config.Request
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	lifecycle := formrequest.New(cfg, engine)
//
// DefaultRequest returns the same values without reading the environment.
package config

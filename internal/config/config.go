package config

import "os"

// Config is read once at startup from the environment. APIURL is the single
// configured backend origin; there is no multi-origin support.
type Config struct {
	APIURL    string
	Addr      string
	SessionDB string
}

func Load() Config {
	cfg := Config{
		APIURL:    os.Getenv("API_URL"),
		Addr:      os.Getenv("ADDR"),
		SessionDB: os.Getenv("SESSION_DB"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.SessionDB == "" {
		cfg.SessionDB = "tourneyman_web.db"
	}
	return cfg
}

// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	// Listen address for the HTTP server.
	Addr string
	// Paste service base URL; scripts are POSTed to <PasteURL>/documents.
	PasteURL string
	// Player profile service base URL.
	ProfileURL string
	// Outbound request timeout for paste and profile calls.
	Timeout time.Duration
	// Largest accepted request body in bytes.
	BodyLimit int
	// Conversion history. Empty MongoURI disables it.
	MongoURI      string
	MongoDatabase string
}

func Default() Config {
	return Config{
		Addr:          ":3000",
		PasteURL:      "https://paste.minr.org",
		ProfileURL:    "https://api.mojang.com",
		Timeout:       10 * time.Second,
		BodyLimit:     8 << 20,
		MongoDatabase: "mapart",
	}
}

// Load applies the given .env files (default ".env"; missing files are
// ignored) and then MAPART_* variables on top of Default. PORT is honoured
// when MAPART_ADDR is unset.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "loading .env")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if port, ok := lookup("PORT"); ok && port != "" {
		cfg.Addr = ":" + port
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("MAPART_ADDR", &cfg.Addr)
	str("MAPART_PASTE_URL", &cfg.PasteURL)
	str("MAPART_PROFILE_URL", &cfg.ProfileURL)
	str("MAPART_MONGO_URI", &cfg.MongoURI)
	str("MAPART_MONGO_DB", &cfg.MongoDatabase)

	if v, ok := lookup("MAPART_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "MAPART_TIMEOUT")
		}
		cfg.Timeout = d
	}
	if v, ok := lookup("MAPART_BODY_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, errors.Errorf("MAPART_BODY_LIMIT: invalid size %q", v)
		}
		cfg.BodyLimit = n
	}
	return cfg, nil
}

// Package config reads the site's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	TemplateGlob  string
	StaticDir     string
	ImagesDir     string
	ContentFile   string
	ReducedMotion bool
	ShareQRSize   int
	// ViewportHeight is assumed when rendering layer styles before the
	// browser has reported its size.
	ViewportHeight int
}

// Load reads .env files (missing ones are skipped) and then the
// environment. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		GinMode:      os.Getenv("GIN_MODE"),
		TemplateGlob: getenv("TEMPLATE_GLOB", "templates/*"),
		StaticDir:    getenv("STATIC_DIR", "./static"),
		ImagesDir:    getenv("IMAGES_DIR", "./images"),
		ContentFile:  os.Getenv("CONTENT_FILE"),
	}

	var err error
	if cfg.ReducedMotion, err = getbool("REDUCED_MOTION", false); err != nil {
		return Config{}, err
	}
	if cfg.ShareQRSize, err = getint("SHARE_QR_SIZE", 256); err != nil {
		return Config{}, err
	}
	if cfg.ViewportHeight, err = getint("VIEWPORT_HEIGHT", 900); err != nil {
		return Config{}, err
	}
	if cfg.ShareQRSize < 64 || cfg.ShareQRSize > 2048 {
		return Config{}, fmt.Errorf("SHARE_QR_SIZE must be between 64 and 2048, got %d", cfg.ShareQRSize)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getint(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

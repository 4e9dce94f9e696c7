// README: Config loader with env defaults for HTTP, Redis, and provider credentials.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr is optional; empty disables the resolved-image cache.
		Addr string
	}
	AI struct {
		GeminiKey string
	}
	Images struct {
		PexelsKey  string
		PixabayKey string
		CacheTTLh  int
	}
	Maps struct {
		// APIKey is optional; empty disables the places photo proxy.
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPWISE_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = os.Getenv("TRIPWISE_REDIS_ADDR")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Images.PexelsKey = os.Getenv("PEXELS_API_KEY")
	cfg.Images.PixabayKey = os.Getenv("PIXABAY_API_KEY")
	cfg.Images.CacheTTLh = envOrDefaultInt("TRIPWISE_IMAGE_CACHE_TTL_H", 24)
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

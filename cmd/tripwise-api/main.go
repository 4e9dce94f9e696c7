// README: Entry point; loads config, wires providers and services, starts HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/config"
	httptransport "tripwise/internal/http"
	"tripwise/internal/infra"
	"tripwise/internal/maps"
	"tripwise/internal/modules/images"
	"tripwise/internal/modules/itinerary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var llm ai.TextGenerator
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		llm = provider
	} else {
		log.Printf("GEMINI_API_KEY not set; itinerary endpoints will return 500")
	}

	var cache *images.Cache
	if cfg.Redis.Addr != "" {
		cache = images.NewCache(infra.NewRedis(cfg.Redis.Addr),
			time.Duration(cfg.Images.CacheTTLh)*time.Hour)
	}

	// Unconfigured network providers are simply absent from the chain.
	var providers []images.Provider
	if cfg.Images.PexelsKey != "" {
		providers = append(providers, images.NewPexels(cfg.Images.PexelsKey))
	}
	if cfg.Images.PixabayKey != "" {
		providers = append(providers, images.NewPixabay(cfg.Images.PixabayKey))
	}
	providers = append(providers,
		images.NewCuratedTable(),
		images.NewUnsplashRedirect(),
		images.NewPlaceholder(),
	)
	resolver := images.NewResolver(cache, providers...)

	itinerarySvc := itinerary.NewService(llm, resolver)

	photos := infra.NewLazy(func() (*maps.PhotoService, error) {
		if cfg.Maps.APIKey == "" {
			return nil, errors.New("MAPS_API_KEY not set")
		}
		return maps.NewPhotoService(cfg.Maps.APIKey)
	})

	router := httptransport.NewRouter(itinerarySvc, photos)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("tripwise-api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

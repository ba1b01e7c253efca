package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vietsong-backend/internal/config"
	"vietsong-backend/internal/httpapi"
	"vietsong-backend/internal/lyrics"
	"vietsong-backend/internal/search"
	"vietsong-backend/internal/story"
	"vietsong-backend/pkg/ai"
	"vietsong-backend/pkg/ai/gemini"
	"vietsong-backend/pkg/ai/openai"
	"vietsong-backend/pkg/lrclib"
	"vietsong-backend/pkg/metacache"
	"vietsong-backend/pkg/rediscache"
	"vietsong-backend/pkg/verified"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg        *config.Config
	server     *http.Server
	meta       *metacache.Cache
	lyricCache *rediscache.Cache
}

func newAIClient(cfg config.AIConfig) ai.Client {
	if cfg.APIKey == "" {
		return nil
	}

	switch cfg.ModuleName {
	case "gemini":
		client, err := gemini.NewGemini(cfg.APIKey, cfg.Model)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create gemini client, LLM fallback disabled")
			return nil
		}
		return client
	case "openai":
		return openai.NewOpenAi(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		log.Warn().Str("module_name", cfg.ModuleName).Msg("Unknown AI module, LLM fallback disabled")
		return nil
	}
}

func New(cfg *config.Config) *App {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	aiClient := newAIClient(cfg.AI)
	if aiClient != nil {
		log.Info().Str("module", aiClient.Name()).Msg("AI module initialized")
	}

	var lrcOpts []lrclib.Option
	if cfg.LRCLib.BaseURL != "" {
		lrcOpts = append(lrcOpts, lrclib.WithBaseURL(cfg.LRCLib.BaseURL))
	}
	lrcClient := lrclib.NewClient(lrcOpts...)

	var lyricCache *rediscache.Cache
	if cfg.Redis.Addr != "" {
		cache, err := rediscache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without the lyrics text cache")
		} else {
			lyricCache = cache
		}
	}

	meta := metacache.New()
	meta.StartSweeper()

	index := verified.NewIndex(verified.Catalog())

	resolver := lyrics.NewResolver(lrcClient, aiClient, meta, lyricCache)
	stories := story.NewGenerator(index, aiClient)
	handler := httpapi.NewHandler(resolver, stories, search.DemoCatalog())

	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:    cfg.Server.ListenAddr,
			Handler: handler,
		},
		meta:       meta,
		lyricCache: lyricCache,
	}
}

func (a *App) Run() {
	go func() {
		log.Info().Str("addr", a.server.Addr).Msg("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	a.meta.Stop()
	if a.lyricCache != nil {
		if err := a.lyricCache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis cache")
		}
	}
	log.Info().Msg("Stopped")
}

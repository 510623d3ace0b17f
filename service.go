package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Isc-2025/Isc-2025.github.io/catalog"
	"github.com/Isc-2025/Isc-2025.github.io/config"
	"github.com/Isc-2025/Isc-2025.github.io/feed"
	"github.com/Isc-2025/Isc-2025.github.io/fetcher"
	"github.com/Isc-2025/Isc-2025.github.io/handler"
	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/Isc-2025/Isc-2025.github.io/storage"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "unable to read .env: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load config: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	logger.Info("loaded configuration", slog.Any("config", cfg))

	videoRepo, closeRepo, err := openRepository(cfg)
	if err != nil {
		logger.Error("unable to open video store", slog.String("backend", cfg.StoreBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepo()

	var metadata fetcher.MetadataFetcher
	if cfg.YoutubeAPIKey != "" {
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YoutubeAPIKey))
		if err != nil {
			logger.Error("unable to create youtube service", slog.String("error", err.Error()))
			os.Exit(1)
		}
		metadata = fetcher.NewYoutube(ytClient)
	} else {
		logger.Info("no youtube api key, new videos get placeholder metadata")
	}

	var analyzer fetcher.Analyzer
	if cfg.OpenAIAPIKey != "" {
		analyzer = fetcher.NewOpenAI(openai.NewClient(cfg.OpenAIAPIKey), cfg.OpenAIModel)
	} else {
		logger.Info("no openai api key, new videos get a simulated analysis")
	}

	videos := catalog.New(videoRepo, metadata, analyzer, logger)

	if cfg.MinifluxEndpoint != "" {
		mflx := feed.NewMiniflux(feed.MinifluxInfo{
			Endpoint: cfg.MinifluxEndpoint,
			ApiKey:   cfg.MinifluxAPIKey,
		})
		go feed.NewImporter(mflx, videos, cfg.FeedInterval, logger).Run(ctx)
	}

	fallback := handler.StaticFallback(cfg.StaticDir)
	if fallback == nil {
		logger.Info("no fallback page found, serving api only", slog.String("dir", cfg.StaticDir))
	}
	server := handler.NewServer(
		handler.NewVideoAPI(videos, logger),
		handler.NewThumbnailAPI(http.DefaultClient, cfg.ThumbnailURLTemplate, logger),
		fallback,
		logger,
	)
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.AllowedOrigins()),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           cors(server),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("http server started", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("service stopped")
}

func openRepository(cfg *config.Config) (storage.VideoRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := storage.OpenPostgres(cfg.DatabaseURL, cfg.DatabaseSSLRelaxed)
		if err != nil {
			return nil, nil, err
		}
		repo, err := storage.NewPostgres(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := storage.NewSQLite(db, time.Now)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	default:
		var seed []model.Video
		if cfg.SeedCatalog {
			seed = storage.SeedVideos()
		}
		return storage.NewMemory(time.Now, seed...), func() {}, nil
	}
}

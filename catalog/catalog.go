package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Isc-2025/Isc-2025.github.io/fetcher"
	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/Isc-2025/Isc-2025.github.io/storage"
	"github.com/Isc-2025/Isc-2025.github.io/videoid"
)

var ErrInput = errors.New("invalid input")

// Catalog adds videos to and lists videos from a repository. Metadata and
// analyzer are optional; without them new videos get placeholder data.
type Catalog struct {
	videoRepo storage.VideoRepository
	metadata  fetcher.MetadataFetcher
	analyzer  fetcher.Analyzer
	logger    *slog.Logger
}

func New(videoRepo storage.VideoRepository, metadata fetcher.MetadataFetcher, analyzer fetcher.Analyzer, logger *slog.Logger) *Catalog {
	return &Catalog{
		videoRepo: videoRepo,
		metadata:  metadata,
		analyzer:  analyzer,
		logger:    logger,
	}
}

func (c *Catalog) List(ctx context.Context) ([]model.Video, error) {
	return c.videoRepo.List(ctx)
}

// AddVideo extracts the video id from videoURL, enriches it where possible
// and stores the result. Failing enrichment never fails the call; an
// unusable URL returns an error wrapping ErrInput and stores nothing.
func (c *Catalog) AddVideo(ctx context.Context, videoURL, annotation string) (model.Video, error) {
	ytID, err := videoid.Extract(videoURL)
	if err != nil {
		return model.Video{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	enrichment := c.enrich(ctx, ytID)

	video, err := c.videoRepo.Insert(ctx, enrichment.Draft(ytID, annotation))
	if err != nil {
		return model.Video{}, err
	}
	c.logger.Info("video added", slog.String("video", string(ytID)), slog.Int64("id", video.ID))

	return video, nil
}

func (c *Catalog) enrich(ctx context.Context, ytID model.YoutubeVideoID) fetcher.Enrichment {
	enrichment := fetcher.Placeholder(ytID)

	var md fetcher.Metadata
	if c.metadata != nil {
		fetched, err := c.metadata.FetchMetadata(ctx, ytID)
		if err != nil {
			c.logger.Warn("failed to fetch metadata, keeping placeholder", slog.String("video", string(ytID)), slog.String("error", err.Error()))
		} else {
			md = fetched
			enrichment = enrichment.WithMetadata(md)
		}
	}

	if c.analyzer != nil {
		analysis, err := c.analyzer.Analyze(ctx, ytID, md)
		if err != nil {
			c.logger.Warn("failed to analyze video, keeping simulated analysis", slog.String("video", string(ytID)), slog.String("error", err.Error()))
		} else {
			enrichment = enrichment.WithAnalysis(analysis)
		}
	}

	return enrichment
}

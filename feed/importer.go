package feed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Isc-2025/Isc-2025.github.io/catalog"
	"github.com/Isc-2025/Isc-2025.github.io/model"
)

type Entry struct {
	EntryID int64
	URL     string
}

type Reader interface {
	Unread() ([]Entry, error)
	MarkRead(entryID int64) error
}

type VideoAdder interface {
	AddVideo(ctx context.Context, videoURL, annotation string) (model.Video, error)
}

// Importer periodically adds the videos linked from unread feed entries to
// the catalog.
type Importer struct {
	interval time.Duration
	reader   Reader
	adder    VideoAdder
	logger   *slog.Logger
}

func NewImporter(reader Reader, adder VideoAdder, interval time.Duration, logger *slog.Logger) *Importer {
	return &Importer{
		interval: interval,
		reader:   reader,
		adder:    adder,
		logger:   logger,
	}
}

func (i *Importer) Run(ctx context.Context) {
	i.logger.Info("started feed importer", slog.Duration("interval", i.interval))
	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			i.logger.Info("stopped feed importer")
			return
		case <-ticker.C:
			i.ReadFeeds(ctx)
		}
	}
}

// ReadFeeds imports all unread entries once. Entries that could not be
// stored stay unread so the next run picks them up again.
func (i *Importer) ReadFeeds(ctx context.Context) {
	entries, err := i.reader.Unread()
	if err != nil {
		i.logger.Error("failed to fetch unread entries", slog.String("error", err.Error()))
		return
	}
	i.logger.Info("fetched unread entries", slog.Int("count", len(entries)))

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}

		video, err := i.adder.AddVideo(ctx, entry.URL, "")
		switch {
		case errors.Is(err, catalog.ErrInput):
			i.logger.Info("skipping entry without video", slog.Int64("entry", entry.EntryID), slog.String("url", entry.URL))
		case err != nil:
			i.logger.Error("failed to import entry", slog.Int64("entry", entry.EntryID), slog.String("error", err.Error()))
			continue
		default:
			i.logger.Info("imported entry", slog.Int64("entry", entry.EntryID), slog.Int64("video", video.ID))
		}

		if err := i.reader.MarkRead(entry.EntryID); err != nil {
			i.logger.Error("failed to mark entry as read", slog.Int64("entry", entry.EntryID), slog.String("error", err.Error()))
		}
	}
}

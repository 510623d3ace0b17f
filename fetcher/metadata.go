package fetcher

import (
	"context"
	"errors"

	"github.com/Isc-2025/Isc-2025.github.io/model"
)

var ErrVideoNotFound = errors.New("video not found")

type Metadata struct {
	Title     string
	Channel   string
	ViewCount *int64
}

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (Metadata, error)
}

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Isc-2025/Isc-2025.github.io/model"
)

var (
	ErrStorage  = errors.New("storage error")
	ErrNotDraft = errors.New("video already has an id or creation time")
)

// VideoRepository is the persistent collection of cataloged videos. List
// returns the newest video first. Insert assigns ID and CreatedAt to the draft
// and returns the stored video.
type VideoRepository interface {
	List(ctx context.Context) ([]model.Video, error)
	Insert(ctx context.Context, draft model.Video) (model.Video, error)
}

type Clock func() time.Time

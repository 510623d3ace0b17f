package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Isc-2025/Isc-2025.github.io/model"
)

type Memory struct {
	mu     sync.RWMutex
	videos []model.Video // newest first
	nextID int64
	now    Clock
}

// NewMemory returns an in-memory repository holding the seed videos, which
// are given newest first, the way List returns them.
func NewMemory(now Clock, seed ...model.Video) *Memory {
	if now == nil {
		now = time.Now
	}
	m := &Memory{
		now:    now,
		nextID: 1,
	}
	for i := len(seed) - 1; i >= 0; i-- {
		m.insert(seed[i])
	}

	return m
}

func (m *Memory) List(_ context.Context) ([]model.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	videos := make([]model.Video, len(m.videos))
	for i, v := range m.videos {
		videos[i] = clone(v)
	}

	return videos, nil
}

func (m *Memory) Insert(_ context.Context, draft model.Video) (model.Video, error) {
	if !draft.IsDraft() {
		return model.Video{}, fmt.Errorf("%w: %w", ErrStorage, ErrNotDraft)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return clone(m.insert(draft)), nil
}

func (m *Memory) insert(draft model.Video) model.Video {
	v := clone(draft)
	v.ID = m.nextID
	v.CreatedAt = m.now().UTC()
	if len(m.videos) > 0 && v.CreatedAt.Before(m.videos[0].CreatedAt) {
		// keep the list sorted if the clock went backwards
		v.CreatedAt = m.videos[0].CreatedAt
	}
	m.nextID++
	m.videos = append([]model.Video{v}, m.videos...)

	return v
}

func clone(v model.Video) model.Video {
	v.Keywords = append([]string{}, v.Keywords...)
	if v.ViewCount != nil {
		views := *v.ViewCount
		v.ViewCount = &views
	}
	return v
}

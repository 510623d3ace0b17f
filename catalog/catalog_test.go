package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Isc-2025/Isc-2025.github.io/fetcher"
	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/Isc-2025/Isc-2025.github.io/storage"
	"github.com/Isc-2025/Isc-2025.github.io/videoid"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeMetadata struct {
	md    fetcher.Metadata
	err   error
	calls int
}

func (f *fakeMetadata) FetchMetadata(_ context.Context, _ model.YoutubeVideoID) (fetcher.Metadata, error) {
	f.calls++
	return f.md, f.err
}

type fakeAnalyzer struct {
	analysis fetcher.Analysis
	err      error
	got      fetcher.Metadata
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ model.YoutubeVideoID, md fetcher.Metadata) (fetcher.Analysis, error) {
	f.got = md
	return f.analysis, f.err
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]model.Video, error) {
	return nil, storage.ErrStorage
}

func (failingRepo) Insert(context.Context, model.Video) (model.Video, error) {
	return model.Video{}, storage.ErrStorage
}

func TestAddVideo_WithoutCredentials(t *testing.T) {
	repo := storage.NewMemory(nil)
	c := New(repo, nil, nil, testLogger)

	v, err := c.AddVideo(context.Background(), "https://youtu.be/S15e-qC1S0I", "test")
	require.NoError(t, err)
	require.NotZero(t, v.ID)
	require.Equal(t, model.YoutubeVideoID("S15e-qC1S0I"), v.YoutubeID)
	require.Equal(t, fetcher.PlaceholderTitle, v.Title)
	require.Equal(t, fetcher.PlaceholderChannel+" • N/A vues", v.Uploader)
	require.Nil(t, v.ViewCount)
	require.Equal(t, "test", v.AdminAnnotation)
	require.Equal(t, fetcher.Placeholder("S15e-qC1S0I").Keywords, v.Keywords)

	videos, err := c.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Video{v}, videos)
}

func TestAddVideo_Enriched(t *testing.T) {
	views := int64(2_500_000)
	md := &fakeMetadata{md: fetcher.Metadata{Title: "Le Problème Difficile", Channel: "TED", ViewCount: &views}}
	an := &fakeAnalyzer{analysis: fetcher.Analysis{Summary: "Résumé", Keywords: []string{"Conscience", "Philosophie"}}}
	c := New(storage.NewMemory(nil), md, an, testLogger)

	v, err := c.AddVideo(context.Background(), "https://www.youtube.com/watch?v=9to-e4c1Eho", "")
	require.NoError(t, err)
	require.Equal(t, 1, md.calls)
	require.Equal(t, "Le Problème Difficile", an.got.Title)
	require.Equal(t, "Le Problème Difficile", v.Title)
	require.Equal(t, "TED • 2500K vues", v.Uploader)
	require.Equal(t, views, *v.ViewCount)
	require.Equal(t, "Résumé", v.Summary)
	require.Equal(t, []string{"Conscience", "Philosophie"}, v.Keywords)
}

func TestAddVideo_EnrichmentFailureKeepsPlaceholder(t *testing.T) {
	md := &fakeMetadata{err: errors.New("quota exceeded")}
	an := &fakeAnalyzer{err: errors.New("model overloaded")}
	c := New(storage.NewMemory(nil), md, an, testLogger)

	v, err := c.AddVideo(context.Background(), "https://www.youtube.com/embed/Rz1x02nnlqg", "")
	require.NoError(t, err)
	require.Equal(t, fetcher.PlaceholderTitle, v.Title)
	require.Equal(t, fetcher.PlaceholderChannel+" • N/A vues", v.Uploader)
	require.Nil(t, v.ViewCount)
	require.Equal(t, fetcher.Placeholder("Rz1x02nnlqg").Summary, v.Summary)
}

func TestAddVideo_InvalidInputInsertsNothing(t *testing.T) {
	repo := storage.NewMemory(nil)
	md := &fakeMetadata{}
	c := New(repo, md, nil, testLogger)

	_, err := c.AddVideo(context.Background(), "not a url", "")
	require.ErrorIs(t, err, ErrInput)
	require.ErrorIs(t, err, videoid.ErrInvalidURL)

	_, err = c.AddVideo(context.Background(), "https://vimeo.com/123", "")
	require.ErrorIs(t, err, ErrInput)
	require.ErrorIs(t, err, videoid.ErrNoVideoID)

	require.Zero(t, md.calls)
	videos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, videos)
}

func TestAddVideo_StorageFailure(t *testing.T) {
	c := New(failingRepo{}, nil, nil, testLogger)

	_, err := c.AddVideo(context.Background(), "https://youtu.be/abc", "")
	require.ErrorIs(t, err, storage.ErrStorage)
	require.NotErrorIs(t, err, ErrInput)
}

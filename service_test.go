package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Isc-2025/Isc-2025.github.io/config"
	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/stretchr/testify/require"
)

func TestOpenRepository_MemorySeeded(t *testing.T) {
	repo, closeRepo, err := openRepository(&config.Config{StoreBackend: config.BackendMemory, SeedCatalog: true})
	require.NoError(t, err)
	defer closeRepo()

	videos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 6)
}

func TestOpenRepository_MemoryEmpty(t *testing.T) {
	repo, closeRepo, err := openRepository(&config.Config{StoreBackend: config.BackendMemory})
	require.NoError(t, err)
	defer closeRepo()

	videos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, videos)
}

func TestOpenRepository_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.db")
	repo, closeRepo, err := openRepository(&config.Config{StoreBackend: config.BackendSQLite, SQLitePath: path})
	require.NoError(t, err)

	v, err := repo.Insert(context.Background(), model.Video{YoutubeID: "abc", Title: "t", Uploader: "u"})
	require.NoError(t, err)
	closeRepo()

	repo, closeRepo, err = openRepository(&config.Config{StoreBackend: config.BackendSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer closeRepo()
	videos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, v.ID, videos[0].ID)
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Isc-2025/Isc-2025.github.io/model"
	_ "modernc.org/sqlite"
)

var sqliteMigration = []string{
	`CREATE TABLE videos (
id INTEGER PRIMARY KEY AUTOINCREMENT,
youtubeVideoId TEXT NOT NULL,
title TEXT NOT NULL,
uploader TEXT NOT NULL,
keywords TEXT NOT NULL DEFAULT '[]',
summary TEXT NOT NULL DEFAULT '',
adminAnnotation TEXT NOT NULL DEFAULT '',
viewCount INTEGER,
createdAt INTEGER NOT NULL
)`,
	`CREATE INDEX videos_created_idx ON videos (createdAt DESC, id DESC)`,
}

// SQLite stores videos in a single database file. Keywords are kept as a JSON
// array and createdAt as unix nanoseconds.
type SQLite struct {
	db  *sql.DB
	now Clock
}

func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	db.SetMaxOpenConns(1) // single writer
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return db, nil
}

func NewSQLite(db *sql.DB, now Clock) (*SQLite, error) {
	if now == nil {
		now = time.Now
	}
	if err := migrate(db, sqliteMigration, `INSERT INTO migration (id, query) VALUES (?, ?)`); err != nil {
		return nil, fmt.Errorf("%w: migrate: %w", ErrStorage, err)
	}

	return &SQLite{db: db, now: now}, nil
}

func (s *SQLite) List(ctx context.Context) ([]model.Video, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, youtubeVideoId, title, uploader, keywords, summary, adminAnnotation, viewCount, createdAt
FROM videos
ORDER BY createdAt DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list videos: %w", ErrStorage, err)
	}
	defer rows.Close()

	videos := []model.Video{}
	for rows.Next() {
		var (
			v         model.Video
			ytID      string
			keywords  string
			viewCount sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&v.ID, &ytID, &v.Title, &v.Uploader, &keywords, &v.Summary, &v.AdminAnnotation, &viewCount, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan video: %w", ErrStorage, err)
		}
		if err := json.Unmarshal([]byte(keywords), &v.Keywords); err != nil {
			return nil, fmt.Errorf("%w: keywords of video %d: %w", ErrStorage, v.ID, err)
		}
		v.YoutubeID = model.YoutubeVideoID(ytID)
		v.Keywords = nonNil(v.Keywords)
		v.ViewCount = fromNullInt(viewCount)
		v.CreatedAt = time.Unix(0, createdAt).UTC()
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list videos: %w", ErrStorage, err)
	}

	return videos, nil
}

func (s *SQLite) Insert(ctx context.Context, draft model.Video) (model.Video, error) {
	if !draft.IsDraft() {
		return model.Video{}, fmt.Errorf("%w: %w", ErrStorage, ErrNotDraft)
	}
	v := clone(draft)
	keywords, err := json.Marshal(v.Keywords)
	if err != nil {
		return model.Video{}, fmt.Errorf("%w: keywords: %w", ErrStorage, err)
	}

	// createdAt never goes below the newest row, even if the clock went backwards
	var createdAt int64
	if err := s.db.QueryRowContext(ctx, `
INSERT INTO videos (youtubeVideoId, title, uploader, keywords, summary, adminAnnotation, viewCount, createdAt)
VALUES (?, ?, ?, ?, ?, ?, ?, max(?, COALESCE((SELECT MAX(createdAt) FROM videos), 0)))
RETURNING id, createdAt`,
		string(v.YoutubeID), v.Title, v.Uploader, string(keywords), v.Summary, v.AdminAnnotation, toNullInt(v.ViewCount), s.now().UnixNano(),
	).Scan(&v.ID, &createdAt); err != nil {
		return model.Video{}, fmt.Errorf("%w: insert video: %w", ErrStorage, err)
	}
	v.CreatedAt = time.Unix(0, createdAt).UTC()

	return v, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

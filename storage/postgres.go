package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/lib/pq"
)

var pgMigration = []string{
	`CREATE TABLE videos (
id SERIAL PRIMARY KEY,
youtubeVideoId VARCHAR(255) NOT NULL,
title VARCHAR(255) NOT NULL,
uploader VARCHAR(255) NOT NULL,
keywords TEXT[] NOT NULL DEFAULT '{}',
summary TEXT NOT NULL DEFAULT '',
adminAnnotation TEXT NOT NULL DEFAULT '',
viewCount INTEGER,
createdAt TIMESTAMP NOT NULL DEFAULT NOW()
)`,
	`ALTER TABLE videos ALTER COLUMN viewCount TYPE BIGINT`,
	`CREATE INDEX videos_created_idx ON videos (createdAt DESC, id DESC)`,
}

type Postgres struct {
	db *sql.DB
}

// PostgresDSN prepares a connection string for lib/pq. With relaxedTLS and no
// explicit sslmode the connection is encrypted but the server certificate is
// not verified.
func PostgresDSN(dsn string, relaxedTLS bool) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "", fmt.Errorf("%w: empty database url", ErrStorage)
	}
	if !relaxedTLS {
		return dsn, nil
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("%w: invalid database url: %w", ErrStorage, err)
		}
		q := u.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", "require")
			u.RawQuery = q.Encode()
		}
		return u.String(), nil
	}

	if strings.Contains(dsn, "sslmode=") {
		return dsn, nil
	}
	return dsn + " sslmode=require", nil
}

func OpenPostgres(dsn string, relaxedTLS bool) (*sql.DB, error) {
	dsn, err := PostgresDSN(dsn, relaxedTLS)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return db, nil
}

func NewPostgres(db *sql.DB) (*Postgres, error) {
	p := &Postgres{db: db}
	if err := migrate(db, pgMigration, `INSERT INTO migration (id, query) VALUES ($1, $2)`); err != nil {
		return nil, fmt.Errorf("%w: migrate: %w", ErrStorage, err)
	}

	return p, nil
}

func (p *Postgres) List(ctx context.Context) ([]model.Video, error) {
	rows, err := p.db.QueryContext(ctx, `
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
			keywords  []string
			viewCount sql.NullInt64
		)
		if err := rows.Scan(&v.ID, &ytID, &v.Title, &v.Uploader, pq.Array(&keywords), &v.Summary, &v.AdminAnnotation, &viewCount, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan video: %w", ErrStorage, err)
		}
		v.YoutubeID = model.YoutubeVideoID(ytID)
		v.Keywords = nonNil(keywords)
		v.ViewCount = fromNullInt(viewCount)
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list videos: %w", ErrStorage, err)
	}

	return videos, nil
}

func (p *Postgres) Insert(ctx context.Context, draft model.Video) (model.Video, error) {
	if !draft.IsDraft() {
		return model.Video{}, fmt.Errorf("%w: %w", ErrStorage, ErrNotDraft)
	}
	v := clone(draft)
	if err := p.db.QueryRowContext(ctx, `
INSERT INTO videos (youtubeVideoId, title, uploader, keywords, summary, adminAnnotation, viewCount)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, createdAt`,
		string(v.YoutubeID), v.Title, v.Uploader, pq.Array(v.Keywords), v.Summary, v.AdminAnnotation, toNullInt(v.ViewCount),
	).Scan(&v.ID, &v.CreatedAt); err != nil {
		return model.Video{}, fmt.Errorf("%w: insert video: %w", ErrStorage, err)
	}

	return v, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toNullInt(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func fromNullInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

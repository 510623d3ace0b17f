package model

import "time"

type YoutubeVideoID string

type Video struct {
	ID              int64          `json:"id"`
	YoutubeID       YoutubeVideoID `json:"videoIdentifier"`
	Title           string         `json:"title"`
	Uploader        string         `json:"uploaderLabel"`
	Keywords        []string       `json:"keywords"`
	Summary         string         `json:"summary"`
	AdminAnnotation string         `json:"adminAnnotation"`
	ViewCount       *int64         `json:"viewCount"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// IsDraft reports whether the store has not assigned an id and timestamp yet.
func (v Video) IsDraft() bool {
	return v.ID == 0 && v.CreatedAt.IsZero()
}

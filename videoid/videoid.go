package videoid

import (
	"errors"
	"net/url"
	"strings"

	"github.com/Isc-2025/Isc-2025.github.io/model"
)

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrNoVideoID  = errors.New("no video id in url")
)

// Extract returns the YouTube video id contained in raw. It recognizes
// youtu.be/<id>, youtube.com/watch?v=<id> and youtube.com/embed/<id>.
func Extract(raw string) (model.YoutubeVideoID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return "", ErrInvalidURL
	}

	var id string
	host := normalizeHost(u.Hostname())
	switch {
	case host == "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	case strings.Contains(host, "youtube.com") && u.Path == "/watch":
		id = u.Query().Get("v")
	case strings.Contains(host, "youtube.com") && strings.HasPrefix(u.Path, "/embed/"):
		id = pathSegment(u.Path, 2)
	}

	if id == "" {
		return "", ErrNoVideoID
	}

	return model.YoutubeVideoID(id), nil
}

func normalizeHost(h string) string {
	h = strings.TrimSpace(strings.ToLower(h))
	return strings.TrimSuffix(h, ".")
}

// pathSegment returns the n-th element of p split on slashes, counting the
// empty element before the leading slash as zero.
func pathSegment(p string, n int) string {
	parts := strings.Split(p, "/")
	if n >= len(parts) {
		return ""
	}
	return parts[n]
}

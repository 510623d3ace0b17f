package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const DefaultThumbnailURL = "https://i.ytimg.com/vi/%s/hqdefault.jpg"

// ThumbnailAPI passes the thumbnail of a video through from the image origin,
// status and headers included.
type ThumbnailAPI struct {
	client      *http.Client
	urlTemplate string
	logger      *slog.Logger
}

func NewThumbnailAPI(client *http.Client, urlTemplate string, logger *slog.Logger) *ThumbnailAPI {
	if client == nil {
		client = http.DefaultClient
	}
	if urlTemplate == "" {
		urlTemplate = DefaultThumbnailURL
	}
	return &ThumbnailAPI{
		client:      client,
		urlTemplate: urlTemplate,
		logger:      logger,
	}
}

func (t *ThumbnailAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		Error(w, http.StatusMethodNotAllowed, msgNotAllowed, fmt.Errorf("method %s is not allowed", r.Method))
		return
	}

	videoID := r.URL.Query().Get("v")
	if videoID == "" {
		Text(w, http.StatusBadRequest, msgMissingID)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, fmt.Sprintf(t.urlTemplate, url.PathEscape(videoID)), nil)
	if err != nil {
		t.fail(w, videoID, err)
		return
	}
	resp, err := t.client.Do(req)
	if err != nil {
		t.fail(w, videoID, err)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		// headers are gone already, all we can do is log
		t.logger.Warn("thumbnail stream interrupted", slog.String("video", videoID), slog.String("error", err.Error()))
	}
}

func (t *ThumbnailAPI) fail(w http.ResponseWriter, videoID string, err error) {
	t.logger.Error("failed to fetch thumbnail", slog.String("video", videoID), slog.String("error", err.Error()))
	Text(w, http.StatusInternalServerError, msgProxyFailed)
}

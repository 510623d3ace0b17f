package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Isc-2025/Isc-2025.github.io/catalog"
	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/Isc-2025/Isc-2025.github.io/videoid"
	"github.com/go-playground/validator/v10"
)

const maxAddVideoBody = 64 << 10

type VideoCatalog interface {
	List(ctx context.Context) ([]model.Video, error)
	AddVideo(ctx context.Context, videoURL, annotation string) (model.Video, error)
}

type VideoAPI struct {
	catalog  VideoCatalog
	validate *validator.Validate
	logger   *slog.Logger
}

func NewVideoAPI(videos VideoCatalog, logger *slog.Logger) *VideoAPI {
	return &VideoAPI{
		catalog:  videos,
		validate: validator.New(),
		logger:   logger,
	}
}

type addVideoRequest struct {
	VideoURL        string `json:"videoUrl" validate:"required"`
	AdminAnnotation string `json:"adminAnnotation"`
}

func (v *VideoAPI) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		Error(w, http.StatusMethodNotAllowed, msgNotAllowed, fmt.Errorf("method %s is not allowed", r.Method))
		return
	}

	videos, err := v.catalog.List(r.Context())
	if err != nil {
		v.returnErr(w, http.StatusInternalServerError, msgListFailed, err)
		return
	}
	if videos == nil {
		videos = []model.Video{}
	}

	JSON(w, http.StatusOK, videos)
}

func (v *VideoAPI) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		Error(w, http.StatusMethodNotAllowed, msgNotAllowed, fmt.Errorf("method %s is not allowed", r.Method))
		return
	}

	var req addVideoRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAddVideoBody)).Decode(&req); err != nil {
		v.logger.Debug("invalid add-video body", slog.String("error", err.Error()))
		Message(w, http.StatusBadRequest, msgInvalidURL)
		return
	}
	if err := v.validate.Struct(req); err != nil {
		Message(w, http.StatusBadRequest, msgInvalidURL)
		return
	}

	video, err := v.catalog.AddVideo(r.Context(), req.VideoURL, req.AdminAnnotation)
	switch {
	case errors.Is(err, videoid.ErrNoVideoID):
		Message(w, http.StatusBadRequest, msgNoVideoID)
		return
	case errors.Is(err, catalog.ErrInput):
		Message(w, http.StatusBadRequest, msgInvalidURL)
		return
	case err != nil:
		v.returnErr(w, http.StatusInternalServerError, msgStoreFailed, err)
		return
	}

	JSON(w, http.StatusCreated, video)
}

// returnErr logs the error and answers with the message only, so storage
// details stay out of the response.
func (v *VideoAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	v.logger.Error(message, slog.String("err", err.Error()))
	Message(w, status, message)
}

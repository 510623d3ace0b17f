package fetcher

import (
	"context"
	"fmt"

	"github.com/Isc-2025/Isc-2025.github.io/model"
	"google.golang.org/api/youtube/v3"
)

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (Metadata, error) {
	call := y.Client.Videos.
		List([]string{"snippet", "statistics"}).
		Id(string(ytID)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return Metadata{}, fmt.Errorf("youtube videos.list: %w", err)
	}
	if len(response.Items) == 0 || response.Items[0].Snippet == nil {
		return Metadata{}, fmt.Errorf("%w: %s", ErrVideoNotFound, ytID)
	}

	item := response.Items[0]
	md := Metadata{
		Title:   item.Snippet.Title,
		Channel: item.Snippet.ChannelTitle,
	}
	if item.Statistics != nil {
		views := int64(item.Statistics.ViewCount)
		md.ViewCount = &views
	}

	return md, nil
}

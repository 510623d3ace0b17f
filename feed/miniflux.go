package feed

import (
	"fmt"

	"miniflux.app/client"
)

type MinifluxInfo struct {
	Endpoint string
	ApiKey   string
}

type Miniflux struct {
	client *client.Client
}

func NewMiniflux(mflInfo MinifluxInfo) *Miniflux {
	return &Miniflux{
		client: client.New(mflInfo.Endpoint, mflInfo.ApiKey),
	}
}

func (m *Miniflux) Unread() ([]Entry, error) {
	result, err := m.client.Entries(&client.Filter{Status: "unread"})
	if err != nil {
		return nil, fmt.Errorf("miniflux unread entries: %w", err)
	}

	entries := make([]Entry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		entries = append(entries, Entry{
			EntryID: entry.ID,
			URL:     entry.URL,
		})
	}

	return entries, nil
}

func (m *Miniflux) MarkRead(entryID int64) error {
	if err := m.client.UpdateEntries([]int64{entryID}, "read"); err != nil {
		return fmt.Errorf("miniflux mark read: %w", err)
	}

	return nil
}

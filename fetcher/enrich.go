package fetcher

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Isc-2025/Isc-2025.github.io/model"
)

const (
	PlaceholderTitle   = "Titre récupéré de YouTube (Simulé)"
	PlaceholderChannel = "Chaîne YouTube (Simulée)"
)

// Enrichment holds everything that ends up on a new video besides the id and
// the admin annotation. It starts as placeholder data and is overwritten by
// whatever the metadata and analysis steps manage to fetch.
type Enrichment struct {
	Title     string
	Channel   string
	ViewCount *int64
	Keywords  []string
	Summary   string
}

func Placeholder(ytID model.YoutubeVideoID) Enrichment {
	return Enrichment{
		Title:    PlaceholderTitle,
		Channel:  PlaceholderChannel,
		Keywords: []string{"IA (Simulé)", "Keyword 2", "Keyword 3", "Keyword 4", "Keyword 5"},
		Summary: fmt.Sprintf("Ceci est un résumé simulé généré par IA pour la vidéo %s. "+
			"Le système aurait normalement téléchargé la transcription, l'aurait envoyée à Gemini pour analyse, "+
			"puis aurait renvoyé ce résumé en français.", ytID),
	}
}

func (e Enrichment) WithMetadata(md Metadata) Enrichment {
	e.Title = md.Title
	e.Channel = md.Channel
	e.ViewCount = md.ViewCount
	return e
}

func (e Enrichment) WithAnalysis(a Analysis) Enrichment {
	if a.Summary != "" {
		e.Summary = a.Summary
	}
	if len(a.Keywords) > 0 {
		e.Keywords = append([]string(nil), a.Keywords...)
	}
	return e
}

// Draft turns the enrichment into a video that still lacks the fields the
// store assigns.
func (e Enrichment) Draft(ytID model.YoutubeVideoID, annotation string) model.Video {
	keywords := append([]string{}, e.Keywords...)
	return model.Video{
		YoutubeID:       ytID,
		Title:           e.Title,
		Uploader:        UploaderLabel(e.Channel, e.ViewCount),
		Keywords:        keywords,
		Summary:         e.Summary,
		AdminAnnotation: annotation,
		ViewCount:       e.ViewCount,
	}
}

// UploaderLabel renders "<channel> • 215K vues". Unknown and zero counts
// render as N/A.
func UploaderLabel(channel string, views *int64) string {
	count := "N/A"
	if views != nil && *views != 0 {
		count = strconv.FormatFloat(math.Round(float64(*views)/1000), 'f', 0, 64) + "K"
	}
	return fmt.Sprintf("%s • %s vues", channel, count)
}

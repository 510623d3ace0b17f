package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Isc-2025/Isc-2025.github.io/model"
	"github.com/sashabaranov/go-openai"
)

const analyzePrompt = `You are an assistant for a French-speaking educational platform that curates videos about cognitive science, philosophy and artificial intelligence.
The user gives you the identifier, title and channel of a YouTube video. Reply with a single JSON object and nothing else, in this exact shape:
{"summary": "<three to four sentences in French describing the content of the video>", "keywords": ["<five short French keywords>"]}
`

var ErrEmptyAnalysis = errors.New("empty analysis")

type Analysis struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

type Analyzer interface {
	Analyze(ctx context.Context, ytID model.YoutubeVideoID, md Metadata) (Analysis, error)
}

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(client *openai.Client, model string) *OpenAI {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAI{
		client: client,
		model:  model,
	}
}

func (o *OpenAI) Analyze(ctx context.Context, ytID model.YoutubeVideoID, md Metadata) (Analysis, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: analyzePrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("id: %s\ntitle: %s\nchannel: %s", ytID, md.Title, md.Channel),
				},
			},
		})
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to fetch analysis: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Analysis{}, ErrEmptyAnalysis
	}

	return parseAnalysis(resp.Choices[len(resp.Choices)-1].Message.Content)
}

// parseAnalysis accepts the JSON object on its own or wrapped in a markdown
// code fence.
func parseAnalysis(content string) (Analysis, error) {
	content = strings.TrimSpace(content)
	start, end := strings.Index(content, "{"), strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return Analysis{}, fmt.Errorf("%w: no json object in %q", ErrEmptyAnalysis, content)
	}

	var a Analysis
	if err := json.Unmarshal([]byte(content[start:end+1]), &a); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse analysis: %w", err)
	}

	a.Summary = strings.TrimSpace(a.Summary)
	keywords := make([]string, 0, len(a.Keywords))
	for _, k := range a.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	a.Keywords = keywords
	if a.Summary == "" && len(a.Keywords) == 0 {
		return Analysis{}, ErrEmptyAnalysis
	}

	return a, nil
}

package repository

import (
	"context"
	"fmt"
	"strategyalign/internal/domain"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

// GptRepository writes a short analyst-style commentary for a result. With
// no api key it is disabled and returns an empty commentary.
type GptRepository interface {
	Enabled() bool
	Commentary(ctx context.Context, result domain.AlignmentResult) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	if apiKey == "" {
		return gptRepositoryHandler{}, nil
	}

	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const prompt = `
You are helping a portfolio manager understand which investment styles their holdings lean towards. Each holding was checked against a set of strategy screens. You will get, per strategy, the percent of holdings that qualify, the percent of portfolio weight that qualifies, and a rank.

Write 3 to 5 sentences of plain commentary. Mention the dominant style, whether exposure is concentrated or spread out, and anything notable about unmatched holdings. Do not give investment advice and do not invent numbers that are not in the data.
`

func commentaryInput(result domain.AlignmentResult) string {
	lines := []string{
		fmt.Sprintf("holdings: %d, weight source: %s, unmatched holdings: %d", result.TotalHoldings, result.WeightSource, len(result.Unmatched)),
		fmt.Sprintf("average strategies per holding: %v", result.AverageOverlap),
	}
	for _, s := range result.Summaries {
		lines = append(lines, fmt.Sprintf(
			"#%d %s: %v%% of holdings, %v%% of weight",
			s.Rank,
			s.Strategy,
			s.QualifyingPercent,
			s.WeightedPercent,
		))
	}
	return strings.Join(lines, "\n")
}

func (h gptRepositoryHandler) Enabled() bool {
	return h.GptClient != nil
}

func (h gptRepositoryHandler) Commentary(ctx context.Context, result domain.AlignmentResult) (string, error) {
	if !h.Enabled() {
		return "", nil
	}

	resp, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: prompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: commentaryInput(result),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get commentary from gpt: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

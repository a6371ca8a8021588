package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"smc-analyzer/internal/analysis"
	"smc-analyzer/internal/model"
)

// Client wraps the OpenAI API client. It turns a finished analysis into a
// short narrative; callers fall back to AnalysisResult.Reasoning when the
// remote call fails or no key is configured.
type Client struct {
	client *openai.Client
	logger zerolog.Logger
}

// NewClient creates a new OpenAI client
func NewClient(apiKey string) *Client {
	return &Client{
		client: openai.NewClient(apiKey),
		logger: log.With().Str("component", "openai_client").Logger(),
	}
}

// GenerateCompletion sends a prompt to OpenAI and returns the completion
func (c *Client) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Int("prompt_len", len(prompt)).Msg("Sending prompt to OpenAI")

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)

	if err != nil {
		c.logger.Error().Err(err).Msg("OpenAI API error")
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("OpenAI returned empty choices")
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Narrate asks the model to explain a finished analysis.
func (c *Client) Narrate(ctx context.Context, result *model.AnalysisResult, candles []model.Candle, headlines []model.Headline) (string, error) {
	return c.GenerateCompletion(ctx, BuildAnalysisPrompt(result, candles, headlines))
}

// BuildAnalysisPrompt renders a deterministic analysis plus market context
// into a prompt. The model only explains the numbers; it is not asked to
// produce new levels.
func BuildAnalysisPrompt(result *model.AnalysisResult, candles []model.Candle, headlines []model.Headline) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are a trading assistant. A market-structure analysis of %s produced:\n\n", result.Pair))
	sb.WriteString(fmt.Sprintf("Bias: %s\n", result.Bias))
	sb.WriteString(fmt.Sprintf("Indicators: %s\n", result.Reasoning))
	sb.WriteString(fmt.Sprintf(
		"Levels: entry %.4f, tp1 %.4f, tp2 %.4f, sl %.4f\n",
		result.Recommended.Entry,
		result.Recommended.TP1,
		result.Recommended.TP2,
		result.Recommended.SL,
	))

	if len(candles) > 0 {
		highs := analysis.Highs(candles)
		lows := analysis.Lows(candles)
		hi, lo := highs[0], lows[0]
		for i := 1; i < len(candles); i++ {
			if highs[i] > hi {
				hi = highs[i]
			}
			if lows[i] < lo {
				lo = lows[i]
			}
		}
		sb.WriteString(fmt.Sprintf("Recent range: %.4f - %.4f over %d candles\n", lo, hi, len(candles)))
	}

	for n, zone := range result.Zones {
		if n == 0 {
			sb.WriteString("Order blocks:\n")
		}
		sb.WriteString(fmt.Sprintf("- %s %.4f-%.4f\n", zone.Kind, zone.Low, zone.High))
	}
	for n, gap := range result.Gaps {
		if n == 0 {
			sb.WriteString("Fair value gaps:\n")
		}
		sb.WriteString(fmt.Sprintf("- %s %.4f-%.4f\n", gap.Kind, gap.Bottom, gap.Top))
	}

	if len(headlines) > 0 {
		sb.WriteString("\nRecent headlines:\n")
		for _, h := range headlines {
			sb.WriteString("- " + h.Title + "\n")
		}
	}

	sb.WriteString("\nExplain this assessment in 2-3 sentences for a trader. Do not change the bias or the levels.")
	return sb.String()
}

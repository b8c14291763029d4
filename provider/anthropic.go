package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic implements Client over the Anthropic Messages API.
type Anthropic struct {
	client anthropic.Client
}

// NewAnthropic returns a client authenticated with apiKey.
func NewAnthropic(apiKey string) *Anthropic {
	return &Anthropic{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

// Complete runs one Messages API call.
func (a *Anthropic) Complete(ctx context.Context, req Request) ([]Segment, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: req.MaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: toMessageParams(req.Messages),
	}
	if req.Thinking != nil {
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(req.Thinking.BudgetTokens)
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %s", friendlyError(err))
	}

	segments := make([]Segment, 0, len(resp.Content))
	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			segments = append(segments, Segment{Type: SegmentText, Text: v.Text})
		case anthropic.ThinkingBlock:
			segments = append(segments, Segment{Type: "thinking", Text: v.Thinking})
		default:
			segments = append(segments, Segment{Type: string(block.Type)})
		}
	}
	return segments, nil
}

func toMessageParams(messages []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return out
}

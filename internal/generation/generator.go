// Package generation turns a terminal pipeline result into client-facing
// prose through an external language model. Like extraction, the model call
// is an opaque boundary; the pipeline core imposes no formatting of its own.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ahale/go-scoper/internal/domain"
)

// ErrEmptyResponse indicates the model returned no completion choices.
var ErrEmptyResponse = errors.New("generation: empty model response")

// Generator produces the proposal narrative for a completed pipeline run.
type Generator interface {
	GenerateNarrative(ctx context.Context, result domain.ProposalResult) (string, error)
}

const generationSystemPrompt = `You are creating a professional, executive-level proposal for a software project. You receive the structured scoping data: project context, deliverables, a calculated effort estimate, and consistency warnings.

Write a proposal with these sections in this order: About This Proposal, Executive Summary, Scope of Work, Project Timeline, Investment, Assumptions and Risks, Next Steps.

Ground the timeline and investment sections in the calculated estimate; never invent different numbers. Surface every consistency warning in the Assumptions and Risks section, rephrased professionally. State clearly which inputs were missing and what was assumed in their place.`

// OpenAIGenerator implements Generator with the official openai-go SDK.
type OpenAIGenerator struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIGenerator creates a generator for the given model. The API key is
// mandatory; a base URL override is optional.
func NewOpenAIGenerator(model, apiKey, baseURL string) (*OpenAIGenerator, error) {
	if model == "" {
		return nil, errors.New("generation: model is required")
	}
	if apiKey == "" {
		return nil, errors.New("generation: api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIGenerator{model: model, opts: opts}, nil
}

// GenerateNarrative renders the scoping result as a prompt and asks the
// model for the proposal prose.
func (g *OpenAIGenerator) GenerateNarrative(ctx context.Context, result domain.ProposalResult) (string, error) {
	client := openai.NewClient(g.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(generationSystemPrompt),
			openai.UserMessage(NarrativePrompt(result)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("generation: completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// NarrativePrompt renders the structured result as the user message for the
// generation model. Absent fields are labeled "Not specified" so the model
// states assumptions instead of hallucinating values.
func NarrativePrompt(result domain.ProposalResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project Type: %s\n", orNotSpecified(result.Facts.ProjectType))
	fmt.Fprintf(&b, "Industry: %s\n", orNotSpecified(result.Facts.Industry))
	fmt.Fprintf(&b, "Deliverables: %s\n", orNotSpecified(strings.Join(result.Facts.Deliverables, ", ")))
	fmt.Fprintf(&b, "Timeline hints: %s\n", orNotSpecified(result.Facts.TimelineHint))
	fmt.Fprintf(&b, "Budget hints: %s\n", orNotSpecified(result.Facts.BudgetHint))
	fmt.Fprintf(&b, "Tech stack hints: %s\n", orNotSpecified(strings.Join(result.Facts.TechHints, ", ")))

	if est := result.Estimate; est != nil {
		fmt.Fprintf(&b, "\nCalculated estimate:\n")
		fmt.Fprintf(&b, "- Estimated effort: %d hours\n", est.TotalHours)
		fmt.Fprintf(&b, "- Calculated timeline: %s\n", est.TimelineLabel)
		fmt.Fprintf(&b, "- Cost range: %s\n", est.CostLabel)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "\nConsistency warnings:\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "- [%s] %s\n", w.Kind, w.Message)
		}
	}

	fmt.Fprintf(&b, "\nOriginal request:\n%s\n", result.Facts.RawUserText)
	return b.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

// Package extraction converts free-form user text into structured project
// facts through an external language model. The model call is an opaque
// request/response boundary; everything downstream operates only on the
// resulting ProjectFacts.
package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ahale/go-scoper/internal/domain"
)

// Extraction boundary errors.
var (
	// ErrEmptyResponse indicates the model returned no completion choices.
	ErrEmptyResponse = errors.New("extraction: empty model response")

	// ErrMalformedResponse indicates the model reply could not be parsed
	// into project facts.
	ErrMalformedResponse = errors.New("extraction: malformed model response")
)

// Extractor converts raw user text into structured project facts.
type Extractor interface {
	ExtractFacts(ctx context.Context, userInput string) (domain.ProjectFacts, error)
}

const extractionSystemPrompt = `You are an expert at extracting structured information from software project requirements. You excel at handling vague inputs by inferring context, identifying industries, extracting implicit technologies, and breaking down compound deliverables.

Extract the following fields from the user's request and respond with a single JSON object, no prose:
{
  "project_type": "overall project category (E-commerce, SaaS, Mobile App, Website, Custom Software) or null if unclear",
  "industry": "industry/sector this project serves, or null if unclear",
  "deliverables": ["individual feature phrases only, never the project type itself; split compound requests"],
  "timeline_hints": "any timeline expectation stated or implied, or null",
  "budget_hints": "any budget expectation stated or implied, or null",
  "tech_hints": ["technologies mentioned or clearly implied"]
}

Leave a field null or empty when the request gives you nothing to work with; an empty field is itself meaningful.`

// OpenAIExtractor implements Extractor with the official openai-go SDK.
type OpenAIExtractor struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIExtractor creates an extractor for the given model. The API key
// is mandatory; a base URL override is optional.
func NewOpenAIExtractor(model, apiKey, baseURL string) (*OpenAIExtractor, error) {
	if model == "" {
		return nil, errors.New("extraction: model is required")
	}
	if apiKey == "" {
		return nil, errors.New("extraction: api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIExtractor{model: model, opts: opts}, nil
}

// ExtractFacts asks the model for structured facts and parses its JSON
// reply. Empty input short-circuits to empty facts; that is the "too vague"
// signal downstream, not an error.
func (e *OpenAIExtractor) ExtractFacts(ctx context.Context, userInput string) (domain.ProjectFacts, error) {
	if strings.TrimSpace(userInput) == "" {
		return domain.ProjectFacts{RawUserText: userInput}, nil
	}

	client := openai.NewClient(e.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractionSystemPrompt),
			openai.UserMessage(userInput),
		},
	})
	if err != nil {
		return domain.ProjectFacts{}, fmt.Errorf("extraction: completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.ProjectFacts{}, ErrEmptyResponse
	}

	facts, err := ParseFactsResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return domain.ProjectFacts{}, err
	}
	facts.RawUserText = userInput
	return facts, nil
}

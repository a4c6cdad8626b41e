package worker

import (
	"fmt"

	"github.com/ahale/go-scoper/internal/configuration"
	"github.com/ahale/go-scoper/internal/extraction"
	"github.com/ahale/go-scoper/internal/generation"
)

// InitializeExtractor creates the extraction collaborator from
// configuration. The API key is resolved from the environment at startup so
// it never travels through configuration files.
func InitializeExtractor(cfg *configuration.Config) (extraction.Extractor, error) {
	apiKey, err := cfg.Extraction.APIKey()
	if err != nil {
		return nil, fmt.Errorf("initialize extractor: %w", err)
	}
	extractor, err := extraction.NewOpenAIExtractor(cfg.Extraction.Model, apiKey, cfg.Extraction.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("initialize extractor: %w", err)
	}
	return extractor, nil
}

// InitializeGenerator creates the generation collaborator from
// configuration.
func InitializeGenerator(cfg *configuration.Config) (generation.Generator, error) {
	apiKey, err := cfg.Generation.APIKey()
	if err != nil {
		return nil, fmt.Errorf("initialize generator: %w", err)
	}
	generator, err := generation.NewOpenAIGenerator(cfg.Generation.Model, apiKey, cfg.Generation.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("initialize generator: %w", err)
	}
	return generator, nil
}

// Application initialization and setup.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// App holds the application state and dependencies.
type App struct {
	Config       *Config
	Client       openai.Client
	Places       *PlaceTable
	Tools        *Tools
	SystemPrompt string
	Ctx          context.Context
}

// NewApp initializes and returns a new App instance.
func NewApp(config *Config) (*App, error) {
	if config.Verbose {
		log.Printf("[verbose] app init: max_turns=%d stream=%v model=%s base_url=%s forecast_base_url=%s", config.MaxTurns, config.Stream, config.OpenAIModel, config.OpenAIBaseURL, config.ForecastBaseURL)
	}
	// Validate required configuration before the loop starts
	if config.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if strings.TrimSpace(config.OpenAIModel) == "" {
		return nil, errors.New("OPENAI_MODEL is not set")
	}
	if strings.TrimSpace(config.ForecastBaseURL) == "" {
		return nil, errors.New("forecast base URL is empty")
	}

	// Load the place table
	places, err := LoadPlaces()
	if err != nil {
		return nil, fmt.Errorf("load places: %w", err)
	}
	if config.Verbose {
		log.Printf("[verbose] loaded %d place(s)", len(places.Names()))
	}

	// Build system prompt
	systemPrompt := BuildSystemPrompt(places)

	// Initialize OpenAI client
	client := newOpenAIClient(config)

	// Create context
	ctx := context.Background()

	// Build tools
	forecast := NewForecastClient(config.ForecastBaseURL)
	tools := NewTools(ToolContext{
		Verbose: config.Verbose,
		Ctx:     ctx,
	}, places, forecast)
	if config.Verbose {
		log.Printf("[verbose] tools registered=%d", len(tools.Definitions()))
	}

	return &App{
		Config:       config,
		Client:       client,
		Places:       places,
		Tools:        tools,
		SystemPrompt: systemPrompt,
		Ctx:          ctx,
	}, nil
}

// newOpenAIClient builds a client with configuration from Config.
func newOpenAIClient(config *Config) openai.Client {
	opts := []option.RequestOption{}
	if config.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.OpenAIBaseURL))
	}
	if config.OpenAIAPIKey != "" {
		opts = append(opts, option.WithAPIKey(config.OpenAIAPIKey))
	}
	return openai.NewClient(opts...)
}

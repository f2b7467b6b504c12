// Tests for application initialization.
package main

import (
	"strings"
	"testing"
)

// TestNewAppMissingConfig ensures missing credentials fail before the loop starts.
func TestNewAppMissingConfig(t *testing.T) {
	_, err := NewApp(&Config{
		MaxTurns:        10,
		ForecastBaseURL: defaultForecastBaseURL,
		OpenAIModel:     "gpt-test",
	})
	if err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("expected missing API key error, got %v", err)
	}

	_, err = NewApp(&Config{
		MaxTurns:        10,
		ForecastBaseURL: defaultForecastBaseURL,
		OpenAIAPIKey:    "test-key",
	})
	if err == nil || !strings.Contains(err.Error(), "OPENAI_MODEL") {
		t.Fatalf("expected missing model error, got %v", err)
	}
}

// TestNewAppWiresTools checks a valid config produces a ready App.
func TestNewAppWiresTools(t *testing.T) {
	app, err := NewApp(&Config{
		MaxTurns:        10,
		ForecastBaseURL: defaultForecastBaseURL,
		OpenAIAPIKey:    "test-key",
		OpenAIModel:     "gpt-test",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if len(app.Tools.Definitions()) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(app.Tools.Definitions()))
	}
	if strings.TrimSpace(app.SystemPrompt) == "" {
		t.Fatalf("empty system prompt")
	}
	if len(app.Places.Names()) == 0 {
		t.Fatalf("empty place table")
	}
}

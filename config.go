// Configuration management for the application.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultForecastBaseURL is the JMA endpoint serving one forecast document
// per six-digit area code.
const defaultForecastBaseURL = "https://www.jma.go.jp/bosai/forecast/data/forecast"

// Config holds all application configuration from environment variables and command-line flags.
type Config struct {
	// Command-line flags
	MaxTurns        int
	Stream          bool
	Verbose         bool
	ForecastBaseURL string

	// Environment variables
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// ParseConfig parses command-line flags and environment variables to create a Config.
func ParseConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Read environment variables
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))

	// Parse command-line flags
	var (
		maxTurns        = flag.Int("max_turns", 10, "Max tool-call turns per user input")
		stream          = flag.Bool("stream", false, "Stream assistant output")
		verbose         = flag.Bool("verbose", false, "Verbose tool-call logging")
		forecastBaseURL = flag.String("forecast_base_url", defaultForecastBaseURL, "Base URL for forecast documents")
	)
	flag.Parse()

	return &Config{
		MaxTurns:        *maxTurns,
		Stream:          *stream,
		Verbose:         *verbose,
		ForecastBaseURL: strings.TrimRight(strings.TrimSpace(*forecastBaseURL), "/"),
		OpenAIAPIKey:    apiKey,
		OpenAIBaseURL:   baseURL,
		OpenAIModel:     model,
	}
}

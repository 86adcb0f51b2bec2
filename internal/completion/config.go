// Package completion provides a client for OpenAI-compatible chat
// completion endpoints.
package completion

import (
	"errors"
	"os"
)

// Provider defaults. The primary provider serves sensor recommendations;
// the secondary one serves queue suggestions when its key is configured.
const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	OpenAIModel   = "gpt-3.5-turbo"

	GroqBaseURL = "https://api.groq.com/openai/v1"
	GroqModel   = "llama-3.3-70b-versatile"
)

// ErrMissingAPIKey is returned when OPENAI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing OPENAI_API_KEY environment variable")

// Config holds completion provider credentials.
type Config struct {
	OpenAIKey string
	GroqKey   string // optional secondary provider
}

// LoadConfig reads provider credentials from environment variables.
// Returns ErrMissingAPIKey if OPENAI_API_KEY is not set; GROQ_API_KEY is
// optional.
func LoadConfig() (*Config, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{
		OpenAIKey: key,
		GroqKey:   os.Getenv("GROQ_API_KEY"),
	}, nil
}

// Package config loads environment-driven settings for leetvoice.
//
// Settings come from the process environment, optionally seeded from a
// .env file (the assistant is usually launched from a shell next to one).
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config stores environment-driven settings for the assistant.
type Config struct {
	// OpenAIKey authenticates against the reasoning service. When empty
	// and no local base URL is set, the assistant runs fallback-only.
	OpenAIKey string `env:"OPENAI_API_KEY"`
	// OpenAIBaseURL overrides the reasoning service endpoint.
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	// Model is the chat model used for both protocol phases.
	Model string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// OllamaBaseURL, when set, adds a local OpenAI-compatible provider
	// behind the primary one (e.g. "http://localhost:11434/v1").
	OllamaBaseURL string `env:"OLLAMA_BASE_URL"`
	// OllamaModel is the model served by the local provider.
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"llama3"`

	// LeetCodeSession is the LEETCODE_SESSION cookie for authenticated
	// GraphQL queries. Public queries work without it.
	LeetCodeSession string `env:"LEETCODE_SESSION"`
	// LeetCodeUsername is the default identity substituted into tools
	// that need a username the question did not supply.
	LeetCodeUsername string `env:"LEETCODE_USERNAME"`

	// ToolTimeout bounds each individual tool invocation.
	ToolTimeout time.Duration `env:"TOOL_TIMEOUT" envDefault:"10s"`
	// LogLevel sets the logger level.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into Config. A .env file in the
// working directory is applied first when present; a missing file is
// not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}

// ReasoningConfigured reports whether a reasoning service can be built
// from this config. Without one the assistant answers from the fallback
// responder only.
func (c Config) ReasoningConfigured() bool {
	return c.OpenAIKey != "" || c.OllamaBaseURL != ""
}

// Validate checks settings that would otherwise fail at first use.
func (c Config) Validate() error {
	if c.ToolTimeout <= 0 {
		return errors.New("config: TOOL_TIMEOUT must be positive")
	}
	if c.Model == "" {
		return errors.New("config: OPENAI_MODEL must not be empty")
	}
	return nil
}

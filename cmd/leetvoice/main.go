// leetvoice - voice-assistant QA core for LeetCode, driven from stdin.
// Audio capture and playback live in the surrounding system; this
// binary wires config, providers, and the assistant together.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dviresh/go-leetvoice/internal/config"
	"github.com/dviresh/go-leetvoice/internal/log"
	"github.com/dviresh/go-leetvoice/pkg/assistant"
	"github.com/dviresh/go-leetvoice/pkg/inference"
	"github.com/dviresh/go-leetvoice/pkg/leetcode"
)

func main() {
	model := flag.String("model", "", "Chat model (overrides OPENAI_MODEL)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.LogLevel)

	provider, err := buildProvider(cfg)
	if err != nil {
		log.Error("provider setup failed", "error", err)
		os.Exit(1)
	}
	if provider == nil {
		log.Warn("no reasoning service configured, fallback responses only")
	} else {
		defer provider.Close()
	}

	problems := leetcode.NewClient(
		leetcode.WithSession(cfg.LeetCodeSession),
		leetcode.WithLogger(log.L()),
	)

	opts := []assistant.Option{
		assistant.WithProblemService(problems),
		assistant.WithDefaultUsername(cfg.LeetCodeUsername),
		assistant.WithToolTimeout(cfg.ToolTimeout),
		assistant.WithLogger(log.L()),
	}
	if provider != nil {
		opts = append(opts, assistant.WithProvider(provider))
	}
	a := assistant.New(opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run(ctx, a)
}

// buildProvider assembles the reasoning service from config: the
// OpenAI SDK provider when a key is set, an OpenAI-compatible local
// provider when OLLAMA_BASE_URL is set, chained in that order when
// both are present. Returns nil when neither is configured.
func buildProvider(cfg config.Config) (inference.Provider, error) {
	var providers []inference.Provider

	if cfg.OpenAIKey != "" {
		p, err := inference.NewOpenAI(
			inference.WithAPIKey(cfg.OpenAIKey),
			inference.WithBaseURL(cfg.OpenAIBaseURL),
			inference.WithModel(cfg.Model),
			inference.WithLogger(log.L()),
		)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	if cfg.OllamaBaseURL != "" {
		p, err := inference.NewClient(
			inference.WithBaseURL(cfg.OllamaBaseURL),
			inference.WithModel(cfg.OllamaModel),
			inference.WithLogger(log.L()),
		)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	switch len(providers) {
	case 0:
		return nil, nil
	case 1:
		return providers[0], nil
	default:
		return inference.NewChainWithLogger(log.L(), providers...)
	}
}

// run reads questions line by line and prints answers until EOF or a
// termination signal.
func run(ctx context.Context, a *assistant.Assistant) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Ask me about LeetCode (Ctrl-D to quit).")
	fmt.Print("> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		question := strings.TrimSpace(scanner.Text())
		fmt.Println(a.Answer(ctx, question))
		fmt.Print("> ")
	}
}

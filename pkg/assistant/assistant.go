// Package assistant answers natural-language questions about LeetCode.
//
// The orchestrator routes each question either through the tool-calling
// dispatcher (when a reasoning service is configured) or through a
// deterministic fallback responder, and always produces non-empty text:
//
//	a := assistant.New(
//	    assistant.WithProvider(provider),
//	    assistant.WithProblemService(leetcode.NewClient()),
//	    assistant.WithDefaultUsername("dviresh1993"),
//	)
//	fmt.Println(a.Answer(ctx, "what's today's daily challenge?"))
package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dviresh/go-leetvoice/pkg/inference"
	"github.com/dviresh/go-leetvoice/pkg/leetcode"
)

// EmptyQuestionReply is returned for empty or whitespace-only input,
// before any service is consulted.
const EmptyQuestionReply = "I didn't hear anything. Could you please repeat your question?"

// DefaultToolTimeout bounds a single tool invocation.
const DefaultToolTimeout = 10 * time.Second

// ProblemService is the data client the tools are built on. All five
// operations return structured data or an error; none may panic.
type ProblemService interface {
	DailyChallenge(ctx context.Context) (*leetcode.DailyChallenge, error)
	Problem(ctx context.Context, titleSlug string) (*leetcode.Problem, error)
	Search(ctx context.Context, keywords, difficulty string, limit int) (*leetcode.SearchResult, error)
	UserProfile(ctx context.Context, username string) (*leetcode.UserProfile, error)
	RecentSubmissions(ctx context.Context, username string, limit int) (*leetcode.Submissions, error)
}

// Assistant is the top-level question answerer.
type Assistant struct {
	// dispatcher is nil when no reasoning service is configured; the
	// choice is made once, at construction.
	dispatcher *Dispatcher
	fallback   *Fallback
	logger     *slog.Logger
}

type options struct {
	provider    inference.Provider
	problems    ProblemService
	defaultUser string
	toolTimeout time.Duration
	logger      *slog.Logger
}

// Option configures an Assistant.
type Option func(*options)

// WithProvider sets the reasoning service. Without one the assistant
// answers from the fallback responder only.
func WithProvider(p inference.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithProblemService sets the LeetCode data client used by the tools.
func WithProblemService(s ProblemService) Option {
	return func(o *options) { o.problems = s }
}

// WithDefaultUsername sets the identity substituted into tools that
// need a username the question did not supply.
func WithDefaultUsername(username string) Option {
	return func(o *options) { o.defaultUser = username }
}

// WithToolTimeout bounds each individual tool invocation.
func WithToolTimeout(d time.Duration) Option {
	return func(o *options) { o.toolTimeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates an Assistant. The tool registry is built here and is
// read-only afterwards.
func New(opts ...Option) *Assistant {
	cfg := options{
		toolTimeout: DefaultToolTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger.With("component", "assistant")

	a := &Assistant{
		fallback: NewFallback(),
		logger:   logger,
	}

	if cfg.provider != nil {
		a.dispatcher = &Dispatcher{
			provider:    cfg.provider,
			problems:    cfg.problems,
			registry:    NewRegistry(),
			defaultUser: cfg.defaultUser,
			toolTimeout: cfg.toolTimeout,
			logger:      logger.With("component", "assistant.dispatcher"),
		}
	}

	return a
}

// Answer responds to a question. It always returns non-empty text:
// dispatcher failures are logged and absorbed by the fallback
// responder, never propagated. Each call starts a fresh conversation.
func (a *Assistant) Answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return EmptyQuestionReply
	}

	qlog := a.logger.With("question_id", uuid.NewString())

	if a.dispatcher != nil {
		answer, err := a.dispatcher.Answer(ctx, question)
		if err == nil {
			if answer = strings.TrimSpace(answer); answer != "" {
				return answer
			}
			// A successful round with no text is still a failure.
			qlog.Warn("dispatcher returned empty answer, using fallback")
		} else {
			qlog.Warn("dispatcher failed, using fallback", "error", err)
		}
	}

	return a.fallback.Respond(question)
}

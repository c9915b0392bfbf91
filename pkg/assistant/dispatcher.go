package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dviresh/go-leetvoice/pkg/inference"
)

// System instructions for the two protocol phases.
const (
	decideInstruction = "You are a helpful voice assistant with access to LeetCode data. " +
		"Use the available functions when users ask about LeetCode problems, daily challenges, " +
		"or coding questions. Give concise, conversational responses (1-3 sentences)."
	synthesizeInstruction = "You are a helpful voice assistant. " +
		"Give concise, conversational responses (1-3 sentences)."
)

// Request defaults for both phases. Answers are spoken aloud, so the
// token budget stays small.
const (
	answerMaxTokens   = 150
	answerTemperature = 0.7
)

// errNoUsername is the per-tool failure for profile/submission tools
// when neither the arguments nor the configuration supply a username.
var errNoUsername = errors.New("no username available")

// Dispatcher runs the two-phase tool-calling protocol: one reasoning
// call to decide what to do, tool execution, and one reasoning call to
// say the result. It makes at most two reasoning requests per question
// and never retries a phase.
type Dispatcher struct {
	provider    inference.Provider
	problems    ProblemService
	registry    *Registry
	defaultUser string
	toolTimeout time.Duration
	logger      *slog.Logger
}

// toolResult carries one tool outcome back to the synthesize phase,
// correlated to its request by call id. The payload is JSON: either the
// data client result or {"error": "..."}.
type toolResult struct {
	callID  string
	payload string
}

// Answer runs the protocol for one question. Any reasoning-service
// failure is returned to the caller; individual tool failures are not —
// they travel to the synthesize phase as error payloads.
func (d *Dispatcher) Answer(ctx context.Context, question string) (string, error) {
	decision, err := d.provider.Chat(ctx, &inference.ChatRequest{
		Messages: []inference.Message{
			inference.NewSystemMessage(decideInstruction),
			inference.NewUserMessage(question),
		},
		Tools:       d.registry.Declarations(),
		ToolChoice:  "auto",
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("decide phase: %w", err)
	}

	calls := decision.Message.ToolCalls
	if len(calls) == 0 {
		// Direct answer, one round trip.
		text := strings.TrimSpace(decision.Message.Content)
		if text == "" {
			return "", fmt.Errorf("decide phase: %w", inference.ErrEmptyCompletion)
		}
		return text, nil
	}

	results := d.executeAll(ctx, calls)

	// The synthesize conversation replays the question, the service's
	// own tool-call turn, and one tool turn per result.
	messages := []inference.Message{
		inference.NewSystemMessage(synthesizeInstruction),
		inference.NewUserMessage(question),
		decision.Message,
	}
	for _, r := range results {
		messages = append(messages, inference.NewToolMessage(r.callID, r.payload))
	}

	final, err := d.provider.Chat(ctx, &inference.ChatRequest{
		Messages:    messages,
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("synthesize phase: %w", err)
	}

	text := strings.TrimSpace(final.Message.Content)
	if text == "" {
		return "", fmt.Errorf("synthesize phase: %w", inference.ErrEmptyCompletion)
	}
	return text, nil
}

// executeAll runs every requested tool concurrently and returns one
// result per call, in request order. The calls are independent of each
// other, so a failing or slow tool never blocks its siblings.
func (d *Dispatcher) executeAll(ctx context.Context, calls []inference.ToolCall) []toolResult {
	results := make([]toolResult, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call inference.ToolCall) {
			defer wg.Done()
			results[i] = toolResult{
				callID:  call.ID,
				payload: d.execute(ctx, call),
			}
		}(i, call)
	}
	wg.Wait()

	return results
}

// execute validates and runs a single tool call, always producing a
// JSON payload.
func (d *Dispatcher) execute(ctx context.Context, call inference.ToolCall) string {
	decl, ok := d.registry.Lookup(call.Name)
	if !ok {
		d.logger.Warn("reasoning service requested unknown tool", "tool", call.Name)
		return errorPayload("unknown tool")
	}

	args := map[string]interface{}{}
	if strings.TrimSpace(call.Arguments) != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return errorPayload("invalid arguments: " + err.Error())
		}
	}

	payload, err := d.invokeWithTimeout(ctx, decl.Kind, args)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			d.logger.Warn("tool timed out", "tool", call.Name, "timeout", d.toolTimeout)
			return errorPayload("timeout")
		}
		d.logger.Warn("tool failed", "tool", call.Name, "error", err)
		return errorPayload(err.Error())
	}
	return payload
}

// invokeWithTimeout bounds one tool invocation. The invocation runs in
// its own goroutine so that a data client ignoring context cancellation
// still cannot stall the batch.
func (d *Dispatcher) invokeWithTimeout(ctx context.Context, kind ToolKind, args map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.toolTimeout)
	defer cancel()

	type outcome struct {
		payload string
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		payload, err := d.invoke(ctx, kind, args)
		done <- outcome{payload, err}
	}()

	select {
	case out := <-done:
		return out.payload, out.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// invoke maps one tool kind onto its data client operation. The switch
// is exhaustive over the registry's kinds.
func (d *Dispatcher) invoke(ctx context.Context, kind ToolKind, args map[string]interface{}) (string, error) {
	switch kind {
	case ToolDailyChallenge:
		return marshalResult(d.problems.DailyChallenge(ctx))

	case ToolProblem:
		slug := stringArg(args, "title_slug")
		if slug == "" {
			return "", errors.New("missing title_slug")
		}
		return marshalResult(d.problems.Problem(ctx, slug))

	case ToolSearchProblems:
		return marshalResult(d.problems.Search(ctx,
			stringArg(args, "keywords"),
			stringArg(args, "difficulty"),
			intArg(args, "limit", 5),
		))

	case ToolUserProfile:
		username := stringArg(args, "username")
		if username == "" {
			username = d.defaultUser
		}
		if username == "" {
			return "", errNoUsername
		}
		return marshalResult(d.problems.UserProfile(ctx, username))

	case ToolRecentSubmissions:
		username := stringArg(args, "username")
		if username == "" {
			username = d.defaultUser
		}
		if username == "" {
			return "", errNoUsername
		}
		return marshalResult(d.problems.RecentSubmissions(ctx, username, intArg(args, "limit", 10)))

	default:
		// Unreachable while the registry and this switch stay in sync.
		return "", fmt.Errorf("unhandled tool kind %d", kind)
	}
}

// marshalResult serializes a data client result for the tool turn.
func marshalResult(v interface{}, err error) (string, error) {
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}

// errorPayload builds the {"error": "..."} tool payload.
func errorPayload(msg string) string {
	data, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		// A flat string map cannot fail to marshal.
		return `{"error":"internal"}`
	}
	return string(data)
}

// stringArg extracts an optional string argument.
func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// intArg extracts an optional integer argument, tolerating the float64
// that encoding/json produces for JSON numbers.
func intArg(args map[string]interface{}, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

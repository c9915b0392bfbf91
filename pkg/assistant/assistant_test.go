package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/dviresh/go-leetvoice/pkg/inference"
	"github.com/dviresh/go-leetvoice/pkg/leetcode"
)

func TestAnswerEmptyQuestion(t *testing.T) {
	ctx := context.Background()
	mock := inference.NewMock()
	problems := newMockProblems()

	a := New(WithProvider(mock), WithProblemService(problems))

	for _, q := range []string{"", "   ", "\t\n"} {
		if got := a.Answer(ctx, q); got != EmptyQuestionReply {
			t.Errorf("Answer(%q) = %q, want %q", q, got, EmptyQuestionReply)
		}
	}

	if n := mock.CallCount("Chat"); n != 0 {
		t.Errorf("expected 0 Chat calls for empty input, got %d", n)
	}
	if n := problems.totalCalls(); n != 0 {
		t.Errorf("expected 0 data client calls for empty input, got %d", n)
	}
}

func TestAnswerFallbackWhenNoProvider(t *testing.T) {
	ctx := context.Background()
	a := New(WithProblemService(newMockProblems()))

	got := a.Answer(ctx, "hello")
	want := "Hello! I'm your voice assistant. I can help with LeetCode problems and general questions!"
	if got != want {
		t.Errorf("Answer(hello) = %q, want %q", got, want)
	}
}

func TestAnswerFallbackOnDispatcherError(t *testing.T) {
	ctx := context.Background()
	mock := inference.WithError(errors.New("service unreachable"))

	a := New(WithProvider(mock), WithProblemService(newMockProblems()))

	got := a.Answer(ctx, "hello")
	want := "Hello! I'm your voice assistant. I can help with LeetCode problems and general questions!"
	if got != want {
		t.Errorf("expected fallback reply, got %q", got)
	}
}

func TestAnswerFallbackOnEmptyCompletion(t *testing.T) {
	ctx := context.Background()
	mock := inference.NewScriptedMock(textResponse("   "))

	a := New(WithProvider(mock), WithProblemService(newMockProblems()))

	got := a.Answer(ctx, "thanks")
	if got != "You're welcome!" {
		t.Errorf("expected fallback reply, got %q", got)
	}
}

func TestAnswerUsesDispatcherText(t *testing.T) {
	ctx := context.Background()
	mock := inference.NewScriptedMock(textResponse("  Paris is the capital of France.  "))

	a := New(WithProvider(mock), WithProblemService(newMockProblems()))

	got := a.Answer(ctx, "what is the capital of France?")
	if got != "Paris is the capital of France." {
		t.Errorf("Answer = %q", got)
	}
	if n := mock.CallCount("Chat"); n != 1 {
		t.Errorf("expected 1 Chat call for a direct answer, got %d", n)
	}
}

func TestAnswerNeverEmpty(t *testing.T) {
	ctx := context.Background()
	a := New(WithProblemService(newMockProblems()))

	questions := []string{
		"hello", "what is recursion", "calculate 2 plus 2",
		"xyzzy", "goodbye", "anything at all",
	}
	for _, q := range questions {
		if got := a.Answer(ctx, q); got == "" {
			t.Errorf("Answer(%q) returned empty text", q)
		}
	}
}

func TestAnswerIdempotent(t *testing.T) {
	ctx := context.Background()

	// Deterministic script: tool call on the decide phase, fixed text
	// on the synthesize phase, independent of call history.
	mock := inference.NewMock()
	mock.ChatFunc = func(ctx context.Context, req *inference.ChatRequest) (*inference.ChatResponse, error) {
		if len(req.Tools) > 0 {
			return toolCallResponse(inference.ToolCall{
				ID:        "call_1",
				Name:      "get_daily_challenge",
				Arguments: "{}",
			}), nil
		}
		return textResponse("Today's challenge is Two Sum."), nil
	}

	problems := newMockProblems()
	problems.dailyFunc = func(ctx context.Context) (*leetcode.DailyChallenge, error) {
		return &leetcode.DailyChallenge{Title: "Two Sum", Difficulty: "Easy"}, nil
	}

	a := New(WithProvider(mock), WithProblemService(problems))

	first := a.Answer(ctx, "what's the daily challenge?")
	second := a.Answer(ctx, "what's the daily challenge?")
	if first != second {
		t.Errorf("answers differ across calls: %q vs %q", first, second)
	}
	if first != "Today's challenge is Two Sum." {
		t.Errorf("unexpected answer %q", first)
	}
}

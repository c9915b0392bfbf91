package inference

import (
	"context"
	"errors"
	"testing"
)

func TestChainRequiresProviders(t *testing.T) {
	if _, err := NewChain(); err == nil {
		t.Error("expected error for empty chain")
	}
}

func TestChainFirstProviderWins(t *testing.T) {
	primary := NewMock()
	secondary := NewMock()

	chain, err := NewChain(primary, secondary)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	resp, err := chain.Chat(context.Background(), &ChatRequest{
		Messages: []Message{NewUserMessage("hi")},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Message.Content != "Mock response" {
		t.Errorf("content = %q", resp.Message.Content)
	}
	if n := secondary.CallCount("Chat"); n != 0 {
		t.Errorf("secondary called %d times while primary healthy", n)
	}
}

func TestChainFallsBack(t *testing.T) {
	primary := WithError(errors.New("connection refused"))
	secondary := NewMock()

	chain, err := NewChain(primary, secondary)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	resp, err := chain.Chat(context.Background(), &ChatRequest{
		Messages: []Message{NewUserMessage("hi")},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if resp.Message.Content != "Mock response" {
		t.Errorf("content = %q", resp.Message.Content)
	}
	if n := secondary.CallCount("Chat"); n != 1 {
		t.Errorf("secondary called %d times, want 1", n)
	}
}

func TestChainAllFail(t *testing.T) {
	chain, err := NewChain(
		WithError(errors.New("first down")),
		WithError(errors.New("second down")),
	)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	_, err = chain.Chat(context.Background(), &ChatRequest{
		Messages: []Message{NewUserMessage("hi")},
	})
	if err == nil {
		t.Fatal("expected error when all providers fail")
	}

	var chainErr *ChainError
	if !errors.As(err, &chainErr) {
		t.Fatalf("error type = %T", err)
	}
	if len(chainErr.Errors) != 2 {
		t.Errorf("collected %d errors, want 2", len(chainErr.Errors))
	}
}

func TestChainStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	primary := &Mock{
		ChatFunc: func(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
			cancel()
			return nil, errors.New("interrupted")
		},
	}
	secondary := NewMock()

	chain, err := NewChain(primary, secondary)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}

	_, err = chain.Chat(ctx, &ChatRequest{Messages: []Message{NewUserMessage("hi")}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if n := secondary.CallCount("Chat"); n != 0 {
		t.Errorf("secondary called %d times after cancellation", n)
	}
}

func TestChainHealth(t *testing.T) {
	chain, err := NewChain(WithError(errors.New("down")), NewMock())
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}
	if err := chain.Health(context.Background()); err != nil {
		t.Errorf("Health failed with one healthy provider: %v", err)
	}

	allDown, err := NewChain(WithError(errors.New("down")))
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}
	if err := allDown.Health(context.Background()); err == nil {
		t.Error("Health succeeded with no healthy providers")
	}
}

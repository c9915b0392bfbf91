package inference

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
}

func TestConfigApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Apply(
		WithBaseURL("http://localhost:11434/v1"),
		WithAPIKey("k"),
		WithModel("llama3.2"),
		WithMaxTokens(256),
		WithTemperature(0.2),
		WithTimeout(5*time.Second),
		WithRetry(1, 50*time.Millisecond),
	)

	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Model != "llama3.2" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxTokens != 256 || cfg.Temperature != 0.2 {
		t.Errorf("request defaults = %d/%v", cfg.MaxTokens, cfg.Temperature)
	}
	if cfg.MaxRetries != 1 || cfg.RetryDelay != 50*time.Millisecond {
		t.Errorf("retry = %d/%v", cfg.MaxRetries, cfg.RetryDelay)
	}
}

func TestMessageConstructors(t *testing.T) {
	sys := NewSystemMessage("be brief")
	if sys.Role != RoleSystem || sys.Content != "be brief" {
		t.Errorf("system = %+v", sys)
	}

	user := NewUserMessage("hi")
	if user.Role != RoleUser {
		t.Errorf("user role = %q", user.Role)
	}

	tool := NewToolMessage("call_1", `{"ok":true}`)
	if tool.Role != RoleTool || tool.ToolCallID != "call_1" {
		t.Errorf("tool = %+v", tool)
	}
}

func TestNewTool(t *testing.T) {
	tl := NewTool("get_problem", "Look up a problem", map[string]interface{}{"type": "object"})
	if tl.Type != "function" {
		t.Errorf("type = %q", tl.Type)
	}
	if tl.Function.Name != "get_problem" || tl.Function.Description != "Look up a problem" {
		t.Errorf("function = %+v", tl.Function)
	}
}

func TestMockRecordsCalls(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	req := &ChatRequest{Messages: []Message{NewUserMessage("hi")}}
	if _, err := m.Chat(ctx, req); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if err := m.Health(ctx); err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	if n := m.CallCount("Chat"); n != 1 {
		t.Errorf("Chat count = %d", n)
	}
	if n := m.CallCount("Health"); n != 1 {
		t.Errorf("Health count = %d", n)
	}
	if got := m.LastChatRequest(); got != req {
		t.Error("LastChatRequest did not return the recorded request")
	}

	m.Reset()
	if n := len(m.Calls()); n != 0 {
		t.Errorf("calls after Reset = %d", n)
	}
}

func TestScriptedMockPlaysInOrder(t *testing.T) {
	m := NewScriptedMock(
		&ChatResponse{Message: NewAssistantMessage("first")},
		&ChatResponse{Message: NewAssistantMessage("second")},
	)
	ctx := context.Background()
	req := &ChatRequest{Messages: []Message{NewUserMessage("hi")}}

	for _, want := range []string{"first", "second"} {
		resp, err := m.Chat(ctx, req)
		if err != nil {
			t.Fatalf("Chat failed: %v", err)
		}
		if resp.Message.Content != want {
			t.Errorf("content = %q, want %q", resp.Message.Content, want)
		}
	}

	if _, err := m.Chat(ctx, req); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("exhausted script error = %v", err)
	}
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		status      int
		retryable   bool
		rateLimited bool
	}{
		{401, false, false},
		{429, true, true},
		{500, true, false},
		{503, true, false},
		{400, false, false},
	}

	for _, tt := range tests {
		e := &APIError{StatusCode: tt.status, Message: "x", Provider: "test"}
		if e.IsRetryable() != tt.retryable {
			t.Errorf("status %d IsRetryable = %v", tt.status, e.IsRetryable())
		}
		if e.IsRateLimited() != tt.rateLimited {
			t.Errorf("status %d IsRateLimited = %v", tt.status, e.IsRateLimited())
		}
	}
}

func TestWrapErrorUnwraps(t *testing.T) {
	err := WrapError("ollama", ErrProviderUnavailable)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("wrapped error lost its sentinel: %v", err)
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T", err)
	}
	if perr.Provider != "ollama" {
		t.Errorf("provider = %q", perr.Provider)
	}
}

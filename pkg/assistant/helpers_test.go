package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dviresh/go-leetvoice/pkg/inference"
	"github.com/dviresh/go-leetvoice/pkg/leetcode"
)

// mockProblems implements ProblemService with per-operation stubs and
// call counting.
type mockProblems struct {
	mu    sync.Mutex
	calls map[string]int

	dailyFunc       func(ctx context.Context) (*leetcode.DailyChallenge, error)
	problemFunc     func(ctx context.Context, titleSlug string) (*leetcode.Problem, error)
	searchFunc      func(ctx context.Context, keywords, difficulty string, limit int) (*leetcode.SearchResult, error)
	profileFunc     func(ctx context.Context, username string) (*leetcode.UserProfile, error)
	submissionsFunc func(ctx context.Context, username string, limit int) (*leetcode.Submissions, error)
}

func newMockProblems() *mockProblems {
	return &mockProblems{calls: make(map[string]int)}
}

func (m *mockProblems) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
}

func (m *mockProblems) callCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *mockProblems) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *mockProblems) DailyChallenge(ctx context.Context) (*leetcode.DailyChallenge, error) {
	m.record("DailyChallenge")
	if m.dailyFunc != nil {
		return m.dailyFunc(ctx)
	}
	return nil, errors.New("not stubbed")
}

func (m *mockProblems) Problem(ctx context.Context, titleSlug string) (*leetcode.Problem, error) {
	m.record("Problem")
	if m.problemFunc != nil {
		return m.problemFunc(ctx, titleSlug)
	}
	return nil, errors.New("not stubbed")
}

func (m *mockProblems) Search(ctx context.Context, keywords, difficulty string, limit int) (*leetcode.SearchResult, error) {
	m.record("Search")
	if m.searchFunc != nil {
		return m.searchFunc(ctx, keywords, difficulty, limit)
	}
	return nil, errors.New("not stubbed")
}

func (m *mockProblems) UserProfile(ctx context.Context, username string) (*leetcode.UserProfile, error) {
	m.record("UserProfile")
	if m.profileFunc != nil {
		return m.profileFunc(ctx, username)
	}
	return nil, errors.New("not stubbed")
}

func (m *mockProblems) RecentSubmissions(ctx context.Context, username string, limit int) (*leetcode.Submissions, error) {
	m.record("RecentSubmissions")
	if m.submissionsFunc != nil {
		return m.submissionsFunc(ctx, username, limit)
	}
	return nil, errors.New("not stubbed")
}

// textResponse builds a plain assistant reply.
func textResponse(content string) *inference.ChatResponse {
	return &inference.ChatResponse{
		Message:      inference.NewAssistantMessage(content),
		FinishReason: "stop",
	}
}

// toolCallResponse builds a reply requesting the given tool calls.
func toolCallResponse(calls ...inference.ToolCall) *inference.ChatResponse {
	return &inference.ChatResponse{
		Message: inference.Message{
			Role:      inference.RoleAssistant,
			ToolCalls: calls,
		},
		FinishReason: "tool_calls",
	}
}

// toolMessages extracts the role-tool turns from a chat request.
func toolMessages(t *testing.T, req *inference.ChatRequest) []inference.Message {
	t.Helper()
	if req == nil {
		t.Fatal("no chat request recorded")
	}
	var out []inference.Message
	for _, msg := range req.Messages {
		if msg.Role == inference.RoleTool {
			out = append(out, msg)
		}
	}
	return out
}

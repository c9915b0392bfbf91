package assistant

import "strings"

// cannedReply pairs a trigger phrase with its response.
type cannedReply struct {
	trigger  string
	response string
}

// fallbackReplies is scanned in declaration order; matching is
// substring containment, so a trigger must come before any trigger it
// contains ("thank you" before "thanks", "goodbye" before "bye").
// The first match wins.
var fallbackReplies = []cannedReply{
	{"how are you", "I'm doing great! Ready to help with LeetCode or other questions. How can I assist you?"},
	{"what is your name", "I'm your voice assistant powered by AI with LeetCode integration."},
	{"thank you", "You're welcome! Is there anything else I can help you with?"},
	{"thanks", "You're welcome!"},
	{"goodbye", "Goodbye! It was nice talking with you."},
	{"hello", "Hello! I'm your voice assistant. I can help with LeetCode problems and general questions!"},
	{"hi", "Hi there! Ask me about LeetCode problems or any other questions!"},
	{"bye", "Bye! Have a great day!"},
}

var (
	interrogativeWords = []string{"what", "how", "why", "when", "where", "who"}
	arithmeticWords    = []string{"calculate", "math", "plus", "minus"}
)

// Category replies used when no trigger matches.
const (
	interrogativeReply = "That's an interesting question! I'd recommend checking reliable sources for detailed information on this topic."
	arithmeticReply    = "I can help with basic math, but I'd need my full capabilities for complex calculations."
	defaultReply       = "I'm sorry, I need my AI capabilities to answer that properly. Please check your API configuration."
)

// Fallback is the deterministic responder used when the reasoning
// service is unconfigured or failing. Respond is total: it never
// errors, never touches the network, and never calls the data client.
type Fallback struct {
	replies []cannedReply
}

// NewFallback creates the fallback responder with the built-in reply
// table.
func NewFallback() *Fallback {
	return &Fallback{replies: fallbackReplies}
}

// Respond produces a canned answer for the question.
func (f *Fallback) Respond(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))

	for _, r := range f.replies {
		if strings.Contains(q, r.trigger) {
			return r.response
		}
	}

	if containsAny(q, interrogativeWords) {
		return interrogativeReply
	}
	if containsAny(q, arithmeticWords) {
		return arithmeticReply
	}
	return defaultReply
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

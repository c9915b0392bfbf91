// Package inference provides a unified interface for chat-based LLM
// inference with tool calling.
//
// The package abstracts chat completions behind a single Provider
// interface, enabling seamless switching between OpenAI and any
// OpenAI-compatible API (Ollama, vLLM, Together, Groq, ...).
//
// Example usage:
//
//	client, _ := inference.NewClient(
//	    inference.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
//	    inference.WithModel("gpt-4o-mini"),
//	)
//	defer client.Close()
//
//	resp, _ := client.Chat(ctx, &inference.ChatRequest{
//	    Messages: []inference.Message{
//	        inference.NewUserMessage("Hello!"),
//	    },
//	})
package inference

import "context"

// Provider is the inference interface the assistant depends on.
// All implementations must satisfy this interface.
type Provider interface {
	// Chat generates a response from a sequence of messages. The
	// response either carries text or one or more tool call requests.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Health checks provider connectivity and API key validity.
	Health(ctx context.Context) error

	// Close releases any resources held by the provider.
	Close() error
}

// ChatRequest for chat completions.
type ChatRequest struct {
	// Messages is the conversation history.
	Messages []Message

	// Model overrides the default model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls randomness (0.0-2.0).
	Temperature float64

	// Stop sequences that halt generation.
	Stop []string

	// Tools available for the model to call.
	Tools []Tool

	// ToolChoice controls tool use: "auto", "none", "required".
	ToolChoice string
}

// ChatResponse from chat completion.
type ChatResponse struct {
	// Message is the assistant's response. When the model chose to call
	// tools, Message.ToolCalls is populated and Content may be empty.
	Message Message

	// FinishReason indicates why generation stopped (stop, length,
	// tool_calls).
	FinishReason string

	// Usage tracks token consumption.
	Usage Usage

	// Model used for generation.
	Model string

	// LatencyMs is the response time in milliseconds.
	LatencyMs int64
}

// Usage tracks token consumption for billing and limits.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

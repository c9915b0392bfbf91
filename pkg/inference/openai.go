package inference

import (
	"context"
	"errors"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const providerOpenAI = "openai"

// OpenAI implements the Provider interface on top of the official
// go-openai SDK. Prefer this for api.openai.com; Client covers the rest
// of the OpenAI-compatible ecosystem.
type OpenAI struct {
	client *openai.Client
	config *Config
	logger *slog.Logger
}

// NewOpenAI creates an OpenAI SDK provider.
func NewOpenAI(opts ...Option) (*OpenAI, error) {
	cfg := DefaultConfig()
	cfg.Apply(opts...)

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(sdkCfg),
		config: cfg,
		logger: cfg.Logger.With("component", "inference.openai"),
	}, nil
}

// Chat generates a chat completion through the SDK.
func (o *OpenAI) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	model := req.Model
	if model == "" {
		model = o.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = o.config.MaxTokens
	}

	temp := req.Temperature
	if temp == 0 {
		temp = o.config.Temperature
	}

	sdkReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toSDKMessages(req.Messages),
		MaxTokens:   maxTokens,
		Temperature: float32(temp),
		Stop:        req.Stop,
	}

	if len(req.Tools) > 0 {
		tools := make([]openai.Tool, len(req.Tools))
		for i, t := range req.Tools {
			fn := openai.FunctionDefinition{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters:  t.Function.Parameters,
			}
			tools[i] = openai.Tool{Type: openai.ToolTypeFunction, Function: &fn}
		}
		sdkReq.Tools = tools
	}
	if req.ToolChoice != "" {
		sdkReq.ToolChoice = req.ToolChoice
	}

	resp, err := o.client.CreateChatCompletion(ctx, sdkReq)
	if err != nil {
		return nil, o.wrapSDKError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, WrapError(providerOpenAI, errors.New("no choices returned"))
	}

	choice := resp.Choices[0]

	msg := Message{
		Role:    RoleAssistant,
		Content: choice.Message.Content,
	}
	for _, tc := range choice.Message.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	return &ChatResponse{
		Message:      msg,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Model:     resp.Model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

// Health verifies connectivity and key validity by listing models.
func (o *OpenAI) Health(ctx context.Context) error {
	_, err := o.client.ListModels(ctx)
	if err != nil {
		return o.wrapSDKError(err)
	}
	return nil
}

// Close releases resources. The SDK holds no long-lived connections of
// its own beyond the default transport.
func (o *OpenAI) Close() error {
	return nil
}

// wrapSDKError maps SDK errors onto the package error taxonomy so
// callers can branch without importing the SDK.
func (o *OpenAI) wrapSDKError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := ""
		if s, ok := apiErr.Code.(string); ok {
			code = s
		}
		return &APIError{
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
			Code:       code,
			Provider:   providerOpenAI,
		}
	}
	return WrapError(providerOpenAI, err)
}

func toSDKMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		m := openai.ChatCompletionMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			Name:       msg.Name,
			ToolCallID: msg.ToolCallID,
		}
		for _, tc := range msg.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		out[i] = m
	}
	return out
}

// Verify OpenAI implements Provider at compile time.
var _ Provider = (*OpenAI)(nil)

// Package openai implements the llm.Completer port against an Azure-hosted
// OpenAI-compatible chat completions deployment over plain net/http.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/expensemgmt/expense_management_app/internal/apperrors"
	"github.com/expensemgmt/expense_management_app/internal/core/ports/llm"
)

// Config for the hosted chat client. The integration counts as configured
// only when both Endpoint and Deployment are set.
type Config struct {
	Endpoint   string        // e.g. https://myresource.openai.azure.com
	Deployment string        // deployment name, e.g. "gpt-4o-mini"
	APIKey     string        // api-key header value
	APIVersion string        // defaults to 2024-06-01
	Timeout    time.Duration // http client timeout, defaults to 60s
}

// IsConfigured reports whether the config carries enough to call the model.
func (c Config) IsConfigured() bool {
	return c.Endpoint != "" && c.Deployment != ""
}

// Client is a thin chat-completions client implementing llm.Completer.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new client. Callers should check Config.IsConfigured
// first; an unconfigured client will fail every call.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-06-01"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

var _ llm.Completer = (*Client)(nil)

// Wire shapes for the chat completions API.

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type wireTool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	} `json:"function"`
}

type wireRequest struct {
	Messages []wireMessage `json:"messages"`
	Tools    []wireTool    `json:"tools,omitempty"`
}

type wireResponse struct {
	Choices []struct {
		FinishReason string `json:"finish_reason"`
		Message      struct {
			Content   string         `json:"content"`
			ToolCalls []wireToolCall `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the message sequence and tool declarations to the deployment
// and returns the model's next turn.
func (c *Client) Complete(ctx context.Context, messages []llm.Message, tools []llm.ToolDefinition) (*llm.Completion, error) {
	if !c.cfg.IsConfigured() {
		return nil, apperrors.ErrNotConfigured
	}

	body := wireRequest{Messages: make([]wireMessage, len(messages))}
	for i, m := range messages {
		wm := wireMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, call := range m.ToolCalls {
			wc := wireToolCall{ID: call.ID, Type: "function"}
			wc.Function.Name = call.Name
			wc.Function.Arguments = call.Arguments
			wm.ToolCalls = append(wm.ToolCalls, wc)
		}
		body.Messages[i] = wm
	}
	for _, t := range tools {
		wt := wireTool{Type: "function"}
		wt.Function.Name = t.Name
		wt.Function.Description = t.Description
		wt.Function.Parameters = t.Parameters
		body.Tools = append(body.Tools, wt)
	}

	endpoint := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Deployment, c.cfg.APIVersion)

	start := time.Now()
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("Chat completion request failed",
			slog.String("deployment", c.cfg.Deployment),
			slog.String("error", err.Error()),
			slog.Int64("elapsed_ms", time.Since(start).Milliseconds()))
		return nil, err
	}

	var resp wireResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in chat completion response")
	}

	choice := resp.Choices[0]
	completion := &llm.Completion{Content: choice.Message.Content}
	for _, wc := range choice.Message.ToolCalls {
		completion.ToolCalls = append(completion.ToolCalls, llm.ToolCall{
			ID:        wc.ID,
			Name:      wc.Function.Name,
			Arguments: wc.Function.Arguments,
		})
	}

	c.logger.Info("Chat completion received",
		slog.String("finish_reason", choice.FinishReason),
		slog.Int("tool_calls", len(completion.ToolCalls)),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()))
	return completion, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion http error: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("Response body close error", slog.String("error", cerr.Error()))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat completion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat completion status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

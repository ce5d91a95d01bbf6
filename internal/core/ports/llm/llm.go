// Package llm defines the narrow port the chat service's tool-calling loop
// depends on, so the bounded-iteration logic can be unit-tested with a
// scripted fake instead of a live hosted model.
package llm

import (
	"context"
	"encoding/json"
)

// Message roles in a chat conversation.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`

	// ToolCalls is set on assistant turns that request tool invocations.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID tags a tool-result turn with the originating call.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// ToolDefinition declares a callable function to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  json.RawMessage // JSON schema for the arguments object
}

// ToolCall is a structured request from the model asking the caller to
// execute a named function before it produces a final answer.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // raw JSON object
}

// Completion is one model turn: either a final text answer (no tool calls)
// or a set of tool-call requests to satisfy and feed back.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

// Completer sends the full message sequence plus tool declarations to a
// hosted chat-completion model and returns its next turn.
type Completer interface {
	Complete(ctx context.Context, messages []Message, tools []ToolDefinition) (*Completion, error)
}

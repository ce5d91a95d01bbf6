package dto

// ChatHistoryItem is one prior turn supplied by the client. Roles are matched
// case-insensitively against "user" and "assistant"; anything else is dropped.
type ChatHistoryItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []ChatHistoryItem `json:"history"`
}

// ChatResponse is the reply envelope for the chat endpoint. It stays HTTP 200
// even when the assistant had to apologise for an internal error.
type ChatResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	IsConfigured bool   `json:"isConfigured"`
}

// ChatStatusResponse reports whether the hosted model integration is
// configured.
type ChatStatusResponse struct {
	IsConfigured bool   `json:"isConfigured"`
	Message      string `json:"message"`
}

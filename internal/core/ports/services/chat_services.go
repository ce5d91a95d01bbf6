package services

import (
	"context"

	"github.com/expensemgmt/expense_management_app/internal/dto"
)

// ChatSvcFacade is the conversational assistant. Respond never returns an
// error: hosted-model failures are folded into the reply text.
type ChatSvcFacade interface {
	// Respond answers a user message, optionally continuing a prior
	// conversation.
	Respond(ctx context.Context, userMessage string, history []dto.ChatHistoryItem) string

	// IsConfigured reports whether a hosted chat model is wired up. When
	// false, Respond serves deterministic demo-mode text.
	IsConfigured() bool
}

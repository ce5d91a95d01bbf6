package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expensemgmt/expense_management_app/internal/core/ports/llm"
	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/dto"
)

// maxToolIterations caps the tool-calling loop: at most this many round-trips
// to the hosted model per user turn.
const maxToolIterations = 5

// toolDateFormat is how expense dates are rendered in tool results.
const toolDateFormat = "02/01/2006"

const systemPrompt = `You are a helpful assistant for the Expense Management System. You can help users:
- View their expenses
- Understand expense statuses (Draft, Submitted, Approved, Rejected)
- Filter expenses by category or status
- Explain how the expense approval process works

When listing expenses, format them nicely with:
- Description
- Amount in GBP (£)
- Category
- Status
- Date

Use the get_expenses function to retrieve real data from the database.
Always be helpful and provide clear, formatted responses.
When showing lists, use bullet points or numbered lists for clarity.`

// unableToCompleteMessage is returned verbatim when the iteration cap is hit
// without the model producing a final answer.
const unableToCompleteMessage = "I apologize, but I was unable to complete your request. Please try again."

const demoModeExpenseResponse = `**Demo Mode - AI Chat Not Configured**

To enable AI-powered chat, set the OPENAI_ENDPOINT and OPENAI_DEPLOYMENT environment variables (plus OPENAI_API_KEY) and restart the service.

Once configured, you'll be able to:
- Ask questions about your expenses in natural language
- Get summaries and insights
- Filter and search expenses using conversational queries

For now, please use the Expenses and Approve pages to manage expenses directly.`

const demoModeWelcomeResponse = `**Welcome to the Expense Management Chat!**

I'm currently running in demo mode because no AI chat model has been configured.

To enable full AI capabilities:
1. Set OPENAI_ENDPOINT, OPENAI_DEPLOYMENT and OPENAI_API_KEY
2. Restart the service and the chat will connect automatically

In the meantime, you can:
- Navigate to the **Expenses** page to view all expenses
- Use the **Add Expense** page to create new expenses
- Go to **Approve** to review pending expenses`

// getExpensesParameters is the JSON schema for the one callable tool.
var getExpensesParameters = json.RawMessage(`{
	"type": "object",
	"properties": {
		"filter": {
			"type": "string",
			"description": "Optional text filter for expense description or category"
		},
		"status": {
			"type": "string",
			"description": "Optional status filter: Draft, Submitted, Approved, or Rejected"
		}
	}
}`)

// ChatService answers questions about expense data via a hosted
// chat-completion model, falling back to deterministic demo-mode text when no
// model is configured. It never surfaces an error to the caller.
type ChatService struct {
	completer  llm.Completer
	expenseSvc portssvc.ExpenseReaderSvc
	logger     *slog.Logger
}

// NewChatService creates a new ChatService. A nil completer means no hosted
// model is configured and Respond serves placeholder text.
func NewChatService(completer llm.Completer, expenseSvc portssvc.ExpenseReaderSvc, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		completer:  completer,
		expenseSvc: expenseSvc,
		logger:     logger,
	}
}

var _ portssvc.ChatSvcFacade = (*ChatService)(nil)

// IsConfigured reports whether a hosted chat model is wired up.
func (s *ChatService) IsConfigured() bool {
	return s.completer != nil
}

// Respond answers a user message. History roles are matched
// case-insensitively; turns with unrecognised roles are silently dropped.
// The tool-calling loop is strictly sequential and bounded at five
// round-trips to the model.
func (s *ChatService) Respond(ctx context.Context, userMessage string, history []dto.ChatHistoryItem) string {
	if !s.IsConfigured() {
		return placeholderResponse(userMessage)
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	for _, item := range history {
		switch {
		case strings.EqualFold(item.Role, llm.RoleUser):
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: item.Content})
		case strings.EqualFold(item.Role, llm.RoleAssistant):
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: item.Content})
		}
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})

	tools := []llm.ToolDefinition{{
		Name:        "get_expenses",
		Description: "Retrieves expenses from the database with optional filtering",
		Parameters:  getExpensesParameters,
	}}

	for iteration := 1; iteration <= maxToolIterations; iteration++ {
		completion, err := s.completer.Complete(ctx, messages, tools)
		if err != nil {
			s.logger.Error("Hosted chat completion failed",
				slog.Int("iteration", iteration), slog.String("error", err.Error()))
			return fmt.Sprintf("I encountered an error: %s. Please try again later.", err.Error())
		}

		if len(completion.ToolCalls) == 0 {
			return completion.Content
		}

		// Fold the model's tool-call turn and each call's result back into
		// the conversation, then go around again.
		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   completion.Content,
			ToolCalls: completion.ToolCalls,
		})
		for _, call := range completion.ToolCalls {
			result := s.executeFunction(ctx, call.Name, call.Arguments)
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return unableToCompleteMessage
}

type getExpensesArgs struct {
	Filter *string `json:"filter"`
	Status *string `json:"status"`
}

// toolExpense is the shape of one expense in a tool result payload.
type toolExpense struct {
	ExpenseID       int     `json:"expenseId"`
	Description     *string `json:"description"`
	FormattedAmount string  `json:"formattedAmount"`
	CategoryName    *string `json:"categoryName"`
	StatusName      *string `json:"statusName"`
	Date            string  `json:"date"`
	UserName        *string `json:"userName"`
}

// executeFunction runs one requested tool call and returns its JSON result.
// Failures become structured error payloads rather than Go errors so the
// model can recover.
func (s *ChatService) executeFunction(ctx context.Context, name, arguments string) string {
	s.logger.Info("Executing chat tool",
		slog.String("function", name), slog.String("arguments", arguments))

	switch name {
	case "get_expenses":
		var args getExpensesArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return errorPayload(fmt.Sprintf("invalid arguments: %s", err.Error()))
		}
		expenses, err := s.expenseSvc.ListExpenses(ctx, args.Filter, args.Status)
		if err != nil {
			s.logger.Error("Chat tool failed to list expenses", slog.String("error", err.Error()))
			return errorPayload(err.Error())
		}
		results := make([]toolExpense, len(expenses))
		for i, e := range expenses {
			results[i] = toolExpense{
				ExpenseID:       e.ExpenseID,
				Description:     e.Description,
				FormattedAmount: e.FormattedAmount(),
				CategoryName:    e.CategoryName,
				StatusName:      e.StatusName,
				Date:            e.ExpenseDate.Format(toolDateFormat),
				UserName:        e.UserName,
			}
		}
		payload, err := json.Marshal(results)
		if err != nil {
			return errorPayload(err.Error())
		}
		return string(payload)

	default:
		return errorPayload("Unknown function: " + name)
	}
}

func errorPayload(msg string) string {
	payload, _ := json.Marshal(map[string]string{"error": msg})
	return string(payload)
}

// placeholderResponse is the deterministic demo-mode reply. Content varies
// only on whether the message mentions expense-related keywords.
func placeholderResponse(userMessage string) string {
	lower := strings.ToLower(userMessage)
	if strings.Contains(lower, "expense") || strings.Contains(lower, "list") || strings.Contains(lower, "show") {
		return demoModeExpenseResponse
	}
	return demoModeWelcomeResponse
}

package services

import (
	"log/slog"

	"github.com/expensemgmt/expense_management_app/internal/core/ports/llm"
	portsrepo "github.com/expensemgmt/expense_management_app/internal/core/ports/repositories"
	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialised
// dependencies. completer may be nil, in which case the chat service runs in
// demo mode.
func NewContainer(repos *portsrepo.RepositoryProvider, completer llm.Completer, logger *slog.Logger) *portssvc.ServiceContainer {
	expenseSvc := NewExpenseService(repos.ExpenseRepo, repos.ReferenceRepo)
	return &portssvc.ServiceContainer{
		Expense: expenseSvc,
		Chat:    NewChatService(completer, expenseSvc, logger),
	}
}

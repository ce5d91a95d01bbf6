package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/expensemgmt/expense_management_app/internal/apperrors"
	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/demodata"
	"github.com/expensemgmt/expense_management_app/internal/dto"
	"github.com/expensemgmt/expense_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// expenseHandler handles the JSON expense API. Read endpoints never fail
// hard: a data-access failure degrades to demo data inside a success:false
// envelope; write endpoints report failure without fabricating a record.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	defaultUserID  int
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, defaultUserID int) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
		defaultUserID:  defaultUserID,
	}
}

// RegisterExpenseRoutes registers all expense API routes. Exported so handler
// tests can register against a bare router.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, defaultUserID int) {
	h := newExpenseHandler(expenseService, defaultUserID)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/pending", h.listPendingExpenses)
		expenses.GET("/categories", h.listCategories)
		expenses.GET("/statuses", h.listStatuses)
		expenses.GET("/users", h.listUsers)
		expenses.GET("/:id", h.getExpenseByID)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id/status", h.updateExpenseStatus)
	}
}

// listExpenses returns all expenses with optional filter/status query params.
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter := optionalQuery(c, "filter")
	status := optionalQuery(c, "status")

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter, status)
	if err != nil {
		logger.Error("Failed to list expenses, serving demo data", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed(dto.ToListExpenseResponse(demodata.Expenses()), errDemoData, errorDetails(err)))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListExpenseResponse(expenses)))
}

// listPendingExpenses returns expenses awaiting review.
func (h *expenseHandler) listPendingExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter := optionalQuery(c, "filter")

	expenses, err := h.expenseService.ListPendingExpenses(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list pending expenses, serving demo data", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed(dto.ToListExpenseResponse(demodata.PendingExpenses()), errDemoData, errorDetails(err)))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListExpenseResponse(expenses)))
}

// getExpenseByID returns one expense. 404 is reserved for a reachable store
// with no matching row; a data-access failure stays 200 with success:false.
func (h *expenseHandler) getExpenseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failed[*dto.ExpenseResponse](nil, "Invalid expense id", ""))
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failed[*dto.ExpenseResponse](nil, "Expense not found", ""))
			return
		}
		logger.Error("Failed to get expense", slog.Int("expense_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed[*dto.ExpenseResponse](nil, errConnectionFailed, errorDetails(err)))
		return
	}

	resp := dto.ToExpenseResponse(*expense)
	c.JSON(http.StatusOK, dto.OK(&resp))
}

// createExpense validates and persists a new expense.
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failed[*dto.ExpenseResponse](nil, "Invalid request format: "+err.Error(), ""))
		return
	}
	if req.Amount.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, dto.Failed[*dto.ExpenseResponse](nil, "Amount must be greater than 0", ""))
		return
	}
	if req.UserID == 0 {
		req.UserID = h.defaultUserID
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Failed[*dto.ExpenseResponse](nil, err.Error(), ""))
			return
		}
		logger.Error("Failed to create expense", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed[*dto.ExpenseResponse](nil, errNotCreated, errorDetails(err)))
		return
	}

	logger.Info("Expense created", slog.Int("expense_id", expense.ExpenseID))
	resp := dto.ToExpenseResponse(*expense)
	c.JSON(http.StatusCreated, dto.OK(&resp))
}

// updateExpenseStatus advances an expense through the status vocabulary.
func (h *expenseHandler) updateExpenseStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failed(false, "Invalid expense id", ""))
		return
	}

	var req dto.UpdateExpenseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failed(false, "Invalid request format: "+err.Error(), ""))
		return
	}

	updated, err := h.expenseService.UpdateExpenseStatus(c.Request.Context(), id, req.Status, req.ReviewerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Failed(false, err.Error(), ""))
			return
		}
		logger.Error("Failed to update expense status", slog.Int("expense_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed(false, errNotUpdated, errorDetails(err)))
		return
	}

	c.JSON(http.StatusOK, dto.Envelope[bool]{Success: updated, Data: updated})
}

// listCategories returns all expense categories.
func (h *expenseHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories, serving demo data", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed(dto.ToListCategoryResponse(demodata.Categories()), errDemoData, errorDetails(err)))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListCategoryResponse(categories)))
}

// listStatuses returns the status vocabulary.
func (h *expenseHandler) listStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	statuses, err := h.expenseService.ListStatuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list statuses, serving demo data", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed(dto.ToListStatusResponse(demodata.Statuses()), errDemoData, errorDetails(err)))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListStatusResponse(statuses)))
}

// listUsers returns all users.
func (h *expenseHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	users, err := h.expenseService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users, serving demo data", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.Failed(dto.ToListUserResponse(demodata.Users()), errDemoData, errorDetails(err)))
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListUserResponse(users)))
}

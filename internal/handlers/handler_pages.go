package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/demodata"
	"github.com/expensemgmt/expense_management_app/internal/dto"
	"github.com/expensemgmt/expense_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// pagesHandler serves the server-rendered expense pages. Like the JSON API,
// list views degrade to demo data with a diagnostic banner when the store is
// unreachable. There is no authentication: the demo user submits expenses and
// the demo reviewer approves them.
type pagesHandler struct {
	expenseService    portssvc.ExpenseSvcFacade
	defaultUserID     int
	defaultReviewerID int
}

// pageExpense is the flattened view model the templates render; optional
// display fields become empty strings.
type pageExpense struct {
	ExpenseID       int
	Description     string
	FormattedAmount string
	CategoryName    string
	StatusName      string
	ExpenseDate     string
	UserName        string
	IsDraft         bool
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPageExpenses(expenses []domain.Expense) []pageExpense {
	res := make([]pageExpense, len(expenses))
	for i, e := range expenses {
		res[i] = pageExpense{
			ExpenseID:       e.ExpenseID,
			Description:     deref(e.Description),
			FormattedAmount: e.FormattedAmount(),
			CategoryName:    deref(e.CategoryName),
			StatusName:      deref(e.StatusName),
			ExpenseDate:     e.ExpenseDate.Format(dto.ExpenseDateFormat),
			UserName:        deref(e.UserName),
			IsDraft:         e.StatusName != nil && *e.StatusName == domain.StatusDraft,
		}
	}
	return res
}

// RegisterPageRoutes registers the HTML page routes on the root router.
func RegisterPageRoutes(r *gin.Engine, expenseService portssvc.ExpenseSvcFacade, defaultUserID, defaultReviewerID int) {
	h := &pagesHandler{
		expenseService:    expenseService,
		defaultUserID:     defaultUserID,
		defaultReviewerID: defaultReviewerID,
	}

	r.GET("/", h.index)
	r.POST("/expenses/:id/submit", h.submitExpense)
	r.GET("/expenses/new", h.addExpenseForm)
	r.POST("/expenses/new", h.addExpense)
	r.GET("/approve", h.approvePage)
	r.POST("/approve/:id/approve", h.approveExpense)
	r.POST("/approve/:id/reject", h.rejectExpense)
}

// index lists all expenses with optional filter/status query params.
func (h *pagesHandler) index(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter := optionalQuery(c, "filter")
	status := optionalQuery(c, "status")

	data := gin.H{
		"Filter":       c.Query("filter"),
		"StatusFilter": c.Query("status"),
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter, status)
	if err != nil {
		logger.Error("Failed to load expenses page, serving demo data", slog.String("error", err.Error()))
		data["ErrorMessage"] = "Unable to connect to database - showing demo data"
		data["ErrorDetails"] = errorDetails(err)
		expenses = demodata.Expenses()
	}

	statuses, err := h.expenseService.ListStatuses(c.Request.Context())
	if err != nil {
		statuses = demodata.Statuses()
	}

	data["Expenses"] = toPageExpenses(expenses)
	data["Statuses"] = statuses
	c.HTML(http.StatusOK, "index.html", data)
}

// submitExpense moves a draft expense to Submitted and returns to the list.
func (h *pagesHandler) submitExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if _, err := h.expenseService.UpdateExpenseStatus(c.Request.Context(), id, domain.StatusSubmitted, 0); err != nil {
			logger.Error("Failed to submit expense", slog.Int("expense_id", id), slog.String("error", err.Error()))
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *pagesHandler) loadCategories(c *gin.Context) []domain.ExpenseCategory {
	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load categories, serving demo data",
			slog.String("error", err.Error()))
		return demodata.Categories()
	}
	return categories
}

// addExpenseForm renders the create form with today's date preselected.
func (h *pagesHandler) addExpenseForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_expense.html", gin.H{
		"Categories":  h.loadCategories(c),
		"ExpenseDate": time.Now().Format(dto.ExpenseDateFormat),
	})
}

// addExpense handles the create form post-back, re-rendering the form with
// either a validation message or a success banner.
func (h *pagesHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	data := gin.H{
		"Categories":  h.loadCategories(c),
		"ExpenseDate": c.PostForm("expenseDate"),
	}

	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil || amount.Sign() <= 0 {
		data["ErrorMessage"] = "Amount must be greater than 0"
		c.HTML(http.StatusOK, "add_expense.html", data)
		return
	}
	expenseDate := c.PostForm("expenseDate")
	if expenseDate == "" {
		data["ErrorMessage"] = "Date is required"
		c.HTML(http.StatusOK, "add_expense.html", data)
		return
	}
	categoryID, _ := strconv.Atoi(c.PostForm("categoryId"))

	req := dto.CreateExpenseRequest{
		Amount:      amount,
		ExpenseDate: expenseDate,
		CategoryID:  categoryID,
		UserID:      h.defaultUserID,
	}
	if description := c.PostForm("description"); description != "" {
		req.Description = &description
	}

	if _, err := h.expenseService.CreateExpense(c.Request.Context(), req); err != nil {
		logger.Error("Failed to create expense from form", slog.String("error", err.Error()))
		data["ErrorMessage"] = "Unable to create expense: " + err.Error()
		c.HTML(http.StatusOK, "add_expense.html", data)
		return
	}

	data["SuccessMessage"] = "Expense created successfully!"
	data["ExpenseDate"] = time.Now().Format(dto.ExpenseDateFormat)
	c.HTML(http.StatusOK, "add_expense.html", data)
}

// approvePage lists pending expenses for review.
func (h *pagesHandler) approvePage(c *gin.Context) {
	h.renderApprove(c, gin.H{})
}

// approveExpense approves one pending expense and re-renders the queue.
func (h *pagesHandler) approveExpense(c *gin.Context) {
	h.reviewExpense(c, domain.StatusApproved, "Expense approved successfully!", "Unable to approve expense: ")
}

// rejectExpense rejects one pending expense and re-renders the queue.
func (h *pagesHandler) rejectExpense(c *gin.Context) {
	h.reviewExpense(c, domain.StatusRejected, "Expense rejected.", "Unable to reject expense: ")
}

func (h *pagesHandler) reviewExpense(c *gin.Context, status, successMsg, failurePrefix string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	data := gin.H{}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		data["ErrorMessage"] = "Invalid expense id"
		h.renderApprove(c, data)
		return
	}

	if _, err := h.expenseService.UpdateExpenseStatus(c.Request.Context(), id, status, h.defaultReviewerID); err != nil {
		logger.Error("Failed to review expense",
			slog.Int("expense_id", id), slog.String("status", status), slog.String("error", err.Error()))
		data["ErrorMessage"] = failurePrefix + err.Error()
	} else {
		data["SuccessMessage"] = successMsg
	}
	h.renderApprove(c, data)
}

func (h *pagesHandler) renderApprove(c *gin.Context, data gin.H) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filter := optionalQuery(c, "filter")
	data["Filter"] = c.Query("filter")

	pending, err := h.expenseService.ListPendingExpenses(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to load pending expenses, serving demo data", slog.String("error", err.Error()))
		data["ErrorMessage"] = "Unable to connect to database - showing demo data"
		data["ErrorDetails"] = errorDetails(err)
		pending = demodata.PendingExpenses()
	}

	data["PendingExpenses"] = toPageExpenses(pending)
	c.HTML(http.StatusOK, "approve.html", data)
}

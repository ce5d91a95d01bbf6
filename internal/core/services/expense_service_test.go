package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/expensemgmt/expense_management_app/internal/apperrors"
	"github.com/expensemgmt/expense_management_app/internal/core/domain"
	portsrepo "github.com/expensemgmt/expense_management_app/internal/core/ports/repositories"
	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/core/services"
	"github.com/expensemgmt/expense_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context, filter, status *string) ([]domain.Expense, error) {
	args := m.Called(ctx, filter, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindPendingExpenses(ctx context.Context, filter *string) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) CreateExpense(ctx context.Context, userID, categoryID int, amountMinor int64, expenseDate time.Time, description *string) (*domain.Expense, error) {
	args := m.Called(ctx, userID, categoryID, amountMinor, expenseDate, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID int, status string, reviewerID int) (int64, error) {
	args := m.Called(ctx, expenseID, status, reviewerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.ExpenseRepository = (*MockExpenseRepository)(nil)

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) FindCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockReferenceRepository) FindStatuses(ctx context.Context) ([]domain.ExpenseStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseStatus), args.Error(1)
}

func (m *MockReferenceRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portsrepo.ReferenceRepository = (*MockReferenceRepository)(nil)

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo   *MockExpenseRepository
	mockReferenceRepo *MockReferenceRepository
	service           portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockReferenceRepo)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestListExpenses_Success() {
	ctx := context.Background()
	expected := []domain.Expense{{ExpenseID: 1}, {ExpenseID: 2}}

	suite.mockExpenseRepo.On("FindExpenses", ctx, (*string)(nil), (*string)(nil)).Return(expected, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, expenses)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_NilBecomesEmptySlice() {
	ctx := context.Background()
	var empty []domain.Expense

	suite.mockExpenseRepo.On("FindExpenses", ctx, (*string)(nil), (*string)(nil)).Return(empty, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_GatewayErrorPropagates() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenses", ctx, (*string)(nil), (*string)(nil)).
		Return(nil, apperrors.ErrDataAccess).Once()

	expenses, err := suite.service.ListExpenses(ctx, nil, nil)

	suite.Require().Error(err)
	suite.Nil(expenses)
	suite.ErrorIs(err, apperrors.ErrDataAccess)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListPendingExpenses_PassesFilter() {
	ctx := context.Background()
	filter := "lunch"
	expected := []domain.Expense{{ExpenseID: 7}}

	suite.mockExpenseRepo.On("FindPendingExpenses", ctx, &filter).Return(expected, nil).Once()

	expenses, err := suite.service.ListPendingExpenses(ctx, &filter)

	suite.Require().NoError(err)
	suite.Equal(expected, expenses)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseByID_NotFound() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, 999).Return(nil, apperrors.ErrNotFound).Once()

	expense, err := suite.service.GetExpenseByID(ctx, 999)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	description := "Team lunch"
	req := dto.CreateExpenseRequest{
		Amount:      decimal.RequireFromString("45.00"),
		ExpenseDate: "2026-08-15",
		CategoryID:  2,
		UserID:      1,
		Description: &description,
	}
	stored := &domain.Expense{ExpenseID: 42, AmountMinor: 4500, Currency: "GBP"}

	expectedDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	suite.mockExpenseRepo.On("CreateExpense", ctx, 1, 2, int64(4500), expectedDate, &description).
		Return(stored, nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal(42, expense.ExpenseID)
	suite.Equal(int64(4500), expense.AmountMinor)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RoundsSubPennyAmounts() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.RequireFromString("19.999"),
		ExpenseDate: "2026-08-15",
		CategoryID:  1,
		UserID:      1,
	}

	suite.mockExpenseRepo.On("CreateExpense", ctx, 1, 1, int64(2000), mock.AnythingOfType("time.Time"), (*string)(nil)).
		Return(&domain.Expense{ExpenseID: 1, AmountMinor: 2000}, nil).Once()

	_, err := suite.service.CreateExpense(ctx, req)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmountRejectedBeforeStore() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.Zero,
		ExpenseDate: "2026-08-15",
		CategoryID:  1,
		UserID:      1,
	}

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "CreateExpense",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeAmountRejectedBeforeStore() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.RequireFromString("-1.50"),
		ExpenseDate: "2026-08-15",
		CategoryID:  1,
		UserID:      1,
	}

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "CreateExpense",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_BadDateRejected() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Amount:      decimal.RequireFromString("10.00"),
		ExpenseDate: "15/08/2026",
		CategoryID:  1,
		UserID:      1,
	}

	expense, err := suite.service.CreateExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpenseStatus_CanonicalisesCasing() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("UpdateExpenseStatus", ctx, 5, domain.StatusApproved, 2).
		Return(int64(1), nil).Once()

	updated, err := suite.service.UpdateExpenseStatus(ctx, 5, "approved", 2)

	suite.Require().NoError(err)
	suite.True(updated)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpenseStatus_UnknownStatusRejectedBeforeStore() {
	ctx := context.Background()

	updated, err := suite.service.UpdateExpenseStatus(ctx, 5, "Archived", 2)

	suite.Require().Error(err)
	suite.False(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "Draft, Submitted, Approved, Rejected")
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpenseStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpenseStatus_NoRowsMeansNotUpdated() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("UpdateExpenseStatus", ctx, 404, domain.StatusRejected, 2).
		Return(int64(0), nil).Once()

	updated, err := suite.service.UpdateExpenseStatus(ctx, 404, "Rejected", 2)

	suite.Require().NoError(err)
	suite.False(updated)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListCategories_Success() {
	ctx := context.Background()
	expected := []domain.ExpenseCategory{{CategoryID: 1, CategoryName: "Travel"}}

	suite.mockReferenceRepo.On("FindCategories", ctx).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
	suite.mockReferenceRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListStatuses_GatewayErrorPropagates() {
	ctx := context.Background()

	suite.mockReferenceRepo.On("FindStatuses", ctx).Return(nil, assert.AnError).Once()

	statuses, err := suite.service.ListStatuses(ctx)

	suite.Require().Error(err)
	suite.Nil(statuses)
	suite.ErrorIs(err, assert.AnError)
	suite.mockReferenceRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListUsers_Success() {
	ctx := context.Background()
	expected := []domain.User{{UserID: 1, UserName: "Alice Example"}}

	suite.mockReferenceRepo.On("FindUsers", ctx).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, users)
	suite.mockReferenceRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

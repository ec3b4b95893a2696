package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// ExpenseService provides application-level expense operations
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID            uuid.UUID         `json:"id"`
	ExpenseNumber string            `json:"expense_number"`
	Title         string            `json:"title"`
	Category      string            `json:"category"`
	Cash          valueobject.Money `json:"cash"`
	Online        valueobject.Money `json:"online"`
	Amount        valueobject.Money `json:"amount"`
	IncurredOn    valueobject.Date  `json:"incurred_on"`
	BranchID      *uuid.UUID        `json:"branch_id,omitempty"`
	Global        bool              `json:"global"`
	Remark        string            `json:"remark,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ExpenseRequest represents a request to create or update an expense
type ExpenseRequest struct {
	Title      string           `json:"title" binding:"required"`
	Category   string           `json:"category" binding:"required"`
	Cash       string           `json:"cash"`
	Online     string           `json:"online"`
	IncurredOn valueobject.Date `json:"incurred_on" binding:"required"`
	BranchID   *uuid.UUID       `json:"branch_id"`
	Remark     string           `json:"remark"`
}

// ExpenseListFilter defines filtering options for expense list queries
type ExpenseListFilter struct {
	Search   string     `form:"search"`
	BranchID *uuid.UUID `form:"branch_id"`
	Category string     `form:"category"`
	Month    string     `form:"month" binding:"omitempty,month"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, tenantID uuid.UUID, req ExpenseRequest) (*ExpenseResponse, error) {
	cash, online, err := parseExpenseAmounts(req.Cash, req.Online)
	if err != nil {
		return nil, err
	}

	expenseNumber, err := s.expenseRepo.GenerateExpenseNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	expense, err := finance.NewExpense(
		tenantID, expenseNumber, req.Title,
		finance.ExpenseCategory(req.Category),
		cash, online, req.IncurredOn, req.BranchID, req.Remark,
	)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := toExpenseResponse(expense)
	return &response, nil
}

// Get returns one expense
func (s *ExpenseService) Get(ctx context.Context, tenantID, expenseID uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForTenant(ctx, tenantID, expenseID)
	if err != nil {
		return nil, err
	}
	response := toExpenseResponse(expense)
	return &response, nil
}

// List returns expenses matching the filter
func (s *ExpenseService) List(ctx context.Context, tenantID uuid.UUID, filter ExpenseListFilter) (*shared.Paginated[ExpenseResponse], error) {
	domainFilter := finance.ExpenseFilter{
		Filter:   shared.DefaultFilter(),
		BranchID: filter.BranchID,
		Month:    filter.Month,
	}
	domainFilter.Search = filter.Search
	if filter.Category != "" {
		category := finance.ExpenseCategory(filter.Category)
		if !category.IsValid() {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
		}
		domainFilter.Category = &category
	}
	if filter.Month != "" && !valueobject.ValidMonth(filter.Month) {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month filter must be YYYY-MM")
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	expenses, err := s.expenseRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}
	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update changes an expense
func (s *ExpenseService) Update(ctx context.Context, tenantID, expenseID uuid.UUID, req ExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForTenant(ctx, tenantID, expenseID)
	if err != nil {
		return nil, err
	}

	cash, online, err := parseExpenseAmounts(req.Cash, req.Online)
	if err != nil {
		return nil, err
	}

	if err := expense.Update(
		req.Title, finance.ExpenseCategory(req.Category),
		cash, online, req.IncurredOn, req.BranchID, req.Remark,
	); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := toExpenseResponse(expense)
	return &response, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, tenantID, expenseID uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, tenantID, expenseID)
}

func toExpenseResponse(expense *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            expense.ID,
		ExpenseNumber: expense.ExpenseNumber,
		Title:         expense.Title,
		Category:      expense.Category.String(),
		Cash:          expense.Cash,
		Online:        expense.Online,
		Amount:        expense.Amount(),
		IncurredOn:    expense.IncurredOn,
		BranchID:      expense.BranchID,
		Global:        expense.IsGlobal(),
		Remark:        expense.Remark,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}

func parseExpenseAmounts(cash, online string) (valueobject.Money, valueobject.Money, error) {
	zero := valueobject.ZeroINR()

	cashMoney := zero
	if cash != "" {
		var err error
		if cashMoney, err = valueobject.NewMoneyINRFromString(cash); err != nil {
			return zero, zero, shared.NewDomainError("INVALID_AMOUNT", "Cash amount is not valid")
		}
	}

	onlineMoney := zero
	if online != "" {
		var err error
		if onlineMoney, err = valueobject.NewMoneyINRFromString(online); err != nil {
			return zero, zero, shared.NewDomainError("INVALID_AMOUNT", "Online amount is not valid")
		}
	}

	return cashMoney, onlineMoney, nil
}

package finance

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// ExpenseCategory represents the category of an expense
type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "RENT"
	ExpenseCategoryUtilities   ExpenseCategory = "UTILITIES"
	ExpenseCategorySalary      ExpenseCategory = "SALARY"
	ExpenseCategoryMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseCategorySupplies    ExpenseCategory = "SUPPLIES"
	ExpenseCategoryOther       ExpenseCategory = "OTHER"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryUtilities, ExpenseCategorySalary,
		ExpenseCategoryMaintenance, ExpenseCategorySupplies, ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// Expense is money going out: rent, salaries, maintenance. A nil branch
// means the expense is global to the tenant rather than tied to one
// location. Like collections, the amount is split across cash and online.
type Expense struct {
	shared.TenantAggregateRoot
	ExpenseNumber string            `json:"expense_number"`
	Title         string            `json:"title"`
	Category      ExpenseCategory   `json:"category"`
	Cash          valueobject.Money `json:"cash"`
	Online        valueobject.Money `json:"online"`
	IncurredOn    valueobject.Date  `json:"incurred_on"`
	BranchID      *uuid.UUID        `json:"branch_id"`
	Remark        string            `json:"remark"`
}

// NewExpense creates a new expense
func NewExpense(
	tenantID uuid.UUID,
	expenseNumber, title string,
	category ExpenseCategory,
	cash, online valueobject.Money,
	incurredOn valueobject.Date,
	branchID *uuid.UUID,
	remark string,
) (*Expense, error) {
	if expenseNumber == "" {
		return nil, shared.NewDomainError("INVALID_EXPENSE_NUMBER", "Expense number cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title cannot exceed 200 characters")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if cash.IsNegative() || online.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amounts cannot be negative")
	}
	if !cash.MustAdd(online).IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if incurredOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Expense date is required")
	}

	expense := &Expense{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ExpenseNumber:       expenseNumber,
		Title:               title,
		Category:            category,
		Cash:                cash,
		Online:              online,
		IncurredOn:          incurredOn,
		BranchID:            branchID,
		Remark:              remark,
	}

	expense.AddDomainEvent(NewExpenseRecordedEvent(expense))

	return expense, nil
}

// Amount returns cash + online
func (e *Expense) Amount() valueobject.Money {
	return e.Cash.MustAdd(e.Online)
}

// IsGlobal reports whether the expense is not tied to a branch
func (e *Expense) IsGlobal() bool {
	return e.BranchID == nil
}

// Update changes the expense details
func (e *Expense) Update(
	title string,
	category ExpenseCategory,
	cash, online valueobject.Money,
	incurredOn valueobject.Date,
	branchID *uuid.UUID,
	remark string,
) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if cash.IsNegative() || online.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amounts cannot be negative")
	}
	if !cash.MustAdd(online).IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if incurredOn.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Expense date is required")
	}

	e.Title = title
	e.Category = category
	e.Cash = cash
	e.Online = online
	e.IncurredOn = incurredOn
	e.BranchID = branchID
	e.Remark = remark
	e.Touch()
	return nil
}

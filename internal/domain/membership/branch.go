package membership

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
)

// Branch represents a physical location of the business.
// Seats, students and expenses belong to a branch.
type Branch struct {
	shared.TenantAggregateRoot
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewBranch creates a new branch
func NewBranch(tenantID uuid.UUID, name, code string) (*Branch, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Branch name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Branch name cannot exceed 100 characters")
	}
	if len(code) > 20 {
		return nil, shared.NewDomainError("INVALID_CODE", "Branch code cannot exceed 20 characters")
	}

	return &Branch{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Code:                code,
	}, nil
}

// Update changes the branch name and code
func (b *Branch) Update(name, code string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Branch name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Branch name cannot exceed 100 characters")
	}
	if len(code) > 20 {
		return shared.NewDomainError("INVALID_CODE", "Branch code cannot exceed 20 characters")
	}

	b.Name = name
	b.Code = code
	b.Touch()
	return nil
}

package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
)

// BranchService provides application-level branch operations
type BranchService struct {
	branchRepo membership.BranchRepository
}

// NewBranchService creates a new BranchService
func NewBranchService(branchRepo membership.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// BranchResponse represents a branch in API responses
type BranchResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchRequest represents a request to create or update a branch
type BranchRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

// Create creates a new branch
func (s *BranchService) Create(ctx context.Context, tenantID uuid.UUID, req BranchRequest) (*BranchResponse, error) {
	branch, err := membership.NewBranch(tenantID, req.Name, req.Code)
	if err != nil {
		return nil, err
	}
	if err := s.branchRepo.Save(ctx, branch); err != nil {
		return nil, err
	}
	response := toBranchResponse(branch)
	return &response, nil
}

// Get returns one branch
func (s *BranchService) Get(ctx context.Context, tenantID, branchID uuid.UUID) (*BranchResponse, error) {
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	response := toBranchResponse(branch)
	return &response, nil
}

// List returns all branches for a tenant
func (s *BranchService) List(ctx context.Context, tenantID uuid.UUID) ([]BranchResponse, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 0 // unpaginated; branch counts are small
	branches, err := s.branchRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]BranchResponse, 0, len(branches))
	for i := range branches {
		responses = append(responses, toBranchResponse(&branches[i]))
	}
	return responses, nil
}

// Update changes a branch
func (s *BranchService) Update(ctx context.Context, tenantID, branchID uuid.UUID, req BranchRequest) (*BranchResponse, error) {
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}
	if err := branch.Update(req.Name, req.Code); err != nil {
		return nil, err
	}
	if err := s.branchRepo.Save(ctx, branch); err != nil {
		return nil, err
	}
	response := toBranchResponse(branch)
	return &response, nil
}

// Delete removes a branch
func (s *BranchService) Delete(ctx context.Context, tenantID, branchID uuid.UUID) error {
	return s.branchRepo.Delete(ctx, tenantID, branchID)
}

func toBranchResponse(branch *membership.Branch) BranchResponse {
	return BranchResponse{
		ID:        branch.ID,
		Name:      branch.Name,
		Code:      branch.Code,
		CreatedAt: branch.CreatedAt,
		UpdatedAt: branch.UpdatedAt,
	}
}

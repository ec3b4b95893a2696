package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/finance"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// StudentService provides application-level student operations: enrollment,
// profile updates, activation toggles, renewal and seat assignment.
type StudentService struct {
	studentRepo    membership.StudentRepository
	assignmentRepo membership.AssignmentRepository
	seatRepo       membership.SeatRepository
	shiftRepo      membership.ShiftRepository
	collectionRepo finance.CollectionRecordRepository
	eventPublisher shared.EventPublisher
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo membership.StudentRepository,
	assignmentRepo membership.AssignmentRepository,
	seatRepo membership.SeatRepository,
	shiftRepo membership.ShiftRepository,
	collectionRepo finance.CollectionRecordRepository,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
		seatRepo:       seatRepo,
		shiftRepo:      shiftRepo,
		collectionRepo: collectionRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *StudentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// AssignmentInfo describes a student's seat assignment in responses
type AssignmentInfo struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	SeatID       uuid.UUID `json:"seat_id"`
	ShiftID      uuid.UUID `json:"shift_id"`
}

// FeeSummary is the derived fee state from the student's latest
// collection record
type FeeSummary struct {
	TotalFee   valueobject.Money `json:"total_fee"`
	Cash       valueobject.Money `json:"cash"`
	Online     valueobject.Money `json:"online"`
	AmountPaid valueobject.Money `json:"amount_paid"`
	DueAmount  valueobject.Money `json:"due_amount"`
	Status     string            `json:"status"`
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	ID               uuid.UUID        `json:"id"`
	BranchID         uuid.UUID        `json:"branch_id"`
	Name             string           `json:"name"`
	Phone            string           `json:"phone,omitempty"`
	Email            string           `json:"email,omitempty"`
	MembershipStart  valueobject.Date `json:"membership_start"`
	MembershipEnd    valueobject.Date `json:"membership_end"`
	Active           bool             `json:"active"`
	MembershipStatus string           `json:"membership_status"`
	DisplayStatus    string           `json:"display_status"`
	Assignment       *AssignmentInfo  `json:"assignment,omitempty"`
	Fees             *FeeSummary      `json:"fees,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Version          int              `json:"version"`
}

// EnrollStudentRequest represents a request to enroll a student
type EnrollStudentRequest struct {
	BranchID        uuid.UUID        `json:"branch_id" binding:"required"`
	Name            string           `json:"name" binding:"required"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	MembershipStart valueobject.Date `json:"membership_start" binding:"required"`
	MembershipEnd   valueobject.Date `json:"membership_end" binding:"required"`
	TotalFee        string           `json:"total_fee" binding:"required"`
	Cash            string           `json:"cash"`
	Online          string           `json:"online"`
	SeatID          *uuid.UUID       `json:"seat_id"`
	ShiftID         *uuid.UUID       `json:"shift_id"`
}

// UpdateStudentRequest represents a request to update a student profile
// and optionally move their seat assignment
type UpdateStudentRequest struct {
	BranchID uuid.UUID  `json:"branch_id" binding:"required"`
	Name     string     `json:"name" binding:"required"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	SeatID   *uuid.UUID `json:"seat_id"`
	ShiftID  *uuid.UUID `json:"shift_id"`
}

// RenewMembershipRequest represents a membership renewal
type RenewMembershipRequest struct {
	MembershipStart valueobject.Date `json:"membership_start" binding:"required"`
	MembershipEnd   valueobject.Date `json:"membership_end" binding:"required"`
	TotalFee        string           `json:"total_fee" binding:"required"`
	Cash            string           `json:"cash"`
	Online          string           `json:"online"`
	SeatID          *uuid.UUID       `json:"seat_id"`
	ShiftID         *uuid.UUID       `json:"shift_id"`
}

// StudentListFilter defines filtering options for student list queries
type StudentListFilter struct {
	Search   string     `form:"search"`
	BranchID *uuid.UUID `form:"branch_id"`
	Active   *bool      `form:"active"`
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
}

// Enroll enrolls a new student, creates the first collection record and
// optionally assigns a seat
func (s *StudentService) Enroll(ctx context.Context, tenantID uuid.UUID, req EnrollStudentRequest) (*StudentResponse, error) {
	student, err := membership.NewStudent(
		tenantID, req.BranchID,
		req.Name, req.Phone, req.Email,
		req.MembershipStart, req.MembershipEnd,
	)
	if err != nil {
		return nil, err
	}

	totalFee, cash, online, err := parseFeeAmounts(req.TotalFee, req.Cash, req.Online)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	receiptNumber, err := s.collectionRepo.GenerateReceiptNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	record, err := finance.NewCollectionRecord(
		tenantID, receiptNumber, student.ID, req.BranchID,
		totalFee, cash, online,
		req.MembershipStart.Month(), req.MembershipStart,
	)
	if err != nil {
		return nil, err
	}
	if err := s.collectionRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	var assignment *membership.Assignment
	if req.SeatID != nil && req.ShiftID != nil {
		assignment, err = s.assignSeat(ctx, tenantID, student.ID, *req.SeatID, *req.ShiftID)
		if err != nil {
			return nil, err
		}
	}

	s.publishEvents(ctx, student)
	if assignment != nil {
		s.publishEvents(ctx, assignment)
	}

	response := s.toStudentResponse(ctx, student, assignment, record)
	return &response, nil
}

// Get returns one student with assignment and fee summary
func (s *StudentService) Get(ctx context.Context, tenantID, studentID uuid.UUID) (*StudentResponse, error) {
	student, err := s.studentRepo.FindByIDForTenant(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.FindActiveByStudent(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	response := s.toStudentResponse(ctx, student, assignment, nil)
	return &response, nil
}

// List returns students matching the filter
func (s *StudentService) List(ctx context.Context, tenantID uuid.UUID, filter StudentListFilter) (*shared.Paginated[StudentResponse], error) {
	domainFilter := membership.StudentFilter{
		Filter:   shared.DefaultFilter(),
		BranchID: filter.BranchID,
		Active:   filter.Active,
	}
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	students, err := s.studentRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.studentRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindActiveForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]*membership.Assignment, len(assignments))
	for i := range assignments {
		byStudent[assignments[i].StudentID] = &assignments[i]
	}

	responses := make([]StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, s.toStudentResponse(ctx, &students[i], byStudent[students[i].ID], nil))
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update changes a student's profile and optionally moves the assignment
func (s *StudentService) Update(ctx context.Context, tenantID, studentID uuid.UUID, req UpdateStudentRequest) (*StudentResponse, error) {
	student, err := s.studentRepo.FindByIDForTenant(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	if err := student.UpdateProfile(req.BranchID, req.Name, req.Phone, req.Email); err != nil {
		return nil, err
	}
	if err := s.studentRepo.SaveWithLock(ctx, student); err != nil {
		return nil, err
	}

	assignment, err := s.moveAssignment(ctx, tenantID, student.ID, req.SeatID, req.ShiftID)
	if err != nil {
		return nil, err
	}

	response := s.toStudentResponse(ctx, student, assignment, nil)
	return &response, nil
}

// Deactivate manually marks a student inactive. The seat assignment is
// released by the StudentDeactivated event handler.
func (s *StudentService) Deactivate(ctx context.Context, tenantID, studentID uuid.UUID) (*StudentResponse, error) {
	student, err := s.studentRepo.FindByIDForTenant(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	if err := student.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.studentRepo.SaveWithLock(ctx, student); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, student)

	response := s.toStudentResponse(ctx, student, nil, nil)
	return &response, nil
}

// Activate re-enables a student. The previous seat is not restored.
func (s *StudentService) Activate(ctx context.Context, tenantID, studentID uuid.UUID) (*StudentResponse, error) {
	student, err := s.studentRepo.FindByIDForTenant(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	if err := student.Activate(); err != nil {
		return nil, err
	}
	if err := s.studentRepo.SaveWithLock(ctx, student); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, student)

	response := s.toStudentResponse(ctx, student, nil, nil)
	return &response, nil
}

// Renew resets the membership period, creates a fresh collection record
// for the new period and optionally reassigns the seat. Past records are
// never touched.
func (s *StudentService) Renew(ctx context.Context, tenantID, studentID uuid.UUID, req RenewMembershipRequest) (*StudentResponse, error) {
	student, err := s.studentRepo.FindByIDForTenant(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	totalFee, cash, online, err := parseFeeAmounts(req.TotalFee, req.Cash, req.Online)
	if err != nil {
		return nil, err
	}

	if err := student.Renew(req.MembershipStart, req.MembershipEnd); err != nil {
		return nil, err
	}
	if err := s.studentRepo.SaveWithLock(ctx, student); err != nil {
		return nil, err
	}

	receiptNumber, err := s.collectionRepo.GenerateReceiptNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	record, err := finance.NewCollectionRecord(
		tenantID, receiptNumber, student.ID, student.BranchID,
		totalFee, cash, online,
		req.MembershipStart.Month(), req.MembershipStart,
	)
	if err != nil {
		return nil, err
	}
	if err := s.collectionRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	assignment, err := s.moveAssignment(ctx, tenantID, student.ID, req.SeatID, req.ShiftID)
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, student)

	response := s.toStudentResponse(ctx, student, assignment, record)
	return &response, nil
}

// Delete removes a student and releases any active assignment
func (s *StudentService) Delete(ctx context.Context, tenantID, studentID uuid.UUID) error {
	assignment, err := s.assignmentRepo.FindActiveByStudent(ctx, tenantID, studentID)
	if err != nil {
		return err
	}
	if assignment != nil {
		assignment.Release()
		if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
			return err
		}
		s.publishEvents(ctx, assignment)
	}

	return s.studentRepo.Delete(ctx, tenantID, studentID)
}

// assignSeat creates an assignment after verifying the pair is free
func (s *StudentService) assignSeat(ctx context.Context, tenantID, studentID, seatID, shiftID uuid.UUID) (*membership.Assignment, error) {
	if _, err := s.seatRepo.FindByIDForTenant(ctx, tenantID, seatID); err != nil {
		return nil, err
	}
	if _, err := s.shiftRepo.FindByIDForTenant(ctx, tenantID, shiftID); err != nil {
		return nil, err
	}

	existing, err := s.assignmentRepo.FindActiveByPair(ctx, tenantID, seatID, shiftID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.StudentID != studentID {
		return nil, shared.ErrSeatOccupied
	}
	if existing != nil {
		return existing, nil
	}

	assignment, err := membership.NewAssignment(tenantID, studentID, seatID, shiftID)
	if err != nil {
		return nil, err
	}
	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// moveAssignment reconciles the student's active assignment with the
// requested seat/shift. Nil seat and shift release any held assignment.
func (s *StudentService) moveAssignment(ctx context.Context, tenantID, studentID uuid.UUID, seatID, shiftID *uuid.UUID) (*membership.Assignment, error) {
	current, err := s.assignmentRepo.FindActiveByStudent(ctx, tenantID, studentID)
	if err != nil {
		return nil, err
	}

	if seatID == nil || shiftID == nil {
		if current != nil {
			current.Release()
			if err := s.assignmentRepo.Save(ctx, current); err != nil {
				return nil, err
			}
			s.publishEvents(ctx, current)
		}
		return nil, nil
	}

	if current != nil && current.SeatID == *seatID && current.ShiftID == *shiftID {
		return current, nil
	}

	if current != nil {
		current.Release()
		if err := s.assignmentRepo.Save(ctx, current); err != nil {
			return nil, err
		}
		s.publishEvents(ctx, current)
	}

	assignment, err := s.assignSeat(ctx, tenantID, studentID, *seatID, *shiftID)
	if err != nil {
		return nil, err
	}
	s.publishEvents(ctx, assignment)
	return assignment, nil
}

func (s *StudentService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		aggregate.ClearDomainEvents()
		return
	}
	for _, event := range aggregate.GetDomainEvents() {
		// Handler failures are logged inside the bus; the request never
		// fails because of a subscriber.
		_ = s.eventPublisher.Publish(ctx, event)
	}
	aggregate.ClearDomainEvents()
}

func (s *StudentService) toStudentResponse(ctx context.Context, student *membership.Student, assignment *membership.Assignment, record *finance.CollectionRecord) StudentResponse {
	today := valueobject.Today()
	response := StudentResponse{
		ID:               student.ID,
		BranchID:         student.BranchID,
		Name:             student.Name,
		Phone:            student.Phone,
		Email:            student.Email,
		MembershipStart:  student.MembershipStart,
		MembershipEnd:    student.MembershipEnd,
		Active:           student.Active,
		MembershipStatus: student.MembershipStatus(today).String(),
		DisplayStatus:    string(student.DisplayStatus(today)),
		CreatedAt:        student.CreatedAt,
		UpdatedAt:        student.UpdatedAt,
		Version:          student.Version,
	}

	if assignment != nil && assignment.Active {
		response.Assignment = &AssignmentInfo{
			AssignmentID: assignment.ID,
			SeatID:       assignment.SeatID,
			ShiftID:      assignment.ShiftID,
		}
	}

	if record == nil {
		records, err := s.collectionRepo.FindByStudent(ctx, student.TenantID, student.ID)
		if err == nil && len(records) > 0 {
			record = &records[0]
		}
	}
	if record != nil {
		response.Fees = &FeeSummary{
			TotalFee:   record.TotalFee,
			Cash:       record.Cash,
			Online:     record.Online,
			AmountPaid: record.AmountPaid(),
			DueAmount:  record.Due(),
			Status:     record.Status.String(),
		}
	}

	return response
}

func parseFeeAmounts(totalFee, cash, online string) (valueobject.Money, valueobject.Money, valueobject.Money, error) {
	zero := valueobject.ZeroINR()

	total, err := valueobject.NewMoneyINRFromString(totalFee)
	if err != nil {
		return zero, zero, zero, shared.NewDomainError("INVALID_AMOUNT", "Total fee is not a valid amount")
	}

	cashMoney := zero
	if cash != "" {
		if cashMoney, err = valueobject.NewMoneyINRFromString(cash); err != nil {
			return zero, zero, zero, shared.NewDomainError("INVALID_AMOUNT", "Cash amount is not valid")
		}
	}

	onlineMoney := zero
	if online != "" {
		if onlineMoney, err = valueobject.NewMoneyINRFromString(online); err != nil {
			return zero, zero, zero, shared.NewDomainError("INVALID_AMOUNT", "Online amount is not valid")
		}
	}

	return total, cashMoney, onlineMoney, nil
}

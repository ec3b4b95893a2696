package membership

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/studyhall/backend/internal/domain/membership"
	"github.com/studyhall/backend/internal/domain/shared"
	"github.com/studyhall/backend/internal/domain/shared/valueobject"
)

// MockSeatRepository is a mock implementation of membership.SeatRepository
type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Seat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Seat), args.Error(1)
}

func (m *MockSeatRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*membership.Seat, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Seat), args.Error(1)
}

func (m *MockSeatRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.SeatFilter) ([]membership.Seat, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]membership.Seat), args.Error(1)
}

func (m *MockSeatRepository) Save(ctx context.Context, seat *membership.Seat) error {
	args := m.Called(ctx, seat)
	return args.Error(0)
}

func (m *MockSeatRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockSeatRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.SeatFilter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockShiftRepository is a mock implementation of membership.ShiftRepository
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*membership.Shift, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]membership.Shift, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]membership.Shift), args.Error(1)
}

func (m *MockShiftRepository) Save(ctx context.Context, shift *membership.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockStudentRepository is a mock implementation of membership.StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*membership.Student, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Student), args.Error(1)
}

func (m *MockStudentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.StudentFilter) ([]membership.Student, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]membership.Student), args.Error(1)
}

func (m *MockStudentRepository) Save(ctx context.Context, student *membership.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) SaveWithLock(ctx context.Context, student *membership.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockStudentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter membership.StudentFilter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type availabilityFixture struct {
	tenantID uuid.UUID
	branchID uuid.UUID
	shift    *membership.Shift
	seatA    *membership.Seat
	seatB    *membership.Seat
	student  *membership.Student
}

func newAvailabilityFixture(t *testing.T) availabilityFixture {
	t.Helper()
	tenantID := uuid.New()
	branchID := uuid.New()

	shift, err := membership.NewShift(tenantID, "Morning", "06:00-12:00", valueobject.Date{})
	require.NoError(t, err)

	seatA, err := membership.NewSeat(tenantID, branchID, "A1")
	require.NoError(t, err)
	seatB, err := membership.NewSeat(tenantID, branchID, "A2")
	require.NoError(t, err)

	student, err := membership.NewStudent(
		tenantID, branchID, "Ravi Kumar", "9876543210", "",
		valueobject.NewDate(2026, 1, 1), valueobject.NewDate(2026, 6, 30),
	)
	require.NoError(t, err)
	student.ClearDomainEvents()

	return availabilityFixture{
		tenantID: tenantID,
		branchID: branchID,
		shift:    shift,
		seatA:    seatA,
		seatB:    seatB,
		student:  student,
	}
}

func newAvailabilityService(seatRepo *MockSeatRepository, shiftRepo *MockShiftRepository, studentRepo *MockStudentRepository, assignmentRepo *MockAssignmentRepository) *AvailabilityService {
	return NewAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)
}

func TestAvailabilityService_SeatsForShift(t *testing.T) {
	fx := newAvailabilityFixture(t)

	assignment, err := membership.NewAssignment(fx.tenantID, fx.student.ID, fx.seatA.ID, fx.shift.ID)
	require.NoError(t, err)
	assignment.ClearDomainEvents()

	seatRepo := new(MockSeatRepository)
	shiftRepo := new(MockShiftRepository)
	studentRepo := new(MockStudentRepository)
	assignmentRepo := new(MockAssignmentRepository)
	service := newAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)

	shiftRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.shift.ID).Return(fx.shift, nil)
	seatRepo.On("FindAllForTenant", mock.Anything, fx.tenantID, mock.Anything).Return([]membership.Seat{*fx.seatA, *fx.seatB}, nil)
	assignmentRepo.On("FindActiveForTenant", mock.Anything, fx.tenantID).Return([]membership.Assignment{*assignment}, nil)
	studentRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.student.ID).Return(fx.student, nil)

	result, err := service.SeatsForShift(context.Background(), fx.tenantID, fx.shift.ID, uuid.Nil, nil, false)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].Assigned)
	assert.Equal(t, fx.student.ID, result[0].StudentID)
	assert.Equal(t, "Ravi Kumar", result[0].StudentName)
	assert.False(t, result[1].Assigned)
}

func TestAvailabilityService_SeatsForShift_SelfExclusion(t *testing.T) {
	fx := newAvailabilityFixture(t)

	assignment, err := membership.NewAssignment(fx.tenantID, fx.student.ID, fx.seatA.ID, fx.shift.ID)
	require.NoError(t, err)
	assignment.ClearDomainEvents()

	seatRepo := new(MockSeatRepository)
	shiftRepo := new(MockShiftRepository)
	studentRepo := new(MockStudentRepository)
	assignmentRepo := new(MockAssignmentRepository)
	service := newAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)

	shiftRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.shift.ID).Return(fx.shift, nil)
	seatRepo.On("FindAllForTenant", mock.Anything, fx.tenantID, mock.Anything).Return([]membership.Seat{*fx.seatA}, nil)
	assignmentRepo.On("FindActiveForTenant", mock.Anything, fx.tenantID).Return([]membership.Assignment{*assignment}, nil)
	studentRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.student.ID).Return(fx.student, nil)

	// The student's own seat stays selectable on the edit form
	result, err := service.SeatsForShift(context.Background(), fx.tenantID, fx.shift.ID, fx.student.ID, nil, false)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.False(t, result[0].Assigned)
	assert.Equal(t, uuid.Nil, result[0].StudentID)
}

func TestAvailabilityService_SeatsForShift_UnknownShift(t *testing.T) {
	fx := newAvailabilityFixture(t)

	seatRepo := new(MockSeatRepository)
	shiftRepo := new(MockShiftRepository)
	studentRepo := new(MockStudentRepository)
	assignmentRepo := new(MockAssignmentRepository)
	service := newAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)

	shiftID := uuid.New()
	shiftRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, shiftID).Return(nil, shared.ErrNotFound)

	_, err := service.SeatsForShift(context.Background(), fx.tenantID, shiftID, uuid.Nil, nil, false)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAvailabilityService_SeatsForShift_FreeOnly(t *testing.T) {
	fx := newAvailabilityFixture(t)

	assignment, err := membership.NewAssignment(fx.tenantID, fx.student.ID, fx.seatA.ID, fx.shift.ID)
	require.NoError(t, err)
	assignment.ClearDomainEvents()

	seatRepo := new(MockSeatRepository)
	shiftRepo := new(MockShiftRepository)
	studentRepo := new(MockStudentRepository)
	assignmentRepo := new(MockAssignmentRepository)
	service := newAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)

	shiftRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.shift.ID).Return(fx.shift, nil)
	seatRepo.On("FindAllForTenant", mock.Anything, fx.tenantID, mock.Anything).Return([]membership.Seat{*fx.seatA, *fx.seatB}, nil)
	assignmentRepo.On("FindActiveForTenant", mock.Anything, fx.tenantID).Return([]membership.Assignment{*assignment}, nil)

	result, err := service.SeatsForShift(context.Background(), fx.tenantID, fx.shift.ID, uuid.Nil, nil, true)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, fx.seatB.ID, result[0].SeatID)
	assert.Equal(t, "A2", result[0].SeatNumber)
	assert.False(t, result[0].Assigned)
	// Dropping occupied seats makes the name lookup unnecessary
	studentRepo.AssertNotCalled(t, "FindByIDForTenant")
}

func TestAvailabilityService_ShiftsForSeat(t *testing.T) {
	fx := newAvailabilityFixture(t)

	assignment, err := membership.NewAssignment(fx.tenantID, fx.student.ID, fx.seatA.ID, fx.shift.ID)
	require.NoError(t, err)
	assignment.ClearDomainEvents()

	seatRepo := new(MockSeatRepository)
	shiftRepo := new(MockShiftRepository)
	studentRepo := new(MockStudentRepository)
	assignmentRepo := new(MockAssignmentRepository)
	service := newAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)

	seatRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.seatA.ID).Return(fx.seatA, nil)
	shiftRepo.On("FindAllForTenant", mock.Anything, fx.tenantID, mock.Anything).Return([]membership.Shift{*fx.shift}, nil)
	assignmentRepo.On("FindActiveForTenant", mock.Anything, fx.tenantID).Return([]membership.Assignment{*assignment}, nil)
	studentRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.student.ID).Return(fx.student, nil)

	result, err := service.ShiftsForSeat(context.Background(), fx.tenantID, fx.seatA.ID, uuid.Nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].Assigned)
	assert.Equal(t, "Ravi Kumar", result[0].StudentName)
}

func TestAvailabilityService_ShiftsForSeat_NoSeatSelected(t *testing.T) {
	fx := newAvailabilityFixture(t)

	assignment, err := membership.NewAssignment(fx.tenantID, fx.student.ID, fx.seatA.ID, fx.shift.ID)
	require.NoError(t, err)
	assignment.ClearDomainEvents()

	seatRepo := new(MockSeatRepository)
	shiftRepo := new(MockShiftRepository)
	studentRepo := new(MockStudentRepository)
	assignmentRepo := new(MockAssignmentRepository)
	service := newAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)

	shiftRepo.On("FindAllForTenant", mock.Anything, fx.tenantID, mock.Anything).Return([]membership.Shift{*fx.shift}, nil)
	assignmentRepo.On("FindActiveForTenant", mock.Anything, fx.tenantID).Return([]membership.Assignment{*assignment}, nil)
	studentRepo.On("FindByIDForTenant", mock.Anything, fx.tenantID, fx.student.ID).Return(fx.student, nil)

	// Without a seat every shift is reported available
	result, err := service.ShiftsForSeat(context.Background(), fx.tenantID, uuid.Nil, uuid.Nil)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.False(t, result[0].Assigned)
	seatRepo.AssertNotCalled(t, "FindByIDForTenant")
}

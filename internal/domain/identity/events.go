package identity

import (
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/domain/shared"
)

// Event type names for the identity context
const (
	EventTypeUserCreated = "UserCreated"
)

// UserCreatedEvent is raised when a new user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     UserRole  `json:"role"`
}

// EventType returns the event type name
func (e *UserCreatedEvent) EventType() string {
	return EventTypeUserCreated
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, "User", user.ID, user.TenantID),
		UserID:          user.ID,
		Username:        user.Username,
		Role:            user.Role,
	}
}

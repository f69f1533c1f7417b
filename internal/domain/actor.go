package domain

// Role of the caller as asserted by the upstream gateway
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID int64
	Role   Role
	// SessionID identifies the client session that triggered a change, may be empty
	SessionID string
}

// IsAdmin returns true for administrators
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManageAvailability returns true if the actor may create, update or delete availability windows
func (a Actor) CanManageAvailability() bool {
	return a.IsAdmin()
}

// CanModifyBooking returns true if the actor may read, update or delete the booking
func (a Actor) CanModifyBooking(b *Booking) bool {
	return a.IsAdmin() || (b != nil && b.UserID == a.UserID)
}

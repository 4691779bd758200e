package domain

import "time"

type Session struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64
	Name          string
	Price         int
	IsRemote      bool
	IncludesHotel bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Ticket struct {
	ID           int64
	EnrollmentID int64
	Status       TicketStatus
	Type         TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HotelAccess reports whether the ticket lets its holder see hotel data.
// It returns nil only for a paid, in-person ticket whose type includes a hotel;
// otherwise the first failing condition, checked in that order.
func (t Ticket) HotelAccess() error {
	switch {
	case t.Status != TicketPaid:
		return ErrTicketNotPaid
	case !t.Type.IncludesHotel:
		return ErrHotelNotIncluded
	case t.Type.IsRemote:
		return ErrRemoteTicket
	}
	return nil
}

package domain

import (
	"context"
	"time"
)

// Read paths only; nothing here mutates hotel or ticket data.

type EntitlementRepository interface {
	FindEnrollmentByUser(ctx context.Context, userID int64) (Enrollment, error)
	// FindTicketByEnrollment returns the ticket with its TicketType populated.
	FindTicketByEnrollment(ctx context.Context, enrollmentID int64) (Ticket, error)
}

type HotelRepository interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotelWithRooms(ctx context.Context, id int64) (HotelWithRooms, error)
}

type SessionRepository interface {
	FindSessionByToken(ctx context.Context, token string) (Session, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

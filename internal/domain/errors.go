package domain

import "errors"

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// Kind classifies failures that reach the HTTP edge.
type Kind int

const (
	// KindBadRequest is the zero value and the class of every unclassified error.
	KindBadRequest Kind = iota
	KindNotFound
	KindPaymentRequired
)

// Error is a classified failure carrying a short, user-visible message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

var (
	ErrNoEnrollment = &Error{Kind: KindNotFound, Msg: "no enrollment for user"}
	ErrNoTicket     = &Error{Kind: KindNotFound, Msg: "no ticket for enrollment"}
	ErrHotelMissing = &Error{Kind: KindNotFound, Msg: "hotel not found"}

	ErrTicketNotPaid    = &Error{Kind: KindPaymentRequired, Msg: "ticket is not paid"}
	ErrHotelNotIncluded = &Error{Kind: KindPaymentRequired, Msg: "ticket type does not include hotel"}
	ErrRemoteTicket     = &Error{Kind: KindPaymentRequired, Msg: "ticket type is remote"}
)

// KindOf returns the Kind of the first *Error in err's chain, or KindBadRequest.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindBadRequest
}

// MessageOf returns the user-visible message of a classified error, or "".
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return ""
}

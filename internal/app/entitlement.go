package app

import (
	"context"
	"errors"
	"fmt"

	"event_hotels/internal/domain"
)

// EntitlementChecker decides whether a user may view hotel data.
type EntitlementChecker struct {
	repo domain.EntitlementRepository
}

func NewEntitlementChecker(r domain.EntitlementRepository) *EntitlementChecker {
	return &EntitlementChecker{repo: r}
}

// Check walks enrollment, ticket and ticket type, stopping at the first failure.
// Missing records yield KindNotFound errors, an ineligible ticket a
// KindPaymentRequired one. Datastore failures are returned wrapped and unclassified.
func (c *EntitlementChecker) Check(ctx context.Context, userID int64) error {
	enr, err := c.repo.FindEnrollmentByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNoEnrollment
	}
	if err != nil {
		return fmt.Errorf("find enrollment for user %d: %w", userID, err)
	}

	tk, err := c.repo.FindTicketByEnrollment(ctx, enr.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNoTicket
	}
	if err != nil {
		return fmt.Errorf("find ticket for enrollment %d: %w", enr.ID, err)
	}

	return tk.HotelAccess()
}

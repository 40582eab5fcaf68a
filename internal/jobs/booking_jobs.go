package jobs

import (
	"context"

	"unirent-backend/internal/logger"
)

// ExpireStaleBookings cancels bookings that never left the Pending status,
// typically because the payer dismissed the push prompt and the provider
// callback never arrived.
func (jr *JobRunner) ExpireStaleBookings() {
	jr.runWithRecovery("ExpireStaleBookings", func() {
		ctx := context.Background()

		expired, err := jr.services.Booking.ExpireStalePendingBookings(ctx, jr.config.Booking.PendingExpiryHours)
		if err != nil {
			logger.Error("Failed to expire stale bookings", "error", err)
			return
		}
		logger.Info("Expired stale bookings", "count", expired)
	})
}

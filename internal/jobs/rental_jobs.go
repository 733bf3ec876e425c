package jobs

import (
	"context"
	"time"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/logger"
)

// ExpireStalePendingRequests rejects pending requests whose start date has
// already passed without a staff decision. Each rejection goes through the
// booking service so it runs under the same per-equipment lock and
// transition checks as a staff rejection.
func (jr *JobRunner) ExpireStalePendingRequests() {
	jr.runWithRecovery("ExpireStalePendingRequests", func() {
		ctx := context.Background()

		query := `
			SELECT id FROM rental_requests
			WHERE status = 'PENDING'
			  AND start_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to find stale pending requests", "error", err)
			return
		}
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				logger.Error("Failed to scan stale request id", "error", err)
				continue
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating stale requests", "error", err)
			return
		}

		rejected := 0
		for _, id := range ids {
			if _, err := jr.services.Booking.Reject(ctx, id, domain.RejectionReasonExpired); err != nil {
				// A request approved or cancelled since the SELECT is no
				// longer stale; skip it.
				logger.Warn("Skipping stale request", "request_id", id, "error", err)
				continue
			}
			rejected++
			logger.Debug("Expired stale pending request", "request_id", id)
		}

		logger.Info("Expired stale pending requests", "checked", len(ids), "rejected", rejected)
	})
}

// SendReturnReminders emails requesters whose active rental is past its end
// date and has not been marked returned.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.end_date, u.email, u.first_name,
			       COALESCE(e.make || ' ' || e.model, 'your rented equipment')
			FROM rental_requests r
			JOIN users u ON u.id = r.requester_id
			LEFT JOIN equipment e ON e.id = r.equipment_id
			WHERE r.status = 'ACTIVE'
			  AND r.end_date < $1
			  AND r.actual_return_date IS NULL
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to find overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		type reminder struct {
			requestID     string
			endDate       time.Time
			email         string
			firstName     string
			equipmentName string
		}
		var reminders []reminder

		for rows.Next() {
			var rem reminder
			if err := rows.Scan(&rem.requestID, &rem.endDate, &rem.email, &rem.firstName, &rem.equipmentName); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			reminders = append(reminders, rem)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rem := range reminders {
			if err := jr.services.Email.SendReturnReminder(ctx, rem.email, rem.firstName, rem.equipmentName, rem.endDate); err != nil {
				logger.Warn("Failed to send return reminder",
					"request_id", rem.requestID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent return reminders", "overdue", len(reminders), "sent", sent)
	})
}

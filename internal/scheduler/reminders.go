package scheduler

import (
	"context"
	"time"

	"nurture_backend/internal/events"
	"nurture_backend/platform/logger"
)

// RegisterFollowUpReminders turns every committed follow-up into a delayed
// reminder job that fires lead before the follow-up is due.
func RegisterFollowUpReminders(bus events.Bus, reminders ReminderScheduler, lead time.Duration, log *logger.Logger) {
	if bus == nil || reminders == nil {
		return
	}
	if log == nil {
		log = logger.Discard()
	}

	bus.Subscribe(events.FollowUpScheduled{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.FollowUpScheduled)
		if !ok {
			return nil
		}

		payload := FollowUpReminderPayload{
			ContactID:     e.ContactID.String(),
			AgentID:       e.AgentID.String(),
			InteractionID: e.InteractionID.String(),
			Channel:       e.Channel,
			ScheduledFor:  e.ScheduledFor,
		}

		runAt := reminderRunAt(e.ScheduledFor, lead, time.Now())
		if err := reminders.ScheduleFollowUpReminder(ctx, payload, runAt); err != nil {
			log.Error("failed to schedule follow-up reminder", "error", err, "contactId", e.ContactID, "interactionId", e.InteractionID)
			return err
		}
		return nil
	}))
}

func reminderRunAt(scheduledFor time.Time, lead time.Duration, now time.Time) time.Time {
	if lead < 0 {
		lead = 0
	}
	runAt := scheduledFor.Add(-lead)
	if runAt.Before(now) {
		return now
	}
	return runAt
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nurture_backend/internal/events"
	"nurture_backend/internal/leads"
	"nurture_backend/platform/config"
	"nurture_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	leads  leads.Service
	bus    events.Bus
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, leadSvc leads.Service, bus events.Bus, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		leads:  leadSvc,
		bus:    bus,
		log:    log,
	}

	mux.HandleFunc(TaskFollowUpReminder, w.handleFollowUpReminder)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleFollowUpReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseFollowUpReminderPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	contactID, err := uuid.Parse(payload.ContactID)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	lead, err := w.leads.GetLeadByID(ctx, contactID)
	if errors.Is(err, leads.ErrLeadNotFound) {
		w.log.Info("dropping follow-up reminder for missing contact", "contactId", contactID)
		return nil
	}
	if err != nil {
		return err
	}

	// A newer follow-up replaces this one.
	if !sameInstant(lead.NextFollowUpAt, payload.ScheduledFor) {
		w.log.Info("dropping superseded follow-up reminder", "contactId", contactID, "interactionId", payload.InteractionID)
		return nil
	}

	if w.bus == nil {
		return nil
	}

	return w.bus.PublishSync(ctx, events.FollowUpDue{
		BaseEvent:    events.NewBaseEvent(),
		ContactID:    lead.ID,
		AgentID:      lead.AgentID,
		ContactName:  lead.Name,
		Channel:      payload.Channel,
		ScheduledFor: payload.ScheduledFor,
	})
}

func sameInstant(stored *time.Time, scheduledFor time.Time) bool {
	if stored == nil {
		return false
	}
	// Postgres keeps microseconds.
	return stored.Truncate(time.Microsecond).Equal(scheduledFor.Truncate(time.Microsecond))
}

// RegisterDueLogger writes every due follow-up to the log. It is the only
// FollowUpDue consumer until a notification channel is attached.
func RegisterDueLogger(bus events.Bus, log *logger.Logger) {
	bus.Subscribe(events.FollowUpDue{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.FollowUpDue)
		if !ok {
			return nil
		}
		log.WithContext(ctx).Info("follow-up due",
			"contactId", e.ContactID,
			"agentId", e.AgentID,
			"contactName", e.ContactName,
			"channel", e.Channel,
			"scheduledFor", e.ScheduledFor.UTC().Format(time.RFC3339),
		)
		return nil
	}))
}

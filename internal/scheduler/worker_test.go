package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"nurture_backend/internal/events"
	"nurture_backend/internal/leads"
	"nurture_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type leadLookupStub struct {
	lead leads.Lead
	err  error
}

func (s leadLookupStub) GetLeadByID(context.Context, uuid.UUID) (leads.Lead, error) {
	return s.lead, s.err
}

func newTestWorker(lookup leads.Service) (*Worker, *[]events.FollowUpDue) {
	bus := events.NewInMemoryBus(nil)
	var due []events.FollowUpDue
	bus.Subscribe(events.FollowUpDue{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		due = append(due, event.(events.FollowUpDue))
		return nil
	}))
	return &Worker{leads: lookup, bus: bus, log: logger.Discard()}, &due
}

func reminderTask(t *testing.T, payload FollowUpReminderPayload) *asynq.Task {
	t.Helper()
	task, err := NewFollowUpReminderTask(payload)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	return task
}

func TestReminderPublishesFollowUpDue(t *testing.T) {
	scheduledFor := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)
	lead := leads.Lead{ID: uuid.New(), AgentID: uuid.New(), Name: "Sara Khan", NextFollowUpAt: &scheduledFor}
	w, due := newTestWorker(leadLookupStub{lead: lead})

	task := reminderTask(t, FollowUpReminderPayload{
		ContactID:    lead.ID.String(),
		Channel:      "phone",
		ScheduledFor: scheduledFor,
	})
	if err := w.handleFollowUpReminder(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(*due) != 1 {
		t.Fatalf("expected 1 due event, got %d", len(*due))
	}
	got := (*due)[0]
	if got.ContactName != "Sara Khan" || got.AgentID != lead.AgentID || got.Channel != "phone" {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestReminderSkipsSupersededFollowUp(t *testing.T) {
	newer := time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC)
	lead := leads.Lead{ID: uuid.New(), NextFollowUpAt: &newer}
	w, due := newTestWorker(leadLookupStub{lead: lead})

	task := reminderTask(t, FollowUpReminderPayload{
		ContactID:    lead.ID.String(),
		ScheduledFor: newer.Add(-72 * time.Hour),
	})
	if err := w.handleFollowUpReminder(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(*due) != 0 {
		t.Fatalf("expected no due events, got %d", len(*due))
	}
}

func TestReminderForMissingContactIsDropped(t *testing.T) {
	w, due := newTestWorker(leadLookupStub{err: leads.ErrLeadNotFound})

	task := reminderTask(t, FollowUpReminderPayload{ContactID: uuid.NewString(), ScheduledFor: time.Now()})
	if err := w.handleFollowUpReminder(context.Background(), task); err != nil {
		t.Fatalf("expected missing contact to be dropped, got %v", err)
	}
	if len(*due) != 0 {
		t.Fatalf("expected no due events")
	}
}

func TestReminderWithBadPayloadSkipsRetry(t *testing.T) {
	w, _ := newTestWorker(leadLookupStub{})

	err := w.handleFollowUpReminder(context.Background(), asynq.NewTask(TaskFollowUpReminder, []byte(`{"contactId":"nope"}`)))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestReminderLookupFailureIsRetried(t *testing.T) {
	w, _ := newTestWorker(leadLookupStub{err: errors.New("connection reset")})

	task := reminderTask(t, FollowUpReminderPayload{ContactID: uuid.NewString(), ScheduledFor: time.Now()})
	err := w.handleFollowUpReminder(context.Background(), task)
	if err == nil || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected retryable error, got %v", err)
	}
}

package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"nurture_backend/internal/events"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/apperr"

	"github.com/google/uuid"
)

type fakeRepo struct {
	contacts    map[uuid.UUID]repository.Contact
	scheduleErr error
	getCalls    int
	writeCalls  []repository.ScheduleFollowUpParams
}

func (f *fakeRepo) GetContact(_ context.Context, id uuid.UUID) (repository.Contact, error) {
	f.getCalls++
	contact, ok := f.contacts[id]
	if !ok {
		return repository.Contact{}, repository.ErrNotFound
	}
	return contact, nil
}

func (f *fakeRepo) ScheduleFollowUp(_ context.Context, params repository.ScheduleFollowUpParams) (repository.Interaction, error) {
	f.writeCalls = append(f.writeCalls, params)
	if f.scheduleErr != nil {
		return repository.Interaction{}, f.scheduleErr
	}
	scheduled := params.ScheduledFor
	return repository.Interaction{
		ID:           uuid.New(),
		ContactID:    params.ContactID,
		AgentID:      params.AgentID,
		Type:         params.Type,
		Content:      params.Notes,
		ScheduledFor: &scheduled,
		CreatedAt:    time.Now(),
	}, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func newFixture() (*Service, *fakeRepo, *recordingBus, uuid.UUID) {
	contactID := uuid.New()
	repo := &fakeRepo{contacts: map[uuid.UUID]repository.Contact{
		contactID: {ID: contactID, Name: "Layla"},
	}}
	bus := &recordingBus{}
	return New(repo, bus, nil), repo, bus, contactID
}

func TestScheduleFollowUpUnknownContactWritesNothing(t *testing.T) {
	svc, repo, bus, _ := newFixture()

	_, err := svc.ScheduleFollowUp(context.Background(), uuid.New(), uuid.New(), transport.ScheduleFollowUpRequest{
		ScheduledFor: time.Now().Add(24 * time.Hour),
		Channel:      "email",
	})

	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.writeCalls) != 0 {
		t.Fatalf("expected zero store writes, got %d", len(repo.writeCalls))
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events")
	}
}

func TestScheduleFollowUpRejectsUnsupportedChannelBeforeStore(t *testing.T) {
	svc, repo, _, contactID := newFixture()

	_, err := svc.ScheduleFollowUp(context.Background(), contactID, uuid.New(), transport.ScheduleFollowUpRequest{
		ScheduledFor: time.Now().Add(time.Hour),
		Channel:      "carrier_pigeon",
	})

	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.getCalls != 0 || len(repo.writeCalls) != 0 {
		t.Fatalf("expected no store access, got %d reads and %d writes", repo.getCalls, len(repo.writeCalls))
	}
}

func TestScheduleFollowUpSuccess(t *testing.T) {
	svc, repo, bus, contactID := newFixture()
	agentID := uuid.New()
	when := time.Date(2026, 11, 3, 15, 30, 0, 0, time.UTC)

	resp, err := svc.ScheduleFollowUp(context.Background(), contactID, agentID, transport.ScheduleFollowUpRequest{
		ScheduledFor: when,
		Channel:      "WhatsApp",
		Notes:        "Send the Marina floor plans",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Message != "Follow-up scheduled for November 03, 2026 at 03:30 PM" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.ContactID != contactID || !resp.ScheduledFor.Equal(when) || resp.Channel != "whatsapp" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(repo.writeCalls) != 1 {
		t.Fatalf("expected one transactional write, got %d", len(repo.writeCalls))
	}
	write := repo.writeCalls[0]
	if write.Type != "follow_up_whatsapp" || write.AgentID != agentID || write.Notes != "Send the Marina floor plans" {
		t.Fatalf("unexpected write params %+v", write)
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected one event, got %d", len(bus.published))
	}
	if _, ok := bus.published[0].(events.FollowUpScheduled); !ok {
		t.Fatalf("expected FollowUpScheduled, got %T", bus.published[0])
	}
}

func TestScheduleFollowUpWithoutChannelUsesPlainType(t *testing.T) {
	svc, repo, _, contactID := newFixture()

	_, err := svc.ScheduleFollowUp(context.Background(), contactID, uuid.New(), transport.ScheduleFollowUpRequest{
		ScheduledFor: time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("past dates are accepted, got %v", err)
	}
	if repo.writeCalls[0].Type != "follow_up" {
		t.Fatalf("expected follow_up type, got %q", repo.writeCalls[0].Type)
	}
}

func TestScheduleFollowUpStoreFailure(t *testing.T) {
	svc, repo, bus, contactID := newFixture()
	repo.scheduleErr = errors.New("connection reset")

	_, err := svc.ScheduleFollowUp(context.Background(), contactID, uuid.New(), transport.ScheduleFollowUpRequest{
		ScheduledFor: time.Now().Add(time.Hour),
		Channel:      "phone",
	})

	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Message != "Failed to schedule follow-up: connection reset" {
		t.Fatalf("unexpected message: %v", err)
	}
	if len(bus.published) != 0 {
		t.Fatalf("no event should be published on failure")
	}
}

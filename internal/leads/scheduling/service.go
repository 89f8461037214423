// Package scheduling records future follow-ups against a contact.
// A follow-up is one interaction row plus the contact's next_follow_up_at
// pointer, written together or not at all.
package scheduling

import (
	"context"
	"errors"
	"strings"

	"nurture_backend/internal/events"
	"nurture_backend/internal/leads/domain"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/apperr"
	"nurture_backend/platform/logger"
	"nurture_backend/platform/sanitize"

	"github.com/google/uuid"
)

// DisplayLayout renders the scheduled time in confirmation messages.
const DisplayLayout = "January 02, 2006 at 03:04 PM"

// Repository defines the data access interface needed by the scheduling service.
// This is a consumer-driven interface - only what scheduling needs.
type Repository interface {
	repository.ContactReader
	repository.FollowUpWriter
}

// Service handles follow-up scheduling.
type Service struct {
	repo     Repository
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new follow-up scheduling service.
func New(repo Repository, eventBus events.Bus, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{repo: repo, eventBus: eventBus, log: log}
}

// ScheduleFollowUp validates the request, then appends the follow-up
// interaction and moves next_follow_up_at in one transaction.
// Past dates are accepted as given.
func (s *Service) ScheduleFollowUp(ctx context.Context, contactID, agentID uuid.UUID, req transport.ScheduleFollowUpRequest) (transport.FollowUpScheduledResponse, error) {
	channel := strings.ToLower(strings.TrimSpace(req.Channel))
	if channel != "" && !domain.IsKnownChannel(channel) {
		return transport.FollowUpScheduledResponse{}, apperr.Validation("unsupported follow-up channel").
			WithDetails(map[string]string{"channel": req.Channel})
	}
	if req.ScheduledFor.IsZero() {
		return transport.FollowUpScheduledResponse{}, apperr.Validation("scheduledFor is required")
	}
	if agentID == uuid.Nil {
		return transport.FollowUpScheduledResponse{}, apperr.Unauthorized("agent identity is required")
	}

	if _, err := s.repo.GetContact(ctx, contactID); err != nil {
		return transport.FollowUpScheduledResponse{}, s.storeError(ctx, "load contact", err)
	}

	notes := sanitize.Text(req.Notes)
	interaction, err := s.repo.ScheduleFollowUp(ctx, repository.ScheduleFollowUpParams{
		ContactID:    contactID,
		AgentID:      agentID,
		Type:         domain.FollowUpType(channel),
		Notes:        notes,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		return transport.FollowUpScheduledResponse{}, s.storeError(ctx, "schedule follow-up", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.FollowUpScheduled{
			BaseEvent:     events.NewBaseEvent(),
			ContactID:     contactID,
			AgentID:       agentID,
			InteractionID: interaction.ID,
			Channel:       channel,
			ScheduledFor:  req.ScheduledFor,
			Notes:         notes,
		})
	}

	return transport.FollowUpScheduledResponse{
		Message:       "Follow-up scheduled for " + req.ScheduledFor.Format(DisplayLayout),
		ContactID:     contactID,
		InteractionID: interaction.ID,
		ScheduledFor:  req.ScheduledFor,
		Channel:       channel,
	}, nil
}

func (s *Service) storeError(ctx context.Context, operation string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("Contact not found")
	}
	s.log.WithContext(ctx).DatabaseError(operation, err)
	return apperr.Failed(operation, err)
}

// Package nurture assembles follow-up context and nurture suggestions for a lead.
package nurture

import (
	"context"
	"errors"
	"strings"
	"time"

	"nurture_backend/internal/leads/domain"
	"nurture_backend/internal/leads/recency"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/suggestion"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/apperr"
	"nurture_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ContextHistoryLimit bounds the history used for quick follow-up context.
const ContextHistoryLimit = 5

// Repository defines the data access interface needed by the nurture service.
type Repository interface {
	repository.ContactReader
	repository.InteractionReader
}

// Service builds nurture context and suggestions.
type Service struct {
	repo     Repository
	composer *suggestion.Composer
	log      *logger.Logger
	now      func() time.Time
}

// New creates a nurture service.
func New(repo Repository, composer *suggestion.Composer, log *logger.Logger) *Service {
	if composer == nil {
		composer = suggestion.NewComposer(nil, log)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{repo: repo, composer: composer, log: log, now: time.Now}
}

type leadContext struct {
	contact repository.Contact
	history []repository.Interaction
	days    int
}

func (s *Service) load(ctx context.Context, leadID uuid.UUID, operation string) (leadContext, error) {
	var lc leadContext

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contact, err := s.repo.GetContact(gctx, leadID)
		lc.contact = contact
		return err
	})
	g.Go(func() error {
		history, err := s.repo.ListRecentInteractions(gctx, leadID, ContextHistoryLimit)
		lc.history = history
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return leadContext{}, apperr.NotFound("Lead not found")
		}
		s.log.WithContext(ctx).DatabaseError(operation, err)
		return leadContext{}, apperr.Failed(operation, err)
	}

	lc.days = recency.DaysSinceContact(lc.contact.LastContactedAt, s.now())
	return lc, nil
}

// GetFollowUpContext returns the profile, the five newest interactions and
// the days since last contact.
func (s *Service) GetFollowUpContext(ctx context.Context, leadID uuid.UUID) (transport.FollowUpContextResponse, error) {
	lc, err := s.load(ctx, leadID, "get follow-up context")
	if err != nil {
		return transport.FollowUpContextResponse{}, err
	}

	return transport.FollowUpContextResponse{
		Profile:              transport.ToContactResponse(lc.contact),
		History:              transport.ToInteractionResponses(lc.history),
		DaysSinceLastContact: lc.days,
	}, nil
}

// CreateNurtureSuggestion composes a suggestion for the lead. Generator
// failures never surface here; only store failures do.
func (s *Service) CreateNurtureSuggestion(ctx context.Context, leadID uuid.UUID) (transport.NurtureSuggestionResponse, error) {
	lc, err := s.load(ctx, leadID, "create nurture suggestion")
	if err != nil {
		return transport.NurtureSuggestionResponse{}, err
	}

	result := s.composer.Compose(ctx, lc.contact, lc.history, lc.days)

	return transport.NurtureSuggestionResponse{
		LeadID:            lc.contact.ID,
		LeadName:          lc.contact.Name,
		Suggestion:        result.Text,
		Urgency:           string(result.Urgency),
		RecommendedAction: result.RecommendedAction,
		ContextSummary:    result.ContextSummary,
		DaysSinceContact:  lc.days,
		AIGenerated:       result.AIGenerated,
	}, nil
}

// SuggestFollowUpMessages returns talking points for an upcoming follow-up.
func (s *Service) SuggestFollowUpMessages(ctx context.Context, leadID uuid.UUID, req transport.FollowUpSuggestionsRequest) (transport.FollowUpSuggestionsResponse, error) {
	channel := strings.ToLower(strings.TrimSpace(req.Channel))
	if channel != "" && !domain.IsKnownChannel(channel) {
		return transport.FollowUpSuggestionsResponse{}, apperr.Validation("unsupported follow-up channel").
			WithDetails(map[string]string{"channel": req.Channel})
	}

	contact, err := s.repo.GetContact(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.FollowUpSuggestionsResponse{}, apperr.NotFound("Lead not found")
		}
		s.log.WithContext(ctx).DatabaseError("generate follow-up suggestions", err)
		return transport.FollowUpSuggestionsResponse{}, apperr.Failed("generate follow-up suggestions", err)
	}

	ideas := s.composer.SuggestFollowUps(ctx, contact, channel, req.ScheduledFor, s.now())

	return transport.FollowUpSuggestionsResponse{
		ContactID:   contact.ID,
		AIGenerated: ideas.AIGenerated,
		Suggestions: ideas.Suggestions,
		GeneratedAt: ideas.GeneratedAt,
	}, nil
}

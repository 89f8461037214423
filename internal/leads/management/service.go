// Package management handles contact CRUD, interaction logging and the
// leads-needing-follow-up query.
// This is a vertically sliced feature package.
package management

import (
	"context"
	"errors"
	"strings"
	"time"

	"nurture_backend/internal/events"
	"nurture_backend/internal/leads/domain"
	"nurture_backend/internal/leads/recency"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/scoring"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/apperr"
	"nurture_backend/platform/logger"
	"nurture_backend/platform/phone"
	"nurture_backend/platform/sanitize"

	"github.com/google/uuid"
)

// DefaultFollowUpDays is the staleness threshold when none is configured.
const DefaultFollowUpDays = 5

// DetailHistoryLimit bounds the interaction history on the full profile view.
const DetailHistoryLimit = 10

// Repository defines the data access interface needed by the management service.
// This is a consumer-driven interface - only what management needs.
type Repository interface {
	repository.ContactReader
	repository.ContactWriter
	repository.InteractionLogger
	repository.InteractionReader
	repository.StaleLeadQuerier
}

// Service handles contact management operations.
type Service struct {
	repo         Repository
	eventBus     events.Bus
	phones       *phone.Normalizer
	log          *logger.Logger
	followUpDays int
	now          func() time.Time
}

// New creates a new contact management service.
func New(repo Repository, eventBus events.Bus, phones *phone.Normalizer, followUpDays int, log *logger.Logger) *Service {
	if phones == nil {
		phones = phone.NewNormalizer(phone.DefaultRegion)
	}
	if log == nil {
		log = logger.Discard()
	}
	if followUpDays < 0 {
		followUpDays = DefaultFollowUpDays
	}
	return &Service{
		repo:         repo,
		eventBus:     eventBus,
		phones:       phones,
		log:          log,
		followUpDays: followUpDays,
		now:          time.Now,
	}
}

// FollowUpDays returns the configured default staleness threshold.
func (s *Service) FollowUpDays() int {
	return s.followUpDays
}

// Create scores and stores a new contact owned by agentID.
func (s *Service) Create(ctx context.Context, agentID uuid.UUID, req transport.CreateContactRequest) (transport.ContactResponse, error) {
	if agentID == uuid.Nil {
		return transport.ContactResponse{}, apperr.Unauthorized("agent identity is required")
	}
	if err := validateBudget(req.BudgetMin, req.BudgetMax); err != nil {
		return transport.ContactResponse{}, err
	}
	phoneNumber, err := s.normalizePhone(req.Phone)
	if err != nil {
		return transport.ContactResponse{}, err
	}

	params := repository.CreateContactParams{
		AgentID:        agentID,
		Name:           strings.TrimSpace(req.Name),
		Phone:          phoneNumber,
		Source:         req.Source,
		Status:         withDefault(req.Status, domain.StatusNew),
		NurtureStatus:  withDefault(req.NurtureStatus, domain.NurtureNew),
		PropertyType:   strings.TrimSpace(req.PropertyType),
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		PreferredAreas: cleanAreas(req.PreferredAreas),
		Timeline:       sanitize.Text(req.Timeline),
		Notes:          sanitize.Text(req.Notes),
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		params.Email = &email
	}

	params.LeadScore = scoring.ComputeLeadScore(scoring.Attributes{
		BudgetMax:      params.BudgetMax,
		PropertyType:   params.PropertyType,
		PreferredAreas: params.PreferredAreas,
		Email:          deref(params.Email),
		Phone:          params.Phone,
	})

	contact, err := s.repo.CreateContact(ctx, params)
	if err != nil {
		return transport.ContactResponse{}, s.storeError(ctx, "create contact", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.ContactCreated{
			BaseEvent: events.NewBaseEvent(),
			ContactID: contact.ID,
			AgentID:   agentID,
			LeadScore: contact.LeadScore,
		})
	}

	return transport.ToContactResponse(contact), nil
}

// Update merges the provided fields into the contact and recomputes its score
// from the merged attributes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateContactRequest) (transport.ContactResponse, error) {
	current, err := s.repo.GetContact(ctx, id)
	if err != nil {
		return transport.ContactResponse{}, s.storeError(ctx, "load contact", err)
	}

	params := repository.UpdateContactParams{
		Source:        req.Source,
		Status:        req.Status,
		NurtureStatus: req.NurtureStatus,
		BudgetMin:     req.BudgetMin,
		BudgetMax:     req.BudgetMax,
		Timeline:      sanitize.TextPtr(req.Timeline),
		Notes:         sanitize.TextPtr(req.Notes),
	}
	merged := current

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		params.Name = &name
		merged.Name = name
	}
	if req.Phone != nil {
		normalized, err := s.normalizePhone(*req.Phone)
		if err != nil {
			return transport.ContactResponse{}, err
		}
		params.Phone = &normalized
		merged.Phone = normalized
	}
	if req.Email != nil {
		params.EmailSet = true
		merged.Email = nil
		if email := strings.TrimSpace(*req.Email); email != "" {
			params.Email = &email
			merged.Email = &email
		}
	}
	if req.PropertyType != nil {
		propertyType := strings.TrimSpace(*req.PropertyType)
		params.PropertyType = &propertyType
		merged.PropertyType = propertyType
	}
	if req.PreferredAreas != nil {
		areas := cleanAreas(*req.PreferredAreas)
		params.PreferredAreas = areas
		params.AreasSet = true
		merged.PreferredAreas = areas
	}
	if req.BudgetMin != nil {
		merged.BudgetMin = req.BudgetMin
	}
	if req.BudgetMax != nil {
		merged.BudgetMax = req.BudgetMax
	}

	if err := validateBudget(merged.BudgetMin, merged.BudgetMax); err != nil {
		return transport.ContactResponse{}, err
	}

	params.LeadScore = scoring.ComputeLeadScore(AttributesOf(merged))

	updated, err := s.repo.UpdateContact(ctx, id, params)
	if err != nil {
		return transport.ContactResponse{}, s.storeError(ctx, "update contact", err)
	}

	return transport.ToContactResponse(updated), nil
}

// normalizePhone formats raw as E.164. An empty raw value means "no phone";
// anything else must have a plausible length once trimmed.
func (s *Service) normalizePhone(raw string) (string, error) {
	if raw != "" && !transport.ValidPhone(raw) {
		return "", apperr.Validation("phone must be between 5 and 30 characters")
	}
	return s.phones.NormalizeE164(raw), nil
}

// GetDetails returns the contact with its most recent interactions.
func (s *Service) GetDetails(ctx context.Context, id uuid.UUID) (transport.ContactDetailsResponse, error) {
	contact, err := s.repo.GetContact(ctx, id)
	if err != nil {
		return transport.ContactDetailsResponse{}, s.storeError(ctx, "get contact details", err)
	}

	history, err := s.repo.ListRecentInteractions(ctx, id, DetailHistoryLimit)
	if err != nil {
		return transport.ContactDetailsResponse{}, s.storeError(ctx, "get contact details", err)
	}

	return transport.ContactDetailsResponse{
		Contact:          transport.ToContactResponse(contact),
		Interactions:     transport.ToInteractionResponses(history),
		DaysSinceContact: recency.DaysSinceContact(contact.LastContactedAt, s.now()),
	}, nil
}

// LogInteraction appends an interaction and marks the contact as reached now.
func (s *Service) LogInteraction(ctx context.Context, contactID, agentID uuid.UUID, req transport.LogInteractionRequest) (transport.InteractionLoggedResponse, error) {
	interactionType := strings.ToLower(strings.TrimSpace(req.Type))
	if !domain.IsKnownInteractionType(interactionType) {
		return transport.InteractionLoggedResponse{}, apperr.Validation("unsupported interaction type").
			WithDetails(map[string]string{"interactionType": req.Type})
	}
	if agentID == uuid.Nil {
		return transport.InteractionLoggedResponse{}, apperr.Unauthorized("agent identity is required")
	}

	interaction, err := s.repo.LogInteraction(ctx, repository.LogInteractionParams{
		ContactID: contactID,
		AgentID:   agentID,
		Type:      interactionType,
		Content:   sanitize.Text(req.Content),
	})
	if err != nil {
		return transport.InteractionLoggedResponse{}, s.storeError(ctx, "log interaction", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.InteractionLogged{
			BaseEvent:       events.NewBaseEvent(),
			ContactID:       contactID,
			AgentID:         agentID,
			InteractionID:   interaction.ID,
			InteractionType: interaction.Type,
		})
	}

	return transport.InteractionLoggedResponse{
		InteractionID: interaction.ID,
		ContactID:     contactID,
		Type:          interaction.Type,
		LoggedAt:      interaction.CreatedAt,
	}, nil
}

// FindLeadsNeedingFollowUp lists open leads not reached within daysThreshold
// days, never-contacted leads first. A nil agentID searches every agent.
func (s *Service) FindLeadsNeedingFollowUp(ctx context.Context, agentID *uuid.UUID, daysThreshold int) (transport.FollowUpListResponse, error) {
	if daysThreshold < 0 {
		return transport.FollowUpListResponse{}, apperr.Validation("days threshold must not be negative")
	}

	now := s.now()
	contacts, err := s.repo.ListStaleLeads(ctx, repository.StaleLeadQuery{
		Cutoff:  now.Add(-time.Duration(daysThreshold) * 24 * time.Hour),
		AgentID: agentID,
	})
	if err != nil {
		return transport.FollowUpListResponse{}, s.storeError(ctx, "get leads needing follow-up", err)
	}

	items := make([]transport.LeadNeedingFollowUp, 0, len(contacts))
	for _, contact := range contacts {
		items = append(items, transport.LeadNeedingFollowUp{
			ContactResponse:  transport.ToContactResponse(contact),
			DaysSinceContact: recency.DaysSinceContact(contact.LastContactedAt, now),
		})
	}

	return transport.FollowUpListResponse{Items: items, DaysThreshold: daysThreshold}, nil
}

func (s *Service) storeError(ctx context.Context, operation string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("Contact not found")
	}
	s.log.WithContext(ctx).DatabaseError(operation, err)
	return apperr.Failed(operation, err)
}

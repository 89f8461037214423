// Package leads provides the lead nurturing bounded context.
// This file defines the public API of the leads bounded context.
// Only types and interfaces defined here should be imported by other domains.
package leads

import (
	"context"
	"errors"
	"time"

	"nurture_backend/internal/leads/repository"

	"github.com/google/uuid"
)

// ErrLeadNotFound is returned by Service when the contact does not exist.
var ErrLeadNotFound = errors.New("lead not found")

// Lead represents the minimal lead information that can be shared with other domains.
type Lead struct {
	ID             uuid.UUID
	AgentID        uuid.UUID
	Name           string
	Phone          string
	Email          *string
	// NextFollowUpAt is the most recently scheduled follow-up, if any.
	NextFollowUpAt *time.Time
}

// Service defines the public interface for lead operations.
// Other domains should depend on this interface, not on concrete implementations.
type Service interface {
	// GetLeadByID returns minimal lead information for a given ID.
	GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error)
}

type leadLookup struct {
	repo repository.ContactReader
}

// NewService exposes the contact store through the public Service interface.
func NewService(repo repository.ContactReader) Service {
	return &leadLookup{repo: repo}
}

func (l *leadLookup) GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	contact, err := l.repo.GetContact(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return Lead{}, ErrLeadNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	return Lead{
		ID:             contact.ID,
		AgentID:        contact.AgentID,
		Name:           contact.Name,
		Phone:          contact.Phone,
		Email:          contact.Email,
		NextFollowUpAt: contact.NextFollowUpAt,
	}, nil
}

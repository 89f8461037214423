package repository

import (
	"context"

	"github.com/google/uuid"
)

// =====================================
// Segregated Interfaces (Interface Segregation Principle)
// =====================================

// ContactReader provides read-only access to a single contact.
type ContactReader interface {
	GetContact(ctx context.Context, id uuid.UUID) (Contact, error)
}

// ContactWriter creates and updates contacts.
type ContactWriter interface {
	CreateContact(ctx context.Context, params CreateContactParams) (Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, params UpdateContactParams) (Contact, error)
}

// InteractionLogger appends an interaction and stamps last_contacted_at in one transaction.
type InteractionLogger interface {
	LogInteraction(ctx context.Context, params LogInteractionParams) (Interaction, error)
}

// FollowUpWriter appends a scheduled interaction and sets next_follow_up_at in one transaction.
type FollowUpWriter interface {
	ScheduleFollowUp(ctx context.Context, params ScheduleFollowUpParams) (Interaction, error)
}

// InteractionReader reads interaction history, newest first.
type InteractionReader interface {
	ListRecentInteractions(ctx context.Context, contactID uuid.UUID, limit int) ([]Interaction, error)
}

// StaleLeadQuerier finds contacts that are due for re-engagement.
type StaleLeadQuerier interface {
	ListStaleLeads(ctx context.Context, query StaleLeadQuery) ([]Contact, error)
}

// =====================================
// Composite Interface
// =====================================

// ContactsRepository is the full contact store.
type ContactsRepository interface {
	ContactReader
	ContactWriter
	InteractionLogger
	FollowUpWriter
	InteractionReader
	StaleLeadQuerier
}

// Ensure Repository implements ContactsRepository
var _ ContactsRepository = (*Repository)(nil)

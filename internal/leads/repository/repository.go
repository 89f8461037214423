package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("contact not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Contact struct {
	ID              uuid.UUID
	AgentID         uuid.UUID
	Name            string
	Phone           string
	Email           *string
	Source          string
	Status          string
	NurtureStatus   string
	PropertyType    string
	BudgetMin       *float64
	BudgetMax       *float64
	PreferredAreas  []string
	Timeline        string
	Notes           string
	LeadScore       float64
	LastContactedAt *time.Time
	NextFollowUpAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Interaction struct {
	ID           uuid.UUID
	ContactID    uuid.UUID
	AgentID      uuid.UUID
	Type         string
	Content      string
	ScheduledFor *time.Time
	CreatedAt    time.Time
}

type CreateContactParams struct {
	AgentID        uuid.UUID
	Name           string
	Phone          string
	Email          *string
	Source         string
	Status         string
	NurtureStatus  string
	PropertyType   string
	BudgetMin      *float64
	BudgetMax      *float64
	PreferredAreas []string
	Timeline       string
	Notes          string
	LeadScore      float64
}

// UpdateContactParams carries the fields to overwrite. Nil fields are left
// untouched; LeadScore is always written. Email is written only when EmailSet
// is true, and a nil Email then clears it.
type UpdateContactParams struct {
	Name           *string
	Phone          *string
	Email          *string
	EmailSet       bool
	Source         *string
	Status         *string
	NurtureStatus  *string
	PropertyType   *string
	BudgetMin      *float64
	BudgetMax      *float64
	PreferredAreas []string
	AreasSet       bool
	Timeline       *string
	Notes          *string
	LeadScore      float64
}

type LogInteractionParams struct {
	ContactID uuid.UUID
	AgentID   uuid.UUID
	Type      string
	Content   string
}

type ScheduleFollowUpParams struct {
	ContactID    uuid.UUID
	AgentID      uuid.UUID
	Type         string
	Notes        string
	ScheduledFor time.Time
}

// StaleLeadQuery selects contacts last reached before Cutoff (or never).
// A nil AgentID matches every agent.
type StaleLeadQuery struct {
	Cutoff  time.Time
	AgentID *uuid.UUID
}

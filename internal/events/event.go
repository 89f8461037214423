// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"nurture_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Lead Domain Events
// =============================================================================

// ContactCreated is published when an agent adds a new lead.
type ContactCreated struct {
	BaseEvent
	ContactID uuid.UUID `json:"contactId"`
	AgentID   uuid.UUID `json:"agentId"`
	LeadScore float64   `json:"leadScore"`
}

func (e ContactCreated) EventName() string { return "leads.contact.created" }

// InteractionLogged is published after an interaction is appended and the
// contact's last_contacted_at has moved.
type InteractionLogged struct {
	BaseEvent
	ContactID       uuid.UUID `json:"contactId"`
	AgentID         uuid.UUID `json:"agentId"`
	InteractionID   uuid.UUID `json:"interactionId"`
	InteractionType string    `json:"interactionType"`
}

func (e InteractionLogged) EventName() string { return "leads.interaction.logged" }

// FollowUpScheduled is published once a follow-up has been committed.
// The scheduler module turns it into a delayed reminder job.
type FollowUpScheduled struct {
	BaseEvent
	ContactID     uuid.UUID `json:"contactId"`
	AgentID       uuid.UUID `json:"agentId"`
	InteractionID uuid.UUID `json:"interactionId"`
	Channel       string    `json:"channel"`
	ScheduledFor  time.Time `json:"scheduledFor"`
	Notes         string    `json:"notes"`
}

func (e FollowUpScheduled) EventName() string { return "leads.follow_up.scheduled" }

// FollowUpDue is published by the reminder worker when a scheduled
// follow-up is about to start.
type FollowUpDue struct {
	BaseEvent
	ContactID    uuid.UUID `json:"contactId"`
	AgentID      uuid.UUID `json:"agentId"`
	ContactName  string    `json:"contactName"`
	Channel      string    `json:"channel"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

func (e FollowUpDue) EventName() string { return "leads.follow_up.due" }

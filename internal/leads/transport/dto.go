package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs
type CreateContactRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=200"`
	Phone          string   `json:"phone,omitempty" validate:"optionalphone"`
	Email          string   `json:"email,omitempty" validate:"optionalemail"`
	Source         string   `json:"source,omitempty" validate:"max=100"`
	Status         string   `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified nurturing hot warm cold closed"`
	NurtureStatus  string   `json:"nurtureStatus,omitempty" validate:"omitempty,oneof=New Contacted Qualified Nurturing Hot Warm Cold Closed"`
	PropertyType   string   `json:"propertyType,omitempty" validate:"max=100"`
	BudgetMin      *float64 `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax      *float64 `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	PreferredAreas []string `json:"preferredAreas,omitempty" validate:"omitempty,max=20,dive,min=1,max=100"`
	Timeline       string   `json:"timeline,omitempty" validate:"max=100"`
	Notes          string   `json:"notes,omitempty" validate:"max=5000"`
}

type UpdateContactRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone          *string   `json:"phone,omitempty" validate:"omitempty,optionalphone"`
	Email          *string   `json:"email,omitempty" validate:"omitempty,optionalemail"`
	Source         *string   `json:"source,omitempty" validate:"omitempty,max=100"`
	Status         *string   `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified nurturing hot warm cold closed"`
	NurtureStatus  *string   `json:"nurtureStatus,omitempty" validate:"omitempty,oneof=New Contacted Qualified Nurturing Hot Warm Cold Closed"`
	PropertyType   *string   `json:"propertyType,omitempty" validate:"omitempty,max=100"`
	BudgetMin      *float64  `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax      *float64  `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	PreferredAreas *[]string `json:"preferredAreas,omitempty" validate:"omitempty,max=20,dive,min=1,max=100"`
	Timeline       *string   `json:"timeline,omitempty" validate:"omitempty,max=100"`
	Notes          *string   `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

type LogInteractionRequest struct {
	Type    string `json:"interactionType" validate:"required,interactiontype"`
	Content string `json:"content" validate:"max=5000"`
}

type ScheduleFollowUpRequest struct {
	ScheduledFor time.Time `json:"scheduledFor" validate:"required"`
	Channel      string    `json:"channel,omitempty" validate:"omitempty,followupchannel"`
	Notes        string    `json:"notes,omitempty" validate:"max=2000"`
}

type FollowUpSuggestionsRequest struct {
	Channel      string     `json:"channel,omitempty" validate:"omitempty,followupchannel"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

// ListFollowUpsQuery binds GET /leads/follow-ups query parameters.
type ListFollowUpsQuery struct {
	Days  *int   `form:"days" validate:"omitempty,gte=0,lte=3650"`
	Scope string `form:"scope" validate:"omitempty,oneof=mine all"`
}

// Response DTOs
type ContactResponse struct {
	ID              uuid.UUID  `json:"id"`
	AgentID         uuid.UUID  `json:"agentId"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           *string    `json:"email,omitempty"`
	Source          string     `json:"source"`
	Status          string     `json:"status"`
	NurtureStatus   string     `json:"nurtureStatus"`
	PropertyType    string     `json:"propertyType"`
	BudgetMin       *float64   `json:"budgetMin,omitempty"`
	BudgetMax       *float64   `json:"budgetMax,omitempty"`
	PreferredAreas  []string   `json:"preferredAreas"`
	Timeline        string     `json:"timeline"`
	Notes           string     `json:"notes"`
	LeadScore       float64    `json:"leadScore"`
	LastContactedAt *time.Time `json:"lastContactedAt,omitempty"`
	NextFollowUpAt  *time.Time `json:"nextFollowUpAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type InteractionResponse struct {
	ID           uuid.UUID  `json:"id"`
	ContactID    uuid.UUID  `json:"contactId"`
	AgentID      uuid.UUID  `json:"agentId"`
	Type         string     `json:"interactionType"`
	Content      string     `json:"content"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ContactDetailsResponse struct {
	Contact          ContactResponse       `json:"contact"`
	Interactions     []InteractionResponse `json:"interactions"`
	DaysSinceContact int                   `json:"daysSinceContact"`
}

type InteractionLoggedResponse struct {
	InteractionID uuid.UUID `json:"interactionId"`
	ContactID     uuid.UUID `json:"contactId"`
	Type          string    `json:"interactionType"`
	LoggedAt      time.Time `json:"loggedAt"`
}

type LeadNeedingFollowUp struct {
	ContactResponse
	DaysSinceContact int `json:"daysSinceContact"`
}

type FollowUpListResponse struct {
	Items         []LeadNeedingFollowUp `json:"items"`
	DaysThreshold int                   `json:"daysThreshold"`
}

type FollowUpContextResponse struct {
	Profile              ContactResponse       `json:"profile"`
	History              []InteractionResponse `json:"history"`
	DaysSinceLastContact int                   `json:"daysSinceLastContact"`
}

type NurtureSuggestionResponse struct {
	LeadID            uuid.UUID `json:"leadId"`
	LeadName          string    `json:"leadName"`
	Suggestion        string    `json:"suggestion"`
	Urgency           string    `json:"urgency"`
	RecommendedAction string    `json:"recommendedAction"`
	ContextSummary    string    `json:"contextSummary"`
	DaysSinceContact  int       `json:"daysSinceContact"`
	AIGenerated       bool      `json:"aiGenerated"`
}

type FollowUpScheduledResponse struct {
	Message       string    `json:"message"`
	ContactID     uuid.UUID `json:"contactId"`
	InteractionID uuid.UUID `json:"interactionId"`
	ScheduledFor  time.Time `json:"scheduledFor"`
	Channel       string    `json:"channel,omitempty"`
}

type FollowUpSuggestionsResponse struct {
	ContactID   uuid.UUID  `json:"contactId"`
	AIGenerated bool       `json:"aiGenerated"`
	Suggestions []string   `json:"suggestions"`
	GeneratedAt *time.Time `json:"generatedAt,omitempty"`
}

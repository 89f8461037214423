package transport

import "nurture_backend/internal/leads/repository"

// ToContactResponse converts a stored contact to its API shape.
func ToContactResponse(c repository.Contact) ContactResponse {
	areas := c.PreferredAreas
	if areas == nil {
		areas = []string{}
	}
	return ContactResponse{
		ID:              c.ID,
		AgentID:         c.AgentID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Source:          c.Source,
		Status:          c.Status,
		NurtureStatus:   c.NurtureStatus,
		PropertyType:    c.PropertyType,
		BudgetMin:       c.BudgetMin,
		BudgetMax:       c.BudgetMax,
		PreferredAreas:  areas,
		Timeline:        c.Timeline,
		Notes:           c.Notes,
		LeadScore:       c.LeadScore,
		LastContactedAt: c.LastContactedAt,
		NextFollowUpAt:  c.NextFollowUpAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToInteractionResponse converts a stored interaction to its API shape.
func ToInteractionResponse(i repository.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:           i.ID,
		ContactID:    i.ContactID,
		AgentID:      i.AgentID,
		Type:         i.Type,
		Content:      i.Content,
		ScheduledFor: i.ScheduledFor,
		CreatedAt:    i.CreatedAt,
	}
}

// ToInteractionResponses keeps the input order (newest first).
func ToInteractionResponses(items []repository.Interaction) []InteractionResponse {
	out := make([]InteractionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToInteractionResponse(item))
	}
	return out
}

package suggestion

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nurture_backend/internal/leads/repository"
)

type promptInteraction struct {
	ID              string `json:"id"`
	InteractionType string `json:"interaction_type"`
	Content         string `json:"content"`
	CreatedAt       string `json:"created_at"`
}

func nurturePrompt(contact repository.Contact, history []repository.Interaction, days int) (string, error) {
	entries := make([]promptInteraction, 0, len(history))
	for _, item := range history {
		entries = append(entries, promptInteraction{
			ID:              item.ID.String(),
			InteractionType: item.Type,
			Content:         item.Content,
			CreatedAt:       item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	historyJSON, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}

	var b strings.Builder
	b.WriteString("Generate a personalized follow-up suggestion for a real estate lead.\n\n")
	b.WriteString("**Lead Profile:**\n")
	fmt.Fprintf(&b, "- Name: %s\n", contact.Name)
	fmt.Fprintf(&b, "- Status: %s\n", contact.NurtureStatus)
	fmt.Fprintf(&b, "- Property Type: %s\n", propertyType(contact))
	fmt.Fprintf(&b, "- Budget: AED %s - %s\n", amountOrZero(contact.BudgetMin), amountOrZero(contact.BudgetMax))
	fmt.Fprintf(&b, "- Preferred Areas: %s\n", joinAreas(contact.PreferredAreas))
	fmt.Fprintf(&b, "- Days Since Last Contact: %d\n\n", days)
	b.WriteString("**Recent Interactions:**\n")
	b.Write(historyJSON)
	b.WriteString("\n\n**Requirements:**\n")
	b.WriteString("- Generate a 2-3 sentence personalized follow-up suggestion\n")
	b.WriteString("- Be specific to their property preferences and budget\n")
	b.WriteString("- Reference previous interactions if relevant\n")
	b.WriteString("- Suggest next steps\n")
	b.WriteString("- Keep tone professional but warm\n\n")
	b.WriteString("Suggestion:\n")

	return b.String(), nil
}

func followUpPrompt(contact repository.Contact, channel string, scheduledFor *time.Time) string {
	lastContacted := "Never"
	if contact.LastContactedAt != nil {
		lastContacted = contact.LastContactedAt.UTC().Format(time.RFC3339)
	}
	scheduled := "TBD"
	if scheduledFor != nil {
		scheduled = scheduledFor.UTC().Format(time.RFC3339)
	}
	if channel == "" {
		channel = "email"
	}

	var b strings.Builder
	b.WriteString("Generate personalized follow-up suggestions for a real estate lead.\n\n")
	b.WriteString("**Contact Details:**\n")
	fmt.Fprintf(&b, "- Name: %s\n", contact.Name)
	fmt.Fprintf(&b, "- Budget: AED %s - %s\n", amountOrZero(contact.BudgetMin), amountOrZero(contact.BudgetMax))
	fmt.Fprintf(&b, "- Property Type: %s\n", propertyType(contact))
	fmt.Fprintf(&b, "- Preferred Areas: %s\n", joinAreas(contact.PreferredAreas))
	fmt.Fprintf(&b, "- Lead Score: %.0f\n", contact.LeadScore)
	fmt.Fprintf(&b, "- Last Contacted: %s\n\n", lastContacted)
	b.WriteString("**Follow-up Context:**\n")
	fmt.Fprintf(&b, "- Channel: %s\n", channel)
	fmt.Fprintf(&b, "- Scheduled Date: %s\n\n", scheduled)
	b.WriteString("Provide 3-5 specific, actionable follow-up suggestions covering message content, ")
	b.WriteString("best time to contact, next steps, property suggestions if applicable and follow-up frequency. ")
	b.WriteString("Return one suggestion per line without numbering.\n")

	return b.String()
}

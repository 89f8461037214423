package suggestion

import (
	"math"
	"strings"

	"nurture_backend/internal/leads/repository"

	"github.com/dustin/go-humanize"
)

// ContextSummary renders a one-line description of the lead. Clauses for
// areas, budget and last interaction appear only when that data exists.
func ContextSummary(contact repository.Contact, history []repository.Interaction) string {
	var b strings.Builder
	b.WriteString(contact.Name)
	b.WriteString(" is looking for ")
	b.WriteString(propertyType(contact))
	b.WriteString(" properties")

	if len(contact.PreferredAreas) > 0 {
		b.WriteString(" in ")
		b.WriteString(joinAreas(contact.PreferredAreas))
	}

	if positive(contact.BudgetMin) && positive(contact.BudgetMax) {
		b.WriteString(" with a budget of AED ")
		b.WriteString(formatAED(*contact.BudgetMin))
		b.WriteString(" - ")
		b.WriteString(formatAED(*contact.BudgetMax))
	}

	if len(history) > 0 {
		latest := history[0]
		b.WriteString(". Last interaction was ")
		b.WriteString(latest.Type)
		b.WriteString(" on ")
		b.WriteString(latest.CreatedAt.UTC().Format("2006-01-02"))
	}

	return b.String()
}

func propertyType(contact repository.Contact) string {
	if t := strings.TrimSpace(contact.PropertyType); t != "" {
		return t
	}
	return "any"
}

func joinAreas(areas []string) string {
	return strings.Join(areas, ", ")
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}

func formatAED(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func amountOrZero(v *float64) string {
	if v == nil {
		return "0"
	}
	return formatAED(*v)
}

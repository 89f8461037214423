package management

import (
	"strings"

	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/scoring"
	"nurture_backend/platform/apperr"
)

// AttributesOf extracts the scoring inputs from a contact.
func AttributesOf(c repository.Contact) scoring.Attributes {
	return scoring.Attributes{
		BudgetMax:      c.BudgetMax,
		PropertyType:   c.PropertyType,
		PreferredAreas: c.PreferredAreas,
		Email:          deref(c.Email),
		Phone:          c.Phone,
	}
}

func validateBudget(budgetMin, budgetMax *float64) error {
	if (budgetMin != nil && *budgetMin < 0) || (budgetMax != nil && *budgetMax < 0) {
		return apperr.Validation("budget must not be negative")
	}
	if budgetMin != nil && budgetMax != nil && *budgetMin > *budgetMax {
		return apperr.Validation("budgetMin must not exceed budgetMax")
	}
	return nil
}

func cleanAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	seen := make(map[string]struct{}, len(areas))
	for _, area := range areas {
		area = strings.TrimSpace(area)
		key := strings.ToLower(area)
		if area == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, area)
	}
	return out
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

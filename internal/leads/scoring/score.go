// Package scoring computes the lead score from a contact's attributes.
// The score is always recomputed from scratch; callers never patch it.
package scoring

import "strings"

const (
	// MaxScore caps the sum of all factor contributions.
	MaxScore = 100.0

	maxBudgetContribution       = 40.0
	maxPropertyContribution     = 20.0
	maxAreaContribution         = 20.0
	maxCompletenessContribution = 20.0
)

// Attributes are the contact fields that influence the score.
type Attributes struct {
	BudgetMax      *float64
	PropertyType   string
	PreferredAreas []string
	Email          string
	Phone          string
}

// budgetTiers are checked top-down; the first threshold met wins.
var budgetTiers = []struct {
	threshold float64
	points    float64
}{
	{5_000_000, 40},
	{3_000_000, 30},
	{1_000_000, 20},
	{500_000, 10},
}

// propertyTiers are matched as case-insensitive substrings, in order.
var propertyTiers = []struct {
	keywords []string
	points   float64
}{
	{[]string{"villa", "penthouse"}, 20},
	{[]string{"apartment"}, 15},
	{[]string{"townhouse"}, 10},
}

var premiumAreas = map[string]struct{}{
	"downtown dubai": {},
	"palm jumeirah":  {},
	"dubai marina":   {},
	"business bay":   {},
}

// ComputeLeadScore returns a score in [0, 100].
func ComputeLeadScore(attrs Attributes) float64 {
	score := budgetScore(attrs.BudgetMax) +
		propertyScore(attrs.PropertyType) +
		areaScore(attrs.PreferredAreas) +
		completenessScore(attrs.Email, attrs.Phone)

	if score > MaxScore {
		return MaxScore
	}
	return score
}

func budgetScore(budgetMax *float64) float64 {
	if budgetMax == nil || *budgetMax <= 0 {
		return 0
	}
	for _, tier := range budgetTiers {
		if *budgetMax >= tier.threshold {
			return tier.points
		}
	}
	return 0
}

func propertyScore(propertyType string) float64 {
	normalized := strings.ToLower(propertyType)
	if normalized == "" {
		return 0
	}
	for _, tier := range propertyTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(normalized, keyword) {
				return tier.points
			}
		}
	}
	return 0
}

func areaScore(areas []string) float64 {
	if len(areas) == 0 {
		return 0
	}
	for _, area := range areas {
		if _, ok := premiumAreas[strings.ToLower(strings.TrimSpace(area))]; ok {
			return maxAreaContribution
		}
	}
	return 10
}

func completenessScore(email, phone string) float64 {
	var score float64
	if strings.TrimSpace(email) != "" {
		score += maxCompletenessContribution / 2
	}
	if strings.TrimSpace(phone) != "" {
		score += maxCompletenessContribution / 2
	}
	return score
}

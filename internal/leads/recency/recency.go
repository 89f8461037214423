// Package recency classifies how overdue a lead is for re-engagement.
package recency

import "time"

// NeverContacted is the day count reported for leads with no recorded contact.
const NeverContacted = 999

// Urgency is the re-engagement priority of a lead.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
)

// DaysSinceContact returns whole days elapsed between lastContactedAt and now.
// A nil timestamp yields NeverContacted; a timestamp after now yields 0.
func DaysSinceContact(lastContactedAt *time.Time, now time.Time) int {
	if lastContactedAt == nil {
		return NeverContacted
	}
	elapsed := now.Sub(*lastContactedAt)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}

// ClassifyUrgency maps a day count to a tier. Thresholds are strict, so
// exactly 30, 14 or 7 days fall into the next lower tier.
func ClassifyUrgency(days int) Urgency {
	switch {
	case days > 30:
		return UrgencyHigh
	case days > 14:
		return UrgencyMedium
	case days > 7:
		return UrgencyLow
	default:
		return UrgencyNormal
	}
}

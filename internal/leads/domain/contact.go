package domain

// Lifecycle statuses stored in contacts.status.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusNurturing = "nurturing"
	StatusHot       = "hot"
	StatusWarm      = "warm"
	StatusCold      = "cold"
	StatusClosed    = "closed"
	// StatusLost is never assigned by this service but is excluded from
	// follow-up queries when present.
	StatusLost = "lost"
)

// Nurture statuses stored in contacts.nurture_status.
const (
	NurtureNew       = "New"
	NurtureContacted = "Contacted"
	NurtureQualified = "Qualified"
	NurtureNurturing = "Nurturing"
	NurtureHot       = "Hot"
	NurtureWarm      = "Warm"
	NurtureCold      = "Cold"
	NurtureClosed    = "Closed"
)

var knownStatuses = map[string]struct{}{
	StatusNew:       {},
	StatusContacted: {},
	StatusQualified: {},
	StatusNurturing: {},
	StatusHot:       {},
	StatusWarm:      {},
	StatusCold:      {},
	StatusClosed:    {},
}

var knownNurtureStatuses = map[string]struct{}{
	NurtureNew:       {},
	NurtureContacted: {},
	NurtureQualified: {},
	NurtureNurturing: {},
	NurtureHot:       {},
	NurtureWarm:      {},
	NurtureCold:      {},
	NurtureClosed:    {},
}

func IsKnownStatus(status string) bool {
	_, ok := knownStatuses[status]
	return ok
}

func IsKnownNurtureStatus(status string) bool {
	_, ok := knownNurtureStatuses[status]
	return ok
}

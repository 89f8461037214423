package domain

// terminalStatuses are lifecycle statuses where nurturing has ended.
var terminalStatuses = []string{StatusClosed, StatusLost}

// terminalNurtureStatuses are nurture statuses where nurturing has ended.
var terminalNurtureStatuses = []string{NurtureClosed}

// TerminalStatuses returns a copy of the lifecycle statuses that end nurturing.
func TerminalStatuses() []string {
	return append([]string(nil), terminalStatuses...)
}

// TerminalNurtureStatuses returns a copy of the nurture statuses that end nurturing.
func TerminalNurtureStatuses() []string {
	return append([]string(nil), terminalNurtureStatuses...)
}

// IsTerminal returns true if the contact is finished based on EITHER its
// lifecycle status or its nurture status. Terminal contacts never appear in
// follow-up lists.
func IsTerminal(status, nurtureStatus string) bool {
	return contains(terminalStatuses, status) || contains(terminalNurtureStatuses, nurtureStatus)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

package domain

import "testing"

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status        string
		nurtureStatus string
		want          bool
	}{
		{StatusNew, NurtureNew, false},
		{StatusHot, NurtureNurturing, false},
		{StatusClosed, NurtureWarm, true},
		{StatusLost, NurtureNew, true},
		{StatusContacted, NurtureClosed, true},
		// statuses are case sensitive as stored
		{"Closed", "closed", false},
	}

	for _, tt := range tests {
		if got := IsTerminal(tt.status, tt.nurtureStatus); got != tt.want {
			t.Fatalf("IsTerminal(%q, %q) = %v, want %v", tt.status, tt.nurtureStatus, got, tt.want)
		}
	}
}

func TestTerminalListsAreCopies(t *testing.T) {
	statuses := TerminalStatuses()
	statuses[0] = "mutated"
	if !IsTerminal(StatusClosed, "") {
		t.Fatalf("mutating the returned slice must not change the rules")
	}
	if len(TerminalNurtureStatuses()) != 1 {
		t.Fatalf("expected one terminal nurture status")
	}
}

package domain

import "testing"

func TestFollowUpType(t *testing.T) {
	if got := FollowUpType(""); got != "follow_up" {
		t.Fatalf("expected follow_up, got %q", got)
	}
	if got := FollowUpType(ChannelWhatsApp); got != "follow_up_whatsapp" {
		t.Fatalf("expected follow_up_whatsapp, got %q", got)
	}
}

func TestIsKnownInteractionType(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"email", true},
		{"viewing_log", true},
		{"follow_up", true},
		{"follow_up_phone", true},
		{"follow_up_in_person", true},
		{"follow_up_fax", false},
		{"fax", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsKnownInteractionType(tc.input); got != tc.want {
			t.Errorf("IsKnownInteractionType(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsViewingLog(t *testing.T) {
	if !IsViewingLog("viewing_log") || !IsViewingLog("viewing") {
		t.Fatalf("expected viewing types to count as viewing logs")
	}
	if IsViewingLog("email") {
		t.Fatalf("email is not a viewing log")
	}
}

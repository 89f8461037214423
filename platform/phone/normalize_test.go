package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	n := NewNormalizer("")

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"+971 50 123 4567", "+971501234567"},
		{"050 123 4567", "+971501234567"},
		{"not a number", "not a number"},
	}

	for _, tc := range cases {
		if got := n.NormalizeE164(tc.in); got != tc.want {
			t.Fatalf("NormalizeE164(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

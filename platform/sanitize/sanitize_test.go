package sanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Wants a sea view", "Wants a sea view"},
		{"markup", "<b>Call</b> after <i>6pm</i>", "Call after 6pm"},
		{"encoded tag", "&lt;script&gt;alert(1)&lt;/script&gt;budget ok", "alert(1)budget ok"},
		{"entities", "Villa &amp; townhouse", "Villa & townhouse"},
		{"spaces", "  two   spaces\tand tab  ", "two spaces and tab"},
		{"comment", "Keep<!-- hidden --> this", "Keep this"},
		{"comparison signs", "Budget < 2M but wants > 200 sqm", "Budget < 2M but wants > 200 sqm"},
		{"tight comparison", "budget <2M, size >200 sqm", "budget <2M, size >200 sqm"},
		{"encoded comparison", "under &lt; 2M", "under < 2M"},
		{"blank lines", "line one\r\n\r\n\r\n\r\nline two", "line one\n\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Fatalf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextPtr(t *testing.T) {
	if TextPtr(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
	in := " <p>note</p> "
	if got := TextPtr(&in); got == nil || *got != "note" {
		t.Fatalf("unexpected result %v", got)
	}
}

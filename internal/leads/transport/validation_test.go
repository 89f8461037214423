package transport

import (
	"testing"

	"nurture_backend/platform/validator"
)

func newValidator(t *testing.T) *validator.Validator {
	t.Helper()
	val := validator.New()
	if err := RegisterValidators(val); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return val
}

func TestCreateContactRequestContactFields(t *testing.T) {
	val := newValidator(t)
	tests := []struct {
		name  string
		req   CreateContactRequest
		valid bool
	}{
		{"email only", CreateContactRequest{Name: "Mona", Email: "mona@example.com"}, true},
		{"phone only", CreateContactRequest{Name: "Mona", Phone: "+971501234567"}, true},
		{"neither", CreateContactRequest{Name: "Mona"}, true},
		{"blank phone", CreateContactRequest{Name: "Mona", Phone: "     "}, false},
		{"short phone", CreateContactRequest{Name: "Mona", Phone: " 123 "}, false},
		{"bad email", CreateContactRequest{Name: "Mona", Email: "mona"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := val.Struct(tt.req)
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestUpdateContactRequestAllowsClearing(t *testing.T) {
	val := newValidator(t)
	empty := ""
	if err := val.Struct(UpdateContactRequest{Email: &empty, Phone: &empty}); err != nil {
		t.Fatalf("expected empty email and phone to be accepted, got %v", err)
	}

	blank := "     "
	if err := val.Struct(UpdateContactRequest{Phone: &blank}); err == nil {
		t.Fatalf("expected whitespace-only phone to be rejected")
	}
}

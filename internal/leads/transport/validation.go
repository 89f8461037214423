package transport

import (
	"strings"
	"unicode/utf8"

	"nurture_backend/internal/leads/domain"
	"nurture_backend/platform/validator"
)

const (
	minPhoneLength = 5
	maxPhoneLength = 30
)

// RegisterValidators installs the lead-specific validation tags used by the DTOs.
// An empty string passes every tag registered here; for update requests that
// means "clear the field".
func RegisterValidators(val *validator.Validator) error {
	if err := val.RegisterStringSet("followupchannel", func(v string) bool {
		return domain.IsKnownChannel(strings.ToLower(v))
	}); err != nil {
		return err
	}
	if err := val.RegisterStringSet("interactiontype", func(v string) bool {
		return domain.IsKnownInteractionType(strings.ToLower(v))
	}); err != nil {
		return err
	}
	if err := val.RegisterStringSet("optionalphone", ValidPhone); err != nil {
		return err
	}
	return val.RegisterStringSet("optionalemail", func(v string) bool {
		return val.Var(strings.TrimSpace(v), "required,email") == nil
	})
}

// ValidPhone reports whether v, once trimmed, has a plausible phone length.
func ValidPhone(v string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	return n >= minPhoneLength && n <= maxPhoneLength
}

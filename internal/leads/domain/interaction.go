package domain

import "strings"

// Interaction types recorded in contact_interactions.type.
const (
	InteractionEmail      = "email"
	InteractionCall       = "call"
	InteractionSMS        = "sms"
	InteractionWhatsApp   = "whatsapp"
	InteractionMeeting    = "meeting"
	InteractionViewing    = "viewing"
	InteractionViewingLog = "viewing_log"
	InteractionNote       = "note"
	InteractionFollowUp   = "follow_up"
)

// Follow-up channels.
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelPhone    = "phone"
	ChannelInPerson = "in_person"
)

var knownInteractionTypes = map[string]struct{}{
	InteractionEmail:      {},
	InteractionCall:       {},
	InteractionSMS:        {},
	InteractionWhatsApp:   {},
	InteractionMeeting:    {},
	InteractionViewing:    {},
	InteractionViewingLog: {},
	InteractionNote:       {},
	InteractionFollowUp:   {},
}

var knownChannels = map[string]struct{}{
	ChannelEmail:    {},
	ChannelSMS:      {},
	ChannelWhatsApp: {},
	ChannelPhone:    {},
	ChannelInPerson: {},
}

// IsKnownChannel reports whether channel is a supported follow-up channel.
func IsKnownChannel(channel string) bool {
	_, ok := knownChannels[channel]
	return ok
}

// IsKnownInteractionType accepts the base types and channel-qualified
// follow-ups such as follow_up_whatsapp.
func IsKnownInteractionType(interactionType string) bool {
	if _, ok := knownInteractionTypes[interactionType]; ok {
		return true
	}
	channel, ok := strings.CutPrefix(interactionType, InteractionFollowUp+"_")
	return ok && IsKnownChannel(channel)
}

// FollowUpType returns the interaction type recorded for a follow-up on channel.
// An empty channel yields the plain follow_up type.
func FollowUpType(channel string) string {
	if channel == "" {
		return InteractionFollowUp
	}
	return InteractionFollowUp + "_" + channel
}

// IsViewingLog reports whether an interaction type records a property viewing.
func IsViewingLog(interactionType string) bool {
	return interactionType == InteractionViewingLog || interactionType == InteractionViewing
}

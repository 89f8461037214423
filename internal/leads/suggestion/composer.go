// Package suggestion turns a contact profile and its recent history into a
// nurture suggestion. A generative model is optional; every model failure
// degrades to deterministic template text.
package suggestion

import (
	"context"
	"fmt"
	"strings"

	"nurture_backend/internal/leads/domain"
	"nurture_backend/internal/leads/recency"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/platform/logger"
)

// Recommended next actions, chosen from the most recent interaction.
const (
	ActionInitialContact  = "Initial contact - introduce yourself and understand their requirements"
	ActionViewingFeedback = "Follow up on viewing feedback and next steps"
	ActionConfirmEmail    = "Check if they received your email and have any questions"
	ActionCallSummary     = "Send follow-up email summarizing the call and next steps"
	ActionGeneralFollowUp = "General follow-up to maintain engagement"
)

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Suggestion is the composed nurture advice for one contact.
type Suggestion struct {
	Text              string
	Urgency           recency.Urgency
	RecommendedAction string
	ContextSummary    string
	AIGenerated       bool
}

// Composer builds suggestions. A nil generator means templates only.
type Composer struct {
	generator Generator
	log       *logger.Logger
}

// NewComposer creates a composer. Pass a nil generator when no model is configured.
func NewComposer(generator Generator, log *logger.Logger) *Composer {
	if log == nil {
		log = logger.Discard()
	}
	return &Composer{generator: generator, log: log}
}

// HasGenerator reports whether a generative model is wired in.
func (c *Composer) HasGenerator() bool {
	return c.generator != nil
}

// Compose never fails; model errors are logged and replaced by template text.
// history must be ordered newest first.
func (c *Composer) Compose(ctx context.Context, contact repository.Contact, history []repository.Interaction, daysSinceContact int) Suggestion {
	text, aiGenerated := c.suggestionText(ctx, contact, history, daysSinceContact)
	return Suggestion{
		Text:              text,
		Urgency:           recency.ClassifyUrgency(daysSinceContact),
		RecommendedAction: RecommendedAction(history),
		ContextSummary:    ContextSummary(contact, history),
		AIGenerated:       aiGenerated,
	}
}

func (c *Composer) suggestionText(ctx context.Context, contact repository.Contact, history []repository.Interaction, days int) (string, bool) {
	if c.generator == nil {
		return FallbackText(contact, days), false
	}

	prompt, err := nurturePrompt(contact, history, days)
	if err != nil {
		c.log.CollaboratorError("generator", err)
		return FallbackText(contact, days), false
	}

	text, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.log.CollaboratorError("generator", err)
		return FallbackText(contact, days), false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackText(contact, days), false
	}
	return text, true
}

// RecommendedAction depends only on the type of the newest interaction.
func RecommendedAction(history []repository.Interaction) string {
	if len(history) == 0 {
		return ActionInitialContact
	}

	switch latest := history[0].Type; {
	case domain.IsViewingLog(latest):
		return ActionViewingFeedback
	case latest == domain.InteractionEmail:
		return ActionConfirmEmail
	case latest == domain.InteractionCall:
		return ActionCallSummary
	default:
		return ActionGeneralFollowUp
	}
}

// FallbackText picks a template by how long the contact has gone without contact.
func FallbackText(contact repository.Contact, days int) string {
	areas := joinAreas(contact.PreferredAreas)
	switch {
	case days > 30:
		return fmt.Sprintf("It's been over a month since you last contacted %s. Consider reaching out with new property listings in their preferred areas (%s) within their budget range.", contact.Name, areas)
	case days > 14:
		return fmt.Sprintf("Follow up with %s about their property search. They're interested in %s properties in %s.", contact.Name, propertyType(contact), areas)
	case days > 7:
		return fmt.Sprintf("Check in with %s to see if they have any questions about the properties we discussed or if they'd like to schedule viewings.", contact.Name)
	default:
		return fmt.Sprintf("Send a quick follow-up to %s to maintain engagement and offer additional assistance with their property search.", contact.Name)
	}
}

package suggestion

import (
	"context"
	"strings"
	"time"

	"nurture_backend/internal/leads/repository"
)

// Suggestions returned when no model is configured or the model fails.
var (
	NoModelSuggestions = []string{"Consider reaching out to maintain engagement"}

	FailureSuggestions = []string{
		"Send personalized email with new property listings",
		"Schedule a call to discuss requirements",
		"Share market insights for their preferred areas",
	}
)

// FollowUpIdeas are talking points for an upcoming follow-up.
type FollowUpIdeas struct {
	AIGenerated bool
	Suggestions []string
	GeneratedAt *time.Time
}

// SuggestFollowUps asks the model for follow-up ideas on channel. Like
// Compose it never fails.
func (c *Composer) SuggestFollowUps(ctx context.Context, contact repository.Contact, channel string, scheduledFor *time.Time, now time.Time) FollowUpIdeas {
	if c.generator == nil {
		return FollowUpIdeas{Suggestions: clone(NoModelSuggestions)}
	}

	text, err := c.generator.Generate(ctx, followUpPrompt(contact, channel, scheduledFor))
	if err != nil {
		c.log.CollaboratorError("generator", err)
		return FollowUpIdeas{Suggestions: clone(FailureSuggestions)}
	}

	lines := splitLines(text)
	if len(lines) == 0 {
		return FollowUpIdeas{Suggestions: clone(FailureSuggestions)}
	}

	generatedAt := now
	return FollowUpIdeas{AIGenerated: true, Suggestions: lines, GeneratedAt: &generatedAt}
}

func splitLines(text string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package suggestion

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSuggestFollowUpsWithoutGenerator(t *testing.T) {
	composer := NewComposer(nil, nil)

	got := composer.SuggestFollowUps(context.Background(), sampleContact(), "email", nil, time.Now())

	if got.AIGenerated || !reflect.DeepEqual(got.Suggestions, NoModelSuggestions) {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestSuggestFollowUpsGeneratorFailure(t *testing.T) {
	composer := NewComposer(&fakeGenerator{err: errors.New("network down")}, nil)

	got := composer.SuggestFollowUps(context.Background(), sampleContact(), "sms", nil, time.Now())

	if got.AIGenerated || !reflect.DeepEqual(got.Suggestions, FailureSuggestions) {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestSuggestFollowUpsSplitsGeneratedLines(t *testing.T) {
	gen := &fakeGenerator{text: "- Send the Palm villa brochure\n\n* Call after 6pm\n"}
	composer := NewComposer(gen, nil)
	when := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 4, 28, 8, 0, 0, 0, time.UTC)

	got := composer.SuggestFollowUps(context.Background(), sampleContact(), "whatsapp", &when, now)

	want := []string{"Send the Palm villa brochure", "Call after 6pm"}
	if !got.AIGenerated || !reflect.DeepEqual(got.Suggestions, want) {
		t.Fatalf("unexpected result %+v", got)
	}
	if got.GeneratedAt == nil || !got.GeneratedAt.Equal(now) {
		t.Fatalf("expected generated timestamp")
	}
	if !strings.Contains(gen.prompts[0], "Channel: whatsapp") || !strings.Contains(gen.prompts[0], "Scheduled Date: 2026-05-01T10:00:00Z") {
		t.Fatalf("prompt missing follow-up context:\n%s", gen.prompts[0])
	}
}

func TestSuggestFollowUpsReturnsCopies(t *testing.T) {
	composer := NewComposer(nil, nil)
	got := composer.SuggestFollowUps(context.Background(), sampleContact(), "", nil, time.Now())
	got.Suggestions[0] = "mutated"
	if NoModelSuggestions[0] == "mutated" {
		t.Fatalf("defaults must not be shared")
	}
}

package nurture

import (
	"context"
	"errors"
	"testing"
	"time"

	"nurture_backend/internal/leads/recency"
	"nurture_backend/internal/leads/repository"
	"nurture_backend/internal/leads/suggestion"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/apperr"

	"github.com/google/uuid"
)

type fakeRepo struct {
	contacts     map[uuid.UUID]repository.Contact
	interactions map[uuid.UUID][]repository.Interaction
	historyErr   error
	limits       []int
}

func (f *fakeRepo) GetContact(_ context.Context, id uuid.UUID) (repository.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return repository.Contact{}, repository.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) ListRecentInteractions(_ context.Context, id uuid.UUID, limit int) ([]repository.Interaction, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	items := f.interactions[id]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

type stubGenerator struct{ text string }

func (g stubGenerator) Generate(context.Context, string) (string, error) {
	return g.text, nil
}

var now = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func fixture(gen suggestion.Generator) (*Service, *fakeRepo, uuid.UUID) {
	id := uuid.New()
	repo := &fakeRepo{
		contacts: map[uuid.UUID]repository.Contact{
			id: {ID: id, Name: "Mariam", PropertyType: "Apartment", PreferredAreas: []string{"Business Bay"}},
		},
		interactions: map[uuid.UUID][]repository.Interaction{},
	}
	svc := New(repo, suggestion.NewComposer(gen, nil), nil)
	svc.now = func() time.Time { return now }
	return svc, repo, id
}

func TestCreateNurtureSuggestionNeverContacted(t *testing.T) {
	svc, _, id := fixture(nil)

	resp, err := svc.CreateNurtureSuggestion(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.LeadID != id || resp.LeadName != "Mariam" {
		t.Fatalf("unexpected identity fields %+v", resp)
	}
	if resp.DaysSinceContact != recency.NeverContacted || resp.Urgency != "high" {
		t.Fatalf("expected never-contacted high urgency, got %d/%s", resp.DaysSinceContact, resp.Urgency)
	}
	if resp.RecommendedAction != suggestion.ActionInitialContact {
		t.Fatalf("unexpected action %q", resp.RecommendedAction)
	}
	want := "It's been over a month since you last contacted Mariam. Consider reaching out with new property listings in their preferred areas (Business Bay) within their budget range."
	if resp.Suggestion != want {
		t.Fatalf("unexpected suggestion %q", resp.Suggestion)
	}
}

func TestCreateNurtureSuggestionGeneratorFailureFallsBack(t *testing.T) {
	svc, repo, id := fixture(failingGenerator{})
	last := now.Add(-10 * 24 * time.Hour)
	c := repo.contacts[id]
	c.LastContactedAt = &last
	repo.contacts[id] = c
	repo.interactions[id] = []repository.Interaction{{ID: uuid.New(), ContactID: id, Type: "viewing_log", CreatedAt: last}}

	resp, err := svc.CreateNurtureSuggestion(context.Background(), id)
	if err != nil {
		t.Fatalf("generator failure must not surface: %v", err)
	}
	if resp.AIGenerated || resp.Urgency != "low" || resp.RecommendedAction != suggestion.ActionViewingFeedback {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.DaysSinceContact != 10 {
		t.Fatalf("expected 10 days, got %d", resp.DaysSinceContact)
	}
}

func TestCreateNurtureSuggestionUsesGenerator(t *testing.T) {
	svc, _, id := fixture(stubGenerator{text: "\nCall Mariam about the new Business Bay launch.\n"})

	resp, err := svc.CreateNurtureSuggestion(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.AIGenerated || resp.Suggestion != "Call Mariam about the new Business Bay launch." {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateNurtureSuggestionUnknownLead(t *testing.T) {
	svc, _, _ := fixture(nil)

	_, err := svc.CreateNurtureSuggestion(context.Background(), uuid.New())
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound || appErr.Message != "Lead not found" {
		t.Fatalf("expected Lead not found, got %v", err)
	}
}

func TestGetFollowUpContextStoreFailure(t *testing.T) {
	svc, repo, id := fixture(nil)
	repo.historyErr = errors.New("relation does not exist")

	_, err := svc.GetFollowUpContext(context.Background(), id)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Message != "Failed to get follow-up context: relation does not exist" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestGetFollowUpContextBoundsHistory(t *testing.T) {
	svc, repo, id := fixture(nil)
	for i := 0; i < 8; i++ {
		repo.interactions[id] = append(repo.interactions[id], repository.Interaction{ID: uuid.New(), ContactID: id, Type: "note"})
	}

	resp, err := svc.GetFollowUpContext(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.History) != ContextHistoryLimit {
		t.Fatalf("expected %d entries, got %d", ContextHistoryLimit, len(resp.History))
	}
}

func TestSuggestFollowUpMessages(t *testing.T) {
	svc, _, id := fixture(nil)

	resp, err := svc.SuggestFollowUpMessages(context.Background(), id, transport.FollowUpSuggestionsRequest{Channel: "email"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AIGenerated || len(resp.Suggestions) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}

	_, err = svc.SuggestFollowUpMessages(context.Background(), id, transport.FollowUpSuggestionsRequest{Channel: "fax"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

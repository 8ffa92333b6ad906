package feedback

import (
	"context"
	"errors"

	"github.com/bangasho83/hummane/internal/validate"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) CreateCard(ctx context.Context, companyID string, input CardInput) (Card, error) {
	id, err := s.store.CreateCard(ctx, companyID, input)
	if err != nil {
		return Card{}, err
	}
	return s.store.GetCard(ctx, companyID, id)
}

func (s *Service) UpdateCard(ctx context.Context, companyID, id string, input CardInput) (Card, error) {
	if err := s.store.UpdateCard(ctx, companyID, id, input); err != nil {
		return Card{}, err
	}
	return s.store.GetCard(ctx, companyID, id)
}

func (s *Service) DeleteCard(ctx context.Context, companyID, id string) error {
	return s.store.DeleteCard(ctx, companyID, id)
}

func (s *Service) GetCard(ctx context.Context, companyID, id string) (Card, error) {
	return s.store.GetCard(ctx, companyID, id)
}

func (s *Service) ListCards(ctx context.Context, companyID string) ([]Card, error) {
	return s.store.ListCards(ctx, companyID)
}

// SubmitEntry validates the entry against its card before persisting. The
// card lookup doubles as the existence check; submitting against a card the
// company does not own fails with ErrCardNotFound.
func (s *Service) SubmitEntry(ctx context.Context, companyID string, input EntryInput) (Entry, validate.Errors, error) {
	card, err := s.store.GetCard(ctx, companyID, input.CardID)
	if err != nil {
		return Entry{}, nil, err
	}

	normalized, errs := ValidateEntry(input, card)
	if errs.Has() {
		return Entry{}, errs, nil
	}

	id, err := s.store.CreateEntry(ctx, companyID, normalized)
	if err != nil {
		return Entry{}, nil, err
	}
	entry, err := s.store.GetEntry(ctx, companyID, id)
	return entry, nil, err
}

func (s *Service) DeleteEntry(ctx context.Context, companyID, id string) error {
	return s.store.DeleteEntry(ctx, companyID, id)
}

func (s *Service) ListEntries(ctx context.Context, companyID, employeeID string) ([]Entry, error) {
	return s.store.ListEntries(ctx, companyID, employeeID)
}

// EntryScore loads an entry with its card and computes the weighted score.
func (s *Service) EntryScore(ctx context.Context, companyID, entryID string) (ScoreSummary, error) {
	entry, err := s.store.GetEntry(ctx, companyID, entryID)
	if err != nil {
		return ScoreSummary{}, err
	}
	card, err := s.store.GetCard(ctx, companyID, entry.CardID)
	if err != nil {
		return ScoreSummary{}, err
	}
	return WeightedScore(card, entry), nil
}

// EmployeeScores computes weighted scores for every entry filed about one
// employee. Entries whose card has since been deleted are skipped.
func (s *Service) EmployeeScores(ctx context.Context, companyID, employeeID string) ([]ScoreSummary, error) {
	entries, err := s.store.ListEntries(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	cards := make(map[string]Card)
	out := make([]ScoreSummary, 0, len(entries))
	for _, entry := range entries {
		card, cached := cards[entry.CardID]
		if !cached {
			card, err = s.store.GetCard(ctx, companyID, entry.CardID)
			if errors.Is(err, ErrCardNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			cards[entry.CardID] = card
		}
		out = append(out, WeightedScore(card, entry))
	}
	return out, nil
}

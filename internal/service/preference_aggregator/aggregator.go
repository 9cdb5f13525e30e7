package preference_aggregator

import (
	"fmt"

	"github.com/humanbelnik/popcorn/core/internal/model"
)

var (
	ErrNoPreferences = fmt.Errorf("%w: no preferences submitted for this party", model.ErrInsufficientData)
	ErrWrongSuite    = fmt.Errorf("%w: record is not a suite 1 submission", model.ErrInvalidInput)
)

type Aggregator struct{}

func New() *Aggregator {
	return &Aggregator{}
}

/*
Aggregate merges every member's suite-1 submission into one party summary.
Genres, dealbreakers and decades are unions; the year cutoff is the most
recent one any member asked for. The result does not depend on record order.
*/
func (a *Aggregator) Aggregate(records []model.PreferenceRecord) (model.PartyPreferenceSummary, error) {
	if len(records) == 0 {
		return model.PartyPreferenceSummary{}, ErrNoPreferences
	}

	summary := model.NewPartyPreferenceSummary()
	for _, r := range records {
		p, ok := suite1(r.Payload)
		if !ok {
			return model.PartyPreferenceSummary{}, fmt.Errorf("%w: %s", ErrWrongSuite, r.ID())
		}

		summary.GenrePreferences.Add(p.GenrePreferences...)
		summary.GenreDealbreakers.Add(p.GenreDealbreakers...)
		summary.DecadePreferences.Add(p.DecadePreferences...)

		if p.YearCutoff == 0 {
			continue
		}
		if summary.YearCutoff == nil || p.YearCutoff > *summary.YearCutoff {
			cutoff := p.YearCutoff
			summary.YearCutoff = &cutoff
		}
	}

	return summary, nil
}

func suite1(p model.Payload) (model.Suite1Payload, bool) {
	switch v := p.(type) {
	case model.Suite1Payload:
		return v, true
	case *model.Suite1Payload:
		if v == nil {
			return model.Suite1Payload{}, false
		}
		return *v, true
	}
	return model.Suite1Payload{}, false
}

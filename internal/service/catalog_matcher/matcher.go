package catalog_matcher

import (
	"math/rand"
	"slices"

	"github.com/humanbelnik/popcorn/core/internal/model"
)

// Criteria narrows what Match checks beyond the party summary.
type Criteria struct {
	Excluded model.StringSet

	// Nil disables the streaming filter; an empty non-nil set excludes everything.
	StreamingServices model.StringSet

	// Relaxed skips the decade and preferred-genre filters. Dealbreakers,
	// cutoff and streaming still apply.
	Relaxed bool
}

type Option func(*Criteria)

func WithExcluded(ids model.StringSet) Option {
	return func(c *Criteria) {
		c.Excluded = ids
	}
}

func WithStreamingServices(services []string) Option {
	return func(c *Criteria) {
		c.StreamingServices = model.NewStringSet(services...)
	}
}

func WithRelaxedPreferences() Option {
	return func(c *Criteria) {
		c.Relaxed = true
	}
}

type Matcher struct{}

func New() *Matcher {
	return &Matcher{}
}

// Match filters the catalog down to candidates. Output order follows the catalog.
func (m *Matcher) Match(catalog []model.Movie, summary model.PartyPreferenceSummary, opts ...Option) []model.Movie {
	var c Criteria
	for _, opt := range opts {
		opt(&c)
	}

	out := make([]model.Movie, 0, len(catalog))
	for _, movie := range catalog {
		if Accepts(movie, summary, c) {
			out = append(out, movie)
		}
	}
	return out
}

// Accepts applies every filter to one movie, stopping at the first failure.
func Accepts(movie model.Movie, summary model.PartyPreferenceSummary, c Criteria) bool {
	if c.Excluded.Has(movie.ID) {
		return false
	}
	if summary.YearCutoff != nil && movie.Year < *summary.YearCutoff {
		return false
	}
	if !c.Relaxed && len(summary.DecadePreferences) > 0 && !summary.DecadePreferences.Has(movie.Decade()) {
		return false
	}
	if !c.Relaxed && len(summary.GenrePreferences) > 0 && !summary.GenrePreferences.Intersects(movie.Genres) {
		return false
	}
	if summary.GenreDealbreakers.Intersects(movie.Genres) {
		return false
	}
	if c.StreamingServices != nil && !c.StreamingServices.Intersects(movie.StreamingPlatforms) {
		return false
	}
	return true
}

// Narrow keeps the limit candidates sharing the most preferred genres. Ties
// keep their input order. limit <= 0 returns the candidates unchanged.
func (m *Matcher) Narrow(candidates []model.Movie, summary model.PartyPreferenceSummary, limit int) []model.Movie {
	if limit <= 0 || len(candidates) <= limit {
		return candidates
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b model.Movie) int {
		return summary.GenrePreferences.Overlap(b.Genres) - summary.GenrePreferences.Overlap(a.Genres)
	})
	return sorted[:limit]
}

// Sample draws up to n distinct movies from the catalog.
func (m *Matcher) Sample(catalog []model.Movie, n int, rng *rand.Rand) []model.Movie {
	if n <= 0 {
		return []model.Movie{}
	}
	if n >= len(catalog) {
		return slices.Clone(catalog)
	}

	perm := rng.Perm(len(catalog))
	out := make([]model.Movie, 0, n)
	for _, i := range perm[:n] {
		out = append(out, catalog[i])
	}
	return out
}

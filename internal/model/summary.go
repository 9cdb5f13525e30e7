package model

// PartyPreferenceSummary is the party-level merge of every member's suite-1 submission.
type PartyPreferenceSummary struct {
	GenrePreferences  StringSet `json:"genre_preferences"`
	GenreDealbreakers StringSet `json:"genre_dealbreakers"`
	DecadePreferences StringSet `json:"decade_preferences"`

	// Nil when no member specified a cutoff.
	YearCutoff *int `json:"year_cutoff"`
}

func NewPartyPreferenceSummary() PartyPreferenceSummary {
	return PartyPreferenceSummary{
		GenrePreferences:  NewStringSet(),
		GenreDealbreakers: NewStringSet(),
		DecadePreferences: NewStringSet(),
	}
}

// RatingAggregate folds suite-2 ratings into per-movie and per-genre averages.
type RatingAggregate struct {
	RatedMovies  StringSet          `json:"rated_movies"`
	GenreRatings map[string]float64 `json:"genre_ratings"`
	MovieRatings map[string]float64 `json:"movie_ratings"`
}

func NewRatingAggregate() RatingAggregate {
	return RatingAggregate{
		RatedMovies:  NewStringSet(),
		GenreRatings: map[string]float64{},
		MovieRatings: map[string]float64{},
	}
}

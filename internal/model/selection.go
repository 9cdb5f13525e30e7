package model

// ScoredMovie is a ranked candidate. Rated is set when the party rated the
// movie directly.
type ScoredMovie struct {
	Movie Movie
	Score float64
	Rated bool
}

type SelectedMovie struct {
	Movie
	Score        float64 `json:"score"`
	BlindSummary string  `json:"blind_summary,omitempty"`
}

type SelectionSource string

const (
	SourceGateway SelectionSource = "gateway"
	SourceRanker  SelectionSource = "ranker"
)

type Selection struct {
	PartyID string          `json:"party_id"`
	Source  SelectionSource `json:"source"`
	Movies  []SelectedMovie `json:"selectedMovies"`
}

// RecommendationRequest is what the external gateway gets to narrow down.
type RecommendationRequest struct {
	Candidates     []Movie
	Summary        PartyPreferenceSummary
	GenreRatings   map[string]float64
	Limit          int
	BlindSummaries bool
}

type Recommendation struct {
	MovieID      string
	BlindSummary string
}

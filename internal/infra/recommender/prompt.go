package infra_recommender

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const defaultLimit = 5

func buildPrompt(req model.RecommendationRequest) (string, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	var b strings.Builder
	b.WriteString("Given these party preferences:\n")
	fmt.Fprintf(&b, "Genre preferences: %s\n", joinOrNone(req.Summary.GenrePreferences.Sorted()))
	fmt.Fprintf(&b, "Genre dealbreakers: %s\n", joinOrNone(req.Summary.GenreDealbreakers.Sorted()))
	fmt.Fprintf(&b, "Decade preferences: %s\n", joinOrNone(req.Summary.DecadePreferences.Sorted()))
	if req.Summary.YearCutoff != nil {
		fmt.Fprintf(&b, "Year cutoff: %d\n", *req.Summary.YearCutoff)
	}

	if len(req.GenreRatings) > 0 {
		raw, err := json.Marshal(req.GenreRatings)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\nPrevious genre ratings (1-10 scale):\n%s\n", raw)
	}

	b.WriteString("\nAnd these movie options:\n")
	for _, m := range req.Candidates {
		fmt.Fprintf(&b, "- ID:%s - %s (%d) - Genres: %s", m.ID, m.Title, m.Year, strings.Join(m.Genres, ", "))
		if m.Summary != "" {
			fmt.Fprintf(&b, " - Summary: %s", m.Summary)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nSelect exactly %d movies that best match the preferences.", limit)
	b.WriteString(" Only select from the provided movies using their exact IDs.\n")
	if req.BlindSummaries {
		b.WriteString("For each movie write a short plot summary that does not reveal the title, the cast or the year.\n")
		b.WriteString(`Respond with a JSON object: {"selected_movies": [{"movie_id": "<id>", "blind_summary": "<summary>"}]}`)
	} else {
		b.WriteString(`Respond with a JSON object: {"selected_movies": ["<id>"]}`)
	}
	return b.String(), nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

type selectionPayload struct {
	SelectedMovies   []json.RawMessage `json:"selected_movies"`
	SelectedMovieIDs []json.RawMessage `json:"selected_movie_ids"`
	PlotSummaries    []string          `json:"plot_summaries"`
}

type selectedEntry struct {
	MovieID      json.RawMessage `json:"movie_id"`
	ID           json.RawMessage `json:"id"`
	BlindSummary string          `json:"blind_summary"`
}

/*
parseSelection accepts the shapes chat models actually produce:

	{"selected_movies": [{"movie_id": "1", "blind_summary": "..."}]}
	{"selected_movies": ["1", 2]}
	{"selected_movie_ids": ["1"], "plot_summaries": ["..."]}
*/
func parseSelection(content string) ([]model.Recommendation, error) {
	var p selectionPayload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return nil, err
	}

	var out []model.Recommendation
	switch {
	case len(p.SelectedMovies) > 0:
		for _, raw := range p.SelectedMovies {
			rec, err := parseEntry(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	case len(p.SelectedMovieIDs) > 0:
		for i, raw := range p.SelectedMovieIDs {
			id, err := parseID(raw)
			if err != nil {
				return nil, err
			}
			rec := model.Recommendation{MovieID: id}
			if i < len(p.PlotSummaries) {
				rec.BlindSummary = p.PlotSummaries[i]
			}
			out = append(out, rec)
		}
	default:
		return nil, errors.New("no selected movies in response")
	}
	return out, nil
}

func parseEntry(raw json.RawMessage) (model.Recommendation, error) {
	if id, err := parseID(raw); err == nil {
		return model.Recommendation{MovieID: id}, nil
	}

	var e selectedEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return model.Recommendation{}, err
	}
	idRaw := e.MovieID
	if len(idRaw) == 0 {
		idRaw = e.ID
	}
	id, err := parseID(idRaw)
	if err != nil {
		return model.Recommendation{}, err
	}
	return model.Recommendation{MovieID: id, BlindSummary: strings.TrimSpace(e.BlindSummary)}, nil
}

// parseID takes a JSON string or number.
func parseID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return n.String(), nil
		}
	}
	return "", fmt.Errorf("not a movie id: %s", raw)
}

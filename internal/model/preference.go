package model

import (
	"fmt"
	"time"
)

type SuiteNumber int

const (
	SuitePreferences SuiteNumber = 1
	SuiteRatings     SuiteNumber = 2
	SuiteVoting      SuiteNumber = 3
)

// Payload is the suite-specific body of a preference submission.
type Payload interface {
	Suite() SuiteNumber
}

// Suite1Payload is one member's preference intake.
type Suite1Payload struct {
	GenrePreferences  []string `json:"genre_preferences" validate:"len=2,unique,dive,required"`
	GenreDealbreakers []string `json:"genre_dealbreakers" validate:"len=1,dive,required"`
	DecadePreferences []string `json:"decade_preferences" validate:"len=2,unique,dive,required,decade"`
	YearCutoff        int      `json:"year_cutoff" validate:"oneof=2020 2010 2000 1990 1980 1970 1960"`
}

func (Suite1Payload) Suite() SuiteNumber { return SuitePreferences }

type MovieRating struct {
	MovieID string `json:"movie_id" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=10"`
}

// Suite2Payload holds one member's ratings, at most one per movie.
type Suite2Payload struct {
	MovieRatings []MovieRating `json:"movie_ratings" validate:"unique=MovieID,dive"`
}

func (Suite2Payload) Suite() SuiteNumber { return SuiteRatings }

// Upsert sets the rating for movieID and returns the previous value, 0 when
// the movie had not been rated yet.
func (p *Suite2Payload) Upsert(movieID string, rating int) int {
	for i := range p.MovieRatings {
		if p.MovieRatings[i].MovieID == movieID {
			prev := p.MovieRatings[i].Rating
			p.MovieRatings[i].Rating = rating
			return prev
		}
	}
	p.MovieRatings = append(p.MovieRatings, MovieRating{MovieID: movieID, Rating: rating})
	return 0
}

type PreferenceRecord struct {
	PartyID   string
	UserID    string
	Payload   Payload
	Timestamp time.Time
	ExpiresAt time.Time

	// Optimistic lock counter, bumped on every write.
	Version int
}

func (r PreferenceRecord) Suite() SuiteNumber {
	if r.Payload == nil {
		return 0
	}
	return r.Payload.Suite()
}

func (r PreferenceRecord) ID() string {
	return PreferenceID(r.PartyID, r.UserID, r.Suite())
}

// PreferenceID is the record key; one record per (party, user, suite).
func PreferenceID(partyID, userID string, suite SuiteNumber) string {
	return fmt.Sprintf("%s#%s#suite%d", partyID, userID, suite)
}

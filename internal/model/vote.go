package model

import (
	"fmt"
	"time"
)

type VoteChoice string

const (
	VoteYes  VoteChoice = "yes"
	VoteNo   VoteChoice = "no"
	VoteSeen VoteChoice = "seen"
)

func (v VoteChoice) Valid() bool {
	switch v {
	case VoteYes, VoteNo, VoteSeen:
		return true
	}
	return false
}

type Vote struct {
	PartyID   string
	UserID    string
	MovieID   string
	Choice    VoteChoice
	Timestamp time.Time
}

func (v Vote) ID() string {
	return fmt.Sprintf("%s#%s#%s", v.PartyID, v.UserID, v.MovieID)
}

type VoteCounts struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Seen  int `json:"seen"`
	Total int `json:"total"`
}

func (c *VoteCounts) Add(choice VoteChoice, delta int) {
	switch choice {
	case VoteYes:
		c.Yes += delta
	case VoteNo:
		c.No += delta
	case VoteSeen:
		c.Seen += delta
	}
}

type RatingStats struct {
	Total   int     `json:"total_ratings"`
	Sum     int     `json:"sum_ratings"`
	Average float64 `json:"average_rating"`
}

type VoteStatus struct {
	PartyID        string     `json:"party_id"`
	MovieID        string     `json:"movie_id"`
	Counts         VoteCounts `json:"vote_counts"`
	VotingComplete bool       `json:"voting_complete"`
}

package model

import "time"

type PartyStatus = string

const (
	StatusLobby    PartyStatus = "lobby"
	StatusActive   PartyStatus = "active"
	StatusInactive PartyStatus = "inactive"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusLobby, StatusActive, StatusInactive:
		return true
	}
	return false
}

type Participant struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

const ParticipantActive = "active"

type Party struct {
	ID                string          `json:"party_id"`
	HostID            string          `json:"host_id"`
	HostName          string          `json:"host_name"`
	Status            PartyStatus     `json:"status"`
	CurrentSuite      SuiteNumber     `json:"current_suite"`
	StreamingServices []string        `json:"streaming_services"`
	Participants      []Participant   `json:"participants"`
	SelectedMovies    []SelectedMovie `json:"selected_movies,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	ExpiresAt         time.Time       `json:"expires_at"`
}

func (p Party) HasParticipant(userID string) bool {
	for _, pt := range p.Participants {
		if pt.UserID == userID {
			return true
		}
	}
	return false
}

// PartyState is the real-time copy of a party held in the cache.
type PartyState map[string]string

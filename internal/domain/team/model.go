package team

import "time"

// Record is a team profile from the core teams endpoint.
type Record struct {
	TeamID        int64      `json:"team_id"`
	LeagueID      int64      `json:"league_id"`
	Location      string     `json:"location"`
	Name          string     `json:"name"`
	Nickname      string     `json:"nickname"`
	Abbreviation  string     `json:"abbreviation"`
	Slug          string     `json:"slug"`
	Color         string     `json:"color"`
	Logo          *string    `json:"logo"`
	IsNational    bool       `json:"is_national"`
	IsActive      bool       `json:"is_active"`
	NextEventRef  *string    `json:"next_event_ref"`
	NextEventDate *time.Time `json:"next_event_date"`
	AthletesRef   *string    `json:"athletes_ref"`
}

package series

import "time"

// Record is a competition (league) with its season and event references.
type Record struct {
	SeriesID     int64    `json:"series_id"`
	Name         string   `json:"name"`
	ShortName    string   `json:"short_name"`
	Abbreviation string   `json:"abbreviation"`
	Slug         string   `json:"slug"`
	IsTournament bool     `json:"is_tournament"`
	URL          string   `json:"url"`
	SeasonRefs   []string `json:"seasons"`
	Years        []string `json:"years"`
}

// EventRef identifies one event (match) listed under a series.
type EventRef struct {
	SeriesID int64  `json:"series_id"`
	EventID  int64  `json:"event_id"`
	Ref      string `json:"ref"`
}

// Event is the hydrated core API event summary.
type Event struct {
	EventID   int64      `json:"event_id"`
	SeriesID  int64      `json:"series_id"`
	Name      string     `json:"name"`
	ShortName string     `json:"short_name"`
	Date      *time.Time `json:"date"`
	Ref       string     `json:"ref"`
}

// Season is one year of a series.
type Season struct {
	Year        int        `json:"year"`
	SeriesID    int64      `json:"series_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Name        string     `json:"name"`
	ShortName   string     `json:"short_name"`
	Slug        string     `json:"slug"`
	TeamsRef    string     `json:"teams_ref"`
	RankingsRef string     `json:"rankings_ref"`
}

// CoreDateLayout is the timestamp layout used by the core API.
const CoreDateLayout = "2006-01-02T15:04Z"

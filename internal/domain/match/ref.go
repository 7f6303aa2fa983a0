package match

// Ref identifies a match without fetching it.
type Ref struct {
	SeriesID int64 `json:"series_id" validate:"gt=0"`
	MatchID  int64 `json:"match_id" validate:"gt=0"`
}

// Validate checks both ids are positive.
func (r Ref) Validate() error {
	return recordValidator.Struct(r)
}

// LiveScore is one entry of the livescore feed.
type LiveScore struct {
	MatchID     int64  `json:"match_id"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

package player

import "time"

// Record is a player profile. Fields only one source provides stay nil or
// empty when built from the other.
type Record struct {
	PlayerID     int64      `json:"player_id"`
	Name         string     `json:"name"`
	FullName     *string    `json:"full_name"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	CurrentAge   *string    `json:"current_age"`
	Gender       *string    `json:"gender"`
	Position     *string    `json:"position"`
	MajorTeams   []string   `json:"major_teams"`
	Nickname     *string    `json:"nickname"`
	AlsoKnownAs  *string    `json:"also_known_as"`
	PlayingRole  *string    `json:"playing_role"`
	BattingStyle *string    `json:"batting_style"`
	BowlingStyle *string    `json:"bowling_style"`

	BattingFieldingAverages []CareerRow          `json:"batting_fielding_averages"`
	BowlingAverages         []CareerRow          `json:"bowling_averages"`
	Debuts                  map[string]MatchLink `json:"debuts"`
}

// CareerRow is one format line of a career averages table.
type CareerRow struct {
	Format string            `json:"format"`
	Stats  map[string]string `json:"stats"`
}

// MatchLink points at a debut or last appearance.
type MatchLink struct {
	URL     string `json:"url"`
	MatchID int64  `json:"match_id"`
	Title   string `json:"title"`
}

var BattingFieldingHeaders = []string{
	"matches", "innings", "not_out", "runs", "high_score", "batting_average",
	"balls_faced", "strike_rate", "centuries", "fifties", "fours", "sixes",
	"catches", "stumpings",
}

var BowlingHeaders = []string{
	"matches", "innings", "balls_delivered", "runs", "wickets", "best_innings",
	"best_match", "bowling_average", "economy", "strike_rate", "four_wickets",
	"five_wickets", "ten_wickets",
}

// Debut labels recognised in the debuts/lasts table.
var DebutLabels = []string{
	"Test debut", "Last Test",
	"ODI debut", "Last ODI",
	"T20I debut", "Last T20I",
	"First-class debut", "Last First-class",
	"List A debut", "Last List A",
	"Twenty20 debut", "Last Twenty20",
}

// Merge keeps r's values and fills gaps from other.
func (r Record) Merge(other Record) Record {
	if r.PlayerID == 0 {
		r.PlayerID = other.PlayerID
	}
	if r.Name == "" {
		r.Name = other.Name
	}
	fill := func(dst **string, src *string) {
		if *dst == nil {
			*dst = src
		}
	}
	fill(&r.FullName, other.FullName)
	fill(&r.FirstName, other.FirstName)
	fill(&r.LastName, other.LastName)
	fill(&r.CurrentAge, other.CurrentAge)
	fill(&r.Gender, other.Gender)
	fill(&r.Position, other.Position)
	fill(&r.Nickname, other.Nickname)
	fill(&r.AlsoKnownAs, other.AlsoKnownAs)
	fill(&r.PlayingRole, other.PlayingRole)
	fill(&r.BattingStyle, other.BattingStyle)
	fill(&r.BowlingStyle, other.BowlingStyle)
	if r.DateOfBirth == nil {
		r.DateOfBirth = other.DateOfBirth
	}
	if len(r.MajorTeams) == 0 {
		r.MajorTeams = other.MajorTeams
	}
	if len(r.BattingFieldingAverages) == 0 {
		r.BattingFieldingAverages = other.BattingFieldingAverages
	}
	if len(r.BowlingAverages) == 0 {
		r.BowlingAverages = other.BowlingAverages
	}
	if len(r.Debuts) == 0 {
		r.Debuts = other.Debuts
	}
	return r
}

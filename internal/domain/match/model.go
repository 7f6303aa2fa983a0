package match

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/shopspring/decimal"
)

var recordValidator = validator.New()

// Record is the canonical, shape-independent view of one match. It is built
// once by the normalizer and treated as read-only afterwards.
type Record struct {
	MatchID  int64               `json:"match_id" validate:"required,gt=0"`
	SeriesID int64               `json:"series_id" validate:"gte=0"`
	Shape    rawdata.SourceShape `json:"source_shape"`

	Description        string `json:"description"`
	MatchTitle         string `json:"match_title"`
	Status             Status `json:"status"`
	InternationalClass string `json:"international_class_card"`
	GeneralClass       string `json:"general_class_card"`
	Season             string `json:"season"`
	StartDate          string `json:"start_date"`
	StartDateTime      string `json:"start_datetime"`
	CancelledMatch     bool   `json:"cancelled_match"`
	ScheduledOvers     *int   `json:"scheduled_overs"`
	RainRule           *string `json:"rain_rule"`
	FollowOn           bool   `json:"followon"`
	Lighting           string `json:"floodlit_name"`
	CurrentSummary     string `json:"current_summary"`
	Result             string `json:"result"`

	Ground Venue       `json:"ground"`
	Series []SeriesRef `json:"series"`

	Team1 TeamRef `json:"team_1"`
	Team2 TeamRef `json:"team_2"`

	HomeTeamID         string `json:"home_team_id"`
	BattingFirstTeamID string `json:"batting_first_team_id"`
	WinnerTeamID       string `json:"winner_team_id"`
	TossWinnerTeamID   string `json:"toss_winner_team_id"`
	TossDecision       string `json:"toss_decision"`
	TossDecisionName   string `json:"toss_decision_name"`

	Innings   []Innings  `json:"innings" validate:"dive"`
	Officials []Official `json:"officials"`

	// Live-only blocks; populated by the legacy engine shape while a match is in progress.
	LatestBatting []Batter `json:"latest_batting,omitempty"`
	LatestBowling []Bowler `json:"latest_bowling,omitempty"`
}

type Venue struct {
	GroundID            string  `json:"ground_id"`
	GroundName          string  `json:"ground_name"`
	TownName            *string `json:"town_name"`
	TownArea            *string `json:"town_area"`
	TownID              string  `json:"town_id"`
	Continent           *string `json:"continent"`
	WeatherLocationCode *string `json:"weather_location_code"`
}

type SeriesRef struct {
	ID   string `json:"core_recreation_id"`
	Name string `json:"series_name"`
	Slug string `json:"slug"`
}

// TeamRef is one side of a match. ID is the public team id.
type TeamRef struct {
	ID           string      `json:"team_id" validate:"required"`
	Abbreviation string      `json:"team_abbreviation"`
	Name         string      `json:"team_name"`
	LongName     string      `json:"team_long_name"`
	Players      []PlayerRef `json:"player"`
}

type PlayerRef struct {
	PlayerID     int64  `json:"player_id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	PlayingRole  string `json:"playing_role"`
	BattingStyle string `json:"batting_style"`
	BowlingStyle string `json:"bowling_style"`
	Captain      bool   `json:"captain"`
	Keeper       bool   `json:"keeper"`
}

type Innings struct {
	Number        int             `json:"inning_number"`
	BattingTeamID string          `json:"batting_team_id" validate:"required"`
	BowlingTeamID string          `json:"bowling_team_id"`
	Runs          int             `json:"runs" validate:"gte=0"`
	Wickets       *int            `json:"wickets"`
	Overs         decimal.Decimal `json:"overs"`
	BallsPerOver  int             `json:"balls_per_over"`
	RunRate       float64         `json:"run_rate" validate:"gte=0"`
	EventName     string          `json:"event_name"`
	Target        *int            `json:"target"`
	Extras        Extras          `json:"extras"`
	Batsmen       []Batter        `json:"batsmen"`
	Bowlers       []Bowler        `json:"bowlers"`
	FallOfWickets []FallOfWicket  `json:"fall_of_wickets"`
}

// LegalBalls converts the overs notation (whole overs plus balls after the
// point) into a ball count.
func (i Innings) LegalBalls() int {
	bpo := i.BallsPerOver
	if bpo <= 0 {
		bpo = DefaultBallsPerOver
	}
	whole := i.Overs.IntPart()
	frac := i.Overs.Sub(decimal.NewFromInt(whole)).Shift(1).IntPart()
	return int(whole)*bpo + int(frac)
}

type Extras struct {
	Total   *int `json:"extras"`
	Byes    *int `json:"byes"`
	Legbyes *int `json:"legbyes"`
	Wides   *int `json:"wides"`
	Noballs *int `json:"noballs"`
}

// Map returns the breakdown keyed by the upstream names.
func (e Extras) Map() map[string]*int {
	return map[string]*int{
		"extras":  e.Total,
		"byes":    e.Byes,
		"legbyes": e.Legbyes,
		"wides":   e.Wides,
		"noballs": e.Noballs,
	}
}

// Batter is a raw batting line as supplied upstream, before the
// did-bat/is-out derivation.
type Batter struct {
	PlayerID      int64    `json:"player_id"`
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	BattedType    string   `json:"batted_type"`
	Runs          *int     `json:"runs"`
	Balls         *int     `json:"balls"`
	Minutes       *int     `json:"minutes"`
	Fours         *int     `json:"fours"`
	Sixes         *int     `json:"sixes"`
	StrikeRate    *float64 `json:"strike_rate"`
	IsOut         bool     `json:"is_out"`
	DismissalText *string  `json:"dismissal_text"`
}

type Bowler struct {
	PlayerID int64           `json:"player_id"`
	Name     string          `json:"name"`
	FullName string          `json:"full_name"`
	Overs    decimal.Decimal `json:"overs"`
	Balls    *int            `json:"balls"`
	Maidens  *int            `json:"maidens"`
	Conceded *int            `json:"conceded"`
	Wickets  *int            `json:"wickets"`
	Economy  *float64        `json:"economy"`
	Dots     *int            `json:"dots"`
	Fours    *int            `json:"fours"`
	Sixes    *int            `json:"sixes"`
	Wides    *int            `json:"wides"`
	Noballs  *int            `json:"noballs"`
}

type FallOfWicket struct {
	Wicket     int             `json:"wicket"`
	Runs       int             `json:"runs"`
	Overs      decimal.Decimal `json:"overs"`
	Balls      *int            `json:"balls"`
	PlayerID   int64           `json:"player_id"`
	PlayerName string          `json:"player_name"`
}

type Official struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Validate checks the structural invariants every record must hold.
func (r Record) Validate() error {
	if err := recordValidator.Struct(r); err != nil {
		return fmt.Errorf("match record fields: %w", err)
	}
	if r.Team1.ID == r.Team2.ID {
		return fmt.Errorf("match teams must be distinct, both are %q", r.Team1.ID)
	}
	for idx, inn := range r.Innings {
		if !r.IsTeam(inn.BattingTeamID) {
			return fmt.Errorf("innings %d batting team %q is not one of the match teams", idx+1, inn.BattingTeamID)
		}
	}
	refs := map[string]string{
		"home_team_id":          r.HomeTeamID,
		"batting_first_team_id": r.BattingFirstTeamID,
		"winner_team_id":        r.WinnerTeamID,
		"toss_winner_team_id":   r.TossWinnerTeamID,
	}
	for field, id := range refs {
		if id != "" && !r.IsTeam(id) {
			return fmt.Errorf("%s %q is not one of the match teams", field, id)
		}
	}
	if !TossConsistent(r.TossDecision, r.TossDecisionName) {
		return fmt.Errorf("toss decision %q does not match name %q", r.TossDecision, r.TossDecisionName)
	}
	return nil
}

// IsTeam reports whether id is one of the two match team ids.
func (r Record) IsTeam(id string) bool {
	return id != "" && (id == r.Team1.ID || id == r.Team2.ID)
}

// Team returns the team with the given id.
func (r Record) Team(id string) (TeamRef, bool) {
	switch {
	case id == "":
		return TeamRef{}, false
	case id == r.Team1.ID:
		return r.Team1, true
	case id == r.Team2.ID:
		return r.Team2, true
	default:
		return TeamRef{}, false
	}
}

// MatchClass prefers the international label and falls back to the general format.
func (r Record) MatchClass() string {
	if r.InternationalClass != "" {
		return r.InternationalClass
	}
	return r.GeneralClass
}

// Date parses StartDate as YYYY-MM-DD.
func (r Record) Date() (time.Time, bool) {
	if r.StartDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// SeriesName is the name of the last series entry.
func (r Record) SeriesName() string {
	if len(r.Series) == 0 {
		return ""
	}
	return r.Series[len(r.Series)-1].Name
}

package cricinfo

import (
	"sync"
	"time"

	"github.com/riskibarqy/cricinfo/external/espncricinfo"
	"github.com/riskibarqy/cricinfo/internal/domain/match"
)

// Match is a read-only view over one normalized match record. Toss, result
// and home-team relations are not available on a dormant match; their
// accessors return nil or "" instead of failing.
type Match struct {
	record    match.Record
	endpoints espncricinfo.Endpoints

	innings []*Innings
	team1   *Team
	team2   *Team

	scorecardOnce sync.Once
	scorecard     [][]BattingEntry
}

// NewMatch wraps an already normalized record, typically one returned by
// Normalize. URLs are built against the public hosts.
func NewMatch(record MatchRecord) *Match {
	return newMatch(record, espncricinfo.Endpoints{})
}

func newMatch(record match.Record, endpoints espncricinfo.Endpoints) *Match {
	record = record.Clone()
	m := &Match{record: record, endpoints: endpoints.WithDefaults()}

	m.innings = make([]*Innings, len(record.Innings))
	for idx := range record.Innings {
		m.innings[idx] = &Innings{record: record.Innings[idx]}
	}
	m.team1 = &Team{ref: record.Team1, innings: m.firstInningsOf(record.Team1.ID)}
	m.team2 = &Team{ref: record.Team2, innings: m.firstInningsOf(record.Team2.ID)}
	return m
}

func (m *Match) firstInningsOf(teamID string) *Innings {
	for _, inn := range m.innings {
		if inn.record.BattingTeamID == teamID {
			return inn
		}
	}
	return nil
}

// Record returns a deep copy of the underlying record.
func (m *Match) Record() MatchRecord { return m.record.Clone() }

func (m *Match) String() string { return m.record.Description }

func (m *Match) Ref() MatchRef {
	return MatchRef{SeriesID: m.record.SeriesID, MatchID: m.record.MatchID}
}

func (m *Match) MatchID() int64          { return m.record.MatchID }
func (m *Match) SeriesID() int64         { return m.record.SeriesID }
func (m *Match) Shape() SourceShape      { return m.record.Shape }
func (m *Match) Description() string     { return m.record.Description }
func (m *Match) MatchTitle() string      { return m.record.MatchTitle }
func (m *Match) Status() Status          { return m.record.Status }
func (m *Match) Season() string          { return m.record.Season }
func (m *Match) StartDate() string       { return m.record.StartDate }
func (m *Match) StartDateTime() string   { return m.record.StartDateTime }
func (m *Match) CancelledMatch() bool    { return m.record.CancelledMatch }
func (m *Match) ScheduledOvers() *int    { return clonePtr(m.record.ScheduledOvers) }
func (m *Match) RainRule() *string       { return clonePtr(m.record.RainRule) }
func (m *Match) FollowOn() bool          { return m.record.FollowOn }
func (m *Match) Lighting() string        { return m.record.Lighting }
func (m *Match) CurrentSummary() string  { return m.record.CurrentSummary }
func (m *Match) Result() string          { return m.record.Result }
func (m *Match) Officials() []Official   { return append([]Official(nil), m.record.Officials...) }
func (m *Match) Series() []SeriesRef     { return append([]SeriesRef(nil), m.record.Series...) }
func (m *Match) SeriesName() string      { return m.record.SeriesName() }
func (m *Match) LatestBatting() []Batter { return match.CloneBatters(m.record.LatestBatting) }
func (m *Match) LatestBowling() []Bowler { return match.CloneBowlers(m.record.LatestBowling) }
func (m *Match) IsDormant() bool         { return m.record.Status.IsDormant() }
func (m *Match) Venue() Venue            { return m.record.Ground.Clone() }
func (m *Match) GroundID() string        { return m.record.Ground.GroundID }
func (m *Match) GroundName() string      { return m.record.Ground.GroundName }
func (m *Match) TownName() *string       { return clonePtr(m.record.Ground.TownName) }
func (m *Match) TownArea() *string       { return clonePtr(m.record.Ground.TownArea) }
func (m *Match) TownID() string          { return m.record.Ground.TownID }
func (m *Match) Continent() *string      { return clonePtr(m.record.Ground.Continent) }
func (m *Match) WeatherLocationCode() *string {
	return clonePtr(m.record.Ground.WeatherLocationCode)
}

// MatchClass is the international label (Test, ODI, T20I, WTest, WODI,
// WT20I) or, failing that, the general format label.
func (m *Match) MatchClass() string { return m.record.MatchClass() }

// Date is StartDate parsed as a calendar day.
func (m *Match) Date() (time.Time, bool) { return m.record.Date() }

func (m *Match) Team1() *Team { return m.team1 }
func (m *Match) Team2() *Team { return m.team2 }

func (m *Match) Team1ID() string           { return m.team1.ID() }
func (m *Match) Team2ID() string           { return m.team2.ID() }
func (m *Match) Team1Abbreviation() string { return m.team1.Abbreviation() }
func (m *Match) Team2Abbreviation() string { return m.team2.Abbreviation() }

// Team1Innings is the first innings team 1 batted, nil if it has not batted.
func (m *Match) Team1Innings() *Innings { return m.team1.innings }

// Team2Innings is the first innings team 2 batted, nil if it has not batted.
func (m *Match) Team2Innings() *Innings { return m.team2.innings }

// Rosters maps each team id to its listed players.
func (m *Match) Rosters() map[string][]PlayerRef {
	if m.IsDormant() {
		return nil
	}
	return map[string][]PlayerRef{
		m.team1.ID(): m.team1.Players(),
		m.team2.ID(): m.team2.Players(),
	}
}

// Innings lists every innings in play order.
func (m *Match) Innings() []*Innings {
	out := make([]*Innings, len(m.innings))
	copy(out, m.innings)
	return out
}

// LatestInnings is the innings most recently started, nil before play.
func (m *Match) LatestInnings() *Innings {
	if len(m.innings) == 0 {
		return nil
	}
	return m.innings[len(m.innings)-1]
}

// InningsAt returns innings n (1-based), or nil when out of range.
func (m *Match) InningsAt(n int) *Innings {
	if n < 1 || n > len(m.innings) {
		return nil
	}
	return m.innings[n-1]
}

// Batsmen returns the raw batting lines of innings n (1-based).
func (m *Match) Batsmen(n int) []Batter {
	if inn := m.InningsAt(n); inn != nil {
		return inn.Batsmen()
	}
	return nil
}

func (m *Match) Bowlers(n int) []Bowler {
	if inn := m.InningsAt(n); inn != nil {
		return inn.Bowlers()
	}
	return nil
}

func (m *Match) Fows(n int) []FallOfWicket {
	if inn := m.InningsAt(n); inn != nil {
		return inn.FallOfWickets()
	}
	return nil
}

// Extras returns the extras breakdown of innings n (1-based) keyed by
// extras, byes, legbyes, wides and noballs. Out of range yields nil.
func (m *Match) Extras(n int) map[string]*int {
	if inn := m.InningsAt(n); inn != nil {
		return inn.Extras()
	}
	return nil
}

// BattingScorecard returns one batting card per innings in play order. It
// is derived on first use; every call returns a fresh copy of the cached
// cards.
func (m *Match) BattingScorecard() [][]BattingEntry {
	m.scorecardOnce.Do(func() {
		m.scorecard = make([][]BattingEntry, len(m.innings))
		for idx, inn := range m.innings {
			m.scorecard[idx] = match.BattingCard(inn.record.Batsmen)
		}
	})
	out := make([][]BattingEntry, len(m.scorecard))
	for idx, card := range m.scorecard {
		out[idx] = match.CloneBattingCard(card)
	}
	return out
}

func (m *Match) relation(teamID string) *Team {
	if m.IsDormant() {
		return nil
	}
	switch {
	case teamID == "":
		return nil
	case teamID == m.team1.ID():
		return m.team1
	case teamID == m.team2.ID():
		return m.team2
	default:
		return nil
	}
}

func (m *Match) HomeTeam() *Team     { return m.relation(m.record.HomeTeamID) }
func (m *Match) BattingFirst() *Team { return m.relation(m.record.BattingFirstTeamID) }
func (m *Match) MatchWinner() *Team  { return m.relation(m.record.WinnerTeamID) }
func (m *Match) TossWinner() *Team   { return m.relation(m.record.TossWinnerTeamID) }

func (m *Match) HomeTeamID() string         { return m.gated(m.record.HomeTeamID) }
func (m *Match) BattingFirstTeamID() string { return m.gated(m.record.BattingFirstTeamID) }
func (m *Match) WinnerTeamID() string       { return m.gated(m.record.WinnerTeamID) }
func (m *Match) TossWinnerTeamID() string   { return m.gated(m.record.TossWinnerTeamID) }

// TossChoiceTeamID is the team that made the toss decision.
func (m *Match) TossChoiceTeamID() string { return m.gated(m.record.TossWinnerTeamID) }

// TossDecision is "1" (bat) or "2" (bowl).
func (m *Match) TossDecision() string     { return m.gated(m.record.TossDecision) }
func (m *Match) TossDecisionName() string { return m.gated(m.record.TossDecisionName) }

func (m *Match) gated(value string) string {
	if m.IsDormant() {
		return ""
	}
	return value
}

func (m *Match) ref() match.Ref {
	return match.Ref{SeriesID: m.record.SeriesID, MatchID: m.record.MatchID}
}

// EventURL is the core API event document.
func (m *Match) EventURL() string { return m.endpoints.MatchEvent(m.ref()) }

// DetailsURL pages through the ball-by-ball details; the upstream default
// is page 1 with 1000 entries.
func (m *Match) DetailsURL(page, number int) string {
	if page < 1 {
		page = 1
	}
	if number < 1 {
		number = 1000
	}
	return m.endpoints.MatchDetails(m.ref(), page, number)
}

// ESPNAPIURL is empty for a dormant match.
func (m *Match) ESPNAPIURL() string {
	if m.IsDormant() {
		return ""
	}
	return m.endpoints.ESPNSummary(m.ref())
}

func (m *Match) LegacyScorecardURL() string { return m.endpoints.LegacyScorecard(m.record.MatchID) }
func (m *Match) ScorecardURL() string       { return m.endpoints.MatchScorecardPage(m.ref()) }

func (m *Match) InningsCommsURL(innings, page int) string {
	if innings < 1 {
		innings = 1
	}
	if page < 1 {
		page = 1
	}
	return m.endpoints.InningsCommentary(m.ref(), innings, page)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

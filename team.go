package cricinfo

import (
	"github.com/shopspring/decimal"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
)

// Team is one side of a match, with figures from its first innings.
type Team struct {
	ref     match.TeamRef
	innings *Innings
}

func (t *Team) ID() string           { return t.ref.ID }
func (t *Team) Abbreviation() string { return t.ref.Abbreviation }
func (t *Team) Name() string         { return t.ref.Name }
func (t *Team) LongName() string     { return t.ref.LongName }
func (t *Team) Players() []PlayerRef { return append([]PlayerRef(nil), t.ref.Players...) }

// Innings is the first innings the team batted, nil if it has not batted.
func (t *Team) Innings() *Innings { return t.innings }

// RunRate is nil until the team has batted.
func (t *Team) RunRate() *float64 {
	if t.innings == nil {
		return nil
	}
	rate := t.innings.RunRate()
	return &rate
}

func (t *Team) OversBatted() *decimal.Decimal {
	if t.innings == nil {
		return nil
	}
	overs := t.innings.Overs()
	return &overs
}

// BattingResult is the event name of the team's innings, such as
// "all out" or "declared".
func (t *Team) BattingResult() string {
	if t.innings == nil {
		return ""
	}
	return t.innings.EventName()
}

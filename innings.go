package cricinfo

import (
	"github.com/shopspring/decimal"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
)

// Innings is one innings of a match.
type Innings struct {
	record match.Innings
}

func (i *Innings) Record() InningsRecord { return i.record.Clone() }

func (i *Innings) Number() int                   { return i.record.Number }
func (i *Innings) BattingTeamID() string         { return i.record.BattingTeamID }
func (i *Innings) BowlingTeamID() string         { return i.record.BowlingTeamID }
func (i *Innings) Runs() int                     { return i.record.Runs }
func (i *Innings) Wickets() *int                 { return clonePtr(i.record.Wickets) }
func (i *Innings) Overs() decimal.Decimal        { return i.record.Overs }
func (i *Innings) BallsPerOver() int             { return i.record.BallsPerOver }
func (i *Innings) LegalBalls() int               { return i.record.LegalBalls() }
func (i *Innings) RunRate() float64              { return i.record.RunRate }
func (i *Innings) Target() *int                  { return clonePtr(i.record.Target) }
func (i *Innings) EventName() string             { return i.record.EventName }
func (i *Innings) Batsmen() []Batter             { return match.CloneBatters(i.record.Batsmen) }
func (i *Innings) Bowlers() []Bowler             { return match.CloneBowlers(i.record.Bowlers) }
func (i *Innings) FallOfWickets() []FallOfWicket { return match.CloneFallOfWickets(i.record.FallOfWickets) }
func (i *Innings) Extras() map[string]*int       { return i.record.Extras.Clone().Map() }
func (i *Innings) BattingCard() []BattingEntry   { return match.BattingCard(i.record.Batsmen) }

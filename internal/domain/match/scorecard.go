package match

import "strings"

const (
	DismissalDidNotBat = "did not bat"
	DismissalNotOut    = "not out"
	DismissalOut       = "out"
)

// BattingEntry is the flattened scorecard line exposed to callers. Numeric
// fields are nil when the player did not bat.
type BattingEntry struct {
	Name       string   `json:"name"`
	FullName   string   `json:"full_name"`
	PlayerID   int64    `json:"player_id"`
	Runs       *int     `json:"runs"`
	Balls      *int     `json:"balls"`
	Minutes    *int     `json:"minutes"`
	Fours      *int     `json:"fours"`
	Sixes      *int     `json:"sixes"`
	StrikeRate *float64 `json:"strike_rate"`
	IsOut      bool     `json:"is_out"`
	Dismissal  string   `json:"dismissal"`
	Batted     bool     `json:"batted"`
}

// Batted reports whether the raw line represents an actual innings.
func (b Batter) Batted() bool {
	return strings.EqualFold(strings.TrimSpace(b.BattedType), "yes")
}

// NewBattingEntry applies the did-bat / is-out / dismissal-text derivation.
func NewBattingEntry(raw Batter) BattingEntry {
	entry := BattingEntry{
		Name:     raw.Name,
		FullName: raw.FullName,
		PlayerID: raw.PlayerID,
		IsOut:    raw.IsOut,
		Batted:   raw.Batted(),
	}

	switch {
	case !entry.Batted:
		entry.Dismissal = DismissalDidNotBat
	case raw.IsOut:
		entry.Dismissal = DismissalOut
		if raw.DismissalText != nil {
			entry.Dismissal = *raw.DismissalText
		}
	default:
		entry.Dismissal = DismissalNotOut
	}

	if entry.Batted {
		entry.Runs = raw.Runs
		entry.Balls = raw.Balls
		entry.Minutes = raw.Minutes
		entry.Fours = raw.Fours
		entry.Sixes = raw.Sixes
		entry.StrikeRate = raw.StrikeRate
	}
	return entry
}

// BattingCard maps every raw line of one innings.
func BattingCard(raw []Batter) []BattingEntry {
	out := make([]BattingEntry, 0, len(raw))
	for _, item := range raw {
		out = append(out, NewBattingEntry(item))
	}
	return out
}

package match

// Clone returns a deep copy of the record. Nothing in the copy shares memory
// with r, so callers may modify it freely.
func (r Record) Clone() Record {
	out := r
	out.ScheduledOvers = clonePtr(r.ScheduledOvers)
	out.RainRule = clonePtr(r.RainRule)
	out.Ground = r.Ground.Clone()
	out.Series = cloneSlice(r.Series)
	out.Team1 = r.Team1.Clone()
	out.Team2 = r.Team2.Clone()
	out.Officials = cloneSlice(r.Officials)
	out.LatestBatting = CloneBatters(r.LatestBatting)
	out.LatestBowling = CloneBowlers(r.LatestBowling)
	if r.Innings != nil {
		out.Innings = make([]Innings, len(r.Innings))
		for idx := range r.Innings {
			out.Innings[idx] = r.Innings[idx].Clone()
		}
	}
	return out
}

func (v Venue) Clone() Venue {
	out := v
	out.TownName = clonePtr(v.TownName)
	out.TownArea = clonePtr(v.TownArea)
	out.Continent = clonePtr(v.Continent)
	out.WeatherLocationCode = clonePtr(v.WeatherLocationCode)
	return out
}

func (t TeamRef) Clone() TeamRef {
	out := t
	out.Players = cloneSlice(t.Players)
	return out
}

func (i Innings) Clone() Innings {
	out := i
	out.Wickets = clonePtr(i.Wickets)
	out.Target = clonePtr(i.Target)
	out.Extras = i.Extras.Clone()
	out.Batsmen = CloneBatters(i.Batsmen)
	out.Bowlers = CloneBowlers(i.Bowlers)
	out.FallOfWickets = CloneFallOfWickets(i.FallOfWickets)
	return out
}

func (e Extras) Clone() Extras {
	return Extras{
		Total:   clonePtr(e.Total),
		Byes:    clonePtr(e.Byes),
		Legbyes: clonePtr(e.Legbyes),
		Wides:   clonePtr(e.Wides),
		Noballs: clonePtr(e.Noballs),
	}
}

func CloneBatters(in []Batter) []Batter {
	if in == nil {
		return nil
	}
	out := make([]Batter, len(in))
	for idx, b := range in {
		b.Runs = clonePtr(b.Runs)
		b.Balls = clonePtr(b.Balls)
		b.Minutes = clonePtr(b.Minutes)
		b.Fours = clonePtr(b.Fours)
		b.Sixes = clonePtr(b.Sixes)
		b.StrikeRate = clonePtr(b.StrikeRate)
		b.DismissalText = clonePtr(b.DismissalText)
		out[idx] = b
	}
	return out
}

func CloneBowlers(in []Bowler) []Bowler {
	if in == nil {
		return nil
	}
	out := make([]Bowler, len(in))
	for idx, b := range in {
		b.Balls = clonePtr(b.Balls)
		b.Maidens = clonePtr(b.Maidens)
		b.Conceded = clonePtr(b.Conceded)
		b.Wickets = clonePtr(b.Wickets)
		b.Economy = clonePtr(b.Economy)
		b.Dots = clonePtr(b.Dots)
		b.Fours = clonePtr(b.Fours)
		b.Sixes = clonePtr(b.Sixes)
		b.Wides = clonePtr(b.Wides)
		b.Noballs = clonePtr(b.Noballs)
		out[idx] = b
	}
	return out
}

func CloneFallOfWickets(in []FallOfWicket) []FallOfWicket {
	if in == nil {
		return nil
	}
	out := make([]FallOfWicket, len(in))
	for idx, f := range in {
		f.Balls = clonePtr(f.Balls)
		out[idx] = f
	}
	return out
}

// CloneBattingCard copies a scorecard, pointers included.
func CloneBattingCard(in []BattingEntry) []BattingEntry {
	if in == nil {
		return nil
	}
	out := make([]BattingEntry, len(in))
	for idx, e := range in {
		e.Runs = clonePtr(e.Runs)
		e.Balls = clonePtr(e.Balls)
		e.Minutes = clonePtr(e.Minutes)
		e.Fours = clonePtr(e.Fours)
		e.Sixes = clonePtr(e.Sixes)
		e.StrikeRate = clonePtr(e.StrikeRate)
		out[idx] = e
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

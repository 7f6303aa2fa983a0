package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/riskibarqy/cricinfo"
	"github.com/riskibarqy/cricinfo/internal/domain/player"
)

const dash = "-"

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func intOrDash(v *int) string {
	if v == nil {
		return dash
	}
	return strconv.Itoa(*v)
}

func floatOrDash(v *float64) string {
	if v == nil {
		return dash
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func strOrDash(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return dash
	}
	return *v
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return dash
	}
	return v
}

func teamLabel(t *cricinfo.Team) string {
	if t == nil {
		return dash
	}
	return t.Abbreviation()
}

func renderMatch(w io.Writer, m *cricinfo.Match) {
	info := newTable(w, m.Description())
	info.AppendRows([]table.Row{
		{"Match", m.Ref().String()},
		{"Class", orDash(m.MatchClass())},
		{"Status", string(m.Status())},
		{"Series", orDash(m.SeriesName())},
		{"Season", orDash(m.Season())},
		{"Ground", orDash(m.GroundName())},
		{"Start", orDash(m.StartDate())},
		{"Home", teamLabel(m.HomeTeam())},
		{"Toss", tossLabel(m)},
		{"Winner", teamLabel(m.MatchWinner())},
		{"Result", orDash(m.Result())},
	})
	info.Render()

	if len(m.Innings()) == 0 {
		return
	}
	inns := newTable(w, "Innings")
	inns.AppendHeader(table.Row{"#", "Batting", "Score", "Overs", "RR", "Target"})
	for _, inn := range m.Innings() {
		batting := inn.BattingTeamID()
		if team := teamByID(m, batting); team != nil {
			batting = team.Abbreviation()
		}
		inns.AppendRow(table.Row{
			inn.Number(),
			batting,
			scoreLabel(inn),
			inn.Overs().String(),
			strconv.FormatFloat(inn.RunRate(), 'f', 2, 64),
			intOrDash(inn.Target()),
		})
	}
	inns.Render()
}

func teamByID(m *cricinfo.Match, id string) *cricinfo.Team {
	switch id {
	case m.Team1ID():
		return m.Team1()
	case m.Team2ID():
		return m.Team2()
	default:
		return nil
	}
}

func scoreLabel(inn *cricinfo.Innings) string {
	if inn.Wickets() == nil || *inn.Wickets() >= 10 {
		return strconv.Itoa(inn.Runs())
	}
	return fmt.Sprintf("%d/%d", inn.Runs(), *inn.Wickets())
}

func tossLabel(m *cricinfo.Match) string {
	winner := m.TossWinner()
	if winner == nil {
		return dash
	}
	if m.TossDecisionName() == "" {
		return winner.Abbreviation()
	}
	return fmt.Sprintf("%s, chose to %s", winner.Abbreviation(), m.TossDecisionName())
}

func renderScorecard(w io.Writer, m *cricinfo.Match) {
	cards := m.BattingScorecard()
	if len(cards) == 0 {
		fmt.Fprintf(w, "%s: no innings yet\n", m.Description())
		return
	}
	for idx, card := range cards {
		inn := m.InningsAt(idx + 1)
		title := fmt.Sprintf("Innings %d", idx+1)
		if team := teamByID(m, inn.BattingTeamID()); team != nil {
			title = fmt.Sprintf("%s, %s %s", title, team.Name(), scoreLabel(inn))
		}
		t := newTable(w, title)
		t.AppendHeader(table.Row{"Batter", "Dismissal", "R", "B", "4s", "6s", "SR"})
		for _, entry := range card {
			t.AppendRow(table.Row{
				entry.Name,
				entry.Dismissal,
				intOrDash(entry.Runs),
				intOrDash(entry.Balls),
				intOrDash(entry.Fours),
				intOrDash(entry.Sixes),
				floatOrDash(entry.StrikeRate),
			})
		}
		extras := inn.Extras()
		t.AppendFooter(table.Row{"Extras", fmt.Sprintf("b %s, lb %s, w %s, nb %s",
			intOrDash(extras["byes"]), intOrDash(extras["legbyes"]),
			intOrDash(extras["wides"]), intOrDash(extras["noballs"]),
		), intOrDash(extras["extras"])})
		t.Render()
	}
}

func renderRefs(w io.Writer, title string, refs []cricinfo.MatchRef) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"Series", "Match"})
	for _, ref := range refs {
		t.AppendRow(table.Row{ref.SeriesID, ref.MatchID})
	}
	if len(refs) == 0 {
		t.AppendRow(table.Row{dash, dash})
	}
	t.Render()
}

func renderMatchList(w io.Writer, matches []*cricinfo.Match) {
	t := newTable(w, "")
	t.AppendHeader(table.Row{"Match", "Description", "Class", "Status", "Winner"})
	for _, m := range matches {
		t.AppendRow(table.Row{m.MatchID(), m.Description(), orDash(m.MatchClass()), string(m.Status()), teamLabel(m.MatchWinner())})
	}
	t.Render()
}

func renderSeries(w io.Writer, s *cricinfo.Series) {
	t := newTable(w, s.Name())
	t.AppendRows([]table.Row{
		{"Series", s.ID()},
		{"Short name", orDash(s.ShortName())},
		{"Abbreviation", orDash(s.Abbreviation())},
		{"Tournament", s.IsTournament()},
		{"Seasons", orDash(strings.Join(s.Years(), ", "))},
	})
	t.Render()
}

func renderEvents(w io.Writer, title string, events []cricinfo.Event) {
	t := newTable(w, title)
	t.AppendHeader(table.Row{"Event", "Name", "Date"})
	for _, event := range events {
		date := dash
		if event.Date != nil {
			date = event.Date.Format("2006-01-02")
		}
		t.AppendRow(table.Row{event.EventID, orDash(event.ShortName), date})
	}
	t.Render()
}

func renderSeason(w io.Writer, s cricinfo.Season) {
	t := newTable(w, orDash(s.Name))
	start, end := dash, dash
	if s.StartDate != nil {
		start = s.StartDate.Format("2006-01-02")
	}
	if s.EndDate != nil {
		end = s.EndDate.Format("2006-01-02")
	}
	t.AppendRows([]table.Row{
		{"Series", s.SeriesID},
		{"Year", s.Year},
		{"Start", start},
		{"End", end},
	})
	t.Render()
}

func renderGround(w io.Writer, g cricinfo.Ground) {
	t := newTable(w, g.FullName)
	t.AppendRows([]table.Row{
		{"Ground", g.GroundID},
		{"City", strOrDash(g.Address.City)},
		{"Country", strOrDash(g.Address.Country)},
		{"Capacity", intOrDash(g.Capacity)},
		{"Established", strOrDash(g.Established)},
		{"Floodlights", strOrDash(g.Floodlights)},
		{"Also known as", strOrDash(g.AlsoKnownAs)},
		{"Home teams", orDash(strings.Join(g.HomeTeams, ", "))},
	})
	t.Render()
}

func renderPlayer(w io.Writer, p cricinfo.Player) {
	info := newTable(w, p.Name)
	born := dash
	if p.DateOfBirth != nil {
		born = p.DateOfBirth.Format("2006-01-02")
	}
	info.AppendRows([]table.Row{
		{"Player", p.PlayerID},
		{"Full name", strOrDash(p.FullName)},
		{"Born", born},
		{"Role", strOrDash(p.PlayingRole)},
		{"Batting", strOrDash(p.BattingStyle)},
		{"Bowling", strOrDash(p.BowlingStyle)},
		{"Teams", orDash(strings.Join(p.MajorTeams, ", "))},
	})
	info.Render()

	renderCareer(w, "Batting and fielding", player.BattingFieldingHeaders, p.BattingFieldingAverages)
	renderCareer(w, "Bowling", player.BowlingHeaders, p.BowlingAverages)
}

func renderCareer(w io.Writer, title string, headers []string, rows []cricinfo.CareerRow) {
	if len(rows) == 0 {
		return
	}
	t := newTable(w, title)
	header := table.Row{"Format"}
	for _, h := range headers {
		header = append(header, h)
	}
	t.AppendHeader(header)
	for _, row := range rows {
		line := table.Row{row.Format}
		for _, h := range headers {
			line = append(line, orDash(row.Stats[h]))
		}
		t.AppendRow(line)
	}
	t.Render()
}

func renderTeam(w io.Writer, team cricinfo.TeamProfile) {
	t := newTable(w, team.Name)
	t.AppendRows([]table.Row{
		{"Team", team.TeamID},
		{"League", team.LeagueID},
		{"Abbreviation", orDash(team.Abbreviation)},
		{"Location", orDash(team.Location)},
		{"National", team.IsNational},
	})
	t.Render()
}

func renderLiveScores(w io.Writer, scores []cricinfo.LiveScore) {
	t := newTable(w, "Live")
	t.AppendHeader(table.Row{"Match", "Description"})
	for _, score := range scores {
		t.AppendRow(table.Row{score.MatchID, score.Description})
	}
	t.Render()
}

func renderRawPayloads(w io.Writer, items []cricinfo.RawPayload) {
	t := newTable(w, "Raw payloads")
	t.AppendHeader(table.Row{"Entity", "Key", "Shape", "Bytes", "SHA-256"})
	for _, item := range items {
		t.AppendRow(table.Row{item.EntityType, item.EntityKey, item.Shape.String(), len(item.Body), item.Hash()[:12]})
	}
	t.Render()
}

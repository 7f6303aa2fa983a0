package normalize

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

func ptr[T any](v T) *T { return &v }

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return body
}

func loadTree(t *testing.T, name string) any {
	t.Helper()

	tree, err := DecodeJSON(readFixture(t, name))
	if err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
	return tree
}

func loadMatch(t *testing.T, name string, matchID, seriesID int64) match.Record {
	t.Helper()

	record, err := Match(loadTree(t, name), matchID, seriesID)
	if err != nil {
		t.Fatalf("normalize %s: %v", name, err)
	}
	return record
}

func TestMatch_EmbeddedPageCompletedT20I(t *testing.T) {
	t.Parallel()

	rec := loadMatch(t, "page_1478914.json", 1478914, 1478874)

	if rec.Shape != rawdata.ShapeEmbeddedPageJSON {
		t.Fatalf("shape mismatch: got=%s want=%s", rec.Shape, rawdata.ShapeEmbeddedPageJSON)
	}
	if rec.Description != "IND Women v AUS Women" {
		t.Fatalf("description mismatch: got=%q", rec.Description)
	}
	if got := rec.MatchClass(); got != match.ClassWT20I {
		t.Fatalf("match class mismatch: got=%q want=%q", got, match.ClassWT20I)
	}
	if rec.Season != "2025/26" || rec.Status != match.StatusResult {
		t.Fatalf("season/status mismatch: got=%q/%q", rec.Season, rec.Status)
	}
	if rec.StartDate != "2026-02-15" {
		t.Fatalf("start date mismatch: got=%q", rec.StartDate)
	}
	if !strings.Contains(rec.Result, "IND Women") {
		t.Fatalf("result should name the winner, got=%q", rec.Result)
	}
	if rec.SeriesName() != "India Women in Australia" || rec.Series[0].ID != "1478874" {
		t.Fatalf("series mismatch: got=%+v", rec.Series)
	}
	if rec.Ground.GroundName != "Adelaide Oval" || rec.Ground.GroundID != "56490" {
		t.Fatalf("ground mismatch: got=%+v", rec.Ground)
	}
	if rec.Ground.Continent != nil {
		t.Fatalf("continent should be nil, got=%q", *rec.Ground.Continent)
	}
	if rec.Ground.TownName == nil || *rec.Ground.TownName != "Adelaide" {
		t.Fatalf("town name mismatch: got=%v", rec.Ground.TownName)
	}
	if rec.ScheduledOvers == nil || *rec.ScheduledOvers != 20 {
		t.Fatalf("scheduled overs mismatch: got=%v want=20", rec.ScheduledOvers)
	}
	if rec.RainRule != nil || rec.FollowOn || rec.CancelledMatch {
		t.Fatalf("flags mismatch: rain=%v followon=%v cancelled=%v", rec.RainRule, rec.FollowOn, rec.CancelledMatch)
	}

	if rec.Team1.ID != "960" || rec.Team2.ID != "4048" {
		t.Fatalf("team ids mismatch: got=%s,%s", rec.Team1.ID, rec.Team2.ID)
	}
	if rec.Team1.Abbreviation != "IND-W" || rec.Team2.Abbreviation != "AUS-W" {
		t.Fatalf("abbreviations mismatch: got=%s,%s", rec.Team1.Abbreviation, rec.Team2.Abbreviation)
	}
	if len(rec.Team1.Players) != 5 || len(rec.Team2.Players) != 5 {
		t.Fatalf("roster size mismatch: got=%d,%d", len(rec.Team1.Players), len(rec.Team2.Players))
	}
	if captain := rec.Team1.Players[2]; !captain.Captain || captain.Name != "Harmanpreet Kaur" {
		t.Fatalf("captain flag mismatch: got=%+v", captain)
	}
	if keeper := rec.Team1.Players[3]; !keeper.Keeper || keeper.Captain {
		t.Fatalf("keeper flag mismatch: got=%+v", keeper)
	}

	if rec.BattingFirstTeamID != "960" || rec.WinnerTeamID != "960" || rec.HomeTeamID != "4048" {
		t.Fatalf("relations mismatch: first=%s winner=%s home=%s", rec.BattingFirstTeamID, rec.WinnerTeamID, rec.HomeTeamID)
	}
	if rec.TossWinnerTeamID != "960" || rec.TossDecision != match.TossCodeBat || rec.TossDecisionName != match.TossNameBat {
		t.Fatalf("toss mismatch: winner=%s code=%s name=%s", rec.TossWinnerTeamID, rec.TossDecision, rec.TossDecisionName)
	}
	if len(rec.Officials) != 3 || rec.Officials[2].Role != "match referee" {
		t.Fatalf("officials mismatch: got=%+v", rec.Officials)
	}
}

func TestMatch_EmbeddedPageInnings(t *testing.T) {
	t.Parallel()

	rec := loadMatch(t, "page_1478914.json", 1478914, 1478874)

	if len(rec.Innings) != 2 {
		t.Fatalf("innings count mismatch: got=%d want=2", len(rec.Innings))
	}
	first, second := rec.Innings[0], rec.Innings[1]
	if first.BattingTeamID != "960" || first.BowlingTeamID != "4048" {
		t.Fatalf("first innings teams mismatch: got=%s/%s", first.BattingTeamID, first.BowlingTeamID)
	}
	if first.RunRate != 8.8 {
		t.Fatalf("run rate mismatch: got=%v want=8.8", first.RunRate)
	}
	if first.Target != nil {
		t.Fatalf("zero target should be nil, got=%d", *first.Target)
	}
	if second.Target == nil || *second.Target != 177 {
		t.Fatalf("target mismatch: got=%v want=177", second.Target)
	}

	wantExtras := match.Extras{Total: ptr(6), Byes: ptr(0), Legbyes: ptr(1), Wides: ptr(5), Noballs: ptr(0)}
	if diff := cmp.Diff(wantExtras, first.Extras); diff != "" {
		t.Fatalf("extras mismatch (-want +got):\n%s", diff)
	}

	card := match.BattingCard(first.Batsmen)
	top := card[0]
	if top.Name != "Smriti Mandhana" || !top.Batted || !top.IsOut {
		t.Fatalf("top order entry mismatch: got=%+v", top)
	}
	if *top.Runs != 82 || *top.Balls != 55 {
		t.Fatalf("top order figures mismatch: got=%d(%d)", *top.Runs, *top.Balls)
	}
	if !strings.Contains(top.Dismissal, "Gardner") {
		t.Fatalf("dismissal should name the fielder, got=%q", top.Dismissal)
	}
	if card[2].Dismissal != match.DismissalNotOut {
		t.Fatalf("not out mismatch: got=%q", card[2].Dismissal)
	}
	dnb := card[3]
	if dnb.Batted || dnb.Dismissal != match.DismissalDidNotBat || dnb.Runs != nil {
		t.Fatalf("did not bat mismatch: got=%+v", dnb)
	}

	if len(first.Bowlers) != 2 || first.Bowlers[1].Wickets == nil || *first.Bowlers[1].Wickets != 2 {
		t.Fatalf("bowlers mismatch: got=%+v", first.Bowlers)
	}
	if got := first.FallOfWickets[1]; got.Runs != 139 || got.PlayerID != 597806 || got.Overs.String() != "15.2" {
		t.Fatalf("fall of wicket mismatch: got=%+v", got)
	}
}

func TestMatch_DormantLeavesRelationsEmpty(t *testing.T) {
	t.Parallel()

	rec := loadMatch(t, "page_dormant.json", 1478920, 1478874)

	if !rec.Status.IsDormant() {
		t.Fatalf("status mismatch: got=%q want=dormant", rec.Status)
	}
	if len(rec.Innings) != 0 {
		t.Fatalf("expected no innings, got=%d", len(rec.Innings))
	}
	if rec.TossWinnerTeamID != "" || rec.WinnerTeamID != "" || rec.HomeTeamID != "" || rec.BattingFirstTeamID != "" {
		t.Fatalf("relations should be empty: %+v", rec)
	}
	if rec.TossDecision != "" || rec.TossDecisionName != "" {
		t.Fatalf("toss should be empty: got=%q/%q", rec.TossDecision, rec.TossDecisionName)
	}
}

func TestMatch_TossInferredFromFirstInnings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		fixture  string
		wantCode string
		wantName string
	}{
		{fixture: "core_toss_bat.json", wantCode: match.TossCodeBat, wantName: match.TossNameBat},
		{fixture: "core_toss_bowl.json", wantCode: match.TossCodeBowl, wantName: match.TossNameBowl},
	}

	for _, tc := range cases {
		t.Run(tc.fixture, func(t *testing.T) {
			t.Parallel()

			rec := loadMatch(t, tc.fixture, 1400001, 1399999)
			if rec.Shape != rawdata.ShapeCoreAPIJSON {
				t.Fatalf("shape mismatch: got=%s", rec.Shape)
			}
			if rec.TossWinnerTeamID != "1001" {
				t.Fatalf("toss winner mismatch: got=%q want=1001", rec.TossWinnerTeamID)
			}
			if rec.TossDecision != tc.wantCode || rec.TossDecisionName != tc.wantName {
				t.Fatalf("toss mismatch: got=%s/%s want=%s/%s", rec.TossDecision, rec.TossDecisionName, tc.wantCode, tc.wantName)
			}
			if got := rec.MatchClass(); got != "Twenty20" {
				t.Fatalf("general class fallback mismatch: got=%q", got)
			}
			if got := rec.Innings[1].LegalBalls(); got != 117 {
				t.Fatalf("legal balls mismatch: got=%d want=117", got)
			}
		})
	}
}

func TestMatch_InningsInPlayOrder(t *testing.T) {
	t.Parallel()

	engineTree := loadTree(t, "engine_live.json")
	root := engineTree.(map[string]any)
	listed := root["innings"].([]any)
	reversed := make([]any, 0, len(listed))
	for idx := len(listed) - 1; idx >= 0; idx-- {
		reversed = append(reversed, listed[idx])
	}
	root["innings"] = reversed

	cases := map[string]struct {
		tree             any
		wantNumbers      []int
		wantBattingFirst string
		wantToss         string
	}{
		"embedded page": {
			tree:             loadTree(t, "page_innings_reversed.json"),
			wantNumbers:      []int{1, 2},
			wantBattingFirst: "960",
			wantToss:         match.TossNameBat,
		},
		"legacy engine": {
			tree:             engineTree,
			wantNumbers:      []int{1, 2, 3},
			wantBattingFirst: "2",
			wantToss:         match.TossNameBowl,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec, err := Match(tc.tree, 1478914, 1478874)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			got := make([]int, 0, len(rec.Innings))
			for _, inn := range rec.Innings {
				got = append(got, inn.Number)
			}
			if diff := cmp.Diff(tc.wantNumbers, got); diff != "" {
				t.Fatalf("innings order mismatch (-want +got):\n%s", diff)
			}
			if rec.BattingFirstTeamID != tc.wantBattingFirst {
				t.Fatalf("batting first mismatch: got=%q want=%q", rec.BattingFirstTeamID, tc.wantBattingFirst)
			}
			if rec.TossDecisionName != tc.wantToss {
				t.Fatalf("toss mismatch: got=%q want=%q", rec.TossDecisionName, tc.wantToss)
			}
		})
	}
}

func TestMatch_LegacyEngineShape(t *testing.T) {
	t.Parallel()

	rec := loadMatch(t, "engine_live.json", 1336045, 1336038)

	if rec.Shape != rawdata.ShapeLegacyEngineJSON {
		t.Fatalf("shape mismatch: got=%s", rec.Shape)
	}
	if rec.Status != match.StatusLive {
		t.Fatalf("status mismatch: got=%q want=live", rec.Status)
	}
	if rec.ScheduledOvers != nil || rec.RainRule != nil {
		t.Fatalf("timeless test should have nil overs and rain rule: %v %v", rec.ScheduledOvers, rec.RainRule)
	}
	if rec.Ground.Continent == nil || *rec.Ground.Continent != "Europe" {
		t.Fatalf("continent mismatch: got=%v", rec.Ground.Continent)
	}
	if rec.WinnerTeamID != "" {
		t.Fatalf("unknown winner id should resolve to empty, got=%q", rec.WinnerTeamID)
	}
	if rec.TossDecision != match.TossCodeBowl || rec.TossDecisionName != match.TossNameBowl {
		t.Fatalf("toss mismatch: got=%s/%s", rec.TossDecision, rec.TossDecisionName)
	}
	if len(rec.Innings) != 3 || rec.BattingFirstTeamID != "2" {
		t.Fatalf("innings mismatch: count=%d first=%s", len(rec.Innings), rec.BattingFirstTeamID)
	}
	if got := rec.Innings[2].BowlingTeamID; got != "1" {
		t.Fatalf("bowling team fallback mismatch: got=%q want=1", got)
	}
	if got := rec.Innings[0].RunRate; got != 4.14 {
		t.Fatalf("run rate mismatch: got=%v want=4.14", got)
	}
	if len(rec.LatestBatting) != 2 || rec.LatestBatting[0].Name != "Usman Khawaja" {
		t.Fatalf("live batting mismatch: got=%+v", rec.LatestBatting)
	}
	if len(rec.LatestBowling) != 1 || rec.LatestBowling[0].Economy == nil || *rec.LatestBowling[0].Economy != 2.44 {
		t.Fatalf("live bowling mismatch: got=%+v", rec.LatestBowling)
	}
	if !rec.Team1.Players[0].Captain {
		t.Fatalf("captain flag mismatch: got=%+v", rec.Team1.Players[0])
	}
}

func TestMatch_StructureErrors(t *testing.T) {
	t.Parallel()

	t.Run("no known shape", func(t *testing.T) {
		t.Parallel()

		_, err := Match(loadTree(t, "malformed.json"), 1, 1)
		if !errors.Is(err, ErrStructure) || !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected malformed structure error, got %v", err)
		}
		var structErr *StructureError
		if !errors.As(err, &structErr) || structErr.Path != "$" {
			t.Fatalf("expected StructureError at root, got %#v", err)
		}
	})

	t.Run("duplicate teams", func(t *testing.T) {
		t.Parallel()

		tree := map[string]any{
			"match": map[string]any{
				"teams": []any{
					map[string]any{"team": map[string]any{"id": float64(1), "objectId": float64(10)}},
					map[string]any{"team": map[string]any{"id": float64(1), "objectId": float64(10)}},
				},
			},
			"innings": []any{},
		}
		if _, err := Match(tree, 1, 1); !errors.Is(err, ErrStructure) {
			t.Fatalf("expected structure error for duplicate teams, got %v", err)
		}
	})

	t.Run("foreign batting team", func(t *testing.T) {
		t.Parallel()

		tree := map[string]any{
			"match": map[string]any{
				"teams": []any{
					map[string]any{"team": map[string]any{"id": float64(1), "objectId": float64(10)}},
					map[string]any{"team": map[string]any{"id": float64(2), "objectId": float64(20)}},
				},
			},
			"innings": []any{
				map[string]any{"team": map[string]any{"objectId": float64(30)}, "runs": float64(10)},
			},
		}
		_, err := Match(tree, 1, 1)
		var structErr *StructureError
		if !errors.As(err, &structErr) || structErr.Path != "innings[0].team" {
			t.Fatalf("expected innings structure error, got %v", err)
		}
	})

	t.Run("missing match id", func(t *testing.T) {
		t.Parallel()

		if _, err := Match(loadTree(t, "core_toss_bat.json"), 0, 1); !errors.Is(err, ErrStructure) {
			t.Fatalf("expected validation failure as structure error, got %v", err)
		}
	})

	t.Run("page without data", func(t *testing.T) {
		t.Parallel()

		_, err := Match(loadTree(t, "page_no_data.json"), 1, 1)
		if !errors.Is(err, ErrNoScorecard) || errors.Is(err, ErrStructure) {
			t.Fatalf("expected no scorecard error, got %v", err)
		}
	})
}

func TestMatchPayload_RenderedPage(t *testing.T) {
	t.Parallel()

	page := "<html><body><script id=\"__NEXT_DATA__\" type=\"application/json\">" +
		string(readFixture(t, "page_1478914.json")) + "</script></body></html>"
	rec, err := MatchPayload(rawdata.Payload{Body: []byte(page)}, 1478914, 1478874)
	if err != nil {
		t.Fatalf("normalize rendered page: %v", err)
	}
	if rec.Team1.Abbreviation != "IND-W" {
		t.Fatalf("abbreviation mismatch: got=%q", rec.Team1.Abbreviation)
	}

	_, err = MatchPayload(rawdata.Payload{Body: []byte("<html><body>Match not started</body></html>")}, 1, 1)
	if !errors.Is(err, ErrNoScorecard) {
		t.Fatalf("expected no scorecard for page without data, got %v", err)
	}
}

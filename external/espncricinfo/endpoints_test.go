package espncricinfo

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

func TestEndpoints_Defaults(t *testing.T) {
	t.Parallel()

	got := Endpoints{SiteBaseURL: " https://example.test/ "}.WithDefaults()
	want := Endpoints{
		SiteBaseURL:     "https://example.test",
		CoreBaseURL:     DefaultCoreBaseURL,
		ConsumerBaseURL: DefaultConsumerBaseURL,
		FeedURL:         DefaultFeedURL,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("endpoints mismatch (-want +got):\n%s", diff)
	}
}

func TestEndpoints_URLs(t *testing.T) {
	t.Parallel()

	e := Endpoints{}.WithDefaults()
	ref := match.Ref{SeriesID: 1478874, MatchID: 1478914}

	tests := map[string]struct {
		got  string
		want string
	}{
		"scorecard page": {
			got:  e.MatchScorecardPage(ref),
			want: "https://www.espncricinfo.com/series/x-1478874/x-1478914/full-scorecard",
		},
		"scorecard api": {
			got:  e.MatchScorecard(ref),
			want: "https://hs-consumer-api.espncricinfo.com/v1/pages/match/scorecard?lang=en&matchId=1478914&seriesId=1478874",
		},
		"results": {
			got:  e.Results(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
			want: "https://www.espncricinfo.com/live-cricket-match-results?date=2025-01-02",
		},
		"ground page": {got: e.GroundPage(56490), want: "https://www.espncricinfo.com/ci/content/ground/56490.html"},
		"player page": {got: e.PlayerPage(597806), want: "https://www.espncricinfo.com/ci/content/player/597806.html"},
		"venue":       {got: e.Venue(56490), want: "http://core.espnuk.org/v2/sports/cricket/venues/56490"},
		"athlete":     {got: e.Athlete(597806), want: "http://core.espnuk.org/v2/sports/cricket/athletes/597806"},
		"league":      {got: e.League(1478874), want: "http://core.espnuk.org/v2/sports/cricket/leagues/1478874"},
		"seasons":     {got: e.Seasons(1478874), want: "http://core.espnuk.org/v2/sports/cricket/leagues/1478874/seasons"},
		"season":      {got: e.Season(1478874, 2025), want: "http://core.espnuk.org/v2/sports/cricket/leagues/1478874/seasons/2025"},
		"team":        {got: e.Team(8081, 960), want: "http://core.espnuk.org/v2/sports/cricket/leagues/8081/teams/960"},
		"match event": {got: e.MatchEvent(ref), want: "http://core.espnuk.org/v2/sports/cricket/leagues/1478874/events/1478914"},
		"details": {
			got:  e.MatchDetails(ref, 2, 1000),
			want: "http://core.espnuk.org/v2/sports/cricket/leagues/1478874/events/1478914/competitions/1478914/details?page_size=1000&page=2",
		},
		"espn summary": {
			got:  e.ESPNSummary(ref),
			want: "https://site.api.espn.com/apis/site/v2/sports/cricket/1478874/summary?event=1478914",
		},
		"legacy scorecard": {got: e.LegacyScorecard(1478914), want: "https://static.espncricinfo.com/ci/engine/match/1478914.html"},
		"commentary": {
			got:  e.InningsCommentary(ref, 2, 3),
			want: "https://hsapi.espncricinfo.com/v1/pages/match/comments?eventId=1478914&filter=full&lang=en&leagueId=1478874&liveTest=false&page=3&period=2",
		},
	}
	for name, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s: unexpected url got=%s want=%s", name, tc.got, tc.want)
		}
	}
}

func TestEndpoints_Event(t *testing.T) {
	t.Parallel()

	e := Endpoints{}.WithDefaults()

	absolute := series.EventRef{
		SeriesID: 1478874,
		EventID:  1478914,
		Ref:      "http://core.espnuk.org/v2/sports/cricket/leagues/1478874/events/1478914?lang=en",
	}
	if got := e.Event(absolute); got != absolute.Ref {
		t.Fatalf("core ref should be used as-is got=%s want=%s", got, absolute.Ref)
	}

	foreign := series.EventRef{SeriesID: 1478874, EventID: 1478914, Ref: "http://elsewhere.test/events/1478914"}
	want := "http://core.espnuk.org/v2/sports/cricket/leagues/1478874/events/1478914"
	if got := e.Event(foreign); got != want {
		t.Fatalf("unexpected event url got=%s want=%s", got, want)
	}
}

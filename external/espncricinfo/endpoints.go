package espncricinfo

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

const (
	DefaultSiteBaseURL     = "https://www.espncricinfo.com"
	DefaultCoreBaseURL     = "http://core.espnuk.org/v2/sports/cricket"
	DefaultConsumerBaseURL = "https://hs-consumer-api.espncricinfo.com/v1/pages"
	DefaultFeedURL         = "http://static.cricinfo.com/rss/livescores.xml"

	espnAPIBaseURL       = "https://site.api.espn.com/apis/site/v2/sports/cricket"
	legacyStaticBaseURL  = "https://static.espncricinfo.com"
	commentaryAPIBaseURL = "https://hsapi.espncricinfo.com/v1/pages/match/comments"
)

// Endpoints builds upstream URLs. WithDefaults fills zero fields with the
// public hosts.
type Endpoints struct {
	SiteBaseURL     string
	CoreBaseURL     string
	ConsumerBaseURL string
	FeedURL         string
}

func (e Endpoints) WithDefaults() Endpoints {
	e.SiteBaseURL = trimBase(e.SiteBaseURL, DefaultSiteBaseURL)
	e.CoreBaseURL = trimBase(e.CoreBaseURL, DefaultCoreBaseURL)
	e.ConsumerBaseURL = trimBase(e.ConsumerBaseURL, DefaultConsumerBaseURL)
	if strings.TrimSpace(e.FeedURL) == "" {
		e.FeedURL = DefaultFeedURL
	}
	return e
}

func trimBase(value, fallback string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if value == "" {
		return fallback
	}
	return value
}

// MatchScorecardPage is the rendered full-scorecard page.
func (e Endpoints) MatchScorecardPage(ref match.Ref) string {
	return fmt.Sprintf("%s/series/x-%d/x-%d/full-scorecard", e.SiteBaseURL, ref.SeriesID, ref.MatchID)
}

// MatchScorecard is the consumer API document behind the scorecard page.
func (e Endpoints) MatchScorecard(ref match.Ref) string {
	query := url.Values{}
	query.Set("lang", "en")
	query.Set("seriesId", fmt.Sprint(ref.SeriesID))
	query.Set("matchId", fmt.Sprint(ref.MatchID))
	return e.ConsumerBaseURL + "/match/scorecard?" + query.Encode()
}

func (e Endpoints) Results(date time.Time) string {
	return e.SiteBaseURL + "/live-cricket-match-results?date=" + date.Format(time.DateOnly)
}

func (e Endpoints) GroundPage(groundID int64) string {
	return fmt.Sprintf("%s/ci/content/ground/%d.html", e.SiteBaseURL, groundID)
}

func (e Endpoints) PlayerPage(playerID int64) string {
	return fmt.Sprintf("%s/ci/content/player/%d.html", e.SiteBaseURL, playerID)
}

func (e Endpoints) Venue(groundID int64) string {
	return fmt.Sprintf("%s/venues/%d", e.CoreBaseURL, groundID)
}

func (e Endpoints) Athlete(playerID int64) string {
	return fmt.Sprintf("%s/athletes/%d", e.CoreBaseURL, playerID)
}

func (e Endpoints) League(seriesID int64) string {
	return fmt.Sprintf("%s/leagues/%d", e.CoreBaseURL, seriesID)
}

func (e Endpoints) Seasons(seriesID int64) string {
	return e.League(seriesID) + "/seasons"
}

func (e Endpoints) Season(seriesID int64, year int) string {
	return fmt.Sprintf("%s/%d", e.Seasons(seriesID), year)
}

func (e Endpoints) Events(seriesID int64) string {
	return e.League(seriesID) + "/events"
}

// Event prefers the absolute $ref from the listing when it points at the
// configured core host.
func (e Endpoints) Event(ref series.EventRef) string {
	if strings.HasPrefix(ref.Ref, e.CoreBaseURL+"/") {
		return ref.Ref
	}
	return fmt.Sprintf("%s/%d", e.Events(ref.SeriesID), ref.EventID)
}

func (e Endpoints) Team(leagueID, teamID int64) string {
	return fmt.Sprintf("%s/teams/%d", e.League(leagueID), teamID)
}

// MatchEvent is the core API event document of a match.
func (e Endpoints) MatchEvent(ref match.Ref) string {
	return fmt.Sprintf("%s/%d", e.Events(ref.SeriesID), ref.MatchID)
}

// MatchDetails pages through the ball-by-ball details of a match.
func (e Endpoints) MatchDetails(ref match.Ref, page, pageSize int) string {
	return fmt.Sprintf("%s/competitions/%d/details?page_size=%d&page=%d", e.MatchEvent(ref), ref.MatchID, pageSize, page)
}

func (e Endpoints) ESPNSummary(ref match.Ref) string {
	return fmt.Sprintf("%s/%d/summary?event=%d", espnAPIBaseURL, ref.SeriesID, ref.MatchID)
}

func (e Endpoints) LegacyScorecard(matchID int64) string {
	return fmt.Sprintf("%s/ci/engine/match/%d.html", legacyStaticBaseURL, matchID)
}

// InningsCommentary is one page of commentary for an innings (1-based).
func (e Endpoints) InningsCommentary(ref match.Ref, innings, page int) string {
	query := url.Values{}
	query.Set("lang", "en")
	query.Set("leagueId", fmt.Sprint(ref.SeriesID))
	query.Set("eventId", fmt.Sprint(ref.MatchID))
	query.Set("period", fmt.Sprint(innings))
	query.Set("page", fmt.Sprint(page))
	query.Set("filter", "full")
	query.Set("liveTest", "false")
	return commentaryAPIBaseURL + "?" + query.Encode()
}

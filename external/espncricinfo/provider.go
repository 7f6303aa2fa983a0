package espncricinfo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

// FetchMatch loads the scorecard data for a match: rendered through the
// browser when one is configured, otherwise from the consumer API.
func (c *Client) FetchMatch(ctx context.Context, ref match.Ref) (rawdata.Payload, error) {
	key := strconv.FormatInt(ref.MatchID, 10)
	if c.renderer != nil {
		pageURL := c.endpoints.MatchScorecardPage(ref)
		payload, err := c.load(ctx, rawdata.EntityMatch, key, pageURL, c.renderer.Render)
		if err != nil {
			return rawdata.Payload{}, err
		}
		payload.Shape = rawdata.ShapeEmbeddedPageJSON
		return payload, nil
	}
	return c.fetch(ctx, rawdata.EntityMatch, key, c.endpoints.MatchScorecard(ref))
}

func (c *Client) FetchResults(ctx context.Context, date time.Time) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntityResults, date.Format(time.DateOnly), c.endpoints.Results(date))
}

func (c *Client) FetchLiveScores(ctx context.Context) (rawdata.Payload, error) {
	feedURL := c.endpoints.FeedURL
	payload, err := c.load(ctx, rawdata.EntityFeed, "livescores", feedURL, func(ctx context.Context, _ string) ([]byte, error) {
		return c.feed.Fetch(ctx)
	})
	if err != nil {
		return rawdata.Payload{}, err
	}
	payload.Shape = rawdata.ShapeRSSFeed
	return payload, nil
}

func (c *Client) FetchGround(ctx context.Context, groundID int64) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntityGround, strconv.FormatInt(groundID, 10), c.endpoints.Venue(groundID))
}

func (c *Client) FetchGroundPage(ctx context.Context, groundID int64) (rawdata.Payload, error) {
	return c.page(ctx, rawdata.EntityGround, fmt.Sprintf("%d/page", groundID), c.endpoints.GroundPage(groundID))
}

func (c *Client) FetchPlayer(ctx context.Context, playerID int64) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntityPlayer, strconv.FormatInt(playerID, 10), c.endpoints.Athlete(playerID))
}

func (c *Client) FetchPlayerPage(ctx context.Context, playerID int64) (rawdata.Payload, error) {
	return c.page(ctx, rawdata.EntityPlayer, fmt.Sprintf("%d/page", playerID), c.endpoints.PlayerPage(playerID))
}

func (c *Client) FetchSeries(ctx context.Context, seriesID int64) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntitySeries, strconv.FormatInt(seriesID, 10), c.endpoints.League(seriesID))
}

func (c *Client) FetchSeasons(ctx context.Context, seriesID int64) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntitySeasons, strconv.FormatInt(seriesID, 10), c.endpoints.Seasons(seriesID))
}

func (c *Client) FetchSeason(ctx context.Context, seriesID int64, year int) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntitySeason, fmt.Sprintf("%d/%d", seriesID, year), c.endpoints.Season(seriesID, year))
}

func (c *Client) FetchEvents(ctx context.Context, seriesID int64) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntityEvents, strconv.FormatInt(seriesID, 10), c.endpoints.Events(seriesID))
}

func (c *Client) FetchEvent(ctx context.Context, ref series.EventRef) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntityEvent, fmt.Sprintf("%d/%d", ref.SeriesID, ref.EventID), c.endpoints.Event(ref))
}

func (c *Client) FetchTeam(ctx context.Context, leagueID, teamID int64) (rawdata.Payload, error) {
	return c.fetch(ctx, rawdata.EntityTeam, fmt.Sprintf("%d/%d", leagueID, teamID), c.endpoints.Team(leagueID, teamID))
}

func (c *Client) page(ctx context.Context, entityType, key, pageURL string) (rawdata.Payload, error) {
	payload, err := c.fetch(ctx, entityType, key, pageURL)
	if err != nil {
		return rawdata.Payload{}, err
	}
	payload.Shape = rawdata.ShapeHTMLTable
	return payload, nil
}

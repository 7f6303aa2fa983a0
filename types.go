package cricinfo

import (
	"github.com/riskibarqy/cricinfo/internal/domain/ground"
	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/player"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
	"github.com/riskibarqy/cricinfo/internal/domain/team"
)

// Records handed out by value. Callers get their own copy, so nothing they
// do to one leaks back into the client.
type (
	MatchRecord   = match.Record
	InningsRecord = match.Innings
	TeamRef       = match.TeamRef
	PlayerRef     = match.PlayerRef
	Venue         = match.Venue
	SeriesRef     = match.SeriesRef
	Official      = match.Official
	Batter        = match.Batter
	Bowler        = match.Bowler
	FallOfWicket  = match.FallOfWicket
	BattingEntry  = match.BattingEntry
	Status        = match.Status
	LiveScore     = match.LiveScore

	Ground      = ground.Record
	Address     = ground.Address
	Player      = player.Record
	CareerRow   = player.CareerRow
	MatchLink   = player.MatchLink
	TeamProfile = team.Record

	SeriesRecord = series.Record
	Season       = series.Season
	Event        = series.Event

	RawPayload  = rawdata.Payload
	SourceShape = rawdata.SourceShape
	// Archive stores raw payloads as they are fetched.
	Archive = rawdata.Repository
)

const (
	StatusScheduled = match.StatusScheduled
	StatusLive      = match.StatusLive
	StatusResult    = match.StatusResult
	StatusDormant   = match.StatusDormant
	StatusCancelled = match.StatusCancelled
)

// ParseStatus maps an upstream status string onto Status. Unknown values are
// kept lowercased.
func ParseStatus(raw string) Status { return match.ParseStatus(raw) }

const (
	ShapeUnknown          = rawdata.ShapeUnknown
	ShapeLegacyEngineJSON = rawdata.ShapeLegacyEngineJSON
	ShapeCoreAPIJSON      = rawdata.ShapeCoreAPIJSON
	ShapeEmbeddedPageJSON = rawdata.ShapeEmbeddedPageJSON
	ShapeRSSFeed          = rawdata.ShapeRSSFeed
	ShapeHTMLTable        = rawdata.ShapeHTMLTable
)

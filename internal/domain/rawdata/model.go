package rawdata

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SourceShape tags which upstream representation a payload carries.
type SourceShape string

const (
	ShapeUnknown          SourceShape = ""
	ShapeLegacyEngineJSON SourceShape = "legacy_engine_json"
	ShapeCoreAPIJSON      SourceShape = "core_api_json"
	ShapeEmbeddedPageJSON SourceShape = "embedded_page_json"
	ShapeRSSFeed          SourceShape = "rss_feed"
	ShapeHTMLTable        SourceShape = "html_table"
)

func (s SourceShape) String() string {
	if s == ShapeUnknown {
		return "unknown"
	}
	return string(s)
}

// IsJSON reports whether the shape is decoded as a JSON tree.
func (s SourceShape) IsJSON() bool {
	switch s {
	case ShapeLegacyEngineJSON, ShapeCoreAPIJSON, ShapeEmbeddedPageJSON, ShapeUnknown:
		return true
	default:
		return false
	}
}

const (
	EntityMatch   = "match"
	EntityResults = "results"
	EntitySeries  = "series"
	EntitySeasons = "seasons"
	EntitySeason  = "season"
	EntityEvents  = "events"
	EntityEvent   = "event"
	EntityGround  = "ground"
	EntityPlayer  = "player"
	EntityTeam    = "team"
	EntityFeed    = "livescores"
)

// Payload is the raw body handed over by a fetcher. Shape is a hint: JSON
// bodies are usually left unknown and resolved by shape detection.
type Payload struct {
	Source     string
	Shape      SourceShape
	EntityType string
	EntityKey  string
	URL        string
	Body       []byte
	FetchedAt  time.Time
}

// Hash returns the hex sha256 of the body.
func (p Payload) Hash() string {
	sum := sha256.Sum256(p.Body)
	return hex.EncodeToString(sum[:])
}

func (p Payload) Empty() bool {
	return len(p.Body) == 0
}

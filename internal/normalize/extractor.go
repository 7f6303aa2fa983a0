package normalize

import (
	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// matchExtractor pulls each semantic match field out of one shape's native
// tree. Extractors never fail on a missing field; only teamLookup and
// innings report structural problems.
type matchExtractor interface {
	shape() rawdata.SourceShape
	teamLookup() (teamLookup, error)
	teams(lk teamLookup) [2]match.TeamRef

	description(teams [2]match.TeamRef) string
	title() string
	status() match.Status
	internationalClass() string
	generalClass() string
	season() string
	startDate() string
	startDateTime() string
	cancelled() bool
	scheduledOvers() *int
	rainRule() *string
	followOn() bool
	lighting() string
	currentSummary() string
	result() string
	ground() match.Venue
	series(seriesID int64) []match.SeriesRef

	homeTeamID(lk teamLookup) string
	winnerTeamID(lk teamLookup) string
	tossWinnerTeamID(lk teamLookup) string
	tossDecisionCode() string

	innings(lk teamLookup) ([]match.Innings, error)
	officials() []match.Official
	latestBatting(teams [2]match.TeamRef) []match.Batter
	latestBowling(teams [2]match.TeamRef) []match.Bowler
}

func newMatchExtractor(entry Entry) matchExtractor {
	switch entry.Shape {
	case rawdata.ShapeLegacyEngineJSON:
		return engineExtractor{root: entry.Root}
	case rawdata.ShapeEmbeddedPageJSON:
		return newPageExtractor(entry.Root)
	default:
		return newCoreExtractor(entry.Root)
	}
}

// teamLookup resolves any team identifier seen in a payload (internal
// numeric id or public id) to the public id. It is built once per payload.
type teamLookup struct {
	public map[string]string
	order  []string
}

func newTeamLookup() teamLookup {
	return teamLookup{public: make(map[string]string, 4)}
}

func (lk *teamLookup) add(publicID string, aliases ...string) {
	if publicID == "" {
		return
	}
	if _, seen := lk.public[publicID]; !seen {
		lk.order = append(lk.order, publicID)
	}
	lk.public[publicID] = publicID
	for _, alias := range aliases {
		if alias != "" {
			if _, taken := lk.public[alias]; !taken {
				lk.public[alias] = publicID
			}
		}
	}
}

func (lk teamLookup) resolve(raw any) (string, bool) {
	key := scalarString(raw)
	if key == "" {
		return "", false
	}
	id, ok := lk.public[key]
	return id, ok
}

// resolveOrEmpty is used for optional references such as the winner.
func (lk teamLookup) resolveOrEmpty(raw any) string {
	id, _ := lk.resolve(raw)
	return id
}

func (lk teamLookup) other(id string) string {
	for _, candidate := range lk.order {
		if candidate != id {
			return candidate
		}
	}
	return ""
}

func (lk teamLookup) validate(shape rawdata.SourceShape, path string) error {
	if len(lk.order) != 2 {
		return structureErrorf(shape, path, "expected exactly two distinct teams, got %d", len(lk.order))
	}
	return nil
}

func playerName(teams [2]match.TeamRef, playerID int64) (string, string) {
	for _, t := range teams {
		for _, p := range t.Players {
			if p.PlayerID == playerID {
				return p.Name, p.FullName
			}
		}
	}
	return "", ""
}

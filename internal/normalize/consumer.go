package normalize

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// coreExtractor reads the camelCase consumer layout served by the JSON API:
// a match object next to a flat innings list. Team references inside the
// match object use internal numeric ids; the public id is team.objectId.
type coreExtractor struct {
	tag         rawdata.SourceShape
	meta        map[string]any
	inningsList []map[string]any
	teamPlayers []map[string]any
}

func newCoreExtractor(root map[string]any) coreExtractor {
	return coreExtractor{
		tag:         rawdata.ShapeCoreAPIJSON,
		meta:        mapAt(root, "match"),
		inningsList: mapList(root["innings"]),
		teamPlayers: mapList(lookup(root, "matchPlayers", "teamPlayers")),
	}
}

// pageExtractor reads the same schema as it appears embedded in a rendered
// page, where innings and rosters sit under a content object.
type pageExtractor struct {
	coreExtractor
}

func newPageExtractor(root map[string]any) pageExtractor {
	content := mapAt(root, "content")
	return pageExtractor{coreExtractor{
		tag:         rawdata.ShapeEmbeddedPageJSON,
		meta:        mapAt(root, "match"),
		inningsList: mapList(content["innings"]),
		teamPlayers: mapList(lookup(content, "matchPlayers", "teamPlayers")),
	}}
}

func (c coreExtractor) shape() rawdata.SourceShape { return c.tag }

func (c coreExtractor) teamNodes() []map[string]any { return mapList(c.meta["teams"]) }

func (c coreExtractor) teamLookup() (teamLookup, error) {
	lk := newTeamLookup()
	for _, item := range c.teamNodes() {
		team := mapAt(item, "team")
		internal := getString(team, "id")
		lk.add(firstNonEmpty(getString(team, "objectId"), internal), internal)
	}
	return lk, lk.validate(c.tag, "match.teams")
}

func (c coreExtractor) teams(lk teamLookup) [2]match.TeamRef {
	rosters := make(map[string][]match.PlayerRef, len(c.teamPlayers))
	for _, tp := range c.teamPlayers {
		team := mapAt(tp, "team")
		id, ok := lk.resolve(firstNonEmpty(getString(team, "objectId"), getString(team, "id")))
		if !ok {
			continue
		}
		rosters[id] = consumerPlayers(tp["players"])
	}

	var out [2]match.TeamRef
	for idx, item := range c.teamNodes() {
		if idx > 1 {
			break
		}
		team := mapAt(item, "team")
		id, _ := lk.resolve(firstNonEmpty(getString(team, "objectId"), getString(team, "id")))
		name := getString(team, "name")
		out[idx] = match.TeamRef{
			ID:           id,
			Abbreviation: getString(team, "abbreviation"),
			Name:         name,
			LongName:     firstNonEmpty(getString(team, "longName"), name),
			Players:      rosters[id],
		}
	}
	return out
}

func consumerPlayers(raw any) []match.PlayerRef {
	items := mapList(raw)
	out := make([]match.PlayerRef, 0, len(items))
	for _, item := range items {
		p := mapAt(item, "player")
		role := strings.ToUpper(getString(item, "playerRoleType"))
		out = append(out, match.PlayerRef{
			PlayerID:     playerObjectID(p),
			Name:         getString(p, "name"),
			FullName:     firstNonEmpty(getString(p, "longName"), getString(p, "name")),
			PlayingRole:  firstString(p["playingRoles"]),
			BattingStyle: firstString(p["battingStyles"]),
			BowlingStyle: firstString(p["bowlingStyles"]),
			Captain:      strings.Contains(role, "C"),
			Keeper:       strings.Contains(role, "WK"),
		})
	}
	return out
}

func playerObjectID(p map[string]any) int64 {
	if id := getInt64(p, "objectId"); id != 0 {
		return id
	}
	return getInt64(p, "id")
}

func firstString(raw any) string {
	items, ok := raw.([]any)
	if !ok {
		return scalarString(raw)
	}
	for _, item := range items {
		if value := scalarString(item); value != "" {
			return value
		}
	}
	return ""
}

func (c coreExtractor) description(teams [2]match.TeamRef) string {
	if teams[0].Name != "" && teams[1].Name != "" {
		return teams[0].Name + " v " + teams[1].Name
	}
	return c.title()
}

func (c coreExtractor) title() string  { return getString(c.meta, "title") }
func (c coreExtractor) season() string { return getString(c.meta, "season") }

func (c coreExtractor) status() match.Status {
	return match.ParseStatus(getString(c.meta, "status"))
}

func (c coreExtractor) internationalClass() string {
	return match.InternationalClass(getInt64(c.meta, "internationalClassId"))
}

func (c coreExtractor) generalClass() string {
	return firstNonEmpty(getString(c.meta, "format"), getString(c.meta, "generalClassCard"))
}

func (c coreExtractor) startDate() string { return dateOnly(getString(c.meta, "startDate")) }

func (c coreExtractor) startDateTime() string {
	return firstNonEmpty(getString(c.meta, "startTime"), getString(c.meta, "startDate"))
}

func (c coreExtractor) cancelled() bool      { return getBool(c.meta, "isCancelled") }
func (c coreExtractor) scheduledOvers() *int { return getOptInt(c.meta, "scheduledOvers") }
func (c coreExtractor) rainRule() *string    { return getOptString(c.meta, "rainRule") }
func (c coreExtractor) followOn() bool       { return getBool(c.meta, "followOn") }
func (c coreExtractor) lighting() string     { return getString(c.meta, "floodlit") }
func (c coreExtractor) currentSummary() string {
	return getString(c.meta, "statusText")
}
func (c coreExtractor) result() string { return getString(c.meta, "statusText") }

func (c coreExtractor) ground() match.Venue {
	ground := mapAt(c.meta, "ground")
	town := mapAt(ground, "town")
	city := firstNonEmpty(getString(town, "name"), getString(ground, "location"))
	return match.Venue{
		GroundID:   getString(ground, "objectId"),
		GroundName: firstNonEmpty(getString(ground, "longName"), getString(ground, "name")),
		TownName:   ptrString(city),
		TownArea:   ptrString(firstNonEmpty(getString(town, "area"), city)),
		TownID:     getString(town, "objectId"),
	}
}

func (c coreExtractor) series(seriesID int64) []match.SeriesRef {
	series := mapAt(c.meta, "series")
	fallback := ""
	if seriesID > 0 {
		fallback = strconv.FormatInt(seriesID, 10)
	}
	if series == nil && fallback == "" {
		return nil
	}
	return []match.SeriesRef{{
		ID:   firstNonEmpty(getString(series, "objectId"), fallback),
		Name: firstNonEmpty(getString(series, "longName"), getString(series, "name")),
		Slug: getString(series, "slug"),
	}}
}

func (c coreExtractor) homeTeamID(lk teamLookup) string {
	for _, item := range c.teamNodes() {
		if getBool(item, "isHome") {
			team := mapAt(item, "team")
			return lk.resolveOrEmpty(firstNonEmpty(getString(team, "objectId"), getString(team, "id")))
		}
	}
	return ""
}

func (c coreExtractor) winnerTeamID(lk teamLookup) string {
	return lk.resolveOrEmpty(c.meta["winnerTeamId"])
}

func (c coreExtractor) tossWinnerTeamID(lk teamLookup) string {
	return lk.resolveOrEmpty(c.meta["tossWinnerTeamId"])
}

func (c coreExtractor) tossDecisionCode() string {
	return match.TossCodeFromChoice(getInt64(c.meta, "tossWinnerChoice"))
}

func (c coreExtractor) innings(lk teamLookup) ([]match.Innings, error) {
	out := make([]match.Innings, 0, len(c.inningsList))
	for idx, item := range c.inningsList {
		team := mapAt(item, "team")
		battingID, ok := lk.resolve(firstNonEmpty(getString(team, "objectId"), getString(team, "id"), getString(item, "teamId")))
		if !ok {
			return nil, structureErrorf(c.tag, "innings["+strconv.Itoa(idx)+"].team",
				"batting team %q is not one of the match teams", firstNonEmpty(getString(team, "objectId"), getString(team, "id")))
		}
		number := int(getInt64(item, "inningNumber"))
		if number == 0 {
			number = idx + 1
		}
		bpo := int(getInt64(item, "ballsPerOver"))
		if bpo <= 0 {
			bpo = match.DefaultBallsPerOver
		}
		overs := match.ParseOvers(item["overs"])
		runs := int(getInt64(item, "runs"))
		out = append(out, match.Innings{
			Number:        number,
			BattingTeamID: battingID,
			BowlingTeamID: lk.other(battingID),
			Runs:          runs,
			Wickets:       getOptInt(item, "wickets"),
			Overs:         overs,
			BallsPerOver:  bpo,
			RunRate:       match.RunRate(runs, overs),
			EventName:     getString(item, "event"),
			Target:        positive(getOptInt(item, "target")),
			Extras: match.Extras{
				Total:   getOptInt(item, "extras"),
				Byes:    getOptInt(item, "byes"),
				Legbyes: getOptInt(item, "legbyes"),
				Wides:   getOptInt(item, "wides"),
				Noballs: getOptInt(item, "noballs"),
			},
			Batsmen:       consumerBatsmen(item["inningBatsmen"]),
			Bowlers:       consumerBowlers(item["inningBowlers"]),
			FallOfWickets: consumerFallOfWickets(item["inningFallOfWickets"]),
		})
	}
	return out, nil
}

func consumerBatsmen(raw any) []match.Batter {
	items := mapList(raw)
	out := make([]match.Batter, 0, len(items))
	for _, item := range items {
		p := mapAt(item, "player")
		out = append(out, match.Batter{
			PlayerID:      playerObjectID(p),
			Name:          getString(p, "name"),
			FullName:      getString(p, "longName"),
			BattedType:    getString(item, "battedType"),
			Runs:          getOptInt(item, "runs"),
			Balls:         getOptInt(item, "balls"),
			Minutes:       getOptInt(item, "minutes"),
			Fours:         getOptInt(item, "fours"),
			Sixes:         getOptInt(item, "sixes"),
			StrikeRate:    getOptFloat(item, "strikerate"),
			IsOut:         getBool(item, "isOut"),
			DismissalText: getOptString(mapAt(item, "dismissalText"), "long"),
		})
	}
	return out
}

func consumerBowlers(raw any) []match.Bowler {
	items := mapList(raw)
	out := make([]match.Bowler, 0, len(items))
	for _, item := range items {
		p := mapAt(item, "player")
		out = append(out, match.Bowler{
			PlayerID: playerObjectID(p),
			Name:     getString(p, "name"),
			FullName: getString(p, "longName"),
			Overs:    match.ParseOvers(item["overs"]),
			Balls:    getOptInt(item, "balls"),
			Maidens:  getOptInt(item, "maidens"),
			Conceded: getOptInt(item, "conceded"),
			Wickets:  getOptInt(item, "wickets"),
			Economy:  getOptFloat(item, "economy"),
			Dots:     getOptInt(item, "dots"),
			Fours:    getOptInt(item, "fours"),
			Sixes:    getOptInt(item, "sixes"),
			Wides:    getOptInt(item, "wides"),
			Noballs:  getOptInt(item, "noballs"),
		})
	}
	return out
}

func consumerFallOfWickets(raw any) []match.FallOfWicket {
	items := mapList(raw)
	out := make([]match.FallOfWicket, 0, len(items))
	for _, item := range items {
		batter := mapAt(item, "dismissalBatsman")
		out = append(out, match.FallOfWicket{
			Wicket:     int(getInt64(item, "fowWicketNum")),
			Runs:       int(getInt64(item, "fowRuns")),
			Overs:      match.ParseOvers(item["fowOvers"]),
			Balls:      getOptInt(item, "fowBalls"),
			PlayerID:   playerObjectID(batter),
			PlayerName: getString(batter, "name"),
		})
	}
	return out
}

var officialGroups = []struct {
	key  string
	role string
}{
	{key: "umpires", role: "umpire"},
	{key: "tvUmpires", role: "tv umpire"},
	{key: "reserveUmpires", role: "reserve umpire"},
	{key: "matchReferees", role: "match referee"},
}

func (c coreExtractor) officials() []match.Official {
	var out []match.Official
	for _, group := range officialGroups {
		for _, item := range mapList(c.meta[group.key]) {
			p := mapAt(item, "player")
			out = append(out, match.Official{
				PlayerID: playerObjectID(p),
				Name:     firstNonEmpty(getString(p, "longName"), getString(p, "name")),
				Role:     group.role,
			})
		}
	}
	return out
}

func (c coreExtractor) latestBatting([2]match.TeamRef) []match.Batter { return nil }
func (c coreExtractor) latestBowling([2]match.TeamRef) []match.Bowler { return nil }

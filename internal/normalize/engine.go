package normalize

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// engineExtractor reads the legacy engine layout: snake_case keys, a
// top-level team list keyed by public team_id, and a live block.
type engineExtractor struct {
	root map[string]any
}

func (e engineExtractor) shape() rawdata.SourceShape { return rawdata.ShapeLegacyEngineJSON }

func (e engineExtractor) meta() map[string]any { return mapAt(e.root, "match") }

func (e engineExtractor) teamLookup() (teamLookup, error) {
	lk := newTeamLookup()
	for _, item := range mapList(e.root["team"]) {
		lk.add(getString(item, "team_id"), getString(item, "object_id"), getString(item, "content_id"))
	}
	return lk, lk.validate(e.shape(), "team")
}

func (e engineExtractor) teams(lk teamLookup) [2]match.TeamRef {
	var out [2]match.TeamRef
	for idx, item := range mapList(e.root["team"]) {
		if idx > 1 {
			break
		}
		name := getString(item, "team_name")
		out[idx] = match.TeamRef{
			ID:           lk.resolveOrEmpty(item["team_id"]),
			Abbreviation: getString(item, "team_abbreviation"),
			Name:         name,
			LongName:     firstNonEmpty(getString(item, "team_long_name"), name),
			Players:      enginePlayers(item["player"]),
		}
	}
	return out
}

func enginePlayers(raw any) []match.PlayerRef {
	items := mapList(raw)
	out := make([]match.PlayerRef, 0, len(items))
	for _, item := range items {
		id := getInt64(item, "player_id")
		if id == 0 {
			id = getInt64(item, "object_id")
		}
		out = append(out, match.PlayerRef{
			PlayerID:     id,
			Name:         firstNonEmpty(getString(item, "known_as"), getString(item, "card_long")),
			FullName:     firstNonEmpty(getString(item, "card_long"), getString(item, "known_as")),
			PlayingRole:  getString(item, "player_primary_role"),
			BattingStyle: firstNonEmpty(getString(item, "batting_style_long"), getString(item, "batting_style")),
			BowlingStyle: firstNonEmpty(getString(item, "bowling_style_long"), getString(item, "bowling_style")),
			Captain:      getBool(item, "captain"),
			Keeper:       getBool(item, "keeper"),
		})
	}
	return out
}

func (e engineExtractor) description(teams [2]match.TeamRef) string {
	return firstNonEmpty(getString(e.root, "description"), teams[0].Name+" v "+teams[1].Name)
}

func (e engineExtractor) title() string  { return getString(e.meta(), "cms_match_title") }
func (e engineExtractor) season() string { return getString(e.meta(), "season") }

func (e engineExtractor) status() match.Status {
	return match.ParseStatus(getString(e.meta(), "match_status"))
}

func (e engineExtractor) internationalClass() string {
	return getString(e.meta(), "international_class_card")
}

func (e engineExtractor) generalClass() string {
	return getString(e.meta(), "general_class_card")
}

func (e engineExtractor) startDate() string {
	return dateOnly(getString(e.meta(), "start_date_raw"))
}

func (e engineExtractor) startDateTime() string {
	return firstNonEmpty(getString(e.meta(), "start_datetime_gmt"), getString(e.meta(), "start_datetime_local"))
}

// cancelled_match is "N" unless the match was called off.
func (e engineExtractor) cancelled() bool {
	value := strings.ToUpper(getString(e.meta(), "cancelled_match"))
	return value != "" && value != "N"
}

// scheduled_overs arrives as a string; anything that is not a whole number
// (including "" for timeless matches) yields nil.
func (e engineExtractor) scheduledOvers() *int {
	return getOptInt(e.meta(), "scheduled_overs")
}

func (e engineExtractor) rainRule() *string {
	meta := e.meta()
	rule := getString(meta, "rain_rule")
	if rule == "" || rule == "0" {
		return nil
	}
	return ptrString(firstNonEmpty(getString(meta, "rain_rule_name"), rule))
}

func (e engineExtractor) followOn() bool { return getBool(e.meta(), "followon") }

func (e engineExtractor) lighting() string { return getString(e.meta(), "floodlit_name") }

func (e engineExtractor) currentSummary() string {
	return getString(e.meta(), "current_summary")
}

func (e engineExtractor) result() string { return getString(mapAt(e.root, "live"), "status") }

func (e engineExtractor) ground() match.Venue {
	meta := e.meta()
	return match.Venue{
		GroundID:            getString(meta, "ground_id"),
		GroundName:          getString(meta, "ground_name"),
		TownName:            getOptString(meta, "town_name"),
		TownArea:            getOptString(meta, "town_area"),
		TownID:              getString(meta, "town_id"),
		Continent:           getOptString(meta, "continent_name"),
		WeatherLocationCode: getOptString(meta, "weather_location_code"),
	}
}

func (e engineExtractor) series(seriesID int64) []match.SeriesRef {
	items := mapList(e.root["series"])
	out := make([]match.SeriesRef, 0, len(items))
	for _, item := range items {
		out = append(out, match.SeriesRef{
			ID:   firstNonEmpty(getString(item, "core_recreation_id"), getString(item, "object_id"), getString(item, "series_id")),
			Name: firstNonEmpty(getString(item, "series_name"), getString(item, "name")),
			Slug: getString(item, "slug"),
		})
	}
	if len(out) == 0 && seriesID > 0 {
		out = append(out, match.SeriesRef{ID: strconv.FormatInt(seriesID, 10)})
	}
	return out
}

func (e engineExtractor) homeTeamID(lk teamLookup) string {
	return lk.resolveOrEmpty(e.meta()["home_team_id"])
}

func (e engineExtractor) winnerTeamID(lk teamLookup) string {
	return lk.resolveOrEmpty(e.meta()["winner_team_id"])
}

func (e engineExtractor) tossWinnerTeamID(lk teamLookup) string {
	return lk.resolveOrEmpty(e.meta()["toss_winner_team_id"])
}

func (e engineExtractor) tossDecisionCode() string {
	meta := e.meta()
	return firstNonEmpty(getString(meta, "toss_decision"), match.TossCode(getString(meta, "toss_decision_name")))
}

// The engine layout carries innings totals only; per-batter lines for the
// innings in progress live in the separate live block.
func (e engineExtractor) innings(lk teamLookup) ([]match.Innings, error) {
	items := mapList(e.root["innings"])
	out := make([]match.Innings, 0, len(items))
	for idx, item := range items {
		battingID, ok := lk.resolve(item["batting_team_id"])
		if !ok {
			return nil, structureErrorf(e.shape(), "innings["+strconv.Itoa(idx)+"].batting_team_id",
				"batting team %q is not one of the match teams", getString(item, "batting_team_id"))
		}
		bowlingID, ok := lk.resolve(item["bowling_team_id"])
		if !ok {
			bowlingID = lk.other(battingID)
		}
		number := int(getInt64(item, "innings_number"))
		if number == 0 {
			number = idx + 1
		}
		overs := match.ParseOvers(item["overs"])
		runs := int(getInt64(item, "runs"))
		bpo := int(getInt64(item, "bpo"))
		if bpo <= 0 {
			bpo = match.DefaultBallsPerOver
		}
		out = append(out, match.Innings{
			Number:        number,
			BattingTeamID: battingID,
			BowlingTeamID: bowlingID,
			Runs:          runs,
			Wickets:       getOptInt(item, "wickets"),
			Overs:         overs,
			BallsPerOver:  bpo,
			RunRate:       match.RunRate(runs, overs),
			EventName:     getString(item, "event_name"),
			Target:        positive(getOptInt(item, "target")),
			Extras: match.Extras{
				Total:   getOptInt(item, "extras"),
				Byes:    getOptInt(item, "byes"),
				Legbyes: getOptInt(item, "legbyes"),
				Wides:   getOptInt(item, "wides"),
				Noballs: getOptInt(item, "noballs"),
			},
		})
	}
	return out, nil
}

func (e engineExtractor) officials() []match.Official {
	items := mapList(e.root["official"])
	out := make([]match.Official, 0, len(items))
	for _, item := range items {
		id := getInt64(item, "player_id")
		if id == 0 {
			id = getInt64(item, "object_id")
		}
		out = append(out, match.Official{
			PlayerID: id,
			Name:     firstNonEmpty(getString(item, "known_as"), getString(item, "card_long")),
			Role:     strings.ToLower(firstNonEmpty(getString(item, "player_type_name"), getString(item, "type_name"))),
		})
	}
	return out
}

func (e engineExtractor) latestBatting(teams [2]match.TeamRef) []match.Batter {
	items := firstList(lookup(e.root, "live", "batting"), lookup(e.root, "centre", "common", "batting"))
	out := make([]match.Batter, 0, len(items))
	for _, item := range items {
		id := getInt64(item, "player_id")
		name, full := playerName(teams, id)
		out = append(out, match.Batter{
			PlayerID:   id,
			Name:       firstNonEmpty(getString(item, "known_as"), name),
			FullName:   full,
			BattedType: "yes",
			Runs:       getOptInt(item, "runs"),
			Balls:      getOptInt(item, "balls_faced"),
			Minutes:    getOptInt(item, "minutes"),
			Fours:      getOptInt(item, "fours"),
			Sixes:      getOptInt(item, "sixes"),
			StrikeRate: getOptFloat(item, "strike_rate"),
		})
	}
	return out
}

func (e engineExtractor) latestBowling(teams [2]match.TeamRef) []match.Bowler {
	items := firstList(lookup(e.root, "live", "bowling"), lookup(e.root, "centre", "common", "bowling"))
	out := make([]match.Bowler, 0, len(items))
	for _, item := range items {
		id := getInt64(item, "player_id")
		name, full := playerName(teams, id)
		out = append(out, match.Bowler{
			PlayerID: id,
			Name:     firstNonEmpty(getString(item, "known_as"), name),
			FullName: full,
			Overs:    match.ParseOvers(item["overs"]),
			Maidens:  getOptInt(item, "maidens"),
			Conceded: getOptInt(item, "conceded"),
			Wickets:  getOptInt(item, "wickets"),
			Economy:  getOptFloat(item, "economy_rate"),
			Wides:    getOptInt(item, "wides"),
			Noballs:  getOptInt(item, "noballs"),
		})
	}
	return out
}

func dateOnly(raw string) string {
	if len(raw) >= 10 {
		return raw[:10]
	}
	return raw
}

func positive(value *int) *int {
	if value == nil || *value <= 0 {
		return nil
	}
	return value
}

package normalize

import (
	"sort"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// MatchPayload decodes a raw payload (JSON or a rendered page) and builds
// its match record.
func MatchPayload(payload rawdata.Payload, matchID, seriesID int64) (match.Record, error) {
	tree, err := DecodeTree(payload)
	if err != nil {
		return match.Record{}, err
	}
	return Match(tree, matchID, seriesID)
}

// Match builds the canonical record for one match from a decoded payload.
// It is a pure function: the same tree always yields the same record or the
// same error, and no partial record is ever returned.
func Match(tree any, matchID, seriesID int64) (match.Record, error) {
	entry, err := Detect(tree)
	if err != nil {
		return match.Record{}, err
	}
	ex := newMatchExtractor(entry)

	lk, err := ex.teamLookup()
	if err != nil {
		return match.Record{}, err
	}
	teams := ex.teams(lk)

	innings, err := ex.innings(lk)
	if err != nil {
		return match.Record{}, err
	}
	// Upstream lists are not guaranteed to be in play order.
	sort.SliceStable(innings, func(i, j int) bool { return innings[i].Number < innings[j].Number })

	record := match.Record{
		MatchID:            matchID,
		SeriesID:           seriesID,
		Shape:              ex.shape(),
		Description:        ex.description(teams),
		MatchTitle:         ex.title(),
		Status:             ex.status(),
		InternationalClass: ex.internationalClass(),
		GeneralClass:       ex.generalClass(),
		Season:             ex.season(),
		StartDate:          ex.startDate(),
		StartDateTime:      ex.startDateTime(),
		CancelledMatch:     ex.cancelled(),
		ScheduledOvers:     ex.scheduledOvers(),
		RainRule:           ex.rainRule(),
		FollowOn:           ex.followOn(),
		Lighting:           ex.lighting(),
		CurrentSummary:     ex.currentSummary(),
		Result:             ex.result(),
		Ground:             ex.ground(),
		Series:             ex.series(seriesID),
		Team1:              teams[0],
		Team2:              teams[1],
		HomeTeamID:         ex.homeTeamID(lk),
		WinnerTeamID:       ex.winnerTeamID(lk),
		TossWinnerTeamID:   ex.tossWinnerTeamID(lk),
		Innings:            innings,
		Officials:          ex.officials(),
		LatestBatting:      ex.latestBatting(teams),
		LatestBowling:      ex.latestBowling(teams),
	}
	if len(innings) > 0 {
		record.BattingFirstTeamID = innings[0].BattingTeamID
	}
	record.TossDecision, record.TossDecisionName = settleToss(ex.tossDecisionCode(), record.TossWinnerTeamID, record.BattingFirstTeamID)

	if err := record.Validate(); err != nil {
		return match.Record{}, &StructureError{Shape: ex.shape(), Path: "record", Err: err}
	}
	return record, nil
}

// settleToss keeps an explicit decision code and otherwise infers it from
// who batted first.
func settleToss(code, tossWinnerID, battingFirstID string) (string, string) {
	if code != "" {
		return code, match.TossName(code)
	}
	return match.InferToss(tossWinnerID, battingFirstID)
}

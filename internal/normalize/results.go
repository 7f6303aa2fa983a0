package normalize

import "github.com/riskibarqy/cricinfo/internal/domain/match"

// Results lists the matches on a results page. A page without the listing
// yields no refs; entries lacking either id are skipped.
func Results(tree any) []match.Ref {
	items := mapList(lookup(tree, "props", "appPageProps", "data", "data", "content", "matches"))
	out := make([]match.Ref, 0, len(items))
	for _, item := range items {
		seriesID, ok := toInt64(lookup(item, "series", "objectId"))
		if !ok {
			continue
		}
		matchID, ok := toInt64(item["objectId"])
		if !ok {
			continue
		}
		ref := match.Ref{SeriesID: seriesID, MatchID: matchID}
		if ref.Validate() != nil {
			continue
		}
		out = append(out, ref)
	}
	return out
}

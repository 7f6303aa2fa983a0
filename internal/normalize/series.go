package normalize

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

// Series maps a core league document plus its seasons listing. seasons may
// be nil when the listing was not fetched.
func Series(league, seasons any, seriesID int64) (series.Record, error) {
	root := asMap(league)
	if root == nil {
		return series.Record{}, structureErrorf(rawdata.ShapeCoreAPIJSON, "$", "league payload is not an object")
	}
	id := getInt64(root, "id")
	if id == 0 {
		id = seriesID
	}
	refs := ItemRefs(seasons)
	record := series.Record{
		SeriesID:     id,
		Name:         getString(root, "name"),
		ShortName:    getString(root, "shortName"),
		Abbreviation: getString(root, "abbreviation"),
		Slug:         getString(root, "slug"),
		IsTournament: getBool(root, "isTournament"),
		SeasonRefs:   refs,
		Years:        SeasonYears(refs),
	}
	if links := mapList(root["links"]); len(links) > 0 {
		record.URL = getString(links[0], "href")
	}
	return record, nil
}

// ItemRefs returns the $ref of every entry in a core listing document.
func ItemRefs(tree any) []string {
	items := mapList(lookup(tree, "items"))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if ref := getString(item, "$ref"); ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// refSegment returns the path segment following marker, without any query.
func refSegment(ref, marker string) string {
	idx := strings.Index(ref, marker)
	if idx < 0 {
		return ""
	}
	rest := ref[idx+len(marker):]
	if cut := strings.IndexAny(rest, "/?"); cut >= 0 {
		rest = rest[:cut]
	}
	return rest
}

// SeasonYears extracts the year from each season reference.
func SeasonYears(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if year := refSegment(ref, "/seasons/"); year != "" {
			out = append(out, year)
		}
	}
	return out
}

// EventRefs turns a core events listing into match references. Entries
// whose reference carries no numeric event id are skipped.
func EventRefs(tree any, seriesID int64) []series.EventRef {
	refs := ItemRefs(tree)
	out := make([]series.EventRef, 0, len(refs))
	for _, ref := range refs {
		eventID, err := strconv.ParseInt(refSegment(ref, "/events/"), 10, 64)
		if err != nil || eventID <= 0 {
			continue
		}
		out = append(out, series.EventRef{SeriesID: seriesID, EventID: eventID, Ref: ref})
	}
	return out
}

// Event maps one hydrated core event document.
func Event(tree any, ref series.EventRef) (series.Event, error) {
	root := asMap(tree)
	if root == nil {
		return series.Event{}, structureErrorf(rawdata.ShapeCoreAPIJSON, "$", "event %d payload is not an object", ref.EventID)
	}
	id := getInt64(root, "id")
	if id == 0 {
		id = ref.EventID
	}
	return series.Event{
		EventID:   id,
		SeriesID:  ref.SeriesID,
		Name:      getString(root, "name"),
		ShortName: getString(root, "shortName"),
		Date:      coreTime(getString(root, "date")),
		Ref:       firstNonEmpty(getString(root, "$ref"), ref.Ref),
	}, nil
}

// Season maps a core season document.
func Season(tree any, seriesID int64) (series.Season, error) {
	root := asMap(tree)
	if root == nil {
		return series.Season{}, structureErrorf(rawdata.ShapeCoreAPIJSON, "$", "season payload is not an object")
	}
	return series.Season{
		Year:        int(getInt64(root, "year")),
		SeriesID:    seriesID,
		StartDate:   coreTime(getString(root, "startDate")),
		EndDate:     coreTime(getString(root, "endDate")),
		Name:        getString(root, "name"),
		ShortName:   getString(root, "shortName"),
		Slug:        getString(root, "slug"),
		TeamsRef:    getString(mapAt(root, "teams"), "$ref"),
		RankingsRef: getString(mapAt(root, "rankings"), "$ref"),
	}, nil
}

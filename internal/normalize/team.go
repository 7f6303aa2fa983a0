package normalize

import (
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/team"
)

// Team maps a core teams document.
func Team(tree any, teamID, leagueID int64) (team.Record, error) {
	root := asMap(tree)
	if root == nil {
		return team.Record{}, structureErrorf(rawdata.ShapeCoreAPIJSON, "$", "team payload is not an object")
	}
	id := getInt64(root, "id")
	if id == 0 {
		id = teamID
	}
	record := team.Record{
		TeamID:        id,
		LeagueID:      leagueID,
		Location:      getString(root, "location"),
		Name:          getString(root, "name"),
		Nickname:      getString(root, "nickname"),
		Abbreviation:  getString(root, "abbreviation"),
		Slug:          getString(root, "slug"),
		Color:         getString(root, "color"),
		IsNational:    getBool(root, "isNational"),
		IsActive:      getBool(root, "isActive") || getBool(root, "is_active"),
		NextEventRef:  getOptString(mapAt(root, "event"), "$ref"),
		NextEventDate: coreTime(getString(mapAt(root, "event"), "date")),
		AthletesRef:   getOptString(mapAt(root, "athletes"), "$ref"),
	}
	for _, logo := range mapList(root["logos"]) {
		if href := getOptString(logo, "href"); href != nil {
			record.Logo = href
			break
		}
	}
	return record, nil
}

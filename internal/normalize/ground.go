package normalize

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/cricinfo/internal/domain/ground"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// Ground maps the core venues document.
func Ground(tree any, groundID int64) (ground.Record, error) {
	root := asMap(tree)
	if root == nil {
		return ground.Record{}, structureErrorf(rawdata.ShapeCoreAPIJSON, "$", "venue payload is not an object")
	}
	id := getInt64(root, "id")
	if id == 0 {
		id = groundID
	}
	address := mapAt(root, "address")
	return ground.Record{
		GroundID:  id,
		FullName:  getString(root, "fullName"),
		ShortName: getString(root, "shortName"),
		Capacity:  getOptInt(root, "capacity"),
		Grass:     getBool(root, "grass"),
		Indoor:    getBool(root, "indoor"),
		Address: ground.Address{
			City:    getOptString(address, "city"),
			State:   getOptString(address, "state"),
			ZipCode: getOptString(address, "zipCode"),
			Country: getOptString(address, "country"),
			Summary: getOptString(address, "summary"),
		},
	}, nil
}

// GroundPage reads the details block of a rendered ground page. A page
// without the block yields an empty record.
func GroundPage(doc *goquery.Document, groundID int64) ground.Record {
	rows := labelledRows(doc, "div.pnl650T tr, div.pnl650T p")
	record := ground.Record{
		GroundID:    groundID,
		FullName:    cleanText(doc.Find("div.pnl650T h1, h1").First().Text()),
		Established: labelValue(rows, "Established"),
		AlsoKnownAs: labelValue(rows, "Also or formerly known as"),
		Floodlights: labelValue(rows, "Floodlights"),
	}
	if home := labelValue(rows, "Home teams"); home != nil {
		record.HomeTeams = splitList(*home)
	}
	return record
}

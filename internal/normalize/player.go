package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/cricinfo/internal/domain/player"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

const siteRoot = "http://www.espncricinfo.com"

// Player maps the core athletes document.
func Player(tree any, playerID int64) (player.Record, error) {
	root := asMap(tree)
	if root == nil {
		return player.Record{}, structureErrorf(rawdata.ShapeCoreAPIJSON, "$", "athlete payload is not an object")
	}
	id := getInt64(root, "id")
	if id == 0 {
		id = playerID
	}
	record := player.Record{
		PlayerID:    id,
		Name:        firstNonEmpty(getString(root, "displayName"), getString(root, "name")),
		FullName:    getOptString(root, "fullName"),
		FirstName:   getOptString(root, "firstName"),
		LastName:    getOptString(root, "lastName"),
		DateOfBirth: coreTime(getString(root, "dateOfBirth")),
		CurrentAge:  getOptString(root, "age"),
		Gender:      getOptString(root, "gender"),
		Position:    getOptString(mapAt(root, "position"), "name"),
	}
	for _, style := range mapList(root["style"]) {
		desc := ptrString(firstNonEmpty(getString(style, "description"), getString(style, "shortDescription")))
		switch strings.ToLower(getString(style, "type")) {
		case "batting":
			record.BattingStyle = desc
		case "bowling":
			record.BowlingStyle = desc
		}
	}
	return record, nil
}

var playerInfoLabels = struct {
	fullName, born, age, teams, nickname, aka, role, batting, bowling string
}{
	fullName: "Full name",
	born:     "Born",
	age:      "Current age",
	teams:    "Major teams",
	nickname: "Nickname",
	aka:      "Also known as",
	role:     "Playing role",
	batting:  "Batting style",
	bowling:  "Bowling style",
}

// PlayerPage reads the profile block and career tables of a rendered player
// page. Tables are located by position: batting and fielding, bowling, then
// debuts and lasts.
func PlayerPage(doc *goquery.Document, playerID int64) player.Record {
	rows := labelledRows(doc, "p.ciPlayerinformationtxt")
	record := player.Record{
		PlayerID:     playerID,
		Name:         cleanText(doc.Find("h1").First().Text()),
		FullName:     labelValue(rows, playerInfoLabels.fullName),
		CurrentAge:   labelValue(rows, playerInfoLabels.age),
		Nickname:     labelValue(rows, playerInfoLabels.nickname),
		AlsoKnownAs:  labelValue(rows, playerInfoLabels.aka),
		PlayingRole:  labelValue(rows, playerInfoLabels.role),
		BattingStyle: labelValue(rows, playerInfoLabels.batting),
		BowlingStyle: labelValue(rows, playerInfoLabels.bowling),
	}
	if born := labelValue(rows, playerInfoLabels.born); born != nil {
		record.DateOfBirth = parseBorn(*born)
	}
	if row, ok := findLabel(rows, playerInfoLabels.teams); ok {
		// Team lists span several anchors, so use the full line text.
		text := cleanText(row.node.Text())
		text = strings.TrimSpace(strings.TrimPrefix(text, row.label))
		record.MajorTeams = splitList(text)
	}

	tables := doc.Find("table.engineTable")
	record.BattingFieldingAverages = careerRows(tables.Eq(0), player.BattingFieldingHeaders)
	record.BowlingAverages = careerRows(tables.Eq(1), player.BowlingHeaders)
	record.Debuts = debutLinks(tables.Eq(2))
	return record
}

// parseBorn reads "July 18, 1996, Mumbai" style values.
func parseBorn(raw string) *time.Time {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return nil
	}
	value := strings.TrimSpace(parts[0]) + ", " + strings.TrimSpace(parts[1])
	for _, layout := range []string{"January 2, 2006", "Jan 2, 2006", "2 January, 2006"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}

func careerRows(table *goquery.Selection, headers []string) []player.CareerRow {
	var out []player.CareerRow
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < len(headers)+1 {
			return
		}
		row := player.CareerRow{
			Format: cleanText(cells.Eq(0).Text()),
			Stats:  make(map[string]string, len(headers)),
		}
		for idx, header := range headers {
			row.Stats[header] = cleanText(cells.Eq(idx + 1).Text())
		}
		out = append(out, row)
	})
	return out
}

func debutLinks(table *goquery.Selection) map[string]player.MatchLink {
	out := make(map[string]player.MatchLink)
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		label := cleanText(tr.Find("b").First().Text())
		if label == "" {
			return
		}
		canonical, best := "", labelSimilarity
		for _, known := range player.DebutLabels {
			if score := labelScore(label, known); score >= best {
				canonical, best = known, score
			}
		}
		if canonical == "" {
			return
		}
		href, ok := tr.Find("a[href]").First().Attr("href")
		if !ok {
			return
		}
		link := player.MatchLink{
			URL:   absoluteSiteURL(href),
			Title: strings.TrimSuffix(cleanText(tr.Find("td").Eq(1).Text()), " scorecard"),
		}
		if m := htmlPageID.FindStringSubmatch(href); m != nil {
			link.MatchID, _ = strconv.ParseInt(m[1], 10, 64)
		}
		out[canonical] = link
	})
	if len(out) == 0 {
		return nil
	}
	return out
}

func absoluteSiteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return siteRoot + href
}

// coreTime parses core API timestamps, which omit seconds.
func coreTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{series.CoreDateLayout, time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

package normalize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
)

// labelSimilarity is the Jaro-Winkler score above which two labels are
// treated as the same field. Upstream pages drift between "Batting style",
// "Batting Style:" and similar spellings.
const labelSimilarity = 0.92

var (
	spaceRun   = regexp.MustCompile(`\s+`)
	htmlPageID = regexp.MustCompile(`(\d+)\.html`)
)

type labelled struct {
	label string
	value string
	node  *goquery.Selection
}

func cleanLabel(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.TrimRight(value, ": ")
	return spaceRun.ReplaceAllString(value, " ")
}

func cleanText(raw string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(raw, " "))
}

func labelScore(got, want string) float64 {
	g, w := cleanLabel(got), cleanLabel(want)
	if g == "" || w == "" {
		return 0
	}
	if g == w {
		return 1
	}
	return matchr.JaroWinkler(g, w, false)
}

// labelledRows reads "label: value" pairs out of the elements matched by
// selector. The label is the first b/label/th child; the value is the
// first span/td sibling, or the remaining text when there is none.
func labelledRows(doc *goquery.Document, selector string) []labelled {
	var out []labelled
	doc.Find(selector).Each(func(_ int, row *goquery.Selection) {
		labelNode := row.Find("b, label, th").First()
		label := cleanText(labelNode.Text())
		if label == "" {
			return
		}
		value := cleanText(row.Find("span, td").First().Text())
		if value == "" {
			value = cleanText(strings.TrimPrefix(cleanText(row.Text()), label))
		}
		out = append(out, labelled{label: label, value: value, node: row})
	})
	return out
}

// findLabel returns the row whose label is closest to want, provided it
// clears labelSimilarity.
func findLabel(rows []labelled, want string) (labelled, bool) {
	best, bestScore := labelled{}, 0.0
	for _, row := range rows {
		if score := labelScore(row.label, want); score > bestScore {
			best, bestScore = row, score
		}
	}
	return best, bestScore >= labelSimilarity
}

func labelValue(rows []labelled, want string) *string {
	row, ok := findLabel(rows, want)
	if !ok {
		return nil
	}
	return ptrString(row.value)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

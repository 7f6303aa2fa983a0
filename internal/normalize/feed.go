package normalize

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
}

// LiveScores decodes the livescore RSS document. Items without a match id
// in their link or guid are skipped.
func LiveScores(body []byte) ([]match.LiveScore, error) {
	var doc rssDocument
	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(&doc); err != nil {
		return nil, &StructureError{Shape: rawdata.ShapeRSSFeed, Path: "$", Err: crerr.WithSecondaryError(crerr.Wrap(ErrMalformedPayload, "decode rss"), err)}
	}
	out := make([]match.LiveScore, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		link := strings.TrimSpace(item.Link)
		id := feedMatchID(link)
		if id == 0 {
			id = feedMatchID(item.GUID)
		}
		if id == 0 {
			continue
		}
		out = append(out, match.LiveScore{
			MatchID:     id,
			Description: cleanText(firstNonEmpty(item.Title, item.Description)),
			URL:         firstNonEmpty(link, strings.TrimSpace(item.GUID)),
		})
	}
	return out, nil
}

func feedMatchID(raw string) int64 {
	m := htmlPageID.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

package normalize

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

const nextDataSelector = "script#__NEXT_DATA__"

// DecodeJSON turns a JSON body into a generic tree of maps, slices and scalars.
func DecodeJSON(body []byte) (any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &StructureError{Path: "$", Err: crerr.Wrap(ErrMalformedPayload, "empty body")}
	}
	var tree any
	if err := sonic.Unmarshal(trimmed, &tree); err != nil {
		return nil, &StructureError{Path: "$", Err: crerr.WithSecondaryError(crerr.Wrap(ErrMalformedPayload, "decode json"), err)}
	}
	return tree, nil
}

// DecodeHTML parses an HTML body for targeted lookups.
func DecodeHTML(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &StructureError{Shape: rawdata.ShapeHTMLTable, Path: "$", Err: crerr.Wrap(err, "parse html")}
	}
	return doc, nil
}

// ExtractNextData returns the JSON text embedded in a rendered page's
// __NEXT_DATA__ script tag.
func ExtractNextData(page []byte) ([]byte, error) {
	doc, err := DecodeHTML(page)
	if err != nil {
		return nil, err
	}
	script := strings.TrimSpace(doc.Find(nextDataSelector).First().Text())
	if script == "" {
		return nil, crerr.Wrapf(ErrNoScorecard, "page has no %s", nextDataSelector)
	}
	return []byte(script), nil
}

// DecodeTree decodes a JSON payload, unwrapping rendered pages first.
func DecodeTree(payload rawdata.Payload) (any, error) {
	body := bytes.TrimSpace(payload.Body)
	if len(body) > 0 && body[0] == '<' {
		extracted, err := ExtractNextData(body)
		if err != nil {
			return nil, err
		}
		body = extracted
	}
	return DecodeJSON(body)
}

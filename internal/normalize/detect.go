package normalize

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// Entry is the detected shape plus the sub-tree that holds match data.
type Entry struct {
	Shape rawdata.SourceShape
	Root  map[string]any
}

// Detect classifies a decoded payload. Embedded page data is recognised
// first (either inside a rendered page or as the bare match/content pair the
// consumer API serves), then the legacy engine layout (which also carries a
// top-level innings list), then the flat core layout.
func Detect(tree any) (Entry, error) {
	top := asMap(tree)
	if top == nil {
		return Entry{}, &StructureError{Path: "$", Err: crerr.Wrap(ErrMalformedPayload, "payload is not an object")}
	}

	if props := mapAt(top, "props", "appPageProps"); props != nil {
		root, err := resolvePageData(props)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Shape: rawdata.ShapeEmbeddedPageJSON, Root: root}, nil
	}

	if hasKeys(top, "match", "content") && asMap(top["match"]) != nil && asMap(top["content"]) != nil {
		return Entry{Shape: rawdata.ShapeEmbeddedPageJSON, Root: top}, nil
	}

	if hasKeys(top, "match", "description", "team") && asMap(top["match"]) != nil {
		return Entry{Shape: rawdata.ShapeLegacyEngineJSON, Root: top}, nil
	}

	if hasKeys(top, "match", "innings") && asMap(top["match"]) != nil {
		return Entry{Shape: rawdata.ShapeCoreAPIJSON, Root: top}, nil
	}

	return Entry{}, &StructureError{Path: "$", Err: ErrMalformedPayload}
}

// resolvePageData handles the optional second data wrapper: live pages put
// match/content directly under data, fixture pages nest them one level deeper.
func resolvePageData(props map[string]any) (map[string]any, error) {
	raw, ok := props["data"]
	if !ok || raw == nil {
		return nil, crerr.Wrap(ErrNoScorecard, "props.appPageProps.data is empty")
	}
	data := asMap(raw)
	if data == nil {
		return nil, structureErrorf(rawdata.ShapeEmbeddedPageJSON, "props.appPageProps.data", "expected object, got %T", raw)
	}
	if hasKeys(data, "match", "content") && asMap(data["match"]) != nil {
		return data, nil
	}
	if nested := asMap(data["data"]); nested != nil && asMap(nested["match"]) != nil {
		return nested, nil
	}
	return nil, structureErrorf(rawdata.ShapeEmbeddedPageJSON, "props.appPageProps.data", "neither data nor data.data holds a match")
}

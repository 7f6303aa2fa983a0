package cricinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
)

// MatchRef names a match without fetching it. It is comparable, so == is
// equality. ToMatch performs the fetch.
type MatchRef struct {
	SeriesID int64 `json:"series_id"`
	MatchID  int64 `json:"match_id"`
}

const (
	refKeySeriesID = "series_id"
	refKeyMatchID  = "match_id"
)

// NewMatchRef builds a ref from integers or their decimal string form.
func NewMatchRef(seriesID, matchID any) (MatchRef, error) {
	series, err := coerceID(refKeySeriesID, seriesID)
	if err != nil {
		return MatchRef{}, err
	}
	m, err := coerceID(refKeyMatchID, matchID)
	if err != nil {
		return MatchRef{}, err
	}
	ref := MatchRef{SeriesID: series, MatchID: m}
	if err := ref.Validate(); err != nil {
		return MatchRef{}, err
	}
	return ref, nil
}

// Validate requires both ids to be positive.
func (r MatchRef) Validate() error {
	if err := r.domain().Validate(); err != nil {
		return fmt.Errorf("%w: match ref %d/%d: %v", ErrInvalidInput, r.SeriesID, r.MatchID, err)
	}
	return nil
}

func (r MatchRef) String() string {
	return fmt.Sprintf("%d/%d", r.SeriesID, r.MatchID)
}

func (r MatchRef) ToMap() map[string]any {
	return map[string]any{
		refKeySeriesID: r.SeriesID,
		refKeyMatchID:  r.MatchID,
	}
}

// MatchRefFromMap reverses ToMap. Values may be any integer type, an
// integral float (as decoded JSON produces) or a decimal string.
func MatchRefFromMap(values map[string]any) (MatchRef, error) {
	series, ok := values[refKeySeriesID]
	if !ok {
		return MatchRef{}, fmt.Errorf("%w: missing %s", ErrInvalidInput, refKeySeriesID)
	}
	m, ok := values[refKeyMatchID]
	if !ok {
		return MatchRef{}, fmt.Errorf("%w: missing %s", ErrInvalidInput, refKeyMatchID)
	}
	return NewMatchRef(series, m)
}

// ToCSVRow returns the ordered pair (series id, match id).
func (r MatchRef) ToCSVRow() []string {
	return []string{
		strconv.FormatInt(r.SeriesID, 10),
		strconv.FormatInt(r.MatchID, 10),
	}
}

func MatchRefFromCSVRow(row []string) (MatchRef, error) {
	if len(row) != 2 {
		return MatchRef{}, fmt.Errorf("%w: csv row needs 2 columns, got %d", ErrInvalidInput, len(row))
	}
	return NewMatchRef(row[0], row[1])
}

// ToMatch fetches and normalizes the match.
func (r MatchRef) ToMatch(ctx context.Context, client *Client) (*Match, error) {
	return client.MatchByRef(ctx, r)
}

func (r MatchRef) domain() match.Ref {
	return match.Ref{SeriesID: r.SeriesID, MatchID: r.MatchID}
}

func fromDomainRefs(refs []match.Ref) []MatchRef {
	out := make([]MatchRef, len(refs))
	for idx, ref := range refs {
		out[idx] = MatchRef{SeriesID: ref.SeriesID, MatchID: ref.MatchID}
	}
	return out
}

func coerceID(field string, raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return coerceUint(field, uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return coerceUint(field, v)
	case float32:
		return coerceFloat(field, float64(v))
	case float64:
		return coerceFloat(field, v)
	case json.Number:
		return parseID(field, v.String())
	case string:
		return parseID(field, v)
	default:
		return 0, fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidInput, field, raw)
	}
}

func parseID(field, raw string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidInput, field, raw, err)
	}
	return value, nil
}

func coerceUint(field string, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s %d overflows int64", ErrInvalidInput, field, v)
	}
	return int64(v), nil
}

// 2^63 is exactly representable as a float64 but not as an int64, so the
// upper bound is exclusive.
func coerceFloat(field string, v float64) (int64, error) {
	if v != math.Trunc(v) || math.Abs(v) >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s %v is not an integer", ErrInvalidInput, field, v)
	}
	return int64(v), nil
}

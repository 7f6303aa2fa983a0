package cricinfo

import (
	"context"
	"time"
)

// Summary is the list of matches on the results page of one day.
type Summary struct {
	Date    time.Time
	Matches []MatchRef

	client *Client
}

// Hydrate fetches every listed match in order.
func (s *Summary) Hydrate(ctx context.Context) ([]*Match, error) {
	if len(s.Matches) == 0 {
		return []*Match{}, nil
	}
	return s.client.Matches(ctx, s.Matches)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricinfo"
)

func loadMatch(t *testing.T, name string, seriesID, matchID int64) *cricinfo.Match {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("..", "..", "internal", "normalize", "testdata", name))
	require.NoError(t, err)
	record, err := cricinfo.Normalize(cricinfo.RawPayload{Body: body}, matchID, seriesID)
	require.NoError(t, err)
	return cricinfo.NewMatch(record)
}

func TestRenderMatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderMatch(&buf, loadMatch(t, "page_1478914.json", 1478874, 1478914))
	out := buf.String()

	for _, want := range []string{"IND Women v AUS Women", "WT20I", "Adelaide Oval", "IND-W, chose to bat", "AUS-W", "177"} {
		if !strings.Contains(out, want) {
			t.Fatalf("match output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMatch_Dormant(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderMatch(&buf, loadMatch(t, "page_dormant.json", 1478874, 1478920))
	assert.Contains(t, buf.String(), "dormant")
	assert.NotContains(t, buf.String(), "Innings")
}

func TestRenderScorecard(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderScorecard(&buf, loadMatch(t, "page_1478914.json", 1478874, 1478914))
	out := buf.String()

	assert.Contains(t, out, "Smriti Mandhana")
	assert.Contains(t, out, "did not bat")
	assert.Contains(t, out, "Innings 2")
	assert.Contains(t, strings.ToUpper(out), "EXTRAS")

	buf.Reset()
	renderScorecard(&buf, loadMatch(t, "page_dormant.json", 1478874, 1478920))
	assert.Contains(t, buf.String(), "no innings yet")
}

func TestRenderRefsAndRaw(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderRefs(&buf, "Results 2026-02-15", []cricinfo.MatchRef{{SeriesID: 1478874, MatchID: 1478914}})
	assert.Contains(t, buf.String(), "1478914")

	buf.Reset()
	renderRawPayloads(&buf, []cricinfo.RawPayload{{EntityType: "match", EntityKey: "1478914", Body: []byte("{}")}})
	assert.Contains(t, buf.String(), "1478914")
	assert.Contains(t, buf.String(), "unknown")
}

func TestParseID(t *testing.T) {
	t.Parallel()

	got, err := parseID("ground id", " 56490 ")
	require.NoError(t, err)
	assert.Equal(t, int64(56490), got)

	for _, raw := range []string{"", "0", "-4", "abc"} {
		_, err := parseID("ground id", raw)
		assert.ErrorIs(t, err, cricinfo.ErrInvalidInput, "raw %q", raw)
	}
}

func TestFriendlyKeepsChain(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"not found":   fmt.Errorf("ground 7: %w", cricinfo.ErrNotFound),
		"unavailable": fmt.Errorf("status 503: %w", cricinfo.ErrDependencyUnavailable),
		"scorecard":   cricinfo.ErrNoScorecard,
	}
	for name, err := range cases {
		got := friendly(err)
		if !errors.Is(got, err) {
			t.Fatalf("%s: chain lost got=%v want=%v", name, got, err)
		}
		if got.Error() == err.Error() {
			t.Fatalf("%s: expected a friendlier message, got=%q", name, got)
		}
	}
	assert.NoError(t, friendly(nil))
}

func TestRun_RejectsBadArgs(t *testing.T) {
	err := run(context.Background(), []string{"match", "abc", "1478914"})
	assert.ErrorIs(t, err, cricinfo.ErrInvalidInput)

	err = run(context.Background(), []string{"ground"})
	assert.Error(t, err)
}

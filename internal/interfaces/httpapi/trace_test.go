package httpapi

import "testing"

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"httpapi.Handler.GetMatch":     true,
		"httpapi.Handler.GetScorecard": true,
		"httpapi.RequestLogging":       false,
		"httpapi.writeError":           false,
		"":                             false,
	}
	for name, want := range tests {
		if got := shouldCreateHTTPAPISpan(name); got != want {
			t.Fatalf("shouldCreateHTTPAPISpan(%q) got=%v want=%v", name, got, want)
		}
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/healthz":                           false,
		" /HEALTHZ ":                         false,
		"/readyz":                            false,
		"/v1/live":                           true,
		"/v1/summary":                        true,
		"/v1/series/1478874/matches/1478914": true,
	}
	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q) got=%v want=%v", path, got, want)
		}
	}
}

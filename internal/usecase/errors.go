package usecase

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/cricinfo/internal/normalize"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
	// ErrNoScorecard means the match exists but has no data yet. Callers may
	// retry later; nothing here retries it.
	ErrNoScorecard = normalize.ErrNoScorecard
)

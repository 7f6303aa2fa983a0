package normalize

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

var (
	// ErrStructure marks payloads that do not match a known shape or break a
	// record invariant.
	ErrStructure = crerr.New("unexpected payload structure")
	// ErrMalformedPayload is the ErrStructure case where no known shape matched.
	ErrMalformedPayload = crerr.Wrap(ErrStructure, "malformed payload")
	// ErrNoScorecard means the page exists but carries no match data yet.
	ErrNoScorecard = crerr.New("no scorecard available")
)

// StructureError reports where in a payload normalization gave up.
type StructureError struct {
	Shape rawdata.SourceShape
	Path  string
	Err   error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structure error shape=%s path=%s: %v", e.Shape, e.Path, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

func structureErrorf(shape rawdata.SourceShape, path, format string, args ...any) error {
	return &StructureError{Shape: shape, Path: path, Err: crerr.Newf(format, args...)}
}

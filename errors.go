package cricinfo

import (
	"github.com/riskibarqy/cricinfo/internal/normalize"
	"github.com/riskibarqy/cricinfo/internal/usecase"
)

// Errors returned by the client. Match them with errors.Is; a
// *StructureError additionally carries the shape and path that failed.
var (
	ErrNotFound              = usecase.ErrNotFound
	ErrNoScorecard           = usecase.ErrNoScorecard
	ErrInvalidInput          = usecase.ErrInvalidInput
	ErrDependencyUnavailable = usecase.ErrDependencyUnavailable
	ErrStructure             = normalize.ErrStructure
	ErrMalformedPayload      = normalize.ErrMalformedPayload
)

type StructureError = normalize.StructureError

package service

import "errors"

// Sentinel errors for the generation pipeline and persistence layer.
// Failures are surfaced to the caller unmodified; there is no automatic
// retry and no partial-result degradation. Wrap with fmt.Errorf("%w: ...")
// so callers can classify with errors.Is.
var (
	ErrValidation         = errors.New("invalid request")
	ErrGeneration         = errors.New("recipe generation failed")
	ErrEnrichment         = errors.New("image enrichment failed")
	ErrTranslation        = errors.New("instruction translation failed")
	ErrPersistence        = errors.New("persistence failed")
	ErrAuthRequired       = errors.New("authentication required")
	ErrGenerationInFlight = errors.New("a generation is already in flight for this user")
	ErrNotFound           = errors.New("not found")
)

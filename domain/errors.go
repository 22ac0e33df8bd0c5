package domain

import "errors"

// Engine error taxonomy. Services wrap these with fmt.Errorf("...: %w", err)
// so the REST boundary can classify with errors.Is.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidMagnitude = errors.New("magnitude cannot be negative")
	ErrNotFound         = errors.New("not found")
	ErrInvalidScenario  = errors.New("invalid scenario")
	ErrInvalidBudget    = errors.New("budget must be greater than 0")
	ErrInvalidTimeline  = errors.New("timeline must be greater than 0")
)

package order

import (
	"errors"
	"fmt"
)

var ErrInvalidStatus = errors.New("invalid status")

// Statuses form a flat set: any known value may replace any other.
var knownStatuses = map[Status]struct{}{
	StatusPending:   {},
	StatusPreparing: {},
	StatusReady:     {},
	StatusCompleted: {},
}

// ParseStatus accepts only the exact, case-sensitive status literals.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := knownStatuses[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

package core

import (
	"time"

	"attendance.service/internal/core/model"
)

// Clock supplies the current instant and calendar day. Injected so tests
// can pin the date instead of depending on wall-clock time.
type Clock interface {
	Now() time.Time
	Today() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func (systemClock) Today() string { return time.Now().UTC().Format(model.DateLayout) }

// SystemClock returns a Clock backed by the real UTC wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock is a Clock pinned to a single instant, for tests and fixtures.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

func (c FixedClock) Today() string { return c.Instant.Format(model.DateLayout) }

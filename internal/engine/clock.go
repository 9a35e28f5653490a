package engine

import "time"

// Clock is the platform time source spec.md treats as an external
// collaborator. The default wraps time.Now/time.Since; tests can
// inject a fake to make time-control behavior deterministic without
// sleeping.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock, backed by the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the engine's default time source.
var SystemClock Clock = systemClock{}

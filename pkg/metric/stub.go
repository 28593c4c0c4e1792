package metric

import "time"

type stub struct{}

// NewStub returns a no-op Metrics implementation,
// used until a real metrics backend is plugged in.
func NewStub() Metrics {
	return stub{}
}

func (s stub) With(Labels) Metrics {
	return s
}

func (s stub) Increment(string) {}

func (s stub) Count(string, int) {}

func (s stub) Duration(string, time.Duration) {}

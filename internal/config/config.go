package config

import "fmt"

// Values used for any field the builder was never given.
const (
	DefaultMinimum  = 0
	DefaultMaximum  = 100
	DefaultAttempts = 10
)

// Configuration is the immutable game setup: the guessing range and how
// many attempts a player gets.
type Configuration struct {
	minimum  int
	maximum  int
	attempts int
}

func (c Configuration) Minimum() int  { return c.minimum }
func (c Configuration) Maximum() int  { return c.maximum }
func (c Configuration) Attempts() int { return c.attempts }

// IsConsistent reports whether the range is non-empty and at least one
// attempt is allowed.
func (c Configuration) IsConsistent() bool {
	return c.minimum < c.maximum && c.attempts > 0
}

func (c Configuration) String() string {
	return fmt.Sprintf("minimum=%d maximum=%d attempts=%d", c.minimum, c.maximum, c.attempts)
}

// Default returns the configuration used when nothing usable was loaded.
func Default() Configuration {
	return NewBuilder().Build()
}

// Builder collects configuration fields. The zero value is not usable,
// start from NewBuilder.
type Builder struct {
	minimum  int
	maximum  int
	attempts int
}

func NewBuilder() *Builder {
	return &Builder{
		minimum:  DefaultMinimum,
		maximum:  DefaultMaximum,
		attempts: DefaultAttempts,
	}
}

func (b *Builder) Minimum(n int) *Builder {
	b.minimum = n
	return b
}

func (b *Builder) Maximum(n int) *Builder {
	b.maximum = n
	return b
}

func (b *Builder) Attempts(n int) *Builder {
	b.attempts = n
	return b
}

// Build returns a new Configuration. It does not validate; callers check
// IsConsistent.
func (b *Builder) Build() Configuration {
	return Configuration{
		minimum:  b.minimum,
		maximum:  b.maximum,
		attempts: b.attempts,
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderDefaults(t *testing.T) {
	c := NewBuilder().Build()

	assert.Equal(t, DefaultMinimum, c.Minimum())
	assert.Equal(t, DefaultMaximum, c.Maximum())
	assert.Equal(t, DefaultAttempts, c.Attempts())
	assert.Equal(t, c, Default())
}

func TestBuilderBuildTwice(t *testing.T) {
	b := NewBuilder().Minimum(0).Maximum(100).Attempts(10)
	first := b.Build()
	second := b.Build()

	assert.Equal(t, first, second)

	b.Maximum(50)
	assert.Equal(t, 100, first.Maximum(), "built values must not follow later builder changes")
	assert.Equal(t, 50, b.Build().Maximum())
}

func TestIsConsistent(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		attempts int
		want     bool
	}{
		{name: "defaults", min: 0, max: 100, attempts: 10, want: true},
		{name: "single step range", min: 5, max: 6, attempts: 1, want: true},
		{name: "negative range", min: -20, max: -10, attempts: 3, want: true},
		{name: "min equals max", min: 7, max: 7, attempts: 3, want: false},
		{name: "min above max", min: 10, max: 1, attempts: 3, want: false},
		{name: "zero attempts", min: 0, max: 10, attempts: 0, want: false},
		{name: "negative attempts", min: 0, max: 10, attempts: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBuilder().Minimum(tt.min).Maximum(tt.max).Attempts(tt.attempts).Build()
			assert.Equal(t, tt.want, c.IsConsistent())
		})
	}
}

func TestString(t *testing.T) {
	c := NewBuilder().Minimum(10).Maximum(20).Attempts(3).Build()
	assert.Equal(t, "minimum=10 maximum=20 attempts=3", c.String())
}

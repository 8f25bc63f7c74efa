// Package model holds the game state: the secret number and the attempts
// left to guess it.
package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/idilsaglam/drawnumber/internal/config"
)

var ErrGuessOutOfRange = errors.New("guess out of range")

// Source is the randomness behind secret selection.
type Source interface {
	// Uint64N returns a value in [0, n). n > 0.
	Uint64N(n uint64) uint64
}

type defaultSource struct{}

func (defaultSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// DrawNumber is safe for concurrent use.
type DrawNumber struct {
	cfg config.Configuration
	src Source

	mu           sync.Mutex
	secret       int
	attemptsLeft int
}

// New starts a round for cfg. A nil src uses math/rand/v2.
// cfg must be consistent.
func New(cfg config.Configuration, src Source) *DrawNumber {
	if src == nil {
		src = defaultSource{}
	}
	d := &DrawNumber{cfg: cfg, src: src}
	d.Reset()
	return d
}

// Attempt evaluates guess. Once no attempts remain every call returns
// NoAttemptsLeft, whatever the guess. Guesses outside the range fail with
// ErrGuessOutOfRange and do not consume an attempt.
func (d *DrawNumber) Attempt(guess int) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.attemptsLeft <= 0 {
		return NoAttemptsLeft, nil
	}
	if guess < d.cfg.Minimum() || guess > d.cfg.Maximum() {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrGuessOutOfRange, guess, d.cfg.Minimum(), d.cfg.Maximum())
	}
	d.attemptsLeft--
	switch {
	case guess > d.secret:
		return TooHigh, nil
	case guess < d.secret:
		return TooLow, nil
	}
	return Correct, nil
}

// Reset draws a new secret and restores the configured attempts.
func (d *DrawNumber) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.secret = draw(d.src, d.cfg.Minimum(), d.cfg.Maximum())
	d.attemptsLeft = d.cfg.Attempts()
}

func (d *DrawNumber) AttemptsLeft() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attemptsLeft
}

func (d *DrawNumber) Config() config.Configuration { return d.cfg }

// draw picks a value in [lo, hi]. The distance is computed in uint64 so
// ranges wider than math.MaxInt do not overflow.
func draw(src Source, lo, hi int) int {
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		// whole int range: [0, span] has no uint64 size, hi is left out
		return int(uint64(lo) + src.Uint64N(span))
	}
	return int(uint64(lo) + src.Uint64N(span+1))
}

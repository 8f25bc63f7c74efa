package model

// Result is the outcome of a single attempt.
type Result int

const (
	Correct Result = iota
	TooLow
	TooHigh
	NoAttemptsLeft
)

func (r Result) String() string {
	switch r {
	case Correct:
		return "You won!"
	case TooLow:
		return "Your guess is too low"
	case TooHigh:
		return "Your guess is too high"
	case NoAttemptsLeft:
		return "You lost: no attempts left"
	}
	return "unknown result"
}

// Over reports whether the round has ended with this result.
func (r Result) Over() bool { return r == Correct || r == NoAttemptsLeft }

package domain

// Activity level bounds for the Monitor panel.
const (
	MinActivityLevel = 1
	MaxActivityLevel = 5
)

// ActivityLevel is the 1–5 value collected by the Monitor panel. The
// controls refuse to move outside the range instead of wrapping.
type ActivityLevel int

// NewActivityLevel returns the starting level.
func NewActivityLevel() ActivityLevel {
	return MinActivityLevel
}

// Increment returns the next level, or the same level at the maximum.
func (a ActivityLevel) Increment() ActivityLevel {
	if a.CanIncrement() {
		return a + 1
	}
	return a.clamp()
}

// Decrement returns the previous level, or the same level at the minimum.
func (a ActivityLevel) Decrement() ActivityLevel {
	if a.CanDecrement() {
		return a - 1
	}
	return a.clamp()
}

// CanIncrement reports whether the increment control is live.
func (a ActivityLevel) CanIncrement() bool {
	return a < MaxActivityLevel
}

// CanDecrement reports whether the decrement control is live.
func (a ActivityLevel) CanDecrement() bool {
	return a > MinActivityLevel
}

func (a ActivityLevel) clamp() ActivityLevel {
	if a < MinActivityLevel {
		return MinActivityLevel
	}
	if a > MaxActivityLevel {
		return MaxActivityLevel
	}
	return a
}

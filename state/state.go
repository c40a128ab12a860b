package state

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxWidth is the number of positions a State can represent.
const MaxWidth = 64

// Pattern characters understood by Encode.
const (
	On  = '#'
	Off = '.'
)

// ErrInvalidEncoding is returned when a raw description cannot be mapped to a State.
var ErrInvalidEncoding = errors.New("state: invalid encoding")

// State is a fixed-width bitmask snapshot of a configuration or a marker set.
type State uint64

// Encode maps a pattern such as ".##." to a State: the character at index i
// sets bit i when it is On and leaves it clear when it is Off.
// Complexity: O(len(pattern)).
func Encode(pattern string) (State, error) {
	if len(pattern) > MaxWidth {
		return 0, fmt.Errorf("%w: pattern width %d exceeds %d bits", ErrInvalidEncoding, len(pattern), MaxWidth)
	}
	var s State
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case On:
			s |= 1 << uint(i)
		case Off:
		default:
			return 0, fmt.Errorf("%w: unexpected %q at index %d", ErrInvalidEncoding, pattern[i], i)
		}
	}

	return s, nil
}

// FromPositions returns the State with exactly the given positions set.
// Repeated positions are allowed and set the bit once.
func FromPositions(positions ...int) (State, error) {
	var s State
	for _, p := range positions {
		if p < 0 || p >= MaxWidth {
			return 0, fmt.Errorf("%w: position %d outside [0,%d)", ErrInvalidEncoding, p, MaxWidth)
		}
		s |= 1 << uint(p)
	}

	return s, nil
}

// Apply toggles every bit of op in s.
func Apply(s, op State) State {
	return s ^ op
}

// Has reports whether position i is set. Out-of-range positions are never set.
func (s State) Has(i int) bool {
	if i < 0 || i >= MaxWidth {
		return false
	}

	return s&(1<<uint(i)) != 0
}

// With returns s with position i set. Out-of-range positions leave s unchanged.
func (s State) With(i int) State {
	if i < 0 || i >= MaxWidth {
		return s
	}

	return s | 1<<uint(i)
}

// Contains reports whether every bit of required is also set in s.
func (s State) Contains(required State) bool {
	return s&required == required
}

// Count returns the number of set positions.
func (s State) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Positions lists the set positions in ascending order.
func (s State) Positions() []int {
	out := make([]int, 0, s.Count())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}

// Pattern renders the lowest width positions of s using On and Off.
// It is the inverse of Encode for patterns of the same width.
func (s State) Pattern(width int) string {
	if width < 0 {
		width = 0
	}
	if width > MaxWidth {
		width = MaxWidth
	}
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		if s.Has(i) {
			b.WriteByte(On)
		} else {
			b.WriteByte(Off)
		}
	}

	return b.String()
}

// String implements fmt.Stringer as a binary literal, lowest bit last.
func (s State) String() string {
	return fmt.Sprintf("%#b", uint64(s))
}

package crack

import (
	"fmt"
	"math/bits"
)

// DefaultAlphabet is the lowercase ASCII alphabet a–z.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Alphabet is an ordered set of characters. Candidate order follows the
// order of the characters in the alphabet, not their code points.
type Alphabet []rune

// NewAlphabet builds an Alphabet from s, keeping the order of s.
// It returns [ErrInvalidAlphabet] if s is empty or repeats a character.
func NewAlphabet(s string) (Alphabet, error) {
	a := Alphabet(s)
	if len(a) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}
	seen := make(map[rune]struct{}, len(a))
	for _, r := range a {
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: %q appears more than once", ErrInvalidAlphabet, r)
		}
		seen[r] = struct{}{}
	}
	return a, nil
}

// MustAlphabet is like [NewAlphabet] but panics on error. It is intended for
// package-level literals.
func MustAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of characters.
func (a Alphabet) Size() int { return len(a) }

// String returns the characters in order.
func (a Alphabet) String() string { return string(a) }

// SpaceSize returns len(a)^length, the number of candidates of exactly that
// length. The boolean is false if the result does not fit in a uint64.
func SpaceSize(a Alphabet, length int) (uint64, bool) {
	n := uint64(1)
	base := uint64(len(a))
	for i := 0; i < length; i++ {
		hi, lo := bits.Mul64(n, base)
		if hi != 0 {
			return 0, false
		}
		n = lo
	}
	return n, true
}

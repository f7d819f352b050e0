package crack

import "errors"

var (
	// ErrInvalidAlphabet is returned by [NewAlphabet] for an empty alphabet or
	// one that repeats a character.
	ErrInvalidAlphabet = errors.New("crack: invalid alphabet")

	// ErrInvalidConfig is returned when a search is configured with a nil
	// crypter or length bounds outside 1 ≤ min ≤ max.
	ErrInvalidConfig = errors.New("crack: invalid configuration")
)

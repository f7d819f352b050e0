package shadow

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Parse] and [Lookup].
//
// A line that belongs to a different account yields [ErrUserMismatch]; this
// is a skip, not a failure, and scanning continues with the next line.
var (
	// ErrUserMismatch is returned by [Parse] when the line has no username
	// field or the username differs from the target.
	ErrUserMismatch = errors.New("shadow: line belongs to a different user")

	// ErrMalformedHashField is returned when the target user's password field
	// does not have the $id$salt$digest structure.
	ErrMalformedHashField = errors.New("shadow: malformed password hash field")

	// ErrNoHash is returned when the password field is empty, locked ("!",
	// "*") or otherwise not a crypt(3) hash. It wraps [ErrMalformedHashField].
	ErrNoHash = fmt.Errorf("%w: no usable password hash", ErrMalformedHashField)

	// ErrUserNotFound is returned by [Lookup] when no line names the target
	// user.
	ErrUserNotFound = errors.New("shadow: user not found")
)

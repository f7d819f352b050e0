package shadow

import (
	"fmt"
	"strings"
)

const (
	// Delimiter separates the algorithm id, salt and digest in a password
	// field and also opens it.
	Delimiter = '$'

	// MinFieldLength is the shortest password field considered a hash.
	// Anything shorter is an empty, locked or legacy entry.
	MinFieldLength = 10

	fieldSep = ":"
)

// Parse extracts the hash descriptor for username from one credential line
// of the form "username:password_field:...". Fields after the password field
// are ignored.
//
// It returns [ErrUserMismatch] when the line belongs to someone else (the
// caller should keep scanning), [ErrNoHash] when the field is empty, locked
// or too short, and [ErrMalformedHashField] when the $id$salt$digest
// structure is broken. Parse is a pure function.
func Parse(line, username string) (Descriptor, error) {
	user, rest, ok := strings.Cut(line, fieldSep)
	if !ok || user != username {
		return Descriptor{}, ErrUserMismatch
	}
	field, _, ok := strings.Cut(rest, fieldSep)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: record for %q has no field terminator", ErrMalformedHashField, user)
	}
	return ParseField(field)
}

// ParseField parses a bare password field ("$6$abcSalt$deadbeef").
//
// The digest is the segment after the last delimiter. Any parameter segments
// between the id and the salt ("rounds=5000", yescrypt's "j9T", argon2's
// "v=19" and "m=…,t=…,p=…") stay in Salt so that SaltSpec carries every
// input the primitive needs.
func ParseField(field string) (Descriptor, error) {
	if len(field) < MinFieldLength || field[0] != Delimiter {
		return Descriptor{}, ErrNoHash
	}

	idEnd := strings.IndexByte(field[1:], Delimiter) + 1
	if idEnd == 0 {
		return Descriptor{}, fmt.Errorf("%w: missing delimiter after algorithm id", ErrMalformedHashField)
	}
	last := strings.LastIndexByte(field, Delimiter)
	if last == idEnd {
		return Descriptor{}, fmt.Errorf("%w: missing delimiter after salt", ErrMalformedHashField)
	}

	d := Descriptor{
		Algorithm: field[1:idEnd],
		Salt:      field[idEnd+1 : last],
		Digest:    field[last+1:],
	}
	switch {
	case d.Algorithm == "":
		return Descriptor{}, fmt.Errorf("%w: empty algorithm id", ErrMalformedHashField)
	case d.Salt == "":
		return Descriptor{}, fmt.Errorf("%w: empty salt", ErrMalformedHashField)
	case d.Digest == "":
		return Descriptor{}, fmt.Errorf("%w: empty digest", ErrMalformedHashField)
	}
	d.SaltSpec = string(Delimiter) + d.Algorithm + string(Delimiter) + d.Salt + string(Delimiter)
	return d, nil
}

package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	full, err := crypter.Crypt(candidate, saltSpec)
//	if errors.Is(err, hashing.ErrInvalidSaltSpec) {
//	    // spec is malformed for this algorithm
//	}
var (
	// ErrInvalidSaltSpec is returned when a salt spec cannot be used by a
	// driver because it has the wrong prefix, missing fields, or invalid
	// encoding.
	ErrInvalidSaltSpec = errors.New("hashing: invalid or unrecognised salt spec")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Crypt] when the requested driver has not been registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilCrypter is returned by [Manager.RegisterDriver] when a nil
	// [Crypter] is supplied.
	ErrNilCrypter = errors.New("hashing: crypter must not be nil")

	// ErrAlgorithmMismatch is returned by a driver when the salt spec names a
	// different algorithm than the one implemented by that driver.
	ErrAlgorithmMismatch = errors.New("hashing: salt spec names a different algorithm")

	// ErrMakeUnsupported is returned by [Manager.Make] when the selected
	// driver cannot generate fresh hashes.
	ErrMakeUnsupported = errors.New("hashing: driver cannot generate new hashes")
)

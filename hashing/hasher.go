package hashing

import "strings"

// DriverName identifies a crypt(3)-style hashing driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

const (
	// DriverMD5Crypt selects the FreeBSD MD5-crypt driver ($1$).
	DriverMD5Crypt DriverName = "md5crypt"
	// DriverAPR1 selects the Apache MD5 variant ($apr1$).
	DriverAPR1 DriverName = "apr1"
	// DriverSHA256Crypt selects the Drepper SHA-256 crypt driver ($5$).
	DriverSHA256Crypt DriverName = "sha256crypt"
	// DriverSHA512Crypt selects the Drepper SHA-512 crypt driver ($6$).
	// This is the most common family in Linux shadow files.
	DriverSHA512Crypt DriverName = "sha512crypt"
	// DriverYescrypt selects the yescrypt driver ($y$), the default on
	// recent Debian, Ubuntu and Fedora releases.
	DriverYescrypt DriverName = "yescrypt"
	// DriverArgon2i selects the Argon2i driver ($argon2i$).
	DriverArgon2i DriverName = "argon2i"
	// DriverArgon2id selects the Argon2id driver ($argon2id$).
	DriverArgon2id DriverName = "argon2id"
)

// algorithmIDs maps the token found between the first two '$' characters of
// a salt spec to the driver that understands it.
var algorithmIDs = map[string]DriverName{
	"1":        DriverMD5Crypt,
	"apr1":     DriverAPR1,
	"5":        DriverSHA256Crypt,
	"6":        DriverSHA512Crypt,
	"y":        DriverYescrypt,
	"argon2i":  DriverArgon2i,
	"argon2id": DriverArgon2id,
}

// Crypter is the capability the brute-force engine depends on.
//
// Crypt hashes candidate using the algorithm and salt encoded in saltSpec
// ("$<id>$<salt>$") and returns the full encoded hash, i.e. saltSpec
// followed by a freshly computed digest. An error means the candidate/spec
// pair is not acceptable to the algorithm; callers treat it as a non-match.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Crypter interface {
	Crypt(candidate, saltSpec string) (string, error)
}

// CrypterFunc adapts an ordinary function to the [Crypter] interface.
type CrypterFunc func(candidate, saltSpec string) (string, error)

// Crypt calls f(candidate, saltSpec).
func (f CrypterFunc) Crypt(candidate, saltSpec string) (string, error) {
	return f(candidate, saltSpec)
}

// Maker is implemented by drivers that can produce a brand-new hash with a
// random salt. It is used to build test fixtures and demo shadow lines.
type Maker interface {
	Make(password string) (string, error)
}

// AlgorithmID extracts the algorithm token from a salt spec or full hash:
// "$6$abc$" → "6". The second return value is false when s does not start
// with '$' or has no closing delimiter after the id.
func AlgorithmID(s string) (string, bool) {
	if !strings.HasPrefix(s, "$") {
		return "", false
	}
	end := strings.IndexByte(s[1:], '$')
	if end <= 0 {
		return "", false
	}
	return s[1 : end+1], true
}

// DetectDriver inspects a salt spec (or a full hash) and returns the
// [DriverName] that understands it. It does not validate the salt itself.
//
// The second return value is false when the algorithm id is not recognised.
func DetectDriver(saltSpec string) (DriverName, bool) {
	id, ok := AlgorithmID(saltSpec)
	if !ok {
		return "", false
	}
	d, ok := algorithmIDs[id]
	return d, ok
}

// ParseDriverName accepts either a driver name ("sha512crypt") or an
// algorithm id ("6") and returns the matching [DriverName].
func ParseDriverName(s string) (DriverName, bool) {
	if d, ok := algorithmIDs[s]; ok {
		return d, true
	}
	for _, d := range algorithmIDs {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

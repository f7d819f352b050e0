package hashing

import (
	"fmt"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/apr1_crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
)

// UnixCrypter implements the glibc/libxcrypt MD5, APR1, SHA-256 and SHA-512
// crypt families on top of github.com/GehirnInc/crypt.
//
// The salt spec is forwarded unchanged, so "$6$rounds=656000$salt$" style
// specs keep their explicit round count and the output reproduces it.
//
// # Thread safety
//
// The underlying crypters keep no per-call state; UnixCrypter is safe for
// concurrent use.
type UnixCrypter struct {
	driver DriverName
	c      crypt.Crypter
}

// NewMD5Crypter returns a $1$ driver.
func NewMD5Crypter() *UnixCrypter {
	return &UnixCrypter{driver: DriverMD5Crypt, c: md5_crypt.New()}
}

// NewAPR1Crypter returns an $apr1$ driver.
func NewAPR1Crypter() *UnixCrypter {
	return &UnixCrypter{driver: DriverAPR1, c: apr1_crypt.New()}
}

// NewSHA256Crypter returns a $5$ driver.
func NewSHA256Crypter() *UnixCrypter {
	return &UnixCrypter{driver: DriverSHA256Crypt, c: sha256_crypt.New()}
}

// NewSHA512Crypter returns a $6$ driver.
func NewSHA512Crypter() *UnixCrypter {
	return &UnixCrypter{driver: DriverSHA512Crypt, c: sha512_crypt.New()}
}

// Driver returns the DriverName implemented by this crypter.
func (u *UnixCrypter) Driver() DriverName { return u.driver }

// Crypt hashes candidate with the salt encoded in saltSpec.
func (u *UnixCrypter) Crypt(candidate, saltSpec string) (string, error) {
	if d, ok := DetectDriver(saltSpec); !ok || d != u.driver {
		return "", fmt.Errorf("%w: %q is not a %s spec", ErrAlgorithmMismatch, saltSpec, u.driver)
	}
	// GehirnInc reads a trailing '$' as part of a short salt.
	setting := strings.TrimSuffix(saltSpec, "$")
	out, err := u.c.Generate([]byte(candidate), []byte(setting))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidSaltSpec, u.driver, err)
	}
	return out, nil
}

// Make hashes password with a freshly generated random salt.
func (u *UnixCrypter) Make(password string) (string, error) {
	out, err := u.c.Generate([]byte(password), nil)
	if err != nil {
		return "", fmt.Errorf("hashing: %s: failed to hash password: %w", u.driver, err)
	}
	return out, nil
}

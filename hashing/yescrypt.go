package hashing

import (
	"fmt"
	"strings"

	"github.com/openwall/yescrypt-go"
)

// YescryptCrypter implements the $y$ family via github.com/openwall/yescrypt-go.
//
// A shadow entry such as
//
//	$y$j9T$LdJMENpBABJJ3hIHjB1Bi.$<hash>
//
// yields the salt spec "$y$j9T$LdJMENpBABJJ3hIHjB1Bi.$"; the cost parameters
// ("j9T") travel inside the spec, so no configuration is needed.
type YescryptCrypter struct{}

// NewYescryptCrypter returns a $y$ driver.
func NewYescryptCrypter() *YescryptCrypter { return &YescryptCrypter{} }

// Driver returns [DriverYescrypt].
func (y *YescryptCrypter) Driver() DriverName { return DriverYescrypt }

// Crypt hashes candidate with the parameters and salt encoded in saltSpec.
func (y *YescryptCrypter) Crypt(candidate, saltSpec string) (string, error) {
	if d, ok := DetectDriver(saltSpec); !ok || d != DriverYescrypt {
		return "", fmt.Errorf("%w: %q is not a yescrypt spec", ErrAlgorithmMismatch, saltSpec)
	}
	// yescrypt-go wants the bare setting; the trailing '$' is re-added by
	// the encoder in front of the digest.
	setting := strings.TrimSuffix(saltSpec, "$")
	out, err := yescrypt.Hash([]byte(candidate), []byte(setting))
	if err != nil {
		return "", fmt.Errorf("%w: yescrypt: %v", ErrInvalidSaltSpec, err)
	}
	return string(out), nil
}

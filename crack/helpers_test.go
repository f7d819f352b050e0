package crack_test

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/shadowcrack/hashing"
	"github.com/hasbyte1/shadowcrack/shadow"
)

// fastCrypter is a cheap stand-in for a crypt(3) family: the digest is the
// hex SHA-256 of spec+candidate.
var fastCrypter = hashing.CrypterFunc(func(candidate, spec string) (string, error) {
	sum := sha256.Sum256([]byte(spec + candidate))
	return spec + hex.EncodeToString(sum[:]), nil
})

// descriptorFor hashes plain with c and parses the result back into a
// descriptor, the way a shadow entry would be read.
func descriptorFor(tb testing.TB, c hashing.Crypter, spec, plain string) shadow.Descriptor {
	tb.Helper()
	full, err := c.Crypt(plain, spec)
	require.NoError(tb, err)
	d, err := shadow.ParseField(full)
	require.NoError(tb, err)
	return d
}

// recorder wraps a crypter and records every candidate it is asked to hash.
type recorder struct {
	mu    sync.Mutex
	next  hashing.Crypter
	calls []string
}

func (r *recorder) Crypt(candidate, spec string) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, candidate)
	r.mu.Unlock()
	return r.next.Crypt(candidate, spec)
}

func (r *recorder) visited() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// matchSet reports a match for every candidate in set and a miss otherwise.
func matchSet(d shadow.Descriptor, set ...string) hashing.Crypter {
	m := make(map[string]bool, len(set))
	for _, s := range set {
		m[s] = true
	}
	return hashing.CrypterFunc(func(candidate, spec string) (string, error) {
		if m[candidate] {
			return d.Expected(), nil
		}
		return spec + "miss", nil
	})
}

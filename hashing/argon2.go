package hashing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultArgon2Memory is the default memory cost in KiB (64 MiB).
	DefaultArgon2Memory uint32 = 64 * 1024

	// DefaultArgon2Time is the default number of iterations.
	DefaultArgon2Time uint32 = 3

	// DefaultArgon2Threads is the default degree of parallelism.
	DefaultArgon2Threads uint8 = 2

	// DefaultArgon2KeyLen is the default output key length in bytes. A salt
	// spec does not record the digest length, so Crypt relies on this value.
	DefaultArgon2KeyLen uint32 = 32

	// DefaultArgon2SaltLen is the default random salt length in bytes.
	DefaultArgon2SaltLen uint32 = 16

	// maxArgon2Memory bounds the memory cost accepted from a salt spec (4 GiB).
	maxArgon2Memory = 4 * 1024 * 1024

	// argon2Version is the Argon2 specification version encoded in hashes.
	argon2Version = argon2.Version // 0x13 = 19
)

// Argon2Options configures an [Argon2Crypter].
//
// Memory, Time, Threads and SaltLen are only used by Make; Crypt reads those
// parameters from the salt spec. KeyLen is used by both.
type Argon2Options struct {
	// Memory is the memory cost in KiB.
	// Minimum: 8 * Threads.  Default: [DefaultArgon2Memory] (64 MiB).
	Memory uint32

	// Time is the number of passes over memory (iterations).
	// Minimum: 1.  Default: [DefaultArgon2Time] (3).
	Time uint32

	// Threads is the degree of parallelism.
	// Minimum: 1.  Default: [DefaultArgon2Threads] (2).
	Threads uint8

	// KeyLen is the length of the derived key in bytes.
	// Default: [DefaultArgon2KeyLen] (32).
	KeyLen uint32

	// SaltLen is the length of the random salt in bytes.
	// Minimum: 8.  Default: [DefaultArgon2SaltLen] (16).
	SaltLen uint32
}

// DefaultArgon2Options returns Argon2Options with the recommended defaults.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  DefaultArgon2Memory,
		Time:    DefaultArgon2Time,
		Threads: DefaultArgon2Threads,
		KeyLen:  DefaultArgon2KeyLen,
		SaltLen: DefaultArgon2SaltLen,
	}
}

func validateArgon2Options(opts Argon2Options) error {
	if opts.Time < 1 {
		return fmt.Errorf("%w: argon2 time must be ≥ 1, got %d", ErrInvalidOption, opts.Time)
	}
	if opts.Threads < 1 {
		return fmt.Errorf("%w: argon2 threads must be ≥ 1, got %d", ErrInvalidOption, opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return fmt.Errorf("%w: argon2 memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidOption, opts.Memory, 8*uint32(opts.Threads))
	}
	if opts.KeyLen < 4 {
		return fmt.Errorf("%w: argon2 key_len must be ≥ 4, got %d", ErrInvalidOption, opts.KeyLen)
	}
	if opts.SaltLen < 8 {
		return fmt.Errorf("%w: argon2 salt_len must be ≥ 8, got %d", ErrInvalidOption, opts.SaltLen)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// PHC string format helpers
// ──────────────────────────────────────────────────────────────────────────────

// argon2Spec holds the parameters decoded from an Argon2 salt spec.
type argon2Spec struct {
	variant DriverName
	version uint32
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	// prefix is the spec text up to and including the '$' after the salt,
	// reused verbatim so the output starts with exactly the given spec.
	prefix string
}

// encodePHC serialises an Argon2 hash in PHC String Format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt_base64>$<hash_base64>
func encodePHC(variant DriverName, version, memory, time uint32, threads uint8, salt, hash []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		string(variant),
		version,
		memory,
		time,
		threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

// decodeSpec parses an Argon2 salt spec. Both the bare spec and a full hash
// are accepted; anything after the salt segment is ignored.
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$
func decodeSpec(spec string) (*argon2Spec, error) {
	// Split on "$"; the leading "$" produces an empty first element.
	parts := strings.Split(spec, "$")
	if len(parts) < 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected $variant$v=…$m=…,t=…,p=…$salt$, got %d segments",
			ErrInvalidSaltSpec, len(parts)-1)
	}

	var variant DriverName
	switch parts[1] {
	case string(DriverArgon2i):
		variant = DriverArgon2i
	case string(DriverArgon2id):
		variant = DriverArgon2id
	default:
		return nil, fmt.Errorf("%w: unknown argon2 variant %q", ErrInvalidSaltSpec, parts[1])
	}

	version, err := parseKV(parts[2], "v")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSaltSpec, err)
	}
	if version != argon2Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidSaltSpec, version)
	}

	kvs, err := parseParams(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSaltSpec, err)
	}
	memory, ok1 := kvs["m"]
	time, ok2 := kvs["t"]
	threads64, ok3 := kvs["p"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("%w: missing m/t/p in parameter segment %q", ErrInvalidSaltSpec, parts[3])
	}
	if time < 1 || threads64 < 1 || threads64 > 255 || memory > maxArgon2Memory {
		return nil, fmt.Errorf("%w: out-of-range parameters in %q", ErrInvalidSaltSpec, parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidSaltSpec, err)
	}

	return &argon2Spec{
		variant: variant,
		version: uint32(version),
		memory:  uint32(memory),
		time:    uint32(time),
		threads: uint8(threads64),
		salt:    salt,
		prefix:  strings.Join(parts[:5], "$") + "$",
	}, nil
}

// parseKV parses a "key=value" string and returns the uint64 value.
func parseKV(s, key string) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	return strconv.ParseUint(s[len(prefix):], 10, 32)
}

// parseParams splits "m=65536,t=3,p=2" into a map.
func parseParams(s string) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		out[kv[:eq]] = v
	}
	return out, nil
}

// randomSalt returns n cryptographically random bytes.
func randomSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("hashing: argon2: failed to generate salt: %w", err)
	}
	return b, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Argon2Crypter
// ──────────────────────────────────────────────────────────────────────────────

// Argon2Crypter implements the Argon2i and Argon2id PHC formats.
//
// # Thread safety
//
// Argon2Crypter is immutable after construction and safe for concurrent use.
type Argon2Crypter struct {
	variant DriverName
	opts    Argon2Options
}

// NewArgon2iCrypter constructs an Argon2i driver.
func NewArgon2iCrypter(opts Argon2Options) (*Argon2Crypter, error) {
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return &Argon2Crypter{variant: DriverArgon2i, opts: opts}, nil
}

// NewArgon2idCrypter constructs an Argon2id driver.
func NewArgon2idCrypter(opts Argon2Options) (*Argon2Crypter, error) {
	if err := validateArgon2Options(opts); err != nil {
		return nil, err
	}
	return &Argon2Crypter{variant: DriverArgon2id, opts: opts}, nil
}

// Driver returns [DriverArgon2i] or [DriverArgon2id].
func (h *Argon2Crypter) Driver() DriverName { return h.variant }

// Options returns the current Argon2 parameter set.
func (h *Argon2Crypter) Options() Argon2Options { return h.opts }

// Crypt derives a key from candidate using the parameters and salt in
// saltSpec and returns the full PHC string.
func (h *Argon2Crypter) Crypt(candidate, saltSpec string) (string, error) {
	p, err := decodeSpec(saltSpec)
	if err != nil {
		return "", err
	}
	if p.variant != h.variant {
		return "", fmt.Errorf("%w: spec is %s, not %s", ErrAlgorithmMismatch, p.variant, h.variant)
	}
	key := h.derive([]byte(candidate), p.salt, p.time, p.memory, p.threads)
	return p.prefix + base64.RawStdEncoding.EncodeToString(key), nil
}

// Make hashes password with a fresh random salt and the configured cost.
func (h *Argon2Crypter) Make(password string) (string, error) {
	salt, err := randomSalt(h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key := h.derive([]byte(password), salt, h.opts.Time, h.opts.Memory, h.opts.Threads)
	return encodePHC(h.variant, argon2Version,
		h.opts.Memory, h.opts.Time, h.opts.Threads, salt, key), nil
}

func (h *Argon2Crypter) derive(password, salt []byte, time, memory uint32, threads uint8) []byte {
	if h.variant == DriverArgon2i {
		return argon2.Key(password, salt, time, memory, threads, h.opts.KeyLen)
	}
	return argon2.IDKey(password, salt, time, memory, threads, h.opts.KeyLen)
}

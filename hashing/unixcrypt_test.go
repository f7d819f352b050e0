package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/shadowcrack/hashing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Known answers
// ──────────────────────────────────────────────────────────────────────────────

// Vectors from Ulrich Drepper's "Unix crypt using SHA-256 and SHA-512".
func TestSHA512Crypter_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{
			"default rounds",
			"$6$saltstring$",
			"$6$saltstring$svn8UoSVapNtMuq1ukKS4tPQd8iKwSMHWjl/O817G3uBnIFNjnQJuesI68u4OTLiBFdcbYEdFCoEOfaS35inz1",
		},
		{
			"explicit rounds",
			"$6$rounds=10000$saltstringsaltst$",
			"$6$rounds=10000$saltstringsaltst$OW1/O6BYHV6BcXZu8QVeXbDWra3Oeqh0sbHbbMCVNSnCM/UrjmM0Dp8vOuZeHBy/YTBmSK6H9qs/y3RnOaw5v.",
		},
	}
	c := hashing.NewSHA512Crypter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Crypt("Hello world!", tt.spec)
			if err != nil {
				t.Fatalf("Crypt: %v", err)
			}
			if got != tt.want {
				t.Errorf("Crypt = %q, want %q", got, tt.want)
			}
		})
	}
}

// Vector from glibc crypt(3): explicit rounds with a salt shorter than the
// 16-character maximum.
func TestSHA512Crypter_RoundsShortSalt(t *testing.T) {
	const (
		spec = "$6$rounds=1000$abcSalt$"
		want = "$6$rounds=1000$abcSalt$0wS43KZWcbA8.e1.exZXu2cPXSxpDgNd.ROGX6sHy6JtrX5h/xwgForC1FT6vMAiQ4m9XcPnZX/recoth03gH/"
	)
	got, err := hashing.NewSHA512Crypter().Crypt("ba", spec)
	if err != nil {
		t.Fatalf("Crypt: %v", err)
	}
	if got != want {
		t.Errorf("Crypt = %q, want %q", got, want)
	}
}

func TestUnixCrypter_Crypt_NoDoubledDelimiter(t *testing.T) {
	tests := []struct {
		c    *hashing.UnixCrypter
		spec string
	}{
		{hashing.NewSHA256Crypter(), "$5$rounds=1000$abc$"},
		{hashing.NewSHA256Crypter(), "$5$abc$"},
		{hashing.NewSHA512Crypter(), "$6$rounds=1000$abcSalt$"},
		{hashing.NewMD5Crypter(), "$1$abc$"},
		{hashing.NewAPR1Crypter(), "$apr1$abc$"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := tt.c.Crypt("ba", tt.spec)
			if err != nil {
				t.Fatalf("Crypt: %v", err)
			}
			if !strings.HasPrefix(got, tt.spec) {
				t.Errorf("Crypt = %q, want prefix %q", got, tt.spec)
			}
			if strings.Contains(got, "$$") {
				t.Errorf("Crypt = %q contains a doubled delimiter", got)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Make / Crypt round trip for every GehirnInc family
// ──────────────────────────────────────────────────────────────────────────────

func TestUnixCrypter_Crypt_ReproducesMake(t *testing.T) {
	crypters := []*hashing.UnixCrypter{
		hashing.NewMD5Crypter(),
		hashing.NewAPR1Crypter(),
		hashing.NewSHA256Crypter(),
		hashing.NewSHA512Crypter(),
	}
	for _, c := range crypters {
		t.Run(string(c.Driver()), func(t *testing.T) {
			full, err := c.Make("abcd")
			if err != nil {
				t.Fatalf("Make: %v", err)
			}
			if d, ok := hashing.DetectDriver(full); !ok || d != c.Driver() {
				t.Fatalf("DetectDriver(%q) = %q, %v", full, d, ok)
			}
			got, err := c.Crypt("abcd", specOf(full))
			if err != nil {
				t.Fatalf("Crypt: %v", err)
			}
			if got != full {
				t.Errorf("Crypt = %q, want %q", got, full)
			}
			other, err := c.Crypt("abce", specOf(full))
			if err != nil {
				t.Fatalf("Crypt: %v", err)
			}
			if other == full {
				t.Error("different candidate must not reproduce the hash")
			}
		})
	}
}

func TestUnixCrypter_Crypt_OutputStartsWithSpec(t *testing.T) {
	c := hashing.NewSHA512Crypter()
	got, err := c.Crypt("abcd", "$6$abcSalt$")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "$6$abcSalt$") {
		t.Errorf("output %q does not start with the salt spec", got)
	}
}

func TestUnixCrypter_Crypt_WrongFamily(t *testing.T) {
	c := hashing.NewSHA256Crypter()
	for _, spec := range []string{"$6$abcSalt$", "$1$abc$", "abcSalt", ""} {
		if _, err := c.Crypt("pw", spec); !errors.Is(err, hashing.ErrAlgorithmMismatch) {
			t.Errorf("Crypt(%q): expected ErrAlgorithmMismatch, got %v", spec, err)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// yescrypt
// ──────────────────────────────────────────────────────────────────────────────

func TestYescryptCrypter_Deterministic(t *testing.T) {
	const spec = "$y$j9T$LdJMENpBABJJ3hIHjB1Bi.$"
	c := hashing.NewYescryptCrypter()
	a, err := c.Crypt("abcd", spec)
	if err != nil {
		t.Fatalf("Crypt: %v", err)
	}
	if !strings.HasPrefix(a, spec) || len(a) == len(spec) {
		t.Fatalf("Crypt = %q, want %q followed by a digest", a, spec)
	}
	b, _ := c.Crypt("abcd", spec)
	if a != b {
		t.Errorf("two calls differ: %q vs %q", a, b)
	}
	other, _ := c.Crypt("abce", spec)
	if other == a {
		t.Error("different candidate must not reproduce the hash")
	}
}

func TestYescryptCrypter_WrongFamily(t *testing.T) {
	_, err := hashing.NewYescryptCrypter().Crypt("pw", "$6$abcSalt$")
	if !errors.Is(err, hashing.ErrAlgorithmMismatch) {
		t.Errorf("expected ErrAlgorithmMismatch, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DetectDriver / AlgorithmID / ParseDriverName
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectDriver(t *testing.T) {
	tests := []struct {
		spec string
		want hashing.DriverName
		ok   bool
	}{
		{"$1$abc$", hashing.DriverMD5Crypt, true},
		{"$apr1$abc$", hashing.DriverAPR1, true},
		{"$5$abc$", hashing.DriverSHA256Crypt, true},
		{"$6$abc$", hashing.DriverSHA512Crypt, true},
		{"$6$rounds=5000$abc$digest", hashing.DriverSHA512Crypt, true},
		{"$y$j9T$abc$", hashing.DriverYescrypt, true},
		{"$argon2i$v=19$m=16,t=1,p=1$c2FsdA$", hashing.DriverArgon2i, true},
		{"$argon2id$v=19$m=16,t=1,p=1$c2FsdA$", hashing.DriverArgon2id, true},
		{"$2b$12$abc", "", false},
		{"$$abc$", "", false},
		{"6$abc$", "", false},
		{"$6", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := hashing.DetectDriver(tt.spec)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DetectDriver(%q) = %q, %v; want %q, %v", tt.spec, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDriverName(t *testing.T) {
	for _, in := range []string{"6", "sha512crypt"} {
		d, ok := hashing.ParseDriverName(in)
		if !ok || d != hashing.DriverSHA512Crypt {
			t.Errorf("ParseDriverName(%q) = %q, %v", in, d, ok)
		}
	}
	if _, ok := hashing.ParseDriverName("bcrypt"); ok {
		t.Error("bcrypt is not a supported driver")
	}
}

func TestCrypterFunc(t *testing.T) {
	var c hashing.Crypter = hashing.CrypterFunc(func(candidate, spec string) (string, error) {
		return spec + strings.ToUpper(candidate), nil
	})
	got, err := c.Crypt("abc", "$x$s$")
	if err != nil || got != "$x$s$ABC" {
		t.Errorf("Crypt = %q, %v", got, err)
	}
}

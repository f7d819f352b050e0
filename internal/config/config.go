package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hasbyte1/shadowcrack/crack"
	"github.com/hasbyte1/shadowcrack/hashing"
)

// ErrInvalid is returned by [Config.Validate] and [Load].
var ErrInvalid = errors.New("config: invalid configuration")

// Progress bar modes.
const (
	ProgressAuto   = "auto"
	ProgressAlways = "always"
	ProgressNever  = "never"
)

// DefaultShadowPath is the credential store read when none is given.
const DefaultShadowPath = "/etc/shadow"

// Config holds runtime settings for the shadowcrack CLI.
type Config struct {
	Users      []string
	ShadowPath string
	Alphabet   string
	MinLength  int
	MaxLength  int
	Workers    int
	RateLimit  int
	Progress   string
	Verbose    bool
	Quiet      bool

	// Generate, when set, switches the CLI from cracking to printing a
	// shadow line for this plaintext, hashed with Algorithm.
	Generate  string
	Algorithm string

	ConfigFile string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	def := crack.DefaultConfig()
	c.ShadowPath = DefaultShadowPath
	c.Alphabet = def.Alphabet.String()
	c.MinLength = def.MinLength
	c.MaxLength = def.MaxLength
	c.Workers = 1
	c.RateLimit = 0
	c.Progress = ProgressAuto
	c.Algorithm = string(hashing.DriverSHA512Crypt)
}

// Load builds a Config from defaults, the JSON file named by -c/--config (if
// any) and args, which must not include the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs, fv := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fv.config != "" {
		if err := parseJSON(cfg, fv.config); err != nil {
			return nil, err
		}
		cfg.ConfigFile = fv.config
	}
	applyFlags(cfg, fs, fv)
	cfg.Users = append(cfg.Users, fs.Args()...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CrackConfig converts the search bounds into a [crack.Config].
func (c *Config) CrackConfig() (crack.Config, error) {
	a, err := crack.NewAlphabet(c.Alphabet)
	if err != nil {
		return crack.Config{}, err
	}
	cc := crack.Config{Alphabet: a, MinLength: c.MinLength, MaxLength: c.MaxLength}
	return cc, cc.Validate()
}

// Validate checks that the settings can be used together.
func (c *Config) Validate() error {
	if c.Generate != "" {
		if _, ok := hashing.ParseDriverName(c.Algorithm); !ok {
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, c.Algorithm)
		}
		return nil
	}
	if len(c.Users) == 0 {
		return fmt.Errorf("%w: no user given", ErrInvalid)
	}
	if slices.Contains(c.Users, "") {
		return fmt.Errorf("%w: empty user name", ErrInvalid)
	}
	if c.ShadowPath == "" {
		return fmt.Errorf("%w: empty shadow path", ErrInvalid)
	}
	if _, err := c.CrackConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalid, c.Workers)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must be ≥ 0, got %d", ErrInvalid, c.RateLimit)
	}
	switch c.Progress {
	case ProgressAuto, ProgressAlways, ProgressNever:
	default:
		return fmt.Errorf("%w: progress must be auto, always or never, got %q", ErrInvalid, c.Progress)
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrInvalid)
	}
	return nil
}

package config

import (
	"github.com/spf13/pflag"
)

type flagValues struct {
	users     []string
	shadow    string
	alphabet  string
	min, max  int
	workers   int
	rateLimit int
	progress  string
	verbose   bool
	quiet     bool
	generate  string
	algorithm string
	config    string
}

// newFlagSet declares every flag. Defaults shown in usage come from
// LoadDefaults; they are only copied into a Config when the flag is set.
func newFlagSet() (*pflag.FlagSet, *flagValues) {
	var def Config
	def.LoadDefaults()

	fv := &flagValues{}
	fs := pflag.NewFlagSet("shadowcrack", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringArrayVarP(&fv.users, "user", "u", nil, "account to crack (repeatable)")
	fs.StringVarP(&fv.shadow, "shadow", "f", def.ShadowPath, "credential store to read")
	fs.StringVarP(&fv.alphabet, "alphabet", "s", def.Alphabet, "candidate characters, in search order")
	fs.IntVar(&fv.min, "min", def.MinLength, "shortest candidate length")
	fs.IntVarP(&fv.max, "max", "l", def.MaxLength, "longest candidate length")
	fs.IntVarP(&fv.workers, "workers", "w", def.Workers, "goroutines per length")
	fs.IntVarP(&fv.rateLimit, "rate-limit", "r", def.RateLimit, "candidate hashes per second. 0 = no limit")
	fs.StringVar(&fv.progress, "progress", def.Progress, "progress bar: auto, always or never")
	fs.BoolVarP(&fv.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVarP(&fv.quiet, "quiet", "q", false, "suppress logging")
	fs.StringVarP(&fv.generate, "generate", "g", "", "print a shadow line for this plaintext instead of cracking")
	fs.StringVarP(&fv.algorithm, "algorithm", "a", def.Algorithm, "driver used by --generate")
	fs.StringVarP(&fv.config, "config", "c", "", "JSON configuration file")
	return fs, fv
}

// applyFlags copies the flags the user actually set into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet, fv *flagValues) {
	if fs.Changed("user") {
		cfg.Users = fv.users
	}
	if fs.Changed("shadow") {
		cfg.ShadowPath = fv.shadow
	}
	if fs.Changed("alphabet") {
		cfg.Alphabet = fv.alphabet
	}
	if fs.Changed("min") {
		cfg.MinLength = fv.min
	}
	if fs.Changed("max") {
		cfg.MaxLength = fv.max
	}
	if fs.Changed("workers") {
		cfg.Workers = fv.workers
	}
	if fs.Changed("rate-limit") {
		cfg.RateLimit = fv.rateLimit
	}
	if fs.Changed("progress") {
		cfg.Progress = fv.progress
	}
	if fs.Changed("verbose") {
		cfg.Verbose = fv.verbose
	}
	if fs.Changed("quiet") {
		cfg.Quiet = fv.quiet
	}
	if fs.Changed("generate") {
		cfg.Generate = fv.generate
	}
	if fs.Changed("algorithm") {
		cfg.Algorithm = fv.algorithm
	}
}

// Usage returns the flag help text.
func Usage() string {
	fs, _ := newFlagSet()
	return fs.FlagUsages()
}

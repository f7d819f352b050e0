package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"go.uber.org/ratelimit"
	"golang.org/x/term"

	"github.com/hasbyte1/shadowcrack/crack"
	"github.com/hasbyte1/shadowcrack/hashing"
	"github.com/hasbyte1/shadowcrack/internal/config"
	"github.com/hasbyte1/shadowcrack/shadow"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(stdout, "Usage: shadowcrack [flags] user...\n\n%s", config.Usage())
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "shadowcrack: %v\n\nUsage: shadowcrack [flags] user...\n\n%s", err, config.Usage())
		return exitUsage
	}

	log := newLogger(cfg, stderr)

	m, err := hashing.NewDefaultManager()
	if err != nil {
		log.Error().Err(err).Msg("hash drivers unavailable")
		return exitFail
	}

	if cfg.Generate != "" {
		return generate(cfg, m, stdout, log)
	}
	return crackUsers(ctx, cfg, m, stdout, stderr, log)
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Quiet:
		level = zerolog.Disabled
	case cfg.Verbose:
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// generate prints a shadow line for cfg.Generate, for building test stores.
func generate(cfg *config.Config, m *hashing.Manager, stdout io.Writer, log zerolog.Logger) int {
	driver, _ := hashing.ParseDriverName(cfg.Algorithm)
	full, err := m.MakeWith(driver, cfg.Generate)
	if err != nil {
		log.Error().Err(err).Str("algorithm", string(driver)).Msg("cannot generate hash")
		return exitFail
	}
	user := "user"
	if len(cfg.Users) > 0 {
		user = cfg.Users[0]
	}
	days := time.Now().Unix() / 86400
	fmt.Fprintf(stdout, "%s:%s:%d:0:99999:7:::\n", user, full, days)
	return exitOK
}

func crackUsers(ctx context.Context, cfg *config.Config, m *hashing.Manager, stdout, stderr io.Writer, log zerolog.Logger) int {
	f, err := os.Open(cfg.ShadowPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.ShadowPath).Msg("cannot open credential store (root required for /etc/shadow)")
		return exitFail
	}
	entries, err := shadow.LookupAll(f, cfg.Users...)
	_ = f.Close()
	if err != nil {
		log.Error().Err(err).Str("path", cfg.ShadowPath).Msg("cannot read credential store")
		return exitFail
	}

	cc, err := cfg.CrackConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid search bounds")
		return exitFail
	}

	opts := []crack.Option{
		crack.WithWorkers(cfg.Workers),
		crack.WithLogger(log),
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, crack.WithLimiter(ratelimit.New(cfg.RateLimit)))
	}
	if showProgress(cfg.Progress, stderr) {
		opts = append(opts, crack.WithObserver(newBarObserver(stderr)))
	}
	coord, err := crack.NewCoordinator(m, cc, opts...)
	if err != nil {
		log.Error().Err(err).Msg("cannot start search")
		return exitFail
	}

	usable := 0
	for _, e := range entries {
		ulog := log.With().Str("user", e.Username).Logger()
		if e.Err != nil {
			ulog.Error().Err(e.Err).Msg("skipping user")
			continue
		}
		if !m.Supports(e.Descriptor.SaltSpec) {
			ulog.Error().
				Str("algorithm", e.Descriptor.Algorithm).
				Msg("skipping user: unsupported hash algorithm")
			continue
		}
		usable++

		printHeader(stdout, e.Username, e.Descriptor, cc)
		out, err := coord.Run(ctx, e.Descriptor)
		if err != nil {
			printInterrupted(stdout, out)
			ulog.Warn().Err(err).Msg("search interrupted")
			return exitFail
		}
		printReport(stdout, out, cc)
	}

	if usable == 0 {
		log.Error().Msg("no requested user has a usable password hash")
		return exitFail
	}
	return exitOK
}

func showProgress(mode string, w io.Writer) bool {
	switch mode {
	case config.ProgressAlways:
		return true
	case config.ProgressNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

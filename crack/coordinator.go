package crack

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hasbyte1/shadowcrack/hashing"
	"github.com/hasbyte1/shadowcrack/shadow"
)

// Config bounds a run.
type Config struct {
	Alphabet  Alphabet
	MinLength int
	MaxLength int
}

// DefaultConfig searches a–z over lengths 1 through 7.
func DefaultConfig() Config {
	return Config{
		Alphabet:  MustAlphabet(DefaultAlphabet),
		MinLength: 1,
		MaxLength: 7,
	}
}

// Validate returns [ErrInvalidConfig] unless the alphabet is non-empty and
// 1 ≤ MinLength ≤ MaxLength.
func (c Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidAlphabet)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("%w: min length %d must be ≥ 1", ErrInvalidConfig, c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("%w: max length %d is below min length %d",
			ErrInvalidConfig, c.MaxLength, c.MinLength)
	}
	return nil
}

// Coordinator drives an [Engine] across the configured length range.
type Coordinator struct {
	engine *Engine
	cfg    Config
	opts   options
}

// NewCoordinator validates cfg and builds the engine that will hash
// candidates with c. The options apply to both.
func NewCoordinator(c hashing.Crypter, cfg Config, opts ...Option) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := NewEngine(c, cfg.Alphabet, opts...)
	if err != nil {
		return nil, err
	}
	return &Coordinator{engine: e, cfg: cfg, opts: e.opts}, nil
}

// Config returns the bounds the coordinator was built with.
func (c *Coordinator) Config() Config { return c.cfg }

// Run searches lengths MinLength through MaxLength in increasing order and
// stops at the first length that produces a match.
//
// Exhausting the range is reported as [StatusExhausted] with a nil error.
// The only error is ctx's, in which case the returned Outcome holds the
// lengths completed so far. Run keeps no state between calls.
func (c *Coordinator) Run(ctx context.Context, d shadow.Descriptor) (Outcome, error) {
	log := c.opts.log.With().
		Str("component", "coordinator").
		Str("run_id", uuid.NewString()).
		Str("target", d.String()).
		Logger()

	log.Info().
		Str("alphabet", c.cfg.Alphabet.String()).
		Int("min", c.cfg.MinLength).
		Int("max", c.cfg.MaxLength).
		Int("workers", c.opts.workers).
		Msg("search started")

	var out Outcome
	start := time.Now()
	for length := c.cfg.MinLength; length <= c.cfg.MaxLength; length++ {
		space, ok := SpaceSize(c.cfg.Alphabet, length)
		if !ok {
			space = 0
		}
		c.opts.observer.LengthStarted(length, space)
		log.Debug().Int("length", length).Uint64("space", space).Msg("length started")

		t0 := time.Now()
		res, err := c.engine.Search(ctx, d, length)
		lt := LengthTiming{
			Length:   length,
			Elapsed:  time.Since(t0),
			Tried:    res.Tried,
			Rejected: res.Rejected,
			Found:    res.Found,
		}
		if err != nil {
			out.Elapsed = time.Since(start)
			log.Warn().Err(err).Int("length", length).Msg("search interrupted")
			return out, err
		}
		out.Lengths = append(out.Lengths, lt)
		c.opts.observer.LengthFinished(lt)
		log.Debug().
			Int("length", length).
			Dur("elapsed", lt.Elapsed).
			Uint64("tried", lt.Tried).
			Uint64("rejected", lt.Rejected).
			Msg("length finished")

		if res.Found {
			out.Status = StatusFound
			out.Candidate = res.Candidate
			out.Length = length
			break
		}
	}
	out.Elapsed = time.Since(start)

	ev := log.Info().Stringer("status", out.Status).Dur("elapsed", out.Elapsed)
	if out.Found() {
		ev = ev.Int("length", out.Length)
	}
	ev.Msg("search finished")
	return out, nil
}

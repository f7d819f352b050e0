package crack

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hasbyte1/shadowcrack/hashing"
	"github.com/hasbyte1/shadowcrack/shadow"
)

// progressBatch is how many candidates are evaluated between observer and
// context checks.
const progressBatch = 256

// SearchResult is the outcome of searching a single length.
type SearchResult struct {
	Candidate string
	Found     bool
	Tried     uint64
	Rejected  uint64
}

// Engine evaluates candidates of one length against a descriptor.
//
// An Engine is immutable and holds no per-search state; it is safe to call
// Search from several goroutines.
type Engine struct {
	crypter  hashing.Crypter
	alphabet Alphabet
	opts     options
}

// NewEngine returns an Engine that hashes candidates over alphabet with c.
func NewEngine(c hashing.Crypter, alphabet Alphabet, opts ...Option) (*Engine, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil crypter", ErrInvalidConfig)
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidAlphabet)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{crypter: c, alphabet: alphabet, opts: o}, nil
}

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() Alphabet { return e.alphabet }

// Search tries every candidate of exactly length characters, in alphabet
// order, and stops at the first one whose full hash equals d.Expected().
//
// A crypter error for a candidate counts as a non-match. Exhausting the
// length is reported as Found == false with a nil error; the only errors are
// context cancellation and an invalid length. Up to len(alphabet)^length
// hashes are computed.
func (e *Engine) Search(ctx context.Context, d shadow.Descriptor, length int) (SearchResult, error) {
	if length < 1 {
		return SearchResult{}, fmt.Errorf("%w: length %d must be ≥ 1", ErrInvalidConfig, length)
	}
	if e.opts.workers == 1 || len(e.alphabet) == 1 {
		var c counters
		cand, found, err := e.scan(ctx, d, nil, length, &c, nil)
		return c.result(cand, found), err
	}
	return e.searchParallel(ctx, d, length)
}

// searchParallel partitions the space by first character. Workers take
// partitions in alphabet order; best holds the lowest partition index that
// has produced a match so far. A worker only records its match after
// lowering best with compare-and-set, and abandons a partition as soon as a
// lower one has matched, so the reported candidate is always the one a
// sequential search would have returned.
func (e *Engine) searchParallel(ctx context.Context, d shadow.Descriptor, length int) (SearchResult, error) {
	n := len(e.alphabet)
	parts := make(chan int, n)
	for i := 0; i < n; i++ {
		parts <- i
	}
	close(parts)

	var (
		c     counters
		best  atomic.Int64
		found = make([]string, n)
	)
	best.Store(math.MaxInt64)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < min(e.opts.workers, n); w++ {
		g.Go(func() error {
			for p := range parts {
				if int64(p) > best.Load() {
					continue
				}
				stop := func() bool { return best.Load() < int64(p) }
				prefix := []rune{e.alphabet[p]}
				cand, ok, err := e.scan(gctx, d, prefix, length, &c, stop)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				for {
					cur := best.Load()
					if int64(p) >= cur {
						break
					}
					if best.CompareAndSwap(cur, int64(p)) {
						found[p] = cand
						break
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.result("", false), err
	}
	if b := best.Load(); b != math.MaxInt64 {
		return c.result(found[b], true), nil
	}
	return c.result("", false), nil
}

// scan enumerates the candidates of length that start with prefix. stop, if
// non-nil, is polled before every candidate.
func (e *Engine) scan(ctx context.Context, d shadow.Descriptor, prefix []rune, length int, c *counters, stop func() bool) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	var (
		want    = d.Expected()
		match   string
		pending uint64
		err     error
	)
	flush := func() {
		if pending > 0 {
			e.opts.observer.Progress(pending)
			pending = 0
		}
	}
	enumerate(e.alphabet, prefix, length, func(cand string) bool {
		if stop != nil && stop() {
			return false
		}
		if pending == progressBatch {
			flush()
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		if e.opts.limiter != nil {
			e.opts.limiter.Take()
		}
		pending++
		c.tried.Add(1)
		full, cerr := e.crypter.Crypt(cand, d.SaltSpec)
		if cerr != nil {
			c.rejected.Add(1)
			return true
		}
		if full == want {
			match = cand
			return false
		}
		return true
	})
	flush()
	if err != nil {
		return "", false, err
	}
	return match, match != "", nil
}

type counters struct {
	tried    atomic.Uint64
	rejected atomic.Uint64
}

func (c *counters) result(cand string, found bool) SearchResult {
	return SearchResult{
		Candidate: cand,
		Found:     found,
		Tried:     c.tried.Load(),
		Rejected:  c.rejected.Load(),
	}
}

package crack

import "time"

// Status tags an [Outcome].
type Status int

const (
	// StatusExhausted means every candidate up to the maximum length was
	// tried without a match. It is a normal result, not an error.
	StatusExhausted Status = iota
	// StatusFound means a candidate reproduced the stored hash.
	StatusFound
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// LengthTiming records the search of a single candidate length.
type LengthTiming struct {
	Length   int
	Elapsed  time.Duration
	Tried    uint64
	Rejected uint64
	Found    bool
}

// Outcome is the result of one [Coordinator.Run].
//
// Candidate and Length are set only when Status is [StatusFound]. Elapsed is
// the total wall-clock time of the run; Lengths holds one entry per length
// searched, in increasing order, the last being the matching one if any.
type Outcome struct {
	Status    Status
	Candidate string
	Length    int
	Elapsed   time.Duration
	Lengths   []LengthTiming
}

// Found reports whether the run recovered the password.
func (o Outcome) Found() bool { return o.Status == StatusFound }

// Tried returns the number of candidates evaluated across all lengths.
func (o Outcome) Tried() uint64 {
	var n uint64
	for _, l := range o.Lengths {
		n += l.Tried
	}
	return n
}

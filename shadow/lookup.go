package shadow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single credential line. Real shadow lines are well
// under 1 KiB; the limit only guards against binary input.
const maxLineSize = 64 * 1024

// Entry is the per-user result of [LookupAll].
type Entry struct {
	Username   string
	Descriptor Descriptor
	Err        error
}

// Lookup scans r line by line and returns the descriptor from the first line
// that names username and carries a usable hash.
//
// When no line names the user it returns [ErrUserNotFound]. When the user is
// present but none of its lines parse, the last parse error is returned; it
// matches [ErrMalformedHashField].
func Lookup(r io.Reader, username string) (Descriptor, error) {
	entries, err := LookupAll(r, username)
	if err != nil {
		return Descriptor{}, err
	}
	e := entries[0]
	return e.Descriptor, e.Err
}

// LookupAll resolves several users in a single pass over r. The returned
// entries follow the order of usernames; a malformed line for one user never
// affects the others. The error is non-nil only when reading r fails.
func LookupAll(r io.Reader, usernames ...string) ([]Entry, error) {
	entries := make([]Entry, len(usernames))
	pending := make(map[string][]int, len(usernames))
	for i, u := range usernames {
		entries[i] = Entry{Username: u, Err: fmt.Errorf("%w: %q", ErrUserNotFound, u)}
		pending[u] = append(pending[u], i)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() && len(pending) > 0 {
		line := sc.Text()
		user, _, ok := strings.Cut(line, fieldSep)
		if !ok {
			continue
		}
		idx, ok := pending[user]
		if !ok {
			continue
		}
		d, err := Parse(line, user)
		for _, i := range idx {
			entries[i].Descriptor, entries[i].Err = d, err
		}
		if err == nil {
			delete(pending, user)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("shadow: reading credential store: %w", err)
	}
	return entries, nil
}

// All returns every account in r that carries a usable hash, in file order.
// Locked, empty and malformed entries are skipped.
func All(r io.Reader) ([]Account, error) {
	var out []Account
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		user, _, ok := strings.Cut(line, fieldSep)
		if !ok || user == "" {
			continue
		}
		d, err := Parse(line, user)
		if err != nil {
			continue
		}
		out = append(out, Account{Username: user, Descriptor: d})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("shadow: reading credential store: %w", err)
	}
	return out, nil
}

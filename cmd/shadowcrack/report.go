package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hasbyte1/shadowcrack/crack"
	"github.com/hasbyte1/shadowcrack/shadow"
)

var rule = strings.Repeat("-", 40)

func printHeader(w io.Writer, user string, d shadow.Descriptor, cc crack.Config) {
	fmt.Fprintf(w, "\n=== shadowcrack ===\n")
	fmt.Fprintf(w, " User: %s (%s)\n", user, d)
	fmt.Fprintf(w, " Lengths: %d to %d characters (%s)\n\n", cc.MinLength, cc.MaxLength, cc.Alphabet)
}

func printLengths(w io.Writer, out crack.Outcome) {
	for _, l := range out.Lengths {
		fmt.Fprintf(w, "Trying length %d... finished (%d ms, %d candidates)\n",
			l.Length, l.Elapsed.Milliseconds(), l.Tried)
	}
}

func printReport(w io.Writer, out crack.Outcome, cc crack.Config) {
	printLengths(w, out)

	total := out.Elapsed.Milliseconds()
	fmt.Fprintf(w, "\n%s\n", rule)
	if out.Found() {
		fmt.Fprintf(w, "SUCCESS!\nPassword: %s\nLength: %d chars\n", out.Candidate, out.Length)
	} else {
		fmt.Fprintf(w, "Not found within %d chars\n", cc.MaxLength)
	}
	fmt.Fprintf(w, "Total time: %d ms (%.3f sec)\n", total, float64(total)/1000)
	fmt.Fprintf(w, "%s\n", rule)
}

func printInterrupted(w io.Writer, out crack.Outcome) {
	printLengths(w, out)
	fmt.Fprintf(w, "\n%s\nInterrupted after %d ms\n%s\n", rule, out.Elapsed.Milliseconds(), rule)
}

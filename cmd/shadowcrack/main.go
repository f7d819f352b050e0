// Command shadowcrack recovers short passwords from a shadow(5) file by
// exhaustive search.
//
// Usage:
//
//	shadowcrack [flags] user...
//
// Run with --help for the flag list.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

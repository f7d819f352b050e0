// Package config loads runtime configuration for the shadowcrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Command-line flags. Only flags that were actually given override the
//     earlier sources, so a JSON value is never reset to a flag default.
//
// Supported flags
//
//	-u, --user string        account to crack (repeatable; positional args are accepted too)
//	-f, --shadow string      credential store to read (default /etc/shadow)
//	-s, --alphabet string    candidate characters, in search order (default a–z)
//	    --min int            shortest candidate length (default 1)
//	-l, --max int            longest candidate length (default 7)
//	-w, --workers int        goroutines per length (default 1)
//	-r, --rate-limit int     candidate hashes per second, 0 = no limit
//	    --progress string    auto, always or never
//	-v, --verbose            debug logging
//	-q, --quiet              no logging
//	-g, --generate string    print a shadow line for this plaintext and exit
//	-a, --algorithm string   driver used by --generate (default sha512crypt)
//	-c, --config string      JSON configuration file
//
// # JSON schema
//
//	{
//	  "users": ["alice"],
//	  "shadow": "/etc/shadow",
//	  "alphabet": "abcdefghijklmnopqrstuvwxyz",
//	  "min_length": 1,
//	  "max_length": 7,
//	  "workers": 4,
//	  "rate_limit": 0,
//	  "progress": "auto",
//	  "verbose": false,
//	  "quiet": false,
//	  "algorithm": "sha512crypt"
//	}
//
// Note: This package does not read environment variables.
package config

// Package hashing provides the crypt(3)-style hash primitives used to test
// password candidates against a stored shadow entry.
//
// # Architecture
//
// The central abstraction is the [Crypter] interface:
//
//	Crypt(candidate, saltSpec string) (string, error)
//
// Given a candidate and a salt spec such as "$6$abcSalt$", a Crypter returns
// the full encoded hash ("$6$abcSalt$<digest>"). Callers compare that string
// with the stored one; nothing else about the digest format is inspected.
//
// Drivers shipped with this package:
//
//   - [UnixCrypter] — $1$, $apr1$, $5$ and $6$ via github.com/GehirnInc/crypt
//   - [YescryptCrypter] — $y$ via github.com/openwall/yescrypt-go
//   - [Argon2Crypter] — $argon2i$ and $argon2id$ via golang.org/x/crypto/argon2
//
// The [Manager] is a named driver registry. It implements [Crypter] itself
// and dispatches on the algorithm id, so one Manager handles every family
// found in a shadow file.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager()
//	if err != nil { log.Fatal(err) }
//
//	full, err := m.Crypt("abcd", "$6$abcSalt$")
//	match := err == nil && full == stored
//
// # Parameterised salt specs
//
// Cost parameters travel inside the salt spec and are honoured by the
// drivers:
//
//	$6$rounds=656000$salt$
//	$y$j9T$salt$
//	$argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$
//
// Argon2 specs do not encode the digest length; [Argon2Options.KeyLen]
// (default 32 bytes) is used.
package hashing

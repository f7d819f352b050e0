// Package shadow parses crypt(3) credential records such as the lines of
// /etc/shadow and turns the target user's password field into a
// [Descriptor] that a brute-force search can compare against.
//
// # Record format
//
//	username:password_field:lastchg:min:max:warn:inactive:expire:
//
// Only the first two fields are read. The password field is either a hash of
// the form
//
//	$<algorithm_id>$<salt>$<digest>
//
// or something that is not a hash at all (empty, "!", "*", "!!", a legacy
// 13-character DES string); the latter yields [ErrNoHash].
//
// The package does no file access of its own: callers open the store and
// pass an [io.Reader] to [Lookup], [LookupAll] or [All].
package shadow

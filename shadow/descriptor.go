package shadow

// Descriptor is the parsed, validated form of one stored credential.
//
// SaltSpec is the algorithm id and salt re-assembled exactly as a crypt(3)
// primitive expects them ("$6$abcSalt$"); Digest is the trailing part of the
// password field. SaltSpec + Digest always reproduces the original field.
//
// A Descriptor is an immutable value; copies are independent.
type Descriptor struct {
	Algorithm string
	Salt      string
	SaltSpec  string
	Digest    string
}

// Expected returns the full hash string a matching candidate must produce.
func (d Descriptor) Expected() string {
	return d.SaltSpec + d.Digest
}

// String implements fmt.Stringer. The digest is elided so descriptors can be
// logged without leaking the stored hash.
func (d Descriptor) String() string {
	return d.SaltSpec + "…"
}

// Account pairs a username with the descriptor parsed from its entry.
type Account struct {
	Username   string
	Descriptor Descriptor
}

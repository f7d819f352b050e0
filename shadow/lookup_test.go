package shadow

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const store = `root:!:19000:0:99999:7:::
daemon:*:19000:0:99999:7:::
bob:$6$bobSalt$bobdigest0123:19000:0:99999:7:::
carol:$6$carolSalt:19000:0:99999:7:::
dave:!:19000:0:99999:7:::
dave:$5$daveSalt$davedigest:19000:0:99999:7:::
alice:$6$abcSalt$deadbeef:19000:0:99999:7:::
alice:$6$second$ignored000:19000:0:99999:7:::
`

func TestLookup_FindsFirstUsableLine(t *testing.T) {
	d, err := Lookup(strings.NewReader(store), "alice")
	require.NoError(t, err)
	assert.Equal(t, "$6$abcSalt$", d.SaltSpec)
	assert.Equal(t, "deadbeef", d.Digest)
}

func TestLookup_ContinuesPastUnusableLine(t *testing.T) {
	d, err := Lookup(strings.NewReader(store), "dave")
	require.NoError(t, err)
	assert.Equal(t, "$5$daveSalt$", d.SaltSpec)
}

func TestLookup_UserNotFound(t *testing.T) {
	_, err := Lookup(strings.NewReader(store), "mallory")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrMalformedHashField)
}

func TestLookup_NoUsableHash(t *testing.T) {
	for _, user := range []string{"root", "daemon", "carol"} {
		_, err := Lookup(strings.NewReader(store), user)
		assert.ErrorIs(t, err, ErrMalformedHashField, user)
		assert.NotErrorIs(t, err, ErrUserNotFound, user)
	}
}

func TestLookup_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Lookup(iotest.ErrReader(boom), "alice")
	assert.ErrorIs(t, err, boom)
}

func TestLookupAll_IndependentTargets(t *testing.T) {
	entries, err := LookupAll(strings.NewReader(store), "carol", "alice", "mallory", "bob")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "carol", entries[0].Username)
	assert.ErrorIs(t, entries[0].Err, ErrMalformedHashField)

	assert.NoError(t, entries[1].Err)
	assert.Equal(t, "$6$abcSalt$deadbeef", entries[1].Descriptor.Expected())

	assert.ErrorIs(t, entries[2].Err, ErrUserNotFound)

	assert.NoError(t, entries[3].Err)
	assert.Equal(t, "bobSalt", entries[3].Descriptor.Salt)
}

func TestLookupAll_DuplicateTargets(t *testing.T) {
	entries, err := LookupAll(strings.NewReader(store), "alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, entries[0], entries[1])
	assert.NoError(t, entries[0].Err)
}

func TestAll_SkipsUnusableEntries(t *testing.T) {
	accounts, err := All(strings.NewReader(store))
	require.NoError(t, err)

	var names []string
	for _, a := range accounts {
		names = append(names, a.Username)
	}
	assert.Equal(t, []string{"bob", "dave", "alice", "alice"}, names)
}

package words_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordchain/words"
)

// TestOneApart covers equal-length, length-mismatch, identity and multi-byte cases.
func TestOneApart(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"single substitution", "cat", "cot", true},
		{"two substitutions", "cat", "dog", false},
		{"identical", "cat", "cat", false},
		{"length mismatch", "cat", "cats", false},
		{"empty words", "", "", false},
		{"single letters", "a", "b", true},
		{"runes not bytes", "café", "cafe", true},
		{"invalid byte against replacement rune", "a\xff", "b\uFFFD", false},
		{"invalid bytes on both sides", "a\xff", "b\xff", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, words.OneApart(tc.a, tc.b))
			assert.Equal(t, tc.want, words.OneApart(tc.b, tc.a), "must be symmetric")
		})
	}
}

// TestAlphabet checks deduplication and ordering of the derived alphabet.
func TestAlphabet(t *testing.T) {
	require.Nil(t, words.Alphabet(words.NewSet()))
	require.Equal(t, []rune{'a', 'c', 'g', 'o', 't'}, words.Alphabet(words.NewSet("cat", "cog", "tag")))
	require.Equal(t, []rune{'a', 'c', 'e', 'f', 'é'}, words.Alphabet(words.NewSet("café", "face")))
	require.Equal(t, []rune{'a', 'b'}, words.Alphabet(words.NewSet("ab", "c\xff")), "invalid words contribute no runes")
}

// TestInvalid lists the words that are not valid UTF-8.
func TestInvalid(t *testing.T) {
	s := words.NewSet("cat", "a\xff", "b\uFFFD", "\xfe\xff")
	require.Equal(t, []string{"a\xff", "\xfe\xff"}, s.Invalid())
	require.True(t, words.Valid("b\uFFFD"))
	require.False(t, words.Valid("a\xff"))
	require.Empty(t, words.NewSet("cat").Invalid())
}

// TestSetBasics exercises Add/Has/Sorted/OfLength/Merge.
func TestSetBasics(t *testing.T) {
	s := words.NewSet("dog", "cat", "cat", "cats")
	require.Equal(t, 3, s.Len())
	require.True(t, s.Has("cat"))
	require.False(t, s.Has("cot"))

	s.Add("cot")
	require.Equal(t, []string{"cat", "cats", "cot", "dog"}, s.Sorted())
	require.Equal(t, []string{"cat", "cot", "dog"}, s.OfLength(3))
	require.Empty(t, s.OfLength(7))

	s.Merge(words.NewSet("frog"))
	require.True(t, s.Has("frog"))
	require.Equal(t, 4, words.Len("café"))
}

// TestFingerprint verifies the digest depends only on set contents.
func TestFingerprint(t *testing.T) {
	a := words.NewSet("frog", "goat", "grog")
	b := words.NewSet("grog", "frog", "goat")
	c := words.NewSet("frog", "goat")
	require.Equal(t, words.Fingerprint(a), words.Fingerprint(b))
	require.NotEqual(t, words.Fingerprint(a), words.Fingerprint(c))
	require.Len(t, words.Fingerprint(a), 64)
}

// TestLoad checks line handling: CRLF, blank lines and duplicates.
func TestLoad(t *testing.T) {
	s, err := words.Load(strings.NewReader("cat\r\ncot\n\ncog\ncat\n  \n"))
	require.NoError(t, err)
	require.Equal(t, []string{"  ", "cat", "cog", "cot"}, s.Sorted())
}

// TestLoadFiles merges several files and reports missing ones.
func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(p1, []byte("cat\ncot\n"), 0o600))
	require.NoError(t, os.WriteFile(p2, []byte("cot\ndog\n"), 0o600))

	s, err := words.LoadFiles(p1, p2)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "cot", "dog"}, s.Sorted())

	_, err = words.LoadFiles()
	require.ErrorIs(t, err, words.ErrNoFiles)

	_, err = words.LoadFiles(p1, filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

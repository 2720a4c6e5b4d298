// SPDX-License-Identifier: MIT

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultWordList is the system dictionary used when no word list is given.
const DefaultWordList = "/usr/share/dict/words"

// ErrNoFiles is returned by LoadFiles when called without paths.
var ErrNoFiles = errors.New("words: no word list files given")

// maxLineBytes bounds a single line; dictionary entries are far shorter.
const maxLineBytes = 1 << 20

// Load reads one word per line from r. Line terminators ("\n" or "\r\n") are
// stripped and blank lines are skipped; everything else is kept verbatim.
func Load(r io.Reader) (Set, error) {
	s := make(Set)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		w := strings.TrimSuffix(sc.Text(), "\r")
		if w == "" {
			continue
		}
		s.Add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: scan: %w", err)
	}

	return s, nil
}

// LoadFile reads a single word list file.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %q: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %q: %w", path, err)
	}

	return s, nil
}

// LoadFiles reads every path and returns the union of their words.
func LoadFiles(paths ...string) (Set, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	all := make(Set)
	for _, p := range paths {
		s, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		all.Merge(s)
	}

	return all, nil
}

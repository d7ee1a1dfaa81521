// internal/words/words.go
//
// Word universe management for the solver.
//
// Responsibilities:
//   - Load the universe from a configured file or fall back to the embedded default.
//   - Normalize to lowercase and keep only alphabetic words of the configured length.
//   - Provide ordered, random access plus set lookups for membership.
//
// A Universe is built once at process start and then shared read-only by every
// solving session; nothing in this package mutates it after New returns, so it
// is safe for concurrent reads without locking.

package words

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// DefaultLength is the word length used when none is configured.
const DefaultLength = 5

// ErrEmptyUniverse is returned when no usable word survives normalization.
var ErrEmptyUniverse = errors.New("words: universe is empty")

// Universe is the ordered, immutable list of legal words of one length.
type Universe struct {
	length int
	list   []string
	set    map[string]struct{}
}

// LoadOptions selects where Load reads the universe from.
type LoadOptions struct {
	// Path of a word file (one or more words per line). Empty means embedded default.
	Path string
	// Length of every word in the universe. Zero means DefaultLength.
	Length int
}

// Load reads the universe from opts.Path, or from the embedded list when no
// path is configured.
func Load(opts LoadOptions) (*Universe, error) {
	var (
		list []string
		err  error
	)
	if opts.Path != "" {
		list, err = readWordFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("words: read %s: %w", opts.Path, err)
		}
	} else {
		list, err = assets.UniverseList()
		if err != nil {
			return nil, fmt.Errorf("words: read embedded list: %w", err)
		}
	}
	return New(list, opts.Length)
}

// New builds a Universe from list. Words are lowercased and trimmed; entries
// that are not exactly length ASCII letters are dropped, as are repeats (the
// first occurrence keeps its position).
func New(list []string, length int) (*Universe, error) {
	if length <= 0 {
		length = DefaultLength
	}
	u := &Universe{
		length: length,
		list:   make([]string, 0, len(list)),
		set:    make(map[string]struct{}, len(list)),
	}
	for _, raw := range list {
		w := strings.TrimSpace(strings.ToLower(raw))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := u.set[w]; dup {
			continue
		}
		u.set[w] = struct{}{}
		u.list = append(u.list, w)
	}
	if len(u.list) == 0 {
		return nil, ErrEmptyUniverse
	}
	return u, nil
}

// readWordFile loads a word file in the same format as the embedded list.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadWords(f)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the universe in load order. The slice is shared; callers
// must not modify it.
func (u *Universe) Words() []string { return u.list }

// Len returns the number of words.
func (u *Universe) Len() int { return len(u.list) }

// Length returns the fixed word length L.
func (u *Universe) Length() int { return u.length }

// At returns the i-th word in load order.
func (u *Universe) At(i int) string { return u.list[i] }

// Contains reports whether w (case-insensitive) is a legal word.
func (u *Universe) Contains(w string) bool {
	_, ok := u.set[strings.ToLower(w)]
	return ok
}

// Random returns a uniformly random word drawn with rng.
func (u *Universe) Random(rng *rand.Rand) string {
	return u.list[rng.IntN(len(u.list))]
}

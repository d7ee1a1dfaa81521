// Package pool narrows a word list toward the solution of a puzzle.
//
// A Pool starts as a shuffled copy of the universe, stable-sorted so words
// with the most distinct letters sit at the end. Elimination calls only ever
// remove words; PickBest pops from the end and PickRandom removes any word.
package pool

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// ErrNoCandidates is returned by the pick operations on an empty pool.
var ErrNoCandidates = errors.New("pool: no candidates")

// Options configures a Pool.
type Options struct {
	// Rand drives the initial shuffle and PickRandom. Nil seeds a fresh PCG.
	Rand *rand.Rand
	// Assertions enables contract checks on elimination letters and positions.
	// Violations panic.
	Assertions bool
}

// Pool is the set of surviving candidate words for one session. It is not
// safe for concurrent use.
type Pool struct {
	words  []string
	rng    *rand.Rand
	assert bool
}

// New copies universe into a new pool, shuffles it, then orders it by
// ascending distinct letter count.
func New(universe []string, opts Options) *Pool {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &Pool{
		words:  slices.Clone(universe),
		rng:    rng,
		assert: opts.Assertions,
	}

	rng.Shuffle(len(p.words), func(i, j int) {
		p.words[i], p.words[j] = p.words[j], p.words[i]
	})

	ranks := make(map[string]int, len(p.words))
	for _, w := range p.words {
		ranks[w] = DistinctLetters(w)
	}
	slices.SortStableFunc(p.words, func(a, b string) int {
		return cmp.Compare(ranks[a], ranks[b])
	})
	return p
}

// RemoveNotMatchingPosition keeps only words with letter at position.
func (p *Pool) RemoveNotMatchingPosition(letter byte, position int) {
	if p.assert {
		mustLetter(letter)
		if len(p.words) > 0 && position >= len(p.words[0]) {
			panic(fmt.Sprintf("pool: position %d out of range", position))
		}
	}
	p.retain(func(w string) bool { return w[position] == letter })
}

// RemoveWithoutLetter keeps only words containing letter.
func (p *Pool) RemoveWithoutLetter(letter byte) {
	if p.assert {
		mustLetter(letter)
	}
	p.retain(func(w string) bool { return strings.IndexByte(w, letter) >= 0 })
}

// RemoveContaining keeps only words that do not contain letter.
func (p *Pool) RemoveContaining(letter byte) {
	if p.assert {
		mustLetter(letter)
	}
	p.retain(func(w string) bool { return strings.IndexByte(w, letter) < 0 })
}

// retain filters in place, preserving order.
func (p *Pool) retain(keep func(string) bool) {
	p.words = slices.DeleteFunc(p.words, func(w string) bool { return !keep(w) })
}

// PickBest removes and returns the best-ranked word.
func (p *Pool) PickBest() (string, error) {
	n := len(p.words)
	if n == 0 {
		return "", ErrNoCandidates
	}
	w := p.words[n-1]
	p.words = p.words[:n-1]
	return w, nil
}

// PickRandom removes and returns a uniformly random word.
func (p *Pool) PickRandom() (string, error) {
	if len(p.words) == 0 {
		return "", ErrNoCandidates
	}
	i := p.rng.IntN(len(p.words))
	w := p.words[i]
	p.words = slices.Delete(p.words, i, i+1)
	return w, nil
}

// Len returns the number of surviving candidates.
func (p *Pool) Len() int { return len(p.words) }

// Contains reports whether w is still a candidate.
func (p *Pool) Contains(w string) bool { return slices.Contains(p.words, w) }

// Words returns a copy of the candidates in rank order, best last.
func (p *Pool) Words() []string { return slices.Clone(p.words) }

// DistinctLetters returns the number of different letters in word. The word
// must be lowercase ASCII; other bytes panic.
func DistinctLetters(word string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			panic(fmt.Sprintf("pool: illegal letter %q in %q", c, word))
		}
		if !seen[c-'a'] {
			seen[c-'a'] = true
			n++
		}
	}
	return n
}

func mustLetter(c byte) {
	if c < 'a' || c > 'z' {
		panic(fmt.Sprintf("pool: letter %q must be lowercase ascii", c))
	}
}

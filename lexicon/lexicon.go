// Package lexicon defines the immutable word set that bounds every word-ladder search.
//
// A Lexicon is built once from a finalized word list and never mutated afterwards,
// so it may be shared freely across goroutines without locking.
//
// Errors:
//
//	ErrEmpty           - no words were supplied.
//	ErrInvalidWord     - a word is empty or uses a letter outside the alphabet.
//	ErrInvalidAlphabet - the alphabet is empty or repeats a letter.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultAlphabet is the lowercase Latin alphabet a..z.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Sentinel errors for lexicon construction.
var (
	// ErrEmpty indicates that no words were supplied.
	ErrEmpty = errors.New("lexicon: no words")

	// ErrInvalidWord indicates an empty word or a letter outside the alphabet.
	ErrInvalidWord = errors.New("lexicon: invalid word")

	// ErrInvalidAlphabet indicates an empty alphabet or a repeated letter.
	ErrInvalidAlphabet = errors.New("lexicon: invalid alphabet")
)

// Option configures a Lexicon at construction time.
type Option func(*options)

type options struct {
	alphabet string
}

// WithAlphabet replaces DefaultAlphabet. Every letter must be a single byte
// and appear at most once.
func WithAlphabet(alphabet string) Option {
	return func(o *options) {
		o.alphabet = alphabet
	}
}

// Lexicon is an immutable set of words over a fixed alphabet.
// Each word carries a dense uint32 ID assigned in sorted word order.
type Lexicon struct {
	ids      map[string]uint32
	words    []string
	alphabet []byte
	letters  [256]bool
}

// New builds a Lexicon from words. Duplicates collapse to one entry.
// Returns ErrEmpty, ErrInvalidWord or ErrInvalidAlphabet on bad input.
func New(words []string, opts ...Option) (*Lexicon, error) {
	o := options{alphabet: DefaultAlphabet}
	for _, opt := range opts {
		opt(&o)
	}

	lx := &Lexicon{}
	if err := lx.setAlphabet(o.alphabet); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}

	uniq := make(map[string]struct{}, len(words))
	for _, w := range words {
		if err := lx.validate(w); err != nil {
			return nil, err
		}
		uniq[w] = struct{}{}
	}

	lx.words = make([]string, 0, len(uniq))
	for w := range uniq {
		lx.words = append(lx.words, w)
	}
	sort.Strings(lx.words)

	lx.ids = make(map[string]uint32, len(lx.words))
	for i, w := range lx.words {
		lx.ids[w] = uint32(i)
	}

	return lx, nil
}

func (lx *Lexicon) setAlphabet(alphabet string) error {
	if alphabet == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}
	lx.alphabet = make([]byte, 0, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if lx.letters[c] {
			return fmt.Errorf("%w: letter %q repeated", ErrInvalidAlphabet, c)
		}
		lx.letters[c] = true
		lx.alphabet = append(lx.alphabet, c)
	}
	return nil
}

func (lx *Lexicon) validate(w string) error {
	if w == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for i := 0; i < len(w); i++ {
		if !lx.letters[w[i]] {
			return fmt.Errorf("%w: %q has letter %q outside the alphabet", ErrInvalidWord, w, w[i])
		}
	}
	return nil
}

// Contains reports whether word is in the lexicon.
func (lx *Lexicon) Contains(word string) bool {
	_, ok := lx.ids[word]
	return ok
}

// ID returns the dense identifier of word.
func (lx *Lexicon) ID(word string) (uint32, bool) {
	id, ok := lx.ids[word]
	return id, ok
}

// Word returns the word with the given ID, or "" if id is out of range.
func (lx *Lexicon) Word(id uint32) string {
	if int(id) >= len(lx.words) {
		return ""
	}
	return lx.words[id]
}

// Len returns the number of distinct words.
func (lx *Lexicon) Len() int { return len(lx.words) }

// Alphabet returns a copy of the alphabet in use.
func (lx *Lexicon) Alphabet() []byte {
	out := make([]byte, len(lx.alphabet))
	copy(out, lx.alphabet)
	return out
}

// Letters returns the alphabet without copying it.
// Callers must not retain or modify the returned slice.
func (lx *Lexicon) Letters() []byte { return lx.alphabet }

// Words returns a sorted copy of every word.
func (lx *Lexicon) Words() []string {
	out := make([]string, len(lx.words))
	copy(out, lx.words)
	return out
}

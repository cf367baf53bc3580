package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordlink/lexicon"
)

// Sentinel errors for adjacency construction.
var (
	// ErrNilLexicon is returned when a Model is built without a lexicon.
	ErrNilLexicon = errors.New("adjacency: lexicon is nil")

	// ErrUnknownMode is returned for a Mode outside FixedLength/VariableLength.
	ErrUnknownMode = errors.New("adjacency: unknown mode")

	// ErrNilNeighborer is returned when a Cache is built without a source.
	ErrNilNeighborer = errors.New("adjacency: neighbor source is nil")
)

// Neighborer computes the neighbors of a word.
// Implementations must be pure: the same word always yields the same slice contents.
type Neighborer interface {
	Neighbors(word string) []string
}

// Model enumerates lexicon words one edit away from a word.
// It holds no mutable state and is safe for concurrent use.
type Model struct {
	lex  *lexicon.Lexicon
	mode Mode
}

// NewModel binds a lexicon to an edit mode.
func NewModel(lex *lexicon.Lexicon, mode Mode) (*Model, error) {
	if lex == nil {
		return nil, ErrNilLexicon
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	return &Model{lex: lex, mode: mode}, nil
}

// Mode returns the edit mode.
func (m *Model) Mode() Mode { return m.mode }

// Lexicon returns the backing lexicon.
func (m *Model) Lexicon() *lexicon.Lexicon { return m.lex }

// Neighbors returns substitutions, then (in VariableLength mode) insertions and deletions.
//
// Each mode lists a word at most once. Inserting 'a' into "at" at position 0
// or 1 yields "aat" both times, and Insertions reports it once. The modes
// are concatenated as is, so a word may still appear in more than one of them.
func (m *Model) Neighbors(word string) []string {
	out := m.Substitutions(word)
	if m.mode == VariableLength {
		out = append(out, m.Insertions(word)...)
		out = append(out, m.Deletions(word)...)
	}
	return out
}

// Substitutions returns lexicon words that replace exactly one letter of word.
// A letter replaced by itself is not a neighbor.
func (m *Model) Substitutions(word string) []string {
	var out []string
	buf := []byte(word)
	for i := range buf {
		orig := buf[i]
		for _, c := range m.lex.Letters() {
			if c == orig {
				continue
			}
			buf[i] = c
			if cand := string(buf); m.lex.Contains(cand) {
				out = append(out, cand)
			}
		}
		buf[i] = orig
	}
	return out
}

// Insertions returns lexicon words formed by inserting one letter at any
// position 0..len(word). Repeats, as in "at" → "aat" from two positions, are dropped.
func (m *Model) Insertions(word string) []string {
	var (
		out  []string
		seen map[string]struct{}
	)
	buf := make([]byte, len(word)+1)
	for i := 0; i <= len(word); i++ {
		copy(buf, word[:i])
		copy(buf[i+1:], word[i:])
		for _, c := range m.lex.Letters() {
			buf[i] = c
			cand := string(buf)
			if !m.lex.Contains(cand) {
				continue
			}
			if _, dup := seen[cand]; dup {
				continue
			}
			if seen == nil {
				seen = make(map[string]struct{})
			}
			seen[cand] = struct{}{}
			out = append(out, cand)
		}
	}
	return out
}

// Deletions returns lexicon words formed by removing one letter of word.
// Removing either letter of a double ("aat" → "at") yields one neighbor.
// A one-letter word deletes to "", which the lexicon never contains.
func (m *Model) Deletions(word string) []string {
	var out []string
	buf := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		if i > 0 && word[i] == word[i-1] {
			// same result as deleting word[i-1]
			continue
		}
		buf = append(buf[:0], word[:i]...)
		buf = append(buf, word[i+1:]...)
		if cand := string(buf); m.lex.Contains(cand) {
			out = append(out, cand)
		}
	}
	return out
}

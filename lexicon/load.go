package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadStats summarizes one dictionary read.
type LoadStats struct {
	// Lines is the number of lines read, including blanks and comments.
	Lines int

	// Accepted is the number of words handed to New (before deduplication).
	Accepted int

	// Skipped counts words dropped for using letters outside the alphabet
	// or for exceeding MaxLineLength.
	Skipped int
}

// MaxLineLength is the longest dictionary line Load accepts, in bytes.
const MaxLineLength = 4096

// Load reads a dictionary with one word per line and builds a Lexicon from it.
//
// Lines are trimmed and lower-cased. Blank lines and lines starting with '#'
// are ignored. Words containing letters outside the alphabet are skipped and
// counted in LoadStats.Skipped rather than failing the whole load, as are
// lines longer than MaxLineLength.
func Load(r io.Reader, opts ...Option) (*Lexicon, LoadStats, error) {
	o := options{alphabet: DefaultAlphabet}
	for _, opt := range opts {
		opt(&o)
	}
	var allowed [256]bool
	for i := 0; i < len(o.alphabet); i++ {
		allowed[o.alphabet[i]] = true
	}

	var (
		stats LoadStats
		words []string
	)
	br := bufio.NewReaderSize(r, MaxLineLength)
	for {
		raw, long, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("lexicon: read dictionary: %w", err)
		}
		stats.Lines++
		if long {
			// drain the rest of the line
			for long && err == nil {
				_, long, err = br.ReadLine()
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, stats, fmt.Errorf("lexicon: read dictionary: %w", err)
			}
			stats.Skipped++
			continue
		}

		line := strings.ToLower(strings.TrimSpace(string(raw)))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !onlyLetters(line, &allowed) {
			stats.Skipped++
			continue
		}
		words = append(words, line)
	}
	stats.Accepted = len(words)

	lx, err := New(words, opts...)
	if err != nil {
		return nil, stats, err
	}
	return lx, stats, nil
}

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string, opts ...Option) (*Lexicon, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("lexicon: open dictionary: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

func onlyLetters(w string, allowed *[256]bool) bool {
	for i := 0; i < len(w); i++ {
		if !allowed[w[i]] {
			return false
		}
	}
	return true
}

// Package adjacency derives the implicit edges of the word graph.
//
// What
//
//   - Model enumerates the lexicon words one edit away from a given word.
//   - FixedLength models allow substitution only; VariableLength models also
//     allow inserting or deleting one letter.
//   - Cache memoizes Model results per word and is safe for concurrent use.
//
// Order
//
//	Model.Neighbors returns substitutions first, then insertions, then deletions.
//	Within each group candidates are produced position by position and, for every
//	position, in alphabet order, so the result is fully reproducible.
//
// Complexity (L = word length, A = alphabet size)
//
//   - Substitutions: O(L·A) membership tests.
//   - Insertions:    O((L+1)·A) membership tests.
//   - Deletions:     O(L) membership tests.
//
// Usage
//
//	m, err := adjacency.NewModel(lex, adjacency.VariableLength)
//	if err != nil {
//		// ErrNilLexicon or ErrUnknownMode
//	}
//	c := adjacency.NewCache(m)
//	next := c.Get("cat") // shared, read-only slice
package adjacency

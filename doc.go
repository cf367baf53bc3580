// Package wordlink finds word ladders: shortest chains of dictionary words
// from a start word to a target word, where each step changes one letter and,
// optionally, inserts or deletes one.
//
// What is wordlink?
//
//	A small, thread-safe search engine over the implicit graph whose vertices are
//	dictionary words and whose edges are single-letter edits:
//		• lexicon/  : immutable word set, alphabet, dense word IDs, dictionary loader
//		• adjacency/: edit model (fixed or variable length) and a concurrent memo cache
//		• ladder/   : breadth-first Finder with pruning, seeded ordering, budgets and hooks
//		• metrics/  : Prometheus collectors for searches and cache traffic
//		• cmd/wordlink: command-line front end
//
// Quick start
//
//	lex, _ := lexicon.New([]string{"cold", "cord", "card", "ward", "warm"})
//	f, _ := ladder.New(lex)
//	res, _ := f.Find("cold", "warm")
//	fmt.Println(res.Path) // [cold cord card ward warm]
package wordlink

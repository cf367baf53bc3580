// Package ladder provides a breadth-first word-ladder search over a lexicon,
// returning a shortest chain of words in which consecutive words differ by one edit.
//
// What
//
//   - Walk the implicit word graph from a start word in non-decreasing path length.
//   - Returns a Result containing:
//   - Path:     start … target, inclusive
//   - Expanded: walks dequeued and expanded
//   - Enqueued: walks appended to the queue
//   - Edit model, per Finder:
//   - adjacency.FixedLength    (substitute one letter)
//   - adjacency.VariableLength (substitute, insert or delete one letter)
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a walk is queued)
//   - OnDequeue (immediately before expanding a walk)
//   - Honors MaxDepth and MaxExpansions budgets and context cancellation.
//
// Walks and pruning
//
//	Every queue element is a whole walk, linked to its prefix, so a word never
//	repeats within one walk. With pruning on (the default) a word claimed by an
//	earlier walk is never claimed again; the claim set is a roaring bitmap over
//	lexicon IDs, so the check is O(1) instead of a scan of the queue. With
//	pruning off only the in-walk rule applies. Both settings return shortest
//	chains; pruning only bounds the work.
//
// Determinism
//
//	IdentityOrder explores neighbors in adjacency order and is fully reproducible.
//	SeededShuffle(seed) permutes them; the n-th search of a Finder always uses the
//	same permutation stream for a given seed. When several shortest chains exist,
//	different seeds may return different ones of the same length.
//
// Endpoints
//
//	Start and target must both be lexicon words; otherwise Find fails with
//	ErrInvalidEndpoint before touching the graph. Find(w, w) returns [w].
//
// Complexity (V = words reached, E = edges among them, L = word length, A = alphabet)
//
//   - Time:   O(V·L·A) neighbor probes, amortized by the adjacency cache across searches.
//   - Memory: O(V) walks with pruning; unbounded without it, so set a budget.
//
// Usage
//
//	lex, _ := lexicon.New([]string{"cold", "cord", "card", "ward", "warm"})
//	f, err := ladder.New(lex)
//	if err != nil {
//		// ErrNilLexicon or ErrOptionViolation
//	}
//	res, err := f.Find("cold", "warm")
//	// res.Path == [cold cord card ward warm]
//
//	// With functional options:
//	f, err = ladder.New(lex,
//		ladder.WithVariableLength(),
//		ladder.WithSeed(42),
//		ladder.WithMaxDepth(8),
//		ladder.WithMaxExpansions(100000),
//		ladder.WithLogger(slog.Default()),
//		ladder.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
//	)
//
// Errors
//
//   - ErrNilLexicon        if the lexicon pointer is nil.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrStartNotFound     if start is not in the lexicon.
//   - ErrTargetNotFound    if target is not in the lexicon.
//   - ErrUnreachable       if no chain exists.
//   - ErrBudgetExceeded    if a budget stopped the search early.
//   - ctx.Err()            on cancellation or deadline.
package ladder

package ladder_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordlink/adjacency"
	"github.com/katalvlaran/wordlink/ladder"
	"github.com/katalvlaran/wordlink/lexicon"
)

func newLexicon(t testing.TB, words ...string) *lexicon.Lexicon {
	t.Helper()
	lx, err := lexicon.New(words)
	require.NoError(t, err)
	return lx
}

func newFinder(t testing.TB, words []string, opts ...ladder.Option) *ladder.Finder {
	t.Helper()
	f, err := ladder.New(newLexicon(t, words...), opts...)
	require.NoError(t, err)
	return f
}

var coldWarm = []string{"cold", "cord", "card", "ward", "warm"}

// TestNew_Errors verifies that invalid inputs and options are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := ladder.New(nil)
	require.ErrorIs(t, err, ladder.ErrNilLexicon)

	lx := newLexicon(t, "cat")
	for name, opt := range map[string]ladder.Option{
		"negative depth":      ladder.WithMaxDepth(-1),
		"negative expansions": ladder.WithMaxExpansions(-3),
		"unknown mode":        ladder.WithMode(adjacency.Mode(42)),
	} {
		_, err := ladder.New(lx, opt)
		assert.ErrorIs(t, err, ladder.ErrOptionViolation, name)
	}
}

// TestFind_ColdToWarm covers the classic four-step ladder.
func TestFind_ColdToWarm(t *testing.T) {
	f := newFinder(t, coldWarm)

	res, err := f.Find("cold", "warm")
	require.NoError(t, err)
	if diff := cmp.Diff(coldWarm, res.Path); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, res.Len())
	assert.True(t, res.Found())
	assert.Equal(t, 4, res.Expanded)
	assert.Equal(t, 3, res.Enqueued)

	// reverse direction walks the same chain backwards
	res, err = f.Find("warm", "cold")
	require.NoError(t, err)
	assert.Equal(t, []string{"warm", "ward", "card", "cord", "cold"}, res.Path)
}

// TestFind_Unreachable exhausts a disconnected lexicon.
func TestFind_Unreachable(t *testing.T) {
	f := newFinder(t, []string{"cat", "dog"})

	res, err := f.Find("cat", "dog")
	require.ErrorIs(t, err, ladder.ErrUnreachable)
	assert.Equal(t, ladder.OutcomeUnreachable, ladder.Outcome(err))
	assert.False(t, res.Found())
	assert.Equal(t, -1, res.Len())
	assert.Equal(t, 1, res.Expanded)
}

// TestFind_VariableLength uses insertion then deletion.
func TestFind_VariableLength(t *testing.T) {
	words := []string{"cat", "cart", "art"}

	f := newFinder(t, words, ladder.WithVariableLength())
	assert.Equal(t, adjacency.VariableLength, f.Mode())
	res, err := f.Find("cat", "art")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cart", "art"}, res.Path)

	// substitution alone cannot change length
	fixed := newFinder(t, words)
	_, err = fixed.Find("cat", "art")
	require.ErrorIs(t, err, ladder.ErrUnreachable)
}

// TestFind_InvalidEndpoints fails before any traversal.
func TestFind_InvalidEndpoints(t *testing.T) {
	var dequeued int
	f := newFinder(t, coldWarm, ladder.WithOnDequeue(func(string, int) { dequeued++ }))

	res, err := f.Find("cold", "worm")
	require.ErrorIs(t, err, ladder.ErrTargetNotFound)
	assert.ErrorIs(t, err, ladder.ErrInvalidEndpoint)
	assert.False(t, res.Found())

	_, err = f.Find("cole", "warm")
	require.ErrorIs(t, err, ladder.ErrStartNotFound)
	assert.ErrorIs(t, err, ladder.ErrInvalidEndpoint)
	assert.Equal(t, ladder.OutcomeInvalidInput, ladder.Outcome(err))

	assert.Zero(t, dequeued, "no walk may be expanded")
	assert.Zero(t, f.Cache().Len(), "no adjacency may be computed")
}

// TestFind_SameWord returns the single-word chain without searching.
func TestFind_SameWord(t *testing.T) {
	f := newFinder(t, coldWarm)
	for _, w := range coldWarm {
		res, err := f.Find(w, w)
		require.NoError(t, err)
		assert.Equal(t, []string{w}, res.Path)
		assert.Equal(t, 0, res.Len())
		assert.Zero(t, res.Expanded)
	}

	_, err := f.Find("nope", "nope")
	require.ErrorIs(t, err, ladder.ErrStartNotFound)
}

// TestFind_Pruning checks both policies agree on length and that pruning saves work.
func TestFind_Pruning(t *testing.T) {
	words := cube("ab", 3)
	pruned := newFinder(t, words)
	unpruned := newFinder(t, words, ladder.WithPruning(false))

	a, err := pruned.Find("aaa", "bbb")
	require.NoError(t, err)
	b, err := unpruned.Find("aaa", "bbb")
	require.NoError(t, err)

	assert.Equal(t, []string{"aaa", "baa", "bba", "bbb"}, a.Path)
	assert.Equal(t, a.Len(), b.Len())
	assert.Less(t, a.Enqueued, b.Enqueued)
}

// TestFind_MaxDepth distinguishes a depth cut from true unreachability.
func TestFind_MaxDepth(t *testing.T) {
	_, err := newFinder(t, coldWarm, ladder.WithMaxDepth(3)).Find("cold", "warm")
	require.ErrorIs(t, err, ladder.ErrBudgetExceeded)
	assert.Equal(t, ladder.OutcomeBudget, ladder.Outcome(err))

	res, err := newFinder(t, coldWarm, ladder.WithMaxDepth(4)).Find("cold", "warm")
	require.NoError(t, err)
	assert.Equal(t, coldWarm, res.Path)

	// nothing lies beyond the limit, so the answer is still unreachable
	_, err = newFinder(t, []string{"cat", "cot", "dog"}, ladder.WithMaxDepth(1)).Find("cat", "dog")
	require.ErrorIs(t, err, ladder.ErrUnreachable)
}

// TestFind_MaxExpansions stops after the configured number of expansions.
func TestFind_MaxExpansions(t *testing.T) {
	res, err := newFinder(t, coldWarm, ladder.WithMaxExpansions(2)).Find("cold", "warm")
	require.ErrorIs(t, err, ladder.ErrBudgetExceeded)
	assert.Equal(t, 2, res.Expanded)

	res, err = newFinder(t, coldWarm, ladder.WithMaxExpansions(4)).Find("cold", "warm")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Expanded)
}

// TestFind_Canceled honors an already-canceled context.
func TestFind_Canceled(t *testing.T) {
	f := newFinder(t, coldWarm)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FindContext(ctx, "cold", "warm")
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Equal(t, ladder.OutcomeCanceled, ladder.Outcome(err))
}

// TestFind_Hooks records enqueue and dequeue order.
func TestFind_Hooks(t *testing.T) {
	var enq, deq []string
	f := newFinder(t, coldWarm,
		ladder.WithOnEnqueue(func(w string, d int) { enq = append(enq, w) }),
		ladder.WithOnDequeue(func(w string, d int) { deq = append(deq, w) }),
	)
	_, err := f.Find("cold", "warm")
	require.NoError(t, err)

	assert.Equal(t, []string{"cold", "cord", "card", "ward"}, enq)
	assert.Equal(t, []string{"cold", "cord", "card", "ward"}, deq)
}

// TestFind_SharedCache reuses adjacency across searches and finders.
func TestFind_SharedCache(t *testing.T) {
	lx := newLexicon(t, coldWarm...)
	model, err := adjacency.NewModel(lx, adjacency.FixedLength)
	require.NoError(t, err)
	cache := adjacency.NewCache(model)

	f1, err := ladder.New(lx, ladder.WithCache(cache))
	require.NoError(t, err)
	f2, err := ladder.New(lx, ladder.WithCache(cache))
	require.NoError(t, err)

	_, err = f1.Find("cold", "warm")
	require.NoError(t, err)
	missesAfterFirst := cache.Stats().Misses

	_, err = f2.Find("cold", "warm")
	require.NoError(t, err)
	assert.Equal(t, missesAfterFirst, cache.Stats().Misses, "second finder must hit the cache")
	assert.Same(t, cache, f2.Cache())
	assert.Equal(t, []string{"cord"}, f2.Neighbors("cold"))
}

// TestFind_SharedCacheMode takes the mode from a shared cache and rejects conflicts.
func TestFind_SharedCacheMode(t *testing.T) {
	lx := newLexicon(t, "cat", "cot", "cart")
	model, err := adjacency.NewModel(lx, adjacency.FixedLength)
	require.NoError(t, err)
	cache := adjacency.NewCache(model)

	_, err = ladder.New(lx, ladder.WithCache(cache), ladder.WithVariableLength())
	require.ErrorIs(t, err, ladder.ErrOptionViolation)

	f, err := ladder.New(lx, ladder.WithCache(cache), ladder.WithMode(adjacency.FixedLength))
	require.NoError(t, err)
	assert.Equal(t, adjacency.FixedLength, f.Mode())

	vmodel, err := adjacency.NewModel(lx, adjacency.VariableLength)
	require.NoError(t, err)
	f, err = ladder.New(lx, ladder.WithCache(adjacency.NewCache(vmodel)))
	require.NoError(t, err)
	assert.Equal(t, adjacency.VariableLength, f.Mode())
	assert.Equal(t, []string{"cot", "cart"}, f.Neighbors("cat"))

	other := newLexicon(t, "cat", "cot", "cart")
	_, err = ladder.New(other, ladder.WithCache(cache))
	assert.ErrorIs(t, err, ladder.ErrOptionViolation)
}

// foreignSource returns scripted neighbor lists, including non-lexicon words.
type foreignSource map[string][]string

func (s foreignSource) Neighbors(word string) []string { return s[word] }

// TestFind_SkipsForeignWords never enqueues a word the lexicon lacks.
func TestFind_SkipsForeignWords(t *testing.T) {
	lx := newLexicon(t, "cat", "cot", "dog")
	src := foreignSource{
		"cot": {"zzz", "cat"},
		"cat": {"yyy", "dog"},
	}

	for _, prune := range []bool{true, false} {
		var queued []string
		f, err := ladder.New(lx,
			ladder.WithCache(adjacency.NewCache(src)),
			ladder.WithPruning(prune),
			ladder.WithOnEnqueue(func(w string, _ int) { queued = append(queued, w) }),
		)
		require.NoError(t, err)

		res, err := f.Find("cot", "dog")
		require.NoError(t, err, "prune=%v", prune)
		assert.Equal(t, []string{"cot", "cat", "dog"}, res.Path, "prune=%v", prune)
		assert.Equal(t, []string{"cat"}, queued, "prune=%v", prune)
	}
}

// TestFind_Concurrent runs many searches on one Finder at once.
func TestFind_Concurrent(t *testing.T) {
	f := newFinder(t, cube("abc", 3), ladder.WithVariableLength(), ladder.WithSeed(7))

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			res, err := f.Find("aaa", "ccc")
			if err != nil {
				t.Errorf("Find: %v", err)
				return
			}
			if res.Len() != 3 {
				t.Errorf("Len = %d; want 3 (%v)", res.Len(), res.Path)
			}
		}()
	}
	wg.Wait()
}

// TestOutcome maps foreign errors to OutcomeError.
func TestOutcome(t *testing.T) {
	assert.Equal(t, ladder.OutcomeFound, ladder.Outcome(nil))
	assert.Equal(t, ladder.OutcomeCanceled, ladder.Outcome(context.DeadlineExceeded))
	assert.Equal(t, ladder.OutcomeError, ladder.Outcome(errors.New("boom")))
}

// cube returns every word of length n over letters.
func cube(letters string, n int) []string {
	words := []string{""}
	for i := 0; i < n; i++ {
		next := make([]string, 0, len(words)*len(letters))
		for _, w := range words {
			for j := 0; j < len(letters); j++ {
				next = append(next, w+letters[j:j+1])
			}
		}
		words = next
	}
	return words
}

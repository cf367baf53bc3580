// Package ladder finds a shortest chain of lexicon words between two words,
// changing one letter per step.
//
// The search is a breadth-first walk over the implicit word graph derived by
// package adjacency. Walks are queued in non-decreasing length, so the first
// walk to reach the target is a shortest one.
package ladder

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordlink/adjacency"
	"github.com/katalvlaran/wordlink/lexicon"
)

const tracerName = "github.com/katalvlaran/wordlink/ladder"

// walk is one queued path, linked back to its prefix.
// Walks sharing a prefix share its nodes.
type walk struct {
	word  string
	prev  *walk
	depth int
}

// contains reports whether word appears anywhere on the walk.
func (w *walk) contains(word string) bool {
	for cur := w; cur != nil; cur = cur.prev {
		if cur.word == word {
			return true
		}
	}
	return false
}

// path materializes the walk from start to its last word.
func (w *walk) path() []string {
	out := make([]string, w.depth+1)
	for cur := w; cur != nil; cur = cur.prev {
		out[cur.depth] = cur.word
	}
	return out
}

// Finder runs word-ladder searches over one lexicon.
//
// Thread Safety:
//
//	Find may be called from many goroutines. Per-search state is private to the
//	call; the adjacency cache is shared and concurrency-safe. Hooks supplied via
//	options must be safe for concurrent use if Find is.
type Finder struct {
	lex    *lexicon.Lexicon
	cache  *adjacency.Cache
	opts   Options
	tracer trace.Tracer
}

// New builds a Finder over lex, applying any number of functional Options.
// Returns ErrNilLexicon or ErrOptionViolation for invalid input.
func New(lex *lexicon.Lexicon, opts ...Option) (*Finder, error) {
	if lex == nil {
		return nil, ErrNilLexicon
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cache := o.Cache
	if cache != nil {
		if err := adoptCache(&o, lex, cache); err != nil {
			return nil, err
		}
	} else {
		model, err := adjacency.NewModel(lex, o.Mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
		}
		cache = adjacency.NewCache(model, adjacency.WithCacheMetrics(o.Metrics))
	}

	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Finder{
		lex:    lex,
		cache:  cache,
		opts:   o,
		tracer: tp.Tracer(tracerName),
	}, nil
}

// adoptCache aligns o with the model behind a shared cache.
func adoptCache(o *Options, lex *lexicon.Lexicon, cache *adjacency.Cache) error {
	model, ok := cache.Source().(*adjacency.Model)
	if !ok {
		return nil
	}
	if model.Lexicon() != lex {
		return fmt.Errorf("%w: cache wraps a model over another lexicon", ErrOptionViolation)
	}
	if o.modeSet && o.Mode != model.Mode() {
		return fmt.Errorf("%w: mode %s conflicts with cache mode %s", ErrOptionViolation, o.Mode, model.Mode())
	}
	o.Mode = model.Mode()
	return nil
}

// Lexicon returns the lexicon searched by f.
func (f *Finder) Lexicon() *lexicon.Lexicon { return f.lex }

// Cache returns the adjacency cache shared by every search of f.
func (f *Finder) Cache() *adjacency.Cache { return f.cache }

// Mode returns the edit mode.
func (f *Finder) Mode() adjacency.Mode { return f.opts.Mode }

// Neighbors returns the cached neighbors of word in model order.
// The slice is shared and must not be modified.
func (f *Finder) Neighbors(word string) []string { return f.cache.Get(word) }

// Find searches for a shortest chain from start to target.
// See FindContext.
func (f *Finder) Find(start, target string) (*Result, error) {
	return f.FindContext(context.Background(), start, target)
}

// FindContext searches for a shortest chain from start to target.
//
// The returned Result is never nil; its Path is set only on success.
// Find(w, w) returns [w] for any lexicon word w without searching.
//
// Errors:
//   - ErrStartNotFound / ErrTargetNotFound (both match ErrInvalidEndpoint) before any traversal.
//   - ErrUnreachable after the reachable graph is exhausted.
//   - ErrBudgetExceeded when MaxDepth or MaxExpansions cut the search short.
//   - ctx.Err() when ctx is canceled or its deadline passes.
func (f *Finder) FindContext(ctx context.Context, start, target string) (*Result, error) {
	ctx, span := f.tracer.Start(ctx, "ladder.Find", trace.WithAttributes(
		attribute.String("ladder.start", start),
		attribute.String("ladder.target", target),
		attribute.String("ladder.mode", f.opts.Mode.String()),
	))
	defer span.End()

	began := time.Now()
	f.opts.Logger.DebugContext(ctx, "ladder: search started",
		"start", start, "target", target, "mode", f.opts.Mode.String(), "prune", f.opts.Prune)

	s := &search{
		finder: f,
		ctx:    ctx,
		target: target,
		res:    &Result{},
	}
	err := s.run(start)

	outcome := Outcome(err)
	elapsed := time.Since(began)
	span.SetAttributes(
		attribute.String("ladder.outcome", outcome),
		attribute.Int("ladder.expanded", s.res.Expanded),
		attribute.Int("ladder.steps", s.res.Len()),
	)
	if err != nil && outcome != OutcomeUnreachable {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	f.opts.Metrics.ObserveSearch(outcome, elapsed, s.res.Expanded)
	f.opts.Logger.DebugContext(ctx, "ladder: search finished",
		"start", start, "target", target, "outcome", outcome,
		"steps", s.res.Len(), "expanded", s.res.Expanded, "enqueued", s.res.Enqueued,
		"elapsed", elapsed)

	return s.res, err
}

// search encapsulates mutable state of one Find call.
type search struct {
	finder  *Finder
	ctx     context.Context
	target  string
	arrange Arranger
	queue   []*walk
	seen    *roaring.Bitmap // visited-or-enqueued words; nil when pruning is off
	capped  bool            // MaxDepth withheld at least one extension
	res     *Result
}

// run validates the endpoints, seeds the queue and drives the main loop.
func (s *search) run(start string) error {
	lex := s.finder.lex
	if !lex.Contains(start) {
		return fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !lex.Contains(s.target) {
		return fmt.Errorf("%w: %q", ErrTargetNotFound, s.target)
	}
	if start == s.target {
		s.res.Path = []string{start}
		return nil
	}

	s.arrange = s.finder.opts.Order.Begin()
	if s.finder.opts.Prune {
		s.seen = roaring.New()
		s.mark(start)
	}
	s.queue = append(s.queue, &walk{word: start})
	s.finder.opts.OnEnqueue(start, 0)

	return s.loop()
}

// loop processes the queue until a hit, exhaustion, budget or cancellation.
func (s *search) loop() error {
	maxExp := s.finder.opts.MaxExpansions
	for len(s.queue) > 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		if maxExp > 0 && s.res.Expanded >= maxExp {
			return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, maxExp)
		}

		cur := s.dequeue()
		found, err := s.expand(cur)
		if err != nil || found {
			return err
		}
	}
	if s.capped {
		return fmt.Errorf("%w: depth %d", ErrBudgetExceeded, s.finder.opts.MaxDepth)
	}
	return ErrUnreachable
}

// dequeue pops the first walk and invokes OnDequeue.
func (s *search) dequeue() *walk {
	cur := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	s.res.Expanded++
	s.finder.opts.OnDequeue(cur.word, cur.depth)
	return cur
}

// expand extends cur by each admissible neighbor. It reports true once the
// target has been reached and recorded in the result.
func (s *search) expand(cur *walk) (bool, error) {
	neighbors := s.finder.cache.Get(cur.word)
	if s.arrange != nil {
		neighbors = s.arrange(neighbors)
	}

	maxDepth := s.finder.opts.MaxDepth
	nextDepth := cur.depth + 1
	for _, next := range neighbors {
		if err := s.ctx.Err(); err != nil {
			return false, err
		}
		if s.skip(cur, next) {
			continue
		}
		if maxDepth > 0 && nextDepth > maxDepth {
			s.capped = true
			return false, nil
		}

		w := &walk{word: next, prev: cur, depth: nextDepth}
		// the target is never marked, so skip cannot hide it
		if next == s.target {
			s.res.Path = w.path()
			return true, nil
		}
		if s.seen != nil {
			s.mark(next)
		}
		s.queue = append(s.queue, w)
		s.res.Enqueued++
		s.finder.opts.OnEnqueue(next, nextDepth)
	}
	return false, nil
}

// skip reports whether next must not extend cur: it is not a lexicon word,
// it already lies on cur, or, with pruning on, an earlier walk already claimed it.
func (s *search) skip(cur *walk, next string) bool {
	id, ok := s.finder.lex.ID(next)
	if !ok {
		return true
	}
	if s.seen != nil {
		// every word on cur was marked when its walk was queued
		return s.seen.Contains(id)
	}
	return cur.contains(next)
}

func (s *search) mark(word string) {
	id, _ := s.finder.lex.ID(word)
	s.seen.Add(id)
}

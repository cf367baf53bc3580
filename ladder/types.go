// Package ladder provides tunable options, results and error definitions
// for word-ladder searches.
package ladder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordlink/adjacency"
	"github.com/katalvlaran/wordlink/metrics"
)

// Sentinel errors for ladder searches.
var (
	// ErrNilLexicon is returned by New when no lexicon is supplied.
	ErrNilLexicon = errors.New("ladder: lexicon is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrInvalidEndpoint is the parent of ErrStartNotFound and ErrTargetNotFound.
	ErrInvalidEndpoint = errors.New("ladder: endpoint not in lexicon")

	// ErrStartNotFound is returned when the start word is absent from the lexicon.
	ErrStartNotFound = fmt.Errorf("%w: start", ErrInvalidEndpoint)

	// ErrTargetNotFound is returned when the target word is absent from the lexicon.
	ErrTargetNotFound = fmt.Errorf("%w: target", ErrInvalidEndpoint)

	// ErrUnreachable is returned when the search space is exhausted without reaching the target.
	ErrUnreachable = errors.New("ladder: target unreachable")

	// ErrBudgetExceeded is returned when MaxDepth or MaxExpansions stopped
	// the search while unexplored walks remained.
	ErrBudgetExceeded = errors.New("ladder: search budget exceeded")
)

// Outcome labels used for metrics, tracing and logs.
const (
	OutcomeFound        = "found"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUnreachable  = "unreachable"
	OutcomeBudget       = "budget"
	OutcomeCanceled     = "canceled"
	OutcomeError        = "error"
)

// Outcome classifies the error returned by Find.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrInvalidEndpoint):
		return OutcomeInvalidInput
	case errors.Is(err, ErrUnreachable):
		return OutcomeUnreachable
	case errors.Is(err, ErrBudgetExceeded):
		return OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

// Option configures a Finder via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that shape every search of a Finder.
type Options struct {
	// Mode selects the edit model. Default adjacency.FixedLength.
	Mode adjacency.Mode

	// Prune skips a neighbor already enqueued by any earlier walk.
	// Default true. Disabling it keeps results shortest but may revisit words
	// along many branches.
	Prune bool

	// Order decides neighbor exploration order. Default IdentityOrder().
	Order Order

	// MaxDepth, if > 0, limits paths to that many edit steps.
	MaxDepth int

	// MaxExpansions, if > 0, limits how many walks one search may expand.
	MaxExpansions int

	// OnEnqueue is called when a walk ending at word is queued.
	// Depth counts edit steps from the start word.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called immediately before a walk ending at word is expanded.
	OnDequeue func(word string, depth int)

	// Logger receives debug records at search start and end.
	Logger *slog.Logger

	// Metrics, if non-nil, records search outcomes and cache traffic.
	Metrics *metrics.Metrics

	// Cache, if non-nil, replaces the Finder's private adjacency cache.
	Cache *adjacency.Cache

	// TracerProvider supplies the tracer for the ladder.Find span.
	// Nil means the global provider.
	TracerProvider trace.TracerProvider

	// modeSet records an explicit WithMode, checked against a shared cache
	modeSet bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - fixed-length edits
//   - pruning on
//   - identity order
//   - no depth or expansion limit
//   - no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Mode:      adjacency.FixedLength,
		Prune:     true,
		Order:     IdentityOrder(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithMode selects fixed-length or variable-length edits.
func WithMode(m adjacency.Mode) Option {
	return func(o *Options) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
		o.modeSet = true
	}
}

// WithVariableLength is shorthand for WithMode(adjacency.VariableLength).
func WithVariableLength() Option {
	return WithMode(adjacency.VariableLength)
}

// WithPruning toggles duplicate-walk suppression.
func WithPruning(enabled bool) Option {
	return func(o *Options) {
		o.Prune = enabled
	}
}

// WithOrder sets the neighbor exploration order. A nil order is ignored.
func WithOrder(ord Order) Option {
	return func(o *Options) {
		if ord != nil {
			o.Order = ord
		}
	}
}

// WithSeed is shorthand for WithOrder(SeededShuffle(seed)).
func WithSeed(seed int64) Option {
	return WithOrder(SeededShuffle(seed))
}

// WithMaxDepth limits paths to d edit steps.
//
//	d > 0: limit to d steps
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxExpansions limits each search to n expanded walks.
// n == 0 disables the limit; n < 0 is an ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records outcomes and cache traffic to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithCache shares an existing adjacency cache.
//
// When the cache wraps an *adjacency.Model, the Finder takes its mode from the
// model. New rejects a model over another lexicon, or one whose mode differs
// from an explicit WithMode. Words outside the Finder's lexicon are never
// enqueued, whatever the cache returns.
func WithCache(c *adjacency.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

// Result holds the outcome of one search.
//   - Path: words from start to target inclusive; nil unless the search succeeded.
//   - Expanded: walks dequeued and expanded.
//   - Enqueued: walks appended to the queue, excluding the initial one.
type Result struct {
	Path     []string
	Expanded int
	Enqueued int
}

// Len returns the number of edit steps in Path, or -1 when there is no path.
func (r *Result) Len() int {
	if r == nil || len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}

// Found reports whether Path is set.
func (r *Result) Found() bool { return r != nil && len(r.Path) > 0 }

package typos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("typos")

// contextCheckInterval is how many expansions run between context checks.
const contextCheckInterval = 64

var (
	// ErrUnknownAlgorithm is returned for an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("typos: unknown algorithm")

	// ErrBudgetExceeded is returned when a search expands more nodes than
	// allowed by WithMaxExpansions. The accompanying Result is not found.
	ErrBudgetExceeded = errors.New("typos: expansion budget exceeded")
)

// Cost is the contract a path cost must satisfy. The zero value of C must be
// the additive identity, Add must be monotone with respect to Compare, and
// edge costs must never order below the zero value.
type Cost[C any] interface {
	Add(other C) C
	Compare(other C) int
}

// Graph is generic over node type N and cost type C.
// N must be comparable so it can be used in maps.
type Graph[N comparable, C any] interface {
	Neighbors(node N) []Neighbor[N, C]
}

// Neighbor represents a reachable node with the cost of the step to it.
type Neighbor[N comparable, C any] struct {
	ID   N
	Cost C
}

// Heuristic estimates the remaining cost from node to the goal. It must never
// overestimate.
type Heuristic[N comparable, C any] func(node N) C

// Goal reports whether node terminates the search.
type Goal[N comparable] func(node N) bool

// Result contains the outcome of a search.
type Result[N comparable, C any] struct {
	Path     []N
	Cost     C
	Expanded int
	Found    bool
}

// Algorithm selects one of the interchangeable search strategies.
type Algorithm int

const (
	// BestFirst is A*: best-first search ordered by cost plus heuristic.
	BestFirst Algorithm = iota
	// IterativeDeepening is IDA*: depth-first search under a rising bound.
	IterativeDeepening
	// Fringe is fringe search with now and later lists.
	Fringe
	// UniformCost is Dijkstra's algorithm, best-first without heuristic.
	UniformCost
)

var algorithmNames = map[Algorithm]string{
	BestFirst:          "astar",
	IterativeDeepening: "idastar",
	Fringe:             "fringe",
	UniformCost:        "dijkstra",
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{BestFirst, Fringe, IterativeDeepening, UniformCost}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the algorithm with the given name, as printed by
// Algorithm.String.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options defines parameters for the search.
type Options struct {
	Logger          *slog.Logger
	MaxExpansions   int
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithWorkers specifies how many goroutines a WordGraph uses to score
// neighbors. The search itself always runs on the calling goroutine.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions caps the number of node expansions. Zero means no cap.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		Logger:          slog.Default(),
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.Default()
	}
	return searchOptions
}

// Search runs the selected algorithm from start until a node satisfying goal
// is expanded or the graph is exhausted. An exhausted graph yields a Result
// with Found unset and a nil error.
func Search[N comparable, C Cost[C]](
	ctx context.Context,
	algorithm Algorithm,
	graph Graph[N, C],
	start N,
	heuristic Heuristic[N, C],
	goal Goal[N],
	options ...Option,
) (Result[N, C], error) {
	switch algorithm {
	case BestFirst:
		return AStar(ctx, graph, start, heuristic, goal, options...)
	case IterativeDeepening:
		return IDAStar(ctx, graph, start, heuristic, goal, options...)
	case Fringe:
		return FringeSearch(ctx, graph, start, heuristic, goal, options...)
	case UniformCost:
		return Dijkstra(ctx, graph, start, goal, options...)
	default:
		return Result[N, C]{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algorithm))
	}
}

// budget tracks expansions against the configured cap and periodically polls
// the context.
type budget struct {
	ctx      context.Context
	max      int
	expanded int
}

func (b *budget) expand() error {
	b.expanded++
	if b.max > 0 && b.expanded > b.max {
		return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, b.max)
	}
	if b.expanded%contextCheckInterval == 0 {
		return b.ctx.Err()
	}
	return nil
}

// observe opens the span shared by every algorithm and returns the function
// that closes it, records metrics and logs the outcome.
func observe[N comparable, C any](
	ctx context.Context,
	algorithm Algorithm,
	start N,
	logger *slog.Logger,
) (context.Context, func(*Result[N, C], *error)) {
	ctx, span := tracer.Start(ctx, "typos.Search", trace.WithAttributes(
		attribute.String("algorithm", algorithm.String()),
		attribute.String("start", fmt.Sprint(start)),
	))
	began := time.Now()

	return ctx, func(result *Result[N, C], err *error) {
		defer span.End()
		outcome := outcomeOf(result.Found, *err)
		span.SetAttributes(
			attribute.Int("expanded", result.Expanded),
			attribute.Bool("found", result.Found),
			attribute.Int("path_length", len(result.Path)),
		)
		if *err != nil {
			span.RecordError(*err)
			span.SetStatus(codes.Error, (*err).Error())
		}
		recordSearch(algorithm, outcome, result.Expanded, time.Since(began))

		logger.DebugContext(ctx, "search finished",
			slog.String("algorithm", algorithm.String()),
			slog.String("outcome", outcome),
			slog.Int("expanded", result.Expanded),
			slog.Int("path_length", len(result.Path)),
			slog.Duration("duration", time.Since(began)),
		)
	}
}

func outcomeOf(found bool, err error) string {
	switch {
	case errors.Is(err, ErrBudgetExceeded):
		return "budget_exceeded"
	case err != nil:
		return "error"
	case found:
		return "found"
	default:
		return "exhausted"
	}
}

package astar

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidInput is returned when an endpoint is outside the grid or on
	// a wall. No search work is done in that case.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoPath is not returned by the search itself, which reports an
	// unreachable goal through Result.Found. Callers that need an error for
	// that outcome can use it.
	ErrNoPath = errors.New("no path found")
)

// Result contains the outcome of a search
type Result struct {
	Path          Path
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Feed            Feed
	Heuristic       Heuristic
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithFeed attaches a visualization observer.
func WithFeed(feed Feed) Option {
	return func(options *Options) { options.Feed = feed }
}

// WithHeuristic replaces the default Diagonal estimate.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWorkers sets how many searches SolveAll runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Feed:            NopFeed{},
		Heuristic:       Diagonal,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Feed == nil {
		searchOptions.Feed = NopFeed{}
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Diagonal
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// FindPath searches from start to goal with an optional feed. An unreachable
// goal is reported with Found set to false and a nil error.
func FindPath(grid *Grid, start, goal Cell, feed Feed) (Result, error) {
	return Search(context.Background(), grid, start, goal, WithFeed(feed))
}

// Search runs A* to completion. The context is checked between expansions.
func Search(
	contextObject context.Context,
	grid *Grid,
	startNode Cell,
	goalNode Cell,
	options ...Option,
) (Result, error) {
	stepper, err := NewStepper(grid, startNode, goalNode, options...)
	if err != nil {
		return Result{}, err
	}
	for !stepper.state.Terminal() {
		if err := contextObject.Err(); err != nil {
			stepper.state = StateCancelled
			return stepper.Result(), fmt.Errorf("search from %s to %s interrupted: %w",
				startNode, goalNode, err)
		}
		stepper.advance()
	}
	return stepper.Result(), nil
}

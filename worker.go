package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for SolveAll.
type Query struct {
	Start Cell
	Goal  Cell
}

// SolveAll runs one independent search per query against a shared grid,
// using up to NumberOfWorkers goroutines. Results are in query order. Any
// feed option is ignored since feeds are not safe for concurrent use. The
// first invalid query cancels the rest.
func SolveAll(contextObject context.Context, grid *Grid, queries []Query, options ...Option) ([]Result, error) {
	searchOptions := applyOptions(options)
	results := make([]Result, len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		group.Go(func() error {
			result, err := Search(groupContext, grid, query.Start, query.Goal,
				WithHeuristic(searchOptions.Heuristic))
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

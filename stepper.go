package astar

import (
	"container/heap"
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// State is the lifecycle stage of a search.
type State int

const (
	StateInitialized State = iota
	StateRunning
	StateSucceeded
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further steps are possible.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Cell
	Frontier  map[Cell]bool
	Finalized map[Cell]bool
	CameFrom  map[Cell]Cell
	Done      bool
	Found     bool
	Path      Path
	StepIndex int
}

// Stepper runs the search one expansion at a time so a UI can draw the
// state between steps. Search drives the same type to completion.
type Stepper struct {
	grid      *Grid
	start     Cell
	goal      Cell
	heuristic Heuristic
	feed      Feed

	openSet   PriorityQueue
	sequence  uint64
	gScore    map[Cell]int
	fScore    map[Cell]float64
	cameFrom  map[Cell]Cell
	closedSet map[Cell]bool
	frontier  map[Cell]bool

	state     State
	stepCount int
	current   Cell
	path      Path
}

// NewStepper validates the endpoints and seeds the frontier with start.
func NewStepper(grid *Grid, startNode, goalNode Cell, options ...Option) (*Stepper, error) {
	opts := applyOptions(options)
	if err := validateEndpoints(grid, startNode, goalNode); err != nil {
		return nil, err
	}

	s := &Stepper{
		grid:      grid,
		start:     startNode,
		goal:      goalNode,
		heuristic: opts.Heuristic,
		feed:      opts.Feed,
		openSet:   make(PriorityQueue, 0, 64),
		gScore:    map[Cell]int{startNode: 0},
		fScore:    make(map[Cell]float64),
		cameFrom:  make(map[Cell]Cell),
		closedSet: make(map[Cell]bool),
		frontier:  make(map[Cell]bool),
		current:   startNode,
	}
	heap.Init(&s.openSet)
	s.fScore[startNode] = s.heuristic(startNode, goalNode)
	s.push(startNode, s.fScore[startNode])
	return s, nil
}

func validateEndpoints(grid *Grid, start, goal Cell) error {
	if grid == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}
	for _, ep := range []struct {
		name string
		cell Cell
	}{{"start", start}, {"end", goal}} {
		if !grid.InBounds(ep.cell) {
			return fmt.Errorf("%w: %s %s is outside the %dx%d grid",
				ErrInvalidInput, ep.name, ep.cell, grid.Height(), grid.Width())
		}
		if grid.IsBlocked(ep.cell) {
			return fmt.Errorf("%w: %s %s is blocked", ErrInvalidInput, ep.name, ep.cell)
		}
	}
	return nil
}

// State returns the current lifecycle stage.
func (s *Stepper) State() State { return s.state }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	s.advance()
	return s.snapshot()
}

// Result summarises the search so far. Path is set only on success.
func (s *Stepper) Result() Result {
	return Result{
		Path:          s.path,
		TotalCost:     s.path.Steps(),
		ExpandedNodes: len(s.closedSet),
		Found:         s.state == StateSucceeded,
	}
}

// advance pops until it finds a cell that is not finalized and expands it.
func (s *Stepper) advance() {
	if s.state.Terminal() {
		return
	}
	s.state = StateRunning

	for s.openSet.Len() > 0 {
		currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem)
		current := currentItem.Node
		if s.closedSet[current] {
			continue
		}
		s.stepCount++
		s.current = current
		delete(s.frontier, current)

		if current == s.goal {
			s.state = StateSucceeded
			s.path = internal.ReconstructPath(s.cameFrom, current, s.start)
			return
		}
		s.closedSet[current] = true

		tentativeG := s.gScore[current] + 1
		for _, next := range Neighbors(current, s.grid, s.closedSet) {
			if known, ok := s.gScore[next]; ok && tentativeG >= known {
				continue
			}
			s.gScore[next] = tentativeG
			s.fScore[next] = float64(tentativeG) + s.heuristic(next, s.goal)
			s.cameFrom[next] = current
			s.push(next, s.fScore[next])
			s.feed.OnFrontierExpanded(next)
		}
		s.feed.OnFinalized(current)
		return
	}
	s.state = StateFailed
}

// push queues c without looking for an older entry; sequence counts every
// push, duplicates included.
func (s *Stepper) push(c Cell, f float64) {
	heap.Push(&s.openSet, &PriorityQueueItem{Node: c, FCost: f, Sequence: s.sequence})
	s.sequence++
	s.frontier[c] = true
}

func (s *Stepper) snapshot() StepSnapshot {
	snap := StepSnapshot{
		Current:   s.current,
		Frontier:  copyBoolMap(s.frontier),
		Finalized: copyBoolMap(s.closedSet),
		CameFrom:  copyCameFrom(s.cameFrom),
		Done:      s.state.Terminal(),
		Found:     s.state == StateSucceeded,
		StepIndex: s.stepCount,
	}
	if snap.Found {
		snap.Path = append(Path(nil), s.path...)
	}
	return snap
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCameFrom[T comparable](m map[T]T) map[T]T {
	if m == nil {
		return nil
	}
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

package astar

// Feed observes a running search. Calls happen synchronously on the search
// goroutine and must not modify the grid.
type Feed interface {
	// OnFrontierExpanded is called when a cell gets a new best cost and is
	// queued for expansion.
	OnFrontierExpanded(c Cell)
	// OnFinalized is called after a cell has been expanded.
	OnFinalized(c Cell)
}

// NopFeed ignores every event.
type NopFeed struct{}

func (NopFeed) OnFrontierExpanded(Cell) {}
func (NopFeed) OnFinalized(Cell)        {}

// FeedFuncs adapts plain functions to a Feed. Nil fields are skipped.
type FeedFuncs struct {
	FrontierExpanded func(Cell)
	Finalized        func(Cell)
}

func (f FeedFuncs) OnFrontierExpanded(c Cell) {
	if f.FrontierExpanded != nil {
		f.FrontierExpanded(c)
	}
}

func (f FeedFuncs) OnFinalized(c Cell) {
	if f.Finalized != nil {
		f.Finalized(c)
	}
}

// EventKind tells recorded events apart.
type EventKind int

const (
	EventFrontier EventKind = iota
	EventFinalized
)

func (k EventKind) String() string {
	switch k {
	case EventFrontier:
		return "frontier"
	case EventFinalized:
		return "finalized"
	}
	return "unknown"
}

// Event is a single recorded feed call.
type Event struct {
	Kind EventKind
	Cell Cell
}

// Recorder stores every event in the order it was received.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnFrontierExpanded(c Cell) {
	r.Events = append(r.Events, Event{Kind: EventFrontier, Cell: c})
}

func (r *Recorder) OnFinalized(c Cell) {
	r.Events = append(r.Events, Event{Kind: EventFinalized, Cell: c})
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Sample forwards only every Nth event of each kind to next. An every value
// below 2 forwards everything.
func Sample(next Feed, every int) Feed {
	if every < 2 {
		return next
	}
	return &sampledFeed{next: next, every: every}
}

type sampledFeed struct {
	next      Feed
	every     int
	frontier  int
	finalized int
}

func (s *sampledFeed) OnFrontierExpanded(c Cell) {
	s.frontier++
	if s.frontier%s.every == 0 {
		s.next.OnFrontierExpanded(c)
	}
}

func (s *sampledFeed) OnFinalized(c Cell) {
	s.finalized++
	if s.finalized%s.every == 0 {
		s.next.OnFinalized(c)
	}
}

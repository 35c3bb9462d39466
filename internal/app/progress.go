package app

import (
	"log/slog"

	astar "github.com/pdrpinto/gridastar"
)

// progressFeed logs search growth. It is meant to sit behind astar.Sample so
// the speed setting decides how often a line is written.
type progressFeed struct {
	logger    *slog.Logger
	frontier  int
	finalized int
}

func (p *progressFeed) OnFrontierExpanded(c astar.Cell) {
	p.frontier++
	p.logger.Info("Frontier grew.", "cell", c.String(), "report", p.frontier)
}

func (p *progressFeed) OnFinalized(c astar.Cell) {
	p.finalized++
	p.logger.Info("Cell finalized.", "cell", c.String(), "report", p.finalized)
}

// exploredFeed keeps every frontier cell in discovery order.
type exploredFeed struct {
	cells []astar.Cell
}

func (e *exploredFeed) OnFrontierExpanded(c astar.Cell) { e.cells = append(e.cells, c) }
func (e *exploredFeed) OnFinalized(astar.Cell)          {}

// multiFeed fans events out to several feeds in order.
type multiFeed []astar.Feed

func (m multiFeed) OnFrontierExpanded(c astar.Cell) {
	for _, f := range m {
		f.OnFrontierExpanded(c)
	}
}

func (m multiFeed) OnFinalized(c astar.Cell) {
	for _, f := range m {
		f.OnFinalized(c)
	}
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/imagegrid"
	"github.com/pdrpinto/gridastar/internal/session"
)

// App is one configured solver run.
type App struct {
	outW   io.Writer
	config *Config
	logger *slog.Logger
}

// Outcome reports what Run did.
type Outcome struct {
	Result    astar.Result
	Explored  []astar.Cell
	SavedPath string
}

// NewApp builds an App that prints user-facing messages to outW and logs to
// logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		config: cfg,
		logger: NewLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Logger returns the logger configured for this run.
func (a *App) Logger() *slog.Logger { return a.logger }

// Run loads the maze, solves it and writes the result when asked to. An
// unsolvable maze returns an error wrapping astar.ErrNoPath.
func (a *App) Run(ctx context.Context) (*Outcome, error) {
	cfg := a.config

	img, format, err := imagegrid.Load(cfg.ImagePath)
	if err != nil {
		return nil, err
	}
	grid, err := imagegrid.FromImage(img, uint8(cfg.Threshold))
	if err != nil {
		return nil, err
	}
	a.logger.Info("Maze loaded.",
		"path", cfg.ImagePath, "format", format,
		"height", grid.Height(), "width", grid.Width(), "walls", grid.CountBlocked())

	sel, err := a.selectCells(grid)
	if err != nil {
		return nil, err
	}
	start, end, err := sel.Endpoints()
	if err != nil {
		return nil, fmt.Errorf("invalid endpoints: %w", err)
	}
	grid = sel.Grid()

	explored := &exploredFeed{}
	feeds := multiFeed{}
	if every := cfg.SampleEvery(); every > 0 {
		feeds = append(feeds, astar.Sample(&progressFeed{logger: a.logger}, every))
	}
	if cfg.ShowExplored {
		feeds = append(feeds, explored)
	}

	fmt.Fprintln(a.outW, "Solving...")
	res, err := astar.Search(ctx, grid, start, end, astar.WithFeed(feeds))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	outcome := &Outcome{Result: res, Explored: explored.cells}
	a.logger.Info("Search finished.",
		"start", start.String(), "end", end.String(),
		"found", res.Found, "steps", res.TotalCost, "expanded", res.ExpandedNodes)

	if !res.Found {
		fmt.Fprintln(a.outW, "The maze is impossible to solve")
		return outcome, fmt.Errorf("from %s to %s: %w", start, end, astar.ErrNoPath)
	}
	fmt.Fprintf(a.outW, "Solved! Path has %d steps.\n", res.TotalCost)

	if !cfg.Save {
		return outcome, nil
	}
	fmt.Fprintln(a.outW, "Saving...")
	pic := imagegrid.Render(grid, res.Path, imagegrid.RenderOptions{
		Explored: outcome.Explored,
		Scale:    cfg.Scale,
	})
	if err := imagegrid.Save(cfg.OutputPath, pic); err != nil {
		return outcome, err
	}
	outcome.SavedPath = cfg.OutputPath
	fmt.Fprintf(a.outW, "Saved %s\n", cfg.OutputPath)
	return outcome, nil
}

// selectCells replays the configured clicks and barrier strokes against grid.
func (a *App) selectCells(grid *astar.Grid) (*session.SelectionSession, error) {
	sel := session.NewSelectionSession(grid)
	cfg := a.config

	sel.BeginPaint()
	for _, b := range cfg.Barriers {
		if !sel.Paint(b) {
			a.logger.Warn("Barrier ignored.", "cell", b.String())
		}
	}
	sel.EndPaint()
	for _, s := range cfg.Strokes {
		sel.BeginPaint()
		n := sel.PaintLine(s[0], s[1])
		sel.EndPaint()
		a.logger.Debug("Stroke painted.", "from", s[0].String(), "to", s[1].String(), "cells", n)
	}

	for _, c := range []astar.Cell{cfg.Start, cfg.End} {
		if _, err := sel.RecordClick(c); err != nil {
			return nil, fmt.Errorf("invalid endpoint: %w", err)
		}
	}
	return sel, nil
}

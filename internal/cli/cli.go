package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/app"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// cellValue is a flag.Value for "row,col".
type cellValue struct {
	cell *astar.Cell
}

func (v *cellValue) String() string {
	if v.cell == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", v.cell.Row, v.cell.Col)
}

func (v *cellValue) Set(s string) error {
	c, err := ParseCell(s)
	if err != nil {
		return err
	}
	*v.cell = c
	return nil
}

// cellListValue is a repeatable flag.Value for "row,col".
type cellListValue struct {
	cells *[]astar.Cell
}

func (v *cellListValue) String() string {
	if v.cells == nil {
		return ""
	}
	parts := make([]string, 0, len(*v.cells))
	for _, c := range *v.cells {
		parts = append(parts, fmt.Sprintf("%d,%d", c.Row, c.Col))
	}
	return strings.Join(parts, ";")
}

func (v *cellListValue) Set(s string) error {
	c, err := ParseCell(s)
	if err != nil {
		return err
	}
	*v.cells = append(*v.cells, c)
	return nil
}

// ParseCell reads "row,col".
func ParseCell(s string) (astar.Cell, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return astar.Cell{}, fmt.Errorf("expected row,col but got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return astar.Cell{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return astar.Cell{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return astar.Cell{Row: row, Col: col}, nil
}

// Parse processes command-line arguments. Usage goes to output and, once the
// log flags are read, diagnostics go to logW. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(ctx context.Context, args []string, output, logW io.Writer) (*app.Config, bool, error) {
	ctxlog.FromContext(ctx).Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridastar", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridastar - find a route through a black and white maze image with A*.

Usage:
  gridastar [options] [IMAGE_PATH]

Arguments:
  IMAGE_PATH
    Maze image (PNG, JPEG, GIF, PBM/PGM/PPM). Dark pixels are walls.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := draft{Config: app.DefaultConfig()}
	var start, end astar.Cell
	var barriers []astar.Cell

	configFlag := flagSet.String("config", "", "Path to an HCL run file. Flags override its values.")
	imageFlag := flagSet.String("image", "", "Path to the maze image.")
	flagSet.Var(&cellValue{cell: &start}, "start", "Start cell as row,col.")
	flagSet.Var(&cellValue{cell: &end}, "end", "End cell as row,col.")
	flagSet.Var(&cellListValue{cells: &barriers}, "barrier", "Extra wall as row,col. May be repeated.")
	thresholdFlag := flagSet.Int("threshold", cfg.Threshold, "Gray level at or below which a pixel is a wall (0-255).")
	speedFlag := flagSet.Int("speed", cfg.Speed, "Progress reporting speed: 0 disables it, 1 is most frequent, 10 least.")
	saveFlag := flagSet.Bool("save", cfg.Save, "Write the solved maze to disk.")
	outputFlag := flagSet.String("output", "", "Where to write the solved maze. Defaults to <image>_Solved.<ext>.")
	exploredFlag := flagSet.Bool("show-explored", cfg.ShowExplored, "Paint every explored cell on the saved image.")
	scaleFlag := flagSet.Int("scale", cfg.Scale, "Enlarge each cell of the saved image to scale x scale pixels.")
	logFormatFlag := flagSet.String("log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	logger := app.NewLogger(logLevel, logFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Arguments parsed successfully.")

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *configFlag != "" {
		run, err := config.Load(ctx, *configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		applyRun(&cfg, run)
	}

	switch {
	case *imageFlag != "":
		cfg.ImagePath = *imageFlag
	case flagSet.NArg() > 0:
		cfg.ImagePath = flagSet.Arg(0)
	}
	if cfg.ImagePath == "" {
		logger.Debug("No image provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	haveStart, haveEnd := cfg.Start != nil, cfg.End != nil
	if set["start"] {
		cfg.Start, haveStart = &start, true
	}
	if set["end"] {
		cfg.End, haveEnd = &end, true
	}
	if !haveStart || !haveEnd {
		return nil, false, usageError("both a start and an end cell are required (-start row,col -end row,col)")
	}
	cfg.Barriers = append(cfg.Barriers, barriers...)
	if set["threshold"] {
		cfg.Threshold = *thresholdFlag
	}
	if set["speed"] {
		cfg.Speed = *speedFlag
	}
	if set["save"] {
		cfg.Save = *saveFlag
	}
	if set["output"] {
		cfg.OutputPath = *outputFlag
		cfg.Save = true
	}
	if set["show-explored"] {
		cfg.ShowExplored = *exploredFlag
	}
	if set["scale"] {
		cfg.Scale = *scaleFlag
	}
	cfg.LogFormat, cfg.LogLevel = logFormat, logLevel
	cfg.Config.Start, cfg.Config.End = *cfg.Start, *cfg.End

	appConfig, err := app.NewConfig(cfg.Config)
	if err != nil {
		return nil, false, usageError("%v", err)
	}
	logger.Debug("CLI parser finished successfully.", "image", appConfig.ImagePath)
	return appConfig, false, nil
}

// draft is the configuration being assembled, with endpoints that may still
// be unset.
type draft struct {
	app.Config
	Start *astar.Cell
	End   *astar.Cell
}

// applyRun copies every value the run file set.
func applyRun(cfg *draft, run *config.Run) {
	cfg.ImagePath = run.Image
	cfg.Start = run.Start
	cfg.End = run.End
	cfg.Barriers = append(cfg.Barriers, run.Barriers...)
	cfg.Strokes = append(cfg.Strokes, run.Strokes...)
	if run.Threshold != nil {
		cfg.Threshold = *run.Threshold
	}
	if run.Speed != nil {
		cfg.Speed = *run.Speed
	}
	if run.Save != nil {
		cfg.Save = *run.Save
	}
	if run.Output != nil {
		cfg.OutputPath = *run.Output
		cfg.Save = true
	}
	if run.ShowExplored != nil {
		cfg.ShowExplored = *run.ShowExplored
	}
	if run.Scale != nil {
		cfg.Scale = *run.Scale
	}
}

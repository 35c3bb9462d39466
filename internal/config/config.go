package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/ctxlog"
)

const (
	MaxSpeed     = 10
	MaxThreshold = 255
)

// Point is a row/col block.
type Point struct {
	Row int `hcl:"row"`
	Col int `hcl:"col"`
}

// Cell converts the block to a grid cell.
func (p Point) Cell() astar.Cell { return astar.Cell{Row: p.Row, Col: p.Col} }

// Stroke is a straight barrier from one [row, col] pair to another.
type Stroke struct {
	From []int `hcl:"from"`
	To   []int `hcl:"to"`
}

// fileRoot mirrors the top level of a run file.
type fileRoot struct {
	Image        string    `hcl:"image"`
	Threshold    *int      `hcl:"threshold,optional"`
	Speed        *int      `hcl:"speed,optional"`
	Save         *bool     `hcl:"save,optional"`
	Output       *string   `hcl:"output,optional"`
	ShowExplored *bool     `hcl:"show_explored,optional"`
	Scale        *int      `hcl:"scale,optional"`
	Start        *Point    `hcl:"start,block"`
	End          *Point    `hcl:"end,block"`
	Barriers     []*Point  `hcl:"barrier,block"`
	Strokes      []*Stroke `hcl:"stroke,block"`
}

// Run is a validated run description. Pointer fields are nil when the file
// did not set them, so callers can layer flags on top.
type Run struct {
	Image        string
	Threshold    *int
	Speed        *int
	Save         *bool
	Output       *string
	ShowExplored *bool
	Scale        *int
	Start        *astar.Cell
	End          *astar.Cell
	Barriers     []astar.Cell
	Strokes      [][2]astar.Cell
}

// Load parses and validates the run file at path.
func Load(ctx context.Context, path string) (*Run, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading run file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, diags)
	}
	run, err := decode(file.Body, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("run file %s: %w", path, err)
	}
	logger.Debug("Run file loaded.", "image", run.Image, "barriers", len(run.Barriers), "strokes", len(run.Strokes))
	return run, nil
}

// Parse decodes a run description from memory. Relative paths are resolved
// against baseDir.
func Parse(src []byte, filename, baseDir string) (*Run, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	return decode(file.Body, baseDir)
}

func decode(body hcl.Body, baseDir string) (*Run, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode: %w", diags)
	}

	run := &Run{
		Image:        resolve(baseDir, root.Image),
		Threshold:    root.Threshold,
		Speed:        root.Speed,
		Save:         root.Save,
		ShowExplored: root.ShowExplored,
		Scale:        root.Scale,
	}
	if root.Output != nil {
		out := resolve(baseDir, *root.Output)
		run.Output = &out
	}
	if root.Start != nil {
		c := root.Start.Cell()
		run.Start = &c
	}
	if root.End != nil {
		c := root.End.Cell()
		run.End = &c
	}
	for _, b := range root.Barriers {
		run.Barriers = append(run.Barriers, b.Cell())
	}
	for i, st := range root.Strokes {
		if len(st.From) != 2 || len(st.To) != 2 {
			return nil, fmt.Errorf("stroke %d: from and to must be [row, col] pairs", i)
		}
		run.Strokes = append(run.Strokes, [2]astar.Cell{
			{Row: st.From[0], Col: st.From[1]},
			{Row: st.To[0], Col: st.To[1]},
		})
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}

// Validate checks ranges that do not depend on the image.
func (r *Run) Validate() error {
	if r.Image == "" {
		return fmt.Errorf("image must not be empty")
	}
	if r.Threshold != nil && (*r.Threshold < 0 || *r.Threshold > MaxThreshold) {
		return fmt.Errorf("threshold must be between 0 and %d, got %d", MaxThreshold, *r.Threshold)
	}
	if r.Speed != nil && (*r.Speed < 0 || *r.Speed > MaxSpeed) {
		return fmt.Errorf("speed must be between 0 and %d, got %d", MaxSpeed, *r.Speed)
	}
	if r.Scale != nil && *r.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", *r.Scale)
	}
	return nil
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

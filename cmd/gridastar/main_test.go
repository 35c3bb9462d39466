package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridastar/internal/cli"
)

func writeOpenMaze(t *testing.T, dir string, w, h int, walls ...image.Point) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for _, p := range walls {
		img.SetGray(p.X, p.Y, color.Gray{Y: 0})
	}
	path := filepath.Join(dir, "maze.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRun_Solves(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	maze := writeOpenMaze(t, dir, 4, 4, image.Pt(1, 1), image.Pt(2, 2))
	args := []string{"-start", "0,0", "-end", "3,3", "-save", maze}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Solved!")
	require.FileExists(t, filepath.Join(dir, "maze_Solved.png"))
}

func TestRun_Unsolvable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	maze := writeOpenMaze(t, dir, 3, 3, image.Pt(1, 0), image.Pt(1, 1), image.Pt(1, 2))
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-start", "0,0", "-end", "0,2", maze})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, out.String(), "The maze is impossible to solve")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

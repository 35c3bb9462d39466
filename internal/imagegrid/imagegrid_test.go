package imagegrid

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/pdrpinto/gridastar"
)

// mazeImage draws rows of '#' (black) and '.' (white) as a gray image.
func mazeImage(rows ...string) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestFromImage_Thresholds(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 128})
	img.SetGray(2, 0, color.Gray{Y: 129})
	img.SetGray(3, 0, color.Gray{Y: 255})

	grid, err := FromImage(img, DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, "##..\n", grid.String())
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 12, 22))
	img.SetGray(11, 20, color.Gray{Y: 0})

	grid, err := FromImage(img, DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Height())
	assert.True(t, grid.IsBlocked(astar.Cell{Row: 0, Col: 1}))
	assert.Equal(t, 1, grid.CountBlocked())
}

func TestFromImage_Empty(t *testing.T) {
	_, err := FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), DefaultThreshold)
	require.ErrorIs(t, err, astar.ErrInvalidInput)
}

func TestDecode_PNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, mazeImage("..#", "#..")))

	img, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	grid, err := FromImage(img, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, "..#\n#..\n", grid.String())
}

func TestDecode_PGM(t *testing.T) {
	pgm := append([]byte("P5\n3 2\n255\n"), 255, 0, 255, 255, 255, 0)

	img, _, err := Decode(bytes.NewReader(pgm))
	require.NoError(t, err)

	grid, err := FromImage(img, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, ".#.\n..#\n", grid.String())
}

func TestDecode_Garbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	grid, err := FromImage(mazeImage("...", ".#.", "..."), DefaultThreshold)
	require.NoError(t, err)
	path := astar.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}}

	pic := Render(grid, path, RenderOptions{Explored: []astar.Cell{{Row: 2, Col: 0}, {Row: 1, Col: 1}}})

	assert.Equal(t, image.Rect(0, 0, 3, 3), pic.Bounds())
	assert.Equal(t, PathColor, pic.RGBAAt(1, 0))
	assert.Equal(t, PathColor, pic.RGBAAt(2, 1))
	assert.Equal(t, ExploredColor, pic.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{A: 255}, pic.RGBAAt(1, 1), "walls are never painted")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, pic.RGBAAt(2, 2))
}

func TestRender_Scale(t *testing.T) {
	grid, err := astar.NewGrid(2, 3)
	require.NoError(t, err)

	pic := Render(grid, nil, RenderOptions{Scale: 4})

	assert.Equal(t, 12, pic.Bounds().Dx())
	assert.Equal(t, 8, pic.Bounds().Dy())
}

func TestSolvedName(t *testing.T) {
	tests := map[string]string{
		"maze.png":         "maze_Solved.png",
		"dir/maze.JPG":     "dir/maze_Solved.JPG",
		"office.pgm":       "office_Solved.png",
		"noext":            "noext_Solved.png",
		"a.b/maze.v2.jpeg": "a.b/maze.v2_Solved.jpeg",
	}
	for in, want := range tests {
		assert.Equal(t, want, SolvedName(in), in)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	grid, err := FromImage(mazeImage(".#", ".."), DefaultThreshold)
	require.NoError(t, err)
	out := filepath.Join(dir, "out.png")

	require.NoError(t, Save(out, Render(grid, astar.Path{{Row: 0, Col: 0}}, RenderOptions{})))

	img, format, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	_, _, err = Load(filepath.Join(dir, "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

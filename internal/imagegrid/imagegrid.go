package imagegrid

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jbuchbinder/gopnm"
	"github.com/yalue/image_utils"

	astar "github.com/pdrpinto/gridastar"
)

// DefaultThreshold splits gray levels into walls (at or below) and floor.
const DefaultThreshold uint8 = 128

var (
	PathColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ExploredColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Decode reads any registered image format and returns the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()
	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}

// FromImage thresholds img into a grid with one cell per pixel. Pixel (x, y)
// maps to cell row y, column x, relative to the image bounds.
func FromImage(img image.Image, threshold uint8) (*astar.Grid, error) {
	bounds := img.Bounds().Canon()
	rows := make([][]bool, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]bool, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			row[x-bounds.Min.X] = gray.Y <= threshold
		}
		rows[y-bounds.Min.Y] = row
	}
	grid, err := astar.NewGridFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("image has no usable pixels: %w", err)
	}
	return grid, nil
}

// gridImage satisfies image.Image, drawing walls black and floor white.
type gridImage struct {
	grid *astar.Grid
}

func (g gridImage) ColorModel() color.Model { return color.RGBAModel }

func (g gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.grid.Width(), g.grid.Height())
}

func (g gridImage) At(x, y int) color.Color {
	c := astar.Cell{Row: y, Col: x}
	if !g.grid.InBounds(c) {
		return color.Transparent
	}
	if g.grid.IsBlocked(c) {
		return color.Black
	}
	return color.White
}

// RenderOptions controls what Render draws on top of the grid.
type RenderOptions struct {
	// Explored cells are painted in ExploredColor before the path is drawn.
	Explored []astar.Cell
	// Scale enlarges every cell to Scale x Scale pixels when above 1.
	Scale int
}

// Render draws the grid with path on top of it.
func Render(grid *astar.Grid, path astar.Path, opts RenderOptions) *image.RGBA {
	pic := image_utils.ToRGBA(gridImage{grid: grid})
	for _, c := range opts.Explored {
		if grid.Open(c) {
			pic.SetRGBA(c.Col, c.Row, ExploredColor)
		}
	}
	for _, c := range path {
		pic.SetRGBA(c.Col, c.Row, PathColor)
	}
	if opts.Scale > 1 {
		bounds := pic.Bounds()
		pic = image_utils.ToRGBA(image_utils.ResizeImage(pic,
			bounds.Dx()*opts.Scale, bounds.Dy()*opts.Scale))
	}
	return pic
}

// SolvedName derives the output file name for a solved maze: "maze.png"
// becomes "maze_Solved.png". Extensions that cannot be written fall back to
// ".png".
func SolvedName(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if !canEncode(ext) {
		ext = ".png"
	}
	return base + "_Solved" + ext
}

func canEncode(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Save writes img to path, choosing JPEG or PNG from the extension.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(f, filepath.Ext(path), img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes img in the format implied by ext. Anything other than a
// JPEG extension is written as PNG.
func Encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	default:
		return png.Encode(w, img)
	}
}

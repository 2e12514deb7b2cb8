// Package export renders a grid's current line sizes and cell text to PNG.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/lixenwraith/gridkit/space"
)

// ErrEmpty is returned when there are no cells to draw
var ErrEmpty = errors.New("nothing to export")

// Model supplies cell text, Flagged is optional like host.Flagger
type Model interface {
	Text(item space.ItemID) string
}

type flagger interface {
	Flagged(item space.ItemID) bool
}

// Options sets the pixel size of one terminal cell and the page margin
type Options struct {
	CharWidth  float64
	CharHeight float64
	FontSize   float64
	Padding    int // in cells
}

// DefaultOptions matches a 12pt monospace face
func DefaultOptions() Options {
	return Options{CharWidth: 7, CharHeight: 14, FontSize: 12, Padding: 1}
}

var (
	headerFill = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	gridLine   = color.RGBA{0x88, 0x88, 0x88, 0xff}
	flagText   = color.RGBA{0xc0, 0x10, 0x10, 0xff}
)

// Render draws every row and column at its current size, row 0 as header
func Render(columns, rows *space.Lines, model Model, opts Options) (image.Image, error) {
	if columns.Count() == 0 || rows.Count() == 0 || columns.Total() == 0 || rows.Total() == 0 {
		return nil, ErrEmpty
	}

	cw, ch := opts.CharWidth, opts.CharHeight
	pad := opts.Padding
	imageWidth := int(float64(columns.Total()+2*pad) * cw)
	imageHeight := int(float64(rows.Total()+2*pad) * ch)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	flags, _ := model.(flagger)
	dc.SetLineWidth(1)

	for r := 0; r < rows.Count(); r++ {
		y := float64(pad+rows.Start(r)) * ch
		h := float64(rows.LineSize(r)) * ch
		for c := 0; c < columns.Count(); c++ {
			x := float64(pad+columns.Start(c)) * cw
			w := float64(columns.LineSize(c)) * cw
			if w == 0 || h == 0 {
				continue
			}
			item := space.ItemID{Row: r, Column: c}

			if r == 0 {
				dc.SetColor(headerFill)
				dc.DrawRectangle(x, y, w, h)
				dc.Fill()
			}
			dc.SetColor(gridLine)
			dc.DrawRectangle(x, y, w, h)
			dc.Stroke()

			// One cell of inner padding on the left, half a cell on the right
			text := runewidth.Truncate(model.Text(item), columns.LineSize(c)-1, "…")
			dc.SetColor(color.Black)
			if flags != nil && r > 0 && flags.Flagged(item) {
				dc.SetColor(flagText)
			}
			dc.DrawStringAnchored(text, x+cw/2, y+h/2, 0, 0.35)
		}
	}

	return dc.Image(), nil
}

// PNG renders the grid and encodes it to w
func PNG(w io.Writer, columns, rows *space.Lines, model Model, opts Options) error {
	img, err := Render(columns, rows, model, opts)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

// SavePNG renders the grid into the file at path
func SavePNG(path string, columns, rows *space.Lines, model Model, opts Options) error {
	img, err := Render(columns, rows, model, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

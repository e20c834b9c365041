// Package render draws positions and bitboards as images for debugging.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/bitplanes/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Highlight   color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		LightSquare: color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:  color.RGBA{181, 136, 99, 255},  // Brown
		Highlight:   color.RGBA{130, 151, 105, 255}, // Green
		WhitePiece:  color.RGBA{250, 250, 250, 255},
		BlackPiece:  color.RGBA{30, 30, 30, 255},
	}
}

// Options controls image size and colors.
type Options struct {
	SquareSize int
	Theme      Theme
}

// DefaultOptions returns 48 pixel squares in the default theme.
func DefaultOptions() Options {
	return Options{SquareSize: 48, Theme: DefaultTheme()}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// origin returns the top-left pixel of sq, rank 8 at the top.
func origin(sq board.Square, size int) (int, int) {
	return int(sq.File()-board.FileA) * size, (8 - sq.Rank()) * size
}

// pieceColors returns the disc fill and the label color for a piece.
func pieceColors(o board.Occupant, th Theme) (fill, label color.RGBA) {
	if o.Color == board.White {
		return th.WhitePiece, th.BlackPiece
	}
	return th.BlackPiece, th.WhitePiece
}

// SVG writes an SVG drawing of p with the squares of highlight tinted. p may
// be nil to draw only the bitboard.
func SVG(w io.Writer, p *board.Position, highlight board.Bitboard, opts Options) error {
	if opts.SquareSize <= 0 {
		return fmt.Errorf("render: square size %d", opts.SquareSize)
	}
	size := opts.SquareSize
	th := opts.Theme

	canvas := svg.New(w)
	canvas.Startview(8*size, 8*size, 0, 0, 8*size, 8*size)
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := origin(sq, size)
		fill := th.LightSquare
		if (int(sq.File()-board.FileA)+sq.Rank())%2 == 1 {
			fill = th.DarkSquare
		}
		if highlight.IsSet(sq) {
			fill = th.Highlight
		}
		canvas.Rect(x, y, size, size, "fill:"+hex(fill))
	}
	if p != nil {
		for sq := board.A1; sq <= board.H8; sq++ {
			o, ok := p.PieceAt(sq)
			if !ok {
				continue
			}
			x, y := origin(sq, size)
			fill, label := pieceColors(o, th)
			canvas.Circle(x+size/2, y+size/2, size*3/8, "fill:"+hex(fill)+";stroke:"+hex(th.BlackPiece)+";stroke-width:1")
			canvas.Text(x+size/2, y+size/2+size/8, string(o.Type.Char()),
				fmt.Sprintf("fill:%s;font-size:%dpx;font-family:sans-serif;text-anchor:middle", hex(label), size/3))
		}
	}
	canvas.End()
	return nil
}

// PNG writes a PNG of the same drawing as SVG. The SVG is rasterised and the
// piece letters are drawn on top with a bitmap font.
func PNG(w io.Writer, p *board.Position, highlight board.Bitboard, opts Options) error {
	var buf bytes.Buffer
	if err := SVG(&buf, p, highlight, opts); err != nil {
		return err
	}

	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("render: parse svg: %w", err)
	}
	px := 8 * opts.SquareSize
	icon.SetTarget(0, 0, float64(px), float64(px))

	rgba := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(opts.Theme.LightSquare), image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(px, px, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(px, px, scanner)
	icon.Draw(raster, 1.0)

	if p != nil {
		drawLabels(rgba, p, opts)
	}
	return png.Encode(w, rgba)
}

// drawLabels writes each piece letter centred on its square.
func drawLabels(dst draw.Image, p *board.Position, opts Options) {
	face := basicfont.Face7x13
	size := opts.SquareSize
	for sq := board.A1; sq <= board.H8; sq++ {
		o, ok := p.PieceAt(sq)
		if !ok {
			continue
		}
		_, label := pieceColors(o, opts.Theme)
		x, y := origin(sq, size)
		letter := string(o.Type.Char())
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(label),
			Face: face,
		}
		width := d.MeasureString(letter)
		d.Dot = fixed.Point26_6{
			X: fixed.I(x+size/2) - width/2,
			Y: fixed.I(y + size/2 + face.Ascent/2),
		}
		d.DrawString(letter)
	}
}

package board

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Position holds a board as eight occupancy planes: one per color and one per
// piece type, indexed by Color and PieceType values. A square's color plane
// and type plane always change together, so every occupied square belongs to
// exactly one color and exactly one type.
//
// A Position is not safe for concurrent mutation.
type Position struct {
	planes [NumPlanes]Bitboard
}

// backRank is the standard arrangement of pieces on ranks 1 and 8.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition creates the starting position.
func NewPosition() *Position {
	p := &Position{}
	p.LoadInitial()
	return p
}

// FromPlanes builds a Position from raw planes and checks its consistency.
func FromPlanes(planes [NumPlanes]Bitboard) (*Position, error) {
	p := &Position{planes: planes}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadInitial clears the board and sets up the standard starting position.
func (p *Position) LoadInitial() {
	p.Clear()
	for i, pt := range backRank {
		f := FileA + File(i)
		p.mustSet(f, 1, pt, White)
		p.mustSet(f, 2, Pawn, White)
		p.mustSet(f, 7, Pawn, Black)
		p.mustSet(f, 8, pt, Black)
	}
}

func (p *Position) mustSet(f File, rank int, pt PieceType, c Color) {
	if err := p.SetPiece(f, rank, pt, c, true); err != nil {
		panic(err)
	}
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// Planes returns a copy of all eight planes.
func (p *Position) Planes() [NumPlanes]Bitboard {
	return p.planes
}

// ColorPlane returns the squares occupied by color c.
func (p *Position) ColorPlane(c Color) Bitboard {
	if !c.IsValid() {
		return Empty
	}
	return p.planes[c]
}

// TypePlane returns the squares occupied by pieces of type pt, either color.
func (p *Position) TypePlane(pt PieceType) Bitboard {
	if !pt.IsValid() {
		return Empty
	}
	return p.planes[pt]
}

// PiecesOf returns the squares holding pieces of type pt and color c.
func (p *Position) PiecesOf(pt PieceType, c Color) Bitboard {
	return p.TypePlane(pt) & p.ColorPlane(c)
}

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard {
	return p.planes[White] | p.planes[Black]
}

// SetPiece places (active) or removes (!active) a piece of type pt and color
// c on the given square. The color plane and type plane are updated together.
// Placing a piece on a square held by another piece replaces it; removing
// clears the square only if it holds exactly that piece.
func (p *Position) SetPiece(f File, rank int, pt PieceType, c Color, active bool) error {
	if err := validatePiece(pt, c); err != nil {
		return err
	}
	sq, err := SquareOf(f, rank)
	if err != nil {
		return err
	}
	if active {
		p.clearSquare(sq)
		p.planes[c] = p.planes[c].Set(sq)
		p.planes[pt] = p.planes[pt].Set(sq)
		return nil
	}
	if p.planes[c].IsSet(sq) && p.planes[pt].IsSet(sq) {
		p.planes[c] = p.planes[c].Clear(sq)
		p.planes[pt] = p.planes[pt].Clear(sq)
	}
	return nil
}

func (p *Position) clearSquare(sq Square) {
	for i := range p.planes {
		p.planes[i] = p.planes[i].Clear(sq)
	}
}

// ColorAt returns the color of the piece on the square, or NoColor if empty.
func (p *Position) ColorAt(f File, rank int) (Color, error) {
	sq, err := SquareOf(f, rank)
	if err != nil {
		return NoColor, err
	}
	return p.colorOn(sq), nil
}

// TypeAt returns the type of the piece on the square, or NoPieceType if empty.
func (p *Position) TypeAt(f File, rank int) (PieceType, error) {
	sq, err := SquareOf(f, rank)
	if err != nil {
		return NoPieceType, err
	}
	return p.typeOn(sq), nil
}

// PieceAt returns the occupant of sq and whether the square is occupied.
func (p *Position) PieceAt(sq Square) (Occupant, bool) {
	if !sq.IsValid() {
		return Occupant{}, false
	}
	c := p.colorOn(sq)
	if c == NoColor {
		return Occupant{}, false
	}
	return Occupant{Type: p.typeOn(sq), Color: c}, true
}

func (p *Position) colorOn(sq Square) Color {
	switch {
	case p.planes[White].IsSet(sq):
		return White
	case p.planes[Black].IsSet(sq):
		return Black
	}
	return NoColor
}

func (p *Position) typeOn(sq Square) PieceType {
	for _, pt := range PieceTypes {
		if p.planes[pt].IsSet(sq) {
			return pt
		}
	}
	return NoPieceType
}

// Pieces yields every square occupied by color c, tagged with its occupant.
func (p *Position) Pieces(c Color) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for coord := range p.ColorPlane(c).Squares() {
			o := Occupant{Type: p.typeOn(coord.Square), Color: c}
			if !yield(OccupiedBy(coord.Square, o)) {
				return
			}
		}
	}
}

// Validate checks that no square carries two types, no square carries both
// colors, and the color planes cover exactly the type planes.
func (p *Position) Validate() error {
	if both := p.planes[White] & p.planes[Black]; both != 0 {
		return fmt.Errorf("squares claimed by both colors: %s", squareList(both))
	}
	var types Bitboard
	for _, pt := range PieceTypes {
		if overlap := types & p.planes[pt]; overlap != 0 {
			return fmt.Errorf("squares with more than one piece type: %s", squareList(overlap))
		}
		types |= p.planes[pt]
	}
	if diff := types ^ p.Occupied(); diff != 0 {
		return fmt.Errorf("color and type planes disagree on %s", squareList(diff))
	}
	return nil
}

func squareList(b Bitboard) string {
	names := make([]string, 0, b.PopCount())
	for c := range b.Squares() {
		names = append(names, c.Square.String())
	}
	return strings.Join(names, " ")
}

// String returns an 8x8 grid, rank 8 first, with a color+type tag such as
// "wK" on occupied squares and "." elsewhere.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		sb.WriteString(strconv.Itoa(rank))
		sb.WriteString("  ")
		for f := FileA; f <= FileH; f++ {
			sq, _ := SquareOf(f, rank)
			if o, ok := p.PieceAt(sq); ok {
				sb.WriteString(o.String())
				sb.WriteByte(' ')
			} else {
				sb.WriteString(" . ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   A  B  C  D  E  F  G  H\n")
	return sb.String()
}

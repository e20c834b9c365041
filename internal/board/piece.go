package board

import "fmt"

// NumPlanes is the number of occupancy bitboards in a Position: two colors
// followed by six piece types.
const NumPlanes = 8

// Color represents the color of a piece. Its value doubles as the index of
// the color's plane in a Position.
type Color uint8

const (
	Black Color = iota
	White
	NoColor Color = 0xFF
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// IsValid reports whether c is Black or White.
func (c Color) IsValid() bool {
	return c == Black || c == White
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Char returns the lowercase tag used in board renderings.
func (c Color) Char() byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	default:
		return ' '
	}
}

// ParseColor parses "white"/"w" or "black"/"b".
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "White", "w", "W":
		return White, nil
	case "black", "Black", "b", "B":
		return Black, nil
	}
	return NoColor, fmt.Errorf("%w: color %q", ErrInvalidPiece, s)
}

// PieceType represents the type of a chess piece. Its value doubles as the
// index of the type's plane in a Position, so the first type starts at 2.
type PieceType uint8

const (
	King PieceType = iota + 2
	Knight
	Rook
	Bishop
	Queen
	Pawn
	NoPieceType PieceType = 0xFF
)

// NumPieceTypes is the number of piece types, King through Pawn.
const NumPieceTypes = 6

// PieceTypes lists every piece type in plane order.
var PieceTypes = [NumPieceTypes]PieceType{King, Knight, Rook, Bishop, Queen, Pawn}

// IsValid reports whether pt is one of King..Pawn.
func (pt PieceType) IsValid() bool {
	return pt >= King && pt <= Pawn
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the uppercase letter for the piece type.
func (pt PieceType) Char() byte {
	switch pt {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return ' '
	}
}

// ParsePieceType parses a piece name or letter, case-insensitively for letters.
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "king", "King", "k", "K":
		return King, nil
	case "knight", "Knight", "n", "N":
		return Knight, nil
	case "rook", "Rook", "r", "R":
		return Rook, nil
	case "bishop", "Bishop", "b", "B":
		return Bishop, nil
	case "queen", "Queen", "q", "Q":
		return Queen, nil
	case "pawn", "Pawn", "p", "P":
		return Pawn, nil
	}
	return NoPieceType, fmt.Errorf("%w: piece type %q", ErrInvalidPiece, s)
}

// validatePiece checks a (type, color) descriptor.
func validatePiece(pt PieceType, c Color) error {
	if !pt.IsValid() {
		return fmt.Errorf("%w: piece type %d", ErrInvalidPiece, pt)
	}
	if !c.IsValid() {
		return fmt.Errorf("%w: color %d", ErrInvalidPiece, c)
	}
	return nil
}

// Occupant identifies the piece standing on a square.
type Occupant struct {
	Type  PieceType
	Color Color
}

// String returns the two-letter color+type tag, e.g. "wK".
func (o Occupant) String() string {
	return string([]byte{o.Color.Char(), o.Type.Char()})
}

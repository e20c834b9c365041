package board

import (
	"fmt"
	"sync"
)

// delta is a (file, rank) step.
type delta struct {
	df, dr int
}

// moveKind selects the routine that turns a geometry into masks.
type moveKind uint8

const (
	jumping moveKind = iota
	sliding
	pawnMoves
)

// geometry describes how one piece type moves on an empty board. For jumping
// pieces the deltas are single offsets; for sliding pieces they are ray
// directions walked to the edge. Pawns use dedicated rules.
type geometry struct {
	kind   moveKind
	deltas []delta
}

var (
	knightDeltas = []delta{{+1, +2}, {-1, +2}, {-2, +1}, {-2, -1}, {-1, -2}, {+1, -2}, {+2, -1}, {+2, +1}}
	rookDeltas   = []delta{{0, +1}, {+1, 0}, {0, -1}, {-1, 0}}
	bishopDeltas = []delta{{+1, +1}, {+1, -1}, {-1, -1}, {-1, +1}}
	kingDeltas   = append(append([]delta{}, rookDeltas...), bishopDeltas...)
	queenDeltas  = kingDeltas
)

// geometries is indexed by PieceType-King.
var geometries = [NumPieceTypes]geometry{
	King - King:   {kind: jumping, deltas: kingDeltas},
	Knight - King: {kind: jumping, deltas: knightDeltas},
	Rook - King:   {kind: sliding, deltas: rookDeltas},
	Bishop - King: {kind: sliding, deltas: bishopDeltas},
	Queen - King:  {kind: sliding, deltas: queenDeltas},
	Pawn - King:   {kind: pawnMoves},
}

// colorTable holds one mask per color and starting square: [Color][file][rank-1].
type colorTable [2][8][8]Bitboard

// Tables holds the capture and quiet move masks of every piece type, color
// and square on an empty board. Sliding masks run to the board edge and
// ignore blockers. A Tables value is never modified after NewTables returns,
// so one instance can be shared by any number of goroutines.
type Tables struct {
	capture [NumPieceTypes]colorTable
	quiet   [NumPieceTypes]colorTable
}

// Shared returns the process-wide tables, building them on first use.
var Shared = sync.OnceValue(NewTables)

// NewTables computes every attack table.
func NewTables() *Tables {
	t := &Tables{}
	for i, g := range geometries {
		switch g.kind {
		case jumping:
			t.quiet[i] = jumpingTable(g.deltas)
			t.capture[i] = t.quiet[i]
		case sliding:
			t.quiet[i] = slidingTable(g.deltas)
			t.capture[i] = t.quiet[i]
		case pawnMoves:
			t.capture[i] = pawnCaptureTable()
			t.quiet[i] = pawnQuietTable()
		default:
			panic(fmt.Sprintf("board: no move routine for %s", PieceTypes[i]))
		}
	}
	return t
}

// target returns the square reached from (f, rank) by d, if on the board.
func target(f File, rank int, d delta) (Square, bool) {
	tf, tr := File(int(f)+d.df), rank+d.dr
	if !InBounds(tf, tr) {
		return NoSquare, false
	}
	sq, _ := SquareOf(tf, tr)
	return sq, true
}

// jumpingTable sets every in-bounds offset from each square.
func jumpingTable(deltas []delta) colorTable {
	var t colorTable
	for f := FileA; f <= FileH; f++ {
		for rank := 1; rank <= 8; rank++ {
			var bb Bitboard
			for _, d := range deltas {
				if sq, ok := target(f, rank, d); ok {
					bb = bb.Set(sq)
				}
			}
			t[White][f-FileA][rank-1] = bb
		}
	}
	copyColorNeutral(&t)
	return t
}

// slidingTable walks every direction from each square until it leaves the
// board, setting each square on the way.
func slidingTable(dirs []delta) colorTable {
	var t colorTable
	for f := FileA; f <= FileH; f++ {
		for rank := 1; rank <= 8; rank++ {
			var bb Bitboard
			for _, d := range dirs {
				for depth := 1; ; depth++ {
					sq, ok := target(f, rank, delta{d.df * depth, d.dr * depth})
					if !ok {
						break
					}
					bb = bb.Set(sq)
				}
			}
			t[White][f-FileA][rank-1] = bb
		}
	}
	copyColorNeutral(&t)
	return t
}

// copyColorNeutral fills the Black half of t from the White half. Jumping
// and sliding geometry does not depend on color, so the White masks are
// computed once and copied by value.
func copyColorNeutral(t *colorTable) {
	t[Black] = t[White]
}

// forward is the rank step of a pawn of color c.
func forward(c Color) int {
	if c == White {
		return +1
	}
	return -1
}

// pawnCaptureTable sets the two forward diagonals for pawns on ranks 2-7.
func pawnCaptureTable() colorTable {
	var t colorTable
	for _, c := range [2]Color{Black, White} {
		fw := forward(c)
		for f := FileA; f <= FileH; f++ {
			for rank := 2; rank <= 7; rank++ {
				var bb Bitboard
				for _, df := range [2]int{-1, +1} {
					if sq, ok := target(f, rank, delta{df, fw}); ok {
						bb = bb.Set(sq)
					}
				}
				t[c][f-FileA][rank-1] = bb
			}
		}
	}
	return t
}

// pawnQuietTable sets the single push from every rank a pawn can push from,
// plus the double push from the starting rank. Ranks 1 and 8 stay empty.
func pawnQuietTable() colorTable {
	var t colorTable
	for _, c := range [2]Color{Black, White} {
		fw := forward(c)
		start := 2
		if c == Black {
			start = 7
		}
		for f := FileA; f <= FileH; f++ {
			for rank := 2; rank <= 7; rank++ {
				var bb Bitboard
				if sq, ok := target(f, rank, delta{0, fw}); ok {
					bb = bb.Set(sq)
				}
				if rank == start {
					sq, _ := target(f, rank, delta{0, 2 * fw})
					bb = bb.Set(sq)
				}
				t[c][f-FileA][rank-1] = bb
			}
		}
	}
	return t
}

func (t *Tables) lookup(tbl *[NumPieceTypes]colorTable, pt PieceType, c Color, f File, rank int) (Bitboard, error) {
	if err := validatePiece(pt, c); err != nil {
		return Empty, err
	}
	if !InBounds(f, rank) {
		return Empty, fmt.Errorf("%w: file %q rank %d", ErrInvalidSquare, rune(f), rank)
	}
	return tbl[pt-King][c][f-FileA][rank-1], nil
}

// Capture returns the squares a piece on (f, rank) could capture on an empty board.
func (t *Tables) Capture(pt PieceType, c Color, f File, rank int) (Bitboard, error) {
	return t.lookup(&t.capture, pt, c, f, rank)
}

// Quiet returns the squares a piece on (f, rank) could move to without capturing.
func (t *Tables) Quiet(pt PieceType, c Color, f File, rank int) (Bitboard, error) {
	return t.lookup(&t.quiet, pt, c, f, rank)
}

// Attacks returns the union of the capture and quiet masks.
func (t *Tables) Attacks(pt PieceType, c Color, f File, rank int) (Bitboard, error) {
	capture, err := t.Capture(pt, c, f, rank)
	if err != nil {
		return Empty, err
	}
	quiet, _ := t.Quiet(pt, c, f, rank)
	return capture | quiet, nil
}

// CaptureFrom is Capture addressed by Square.
func (t *Tables) CaptureFrom(pt PieceType, c Color, sq Square) (Bitboard, error) {
	return t.Capture(pt, c, sq.File(), sq.Rank())
}

// QuietFrom is Quiet addressed by Square.
func (t *Tables) QuietFrom(pt PieceType, c Color, sq Square) (Bitboard, error) {
	return t.Quiet(pt, c, sq.File(), sq.Rank())
}

package board

import (
	"errors"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func squares(sqs ...Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b = b.Set(sq)
	}
	return b
}

func TestJumpingTables(t *testing.T) {
	tables := NewTables()

	tests := []struct {
		name string
		pt   PieceType
		from Square
		want Bitboard
	}{
		{"knight e4", Knight, E4, squares(C3, C5, D6, D2, F6, F2, G3, G5)},
		{"knight b1", Knight, B1, squares(A3, C3, D2)},
		{"knight a1", Knight, A1, squares(B3, C2)},
		{"knight h8", Knight, H8, squares(G6, F7)},
		{"knight g7", Knight, G7, squares(E8, E6, F5, H5)},
		{"king e4", King, E4, squares(D3, D4, D5, E3, E5, F3, F4, F5)},
		{"king b1", King, B1, squares(A1, A2, B2, C1, C2)},
		{"king h8", King, H8, squares(G8, G7, H7)},
		{"king a5", King, A5, squares(A4, A6, B4, B5, B6)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, c := range [2]Color{White, Black} {
				capture, err := tables.CaptureFrom(tc.pt, c, tc.from)
				if err != nil {
					t.Fatal(err)
				}
				quiet, err := tables.QuietFrom(tc.pt, c, tc.from)
				if err != nil {
					t.Fatal(err)
				}
				if capture != tc.want {
					t.Errorf("%s capture =\n%s\nwant\n%s", c, capture, tc.want)
				}
				if quiet != tc.want {
					t.Errorf("%s quiet =\n%s\nwant\n%s", c, quiet, tc.want)
				}
			}
		})
	}
}

func TestSlidingTablesFromE4(t *testing.T) {
	tables := NewTables()

	rook := (FileMask[4] | RankMask[3]).Clear(E4)
	bishop := squares(D3, C2, B1, F5, G6, H7, D5, C6, B7, A8, F3, G2, H1)

	tests := []struct {
		pt   PieceType
		want Bitboard
	}{
		{Rook, rook},
		{Bishop, bishop},
		{Queen, rook | bishop},
	}
	for _, tc := range tests {
		got, err := tables.Capture(tc.pt, White, FileE, 4)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s from e4 =\n%s\nwant\n%s", tc.pt, got, tc.want)
		}
	}
}

// TestSlidingTablesMatchMagics compares every slider mask against an
// independent magic bitboard generator with no blockers.
func TestSlidingTablesMatchMagics(t *testing.T) {
	tables := NewTables()
	for sq := A1; sq <= H8; sq++ {
		rook := Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), 0))
		bishop := Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), 0))
		want := map[PieceType]Bitboard{Rook: rook, Bishop: bishop, Queen: rook | bishop}
		for pt, w := range want {
			for _, c := range [2]Color{White, Black} {
				got, err := tables.QuietFrom(pt, c, sq)
				if err != nil {
					t.Fatal(err)
				}
				if got != w {
					t.Errorf("%s %s from %s = %#x, want %#x", c, pt, sq, uint64(got), uint64(w))
				}
			}
		}
	}
}

func TestColorNeutralTables(t *testing.T) {
	tables := NewTables()
	for _, pt := range []PieceType{King, Knight, Rook, Bishop, Queen} {
		for sq := A1; sq <= H8; sq++ {
			w, _ := tables.CaptureFrom(pt, White, sq)
			b, _ := tables.CaptureFrom(pt, Black, sq)
			if w != b {
				t.Errorf("%s from %s: white %#x, black %#x", pt, sq, uint64(w), uint64(b))
			}
			if w.IsSet(sq) {
				t.Errorf("%s from %s includes its own square", pt, sq)
			}
		}
	}
}

func TestPawnTables(t *testing.T) {
	tables := NewTables()

	tests := []struct {
		name    string
		c       Color
		from    Square
		capture Bitboard
		quiet   Bitboard
	}{
		{"white h7", White, H7, squares(G8), squares(H8)},
		{"black h7", Black, H7, squares(G6), squares(H6, H5)},
		{"white h2", White, H2, squares(G3), squares(H3, H4)},
		{"black d7", Black, D7, squares(C6, E6), squares(D6, D5)},
		{"white e4", White, E4, squares(D5, F5), squares(E5)},
		{"black e4", Black, E4, squares(D3, F3), squares(E3)},
		{"white a3", White, A3, squares(B4), squares(A4)},
		{"black b2", Black, B2, squares(A1, C1), squares(B1)},
		{"white d1", White, D1, Empty, Empty},
		{"white d8", White, D8, Empty, Empty},
		{"black d8", Black, D8, Empty, Empty},
		{"black d1", Black, D1, Empty, Empty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			capture, err := tables.CaptureFrom(Pawn, tc.c, tc.from)
			if err != nil {
				t.Fatal(err)
			}
			quiet, err := tables.QuietFrom(Pawn, tc.c, tc.from)
			if err != nil {
				t.Fatal(err)
			}
			if capture != tc.capture {
				t.Errorf("capture =\n%s\nwant\n%s", capture, tc.capture)
			}
			if quiet != tc.quiet {
				t.Errorf("quiet =\n%s\nwant\n%s", quiet, tc.quiet)
			}
			all, _ := tables.Attacks(Pawn, tc.c, tc.from.File(), tc.from.Rank())
			if all != tc.capture|tc.quiet {
				t.Errorf("Attacks = %#x, want %#x", uint64(all), uint64(tc.capture|tc.quiet))
			}
		})
	}
}

func TestTablesRejectBadInput(t *testing.T) {
	tables := Shared()
	if _, err := tables.Capture(Knight, White, 'I', 1); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("Capture off-board error = %v, want ErrInvalidSquare", err)
	}
	if _, err := tables.Quiet(Rook, Black, FileA, 0); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("Quiet off-board error = %v, want ErrInvalidSquare", err)
	}
	if _, err := tables.QuietFrom(Rook, Black, NoSquare); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("QuietFrom(NoSquare) error = %v, want ErrInvalidSquare", err)
	}
	if _, err := tables.Capture(NoPieceType, White, FileA, 1); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Capture(NoPieceType) error = %v, want ErrInvalidPiece", err)
	}
	if _, err := tables.Attacks(Queen, NoColor, FileA, 1); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Attacks(NoColor) error = %v, want ErrInvalidPiece", err)
	}
	if Shared() != tables {
		t.Error("Shared() returned a different instance on second call")
	}
}

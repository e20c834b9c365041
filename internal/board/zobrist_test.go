package board

import "testing"

func TestHash(t *testing.T) {
	pos := NewPosition()
	flags := NewFlags()
	h := Hash(pos, flags)

	if h2 := Hash(pos.Copy(), flags.Clone()); h2 != h {
		t.Errorf("Hash of copy = %016x, want %016x", h2, h)
	}

	moved := pos.Copy()
	if err := moved.SetPiece(FileE, 2, Pawn, White, false); err != nil {
		t.Fatal(err)
	}
	if err := moved.SetPiece(FileE, 4, Pawn, White, true); err != nil {
		t.Fatal(err)
	}
	if Hash(moved, flags) == h {
		t.Error("Hash unchanged after moving a pawn")
	}

	ep := flags
	if err := ep.RaiseEnPassant(FileE); err != nil {
		t.Fatal(err)
	}
	if Hash(pos, ep) == h {
		t.Error("Hash unchanged after raising en passant")
	}

	noCastle := flags
	noCastle.LowerWhiteShort()
	if Hash(pos, noCastle) == h {
		t.Error("Hash unchanged after losing a castling right")
	}

	// Moving the pawn back restores the key.
	if err := moved.SetPiece(FileE, 4, Pawn, White, false); err != nil {
		t.Fatal(err)
	}
	if err := moved.SetPiece(FileE, 2, Pawn, White, true); err != nil {
		t.Fatal(err)
	}
	if got := Hash(moved, flags); got != h {
		t.Errorf("Hash after undo = %016x, want %016x", got, h)
	}
}

package board

import (
	"errors"
	"testing"
)

func TestFlagsDefault(t *testing.T) {
	f := NewFlags()
	for file := FileA; file <= FileH; file++ {
		if f.CanEnPassant(file) {
			t.Errorf("new flags: en passant open on %s", file)
		}
	}
	if !f.CanWhiteShort() || !f.CanWhiteLong() || !f.CanBlackShort() || !f.CanBlackLong() {
		t.Errorf("new flags: castling = %s, want KQkq", f.Castling)
	}
	if s := f.String(); s != "KQkq -" {
		t.Errorf("String() = %q, want \"KQkq -\"", s)
	}
}

func TestFlagsEnPassantIndependence(t *testing.T) {
	f := NewFlags()
	for focus := FileA; focus <= FileH; focus++ {
		if err := f.RaiseEnPassant(focus); err != nil {
			t.Fatal(err)
		}
		for file := FileA; file <= FileH; file++ {
			if got := f.CanEnPassant(file); got != (file == focus) {
				t.Errorf("raised %s: CanEnPassant(%s) = %t", focus, file, got)
			}
		}
		f.LowerEnPassant()
		if f.EnPassant != 0 {
			t.Errorf("LowerEnPassant left mask %08b", f.EnPassant)
		}
	}
	if f.Castling != AllCastling {
		t.Errorf("en passant changes touched castling: %s", f.Castling)
	}
}

func TestFlagsRaiseEnPassantRejectsBadFile(t *testing.T) {
	f := NewFlags()
	if err := f.RaiseEnPassant('Z'); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("RaiseEnPassant('Z') error = %v, want ErrInvalidSquare", err)
	}
	if f.EnPassant != 0 {
		t.Errorf("rejected raise changed mask to %08b", f.EnPassant)
	}
	if f.CanEnPassant('Z') {
		t.Error("CanEnPassant('Z') = true")
	}
}

func TestFlagsCastlingIndependence(t *testing.T) {
	f := NewFlags()

	f.LowerWhiteShort()
	if f.CanWhiteShort() || !f.CanWhiteLong() || !f.CanBlackShort() || !f.CanBlackLong() {
		t.Fatalf("after LowerWhiteShort: %s, want Qkq", f.Castling)
	}
	f.LowerWhiteLong()
	if f.CanWhiteLong() || !f.CanBlackShort() || !f.CanBlackLong() {
		t.Fatalf("after LowerWhiteLong: %s, want kq", f.Castling)
	}
	f.LowerBlackShort()
	if f.CanBlackShort() || !f.CanBlackLong() {
		t.Fatalf("after LowerBlackShort: %s, want q", f.Castling)
	}
	f.LowerBlackLong()
	if f.Castling != NoCastling {
		t.Fatalf("after LowerBlackLong: %s, want -", f.Castling)
	}

	// Revocation is idempotent.
	f.LowerWhiteShort()
	if f.Castling != NoCastling {
		t.Errorf("lowering twice restored rights: %s", f.Castling)
	}
}

func TestFlagsLowerCastles(t *testing.T) {
	f := NewFlags()
	f.LowerCastles(Black)
	if f.CanBlackShort() || f.CanBlackLong() {
		t.Errorf("LowerCastles(Black) left %s", f.Castling)
	}
	if !f.CanWhiteShort() || !f.CanWhiteLong() {
		t.Errorf("LowerCastles(Black) touched white: %s", f.Castling)
	}
}

func TestFlagsCloneIsIndependent(t *testing.T) {
	orig := NewFlags()
	if err := orig.RaiseEnPassant(FileD); err != nil {
		t.Fatal(err)
	}
	snap := orig.Clone()

	orig.LowerEnPassant()
	orig.LowerCastles(White)

	if !snap.CanEnPassant(FileD) {
		t.Error("snapshot lost en passant on d after original was lowered")
	}
	if !snap.CanWhiteShort() || !snap.CanWhiteLong() {
		t.Errorf("snapshot castling = %s, want KQkq", snap.Castling)
	}
	if s := snap.String(); s != "KQkq d" {
		t.Errorf("snapshot String() = %q, want \"KQkq d\"", s)
	}
}

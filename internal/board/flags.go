package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the rights in KQkq form, or "-" when none are held.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

func castlingRight(c Color, kingSide bool) CastlingRights {
	if c == White {
		if kingSide {
			return WhiteKingSideCastle
		}
		return WhiteQueenSideCastle
	}
	if kingSide {
		return BlackKingSideCastle
	}
	return BlackQueenSideCastle
}

// Flags tracks castling rights and the files on which an en passant capture
// is currently available. Flags is a value type: assigning or passing it
// produces an independent snapshot.
//
// Castling rights can only be revoked. The en passant mask is expected to be
// cleared every ply with at most one file raised again; keeping to that is
// the caller's job.
type Flags struct {
	EnPassant uint8          `json:"en_passant"` // bit i set: file 'A'+i
	Castling  CastlingRights `json:"castling"`
}

// NewFlags returns the state at the start of a game: every castling right
// held, no en passant file.
func NewFlags() Flags {
	return Flags{Castling: AllCastling}
}

// Clone returns an independent copy of f.
func (f Flags) Clone() Flags {
	return f
}

// CanEnPassant reports whether an en passant capture is open on file.
// Files outside A-H are never open.
func (f Flags) CanEnPassant(file File) bool {
	if file < FileA || file > FileH {
		return false
	}
	return f.EnPassant>>(file-FileA)&1 != 0
}

// RaiseEnPassant opens en passant on file, leaving other files unchanged.
func (f *Flags) RaiseEnPassant(file File) error {
	if file < FileA || file > FileH {
		return fmt.Errorf("%w: en passant file %q", ErrInvalidSquare, rune(file))
	}
	f.EnPassant |= 1 << (file - FileA)
	return nil
}

// LowerEnPassant closes en passant on every file.
func (f *Flags) LowerEnPassant() {
	f.EnPassant = 0
}

// CanCastle returns true if the given side can castle in the given direction.
func (f Flags) CanCastle(c Color, kingSide bool) bool {
	return f.Castling&castlingRight(c, kingSide) != 0
}

func (f Flags) CanWhiteShort() bool { return f.CanCastle(White, true) }
func (f Flags) CanWhiteLong() bool  { return f.CanCastle(White, false) }
func (f Flags) CanBlackShort() bool { return f.CanCastle(Black, true) }
func (f Flags) CanBlackLong() bool  { return f.CanCastle(Black, false) }

// LowerCastle revokes one castling right. The other three are untouched.
func (f *Flags) LowerCastle(c Color, kingSide bool) {
	f.Castling &^= castlingRight(c, kingSide)
}

func (f *Flags) LowerWhiteShort() { f.LowerCastle(White, true) }
func (f *Flags) LowerWhiteLong()  { f.LowerCastle(White, false) }
func (f *Flags) LowerBlackShort() { f.LowerCastle(Black, true) }
func (f *Flags) LowerBlackLong()  { f.LowerCastle(Black, false) }

// LowerCastles revokes both castling rights of one color, as after a king move.
func (f *Flags) LowerCastles(c Color) {
	f.LowerCastle(c, true)
	f.LowerCastle(c, false)
}

// String returns the castling rights followed by the open en passant files,
// e.g. "KQkq -" or "Kq e".
func (f Flags) String() string {
	var ep strings.Builder
	for file := FileA; file <= FileH; file++ {
		if f.CanEnPassant(file) {
			ep.WriteByte(byte(file) + 'a' - 'A')
		}
	}
	if ep.Len() == 0 {
		ep.WriteByte('-')
	}
	return f.Castling.String() + " " + ep.String()
}

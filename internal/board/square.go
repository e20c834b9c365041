// Package board implements a chess position as eight occupancy bitboards
// together with precomputed per-square attack tables.
package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSquare reports a file or rank outside A-H x 1-8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece reports a piece type or color outside its enumeration.
	ErrInvalidPiece = errors.New("invalid piece")
)

// File is a board column, 'A' through 'H'.
type File byte

const (
	FileA File = 'A' + iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the file letter.
func (f File) String() string {
	return string(rune(f))
}

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// InBounds reports whether file is in A-H and rank is in 1-8.
func InBounds(f File, rank int) bool {
	return f >= FileA && f <= FileH && rank >= 1 && rank <= 8
}

// IndexOf returns the bit index (f-'A') + (rank-1)*8 of a square.
func IndexOf(f File, rank int) (int, error) {
	if !InBounds(f, rank) {
		return 0, fmt.Errorf("%w: file %q rank %d", ErrInvalidSquare, rune(f), rank)
	}
	return int(f-FileA) + (rank-1)*8, nil
}

// SquareOf returns the square at the given file and rank.
func SquareOf(f File, rank int) (Square, error) {
	idx, err := IndexOf(f, rank)
	if err != nil {
		return NoSquare, err
	}
	return Square(idx), nil
}

// NewSquare creates a square from zero-based file and rank. No bounds check.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the file of the square.
func (sq Square) File() File {
	return FileA + File(sq&7)
}

// Rank returns the rank of the square (1-8).
func (sq Square) Rank() int {
	return int(sq>>3) + 1
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(sq&7), sq.Rank())
}

// ParseSquare parses algebraic notation (e.g., "e4" or "E4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	f := File(s[0])
	if f >= 'a' && f <= 'h' {
		f -= 'a' - 'A'
	}
	rank := int(s[1]) - '0'
	return SquareOf(f, rank)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

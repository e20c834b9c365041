package board

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// FileMask holds the mask of each file, indexed from file A.
var FileMask = [8]Bitboard{
	0x0101010101010101, 0x0202020202020202, 0x0404040404040404, 0x0808080808080808,
	0x1010101010101010, 0x2020202020202020, 0x4040404040404040, 0x8080808080808080,
}

// RankMask holds the mask of each rank, indexed from rank 1.
var RankMask = [8]Bitboard{
	0x00000000000000FF, 0x000000000000FF00, 0x0000000000FF0000, 0x00000000FF000000,
	0x000000FF00000000, 0x0000FF0000000000, 0x00FF000000000000, 0xFF00000000000000,
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ (1 << sq)
}

// Get reports whether the square at file and rank is set.
func (b Bitboard) Get(f File, rank int) (bool, error) {
	sq, err := SquareOf(f, rank)
	if err != nil {
		return false, err
	}
	return b.IsSet(sq), nil
}

// Put sets or clears the square at file and rank. The bitboard is left
// untouched when the square is out of bounds.
func (b *Bitboard) Put(f File, rank int, on bool) error {
	sq, err := SquareOf(f, rank)
	if err != nil {
		return err
	}
	if on {
		*b = b.Set(sq)
	} else {
		*b = b.Clear(sq)
	}
	return nil
}

// Equal reports whether both bitboards hold the same squares.
func (b Bitboard) Equal(other Bitboard) bool {
	return b == other
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares yields one Coordinate per set bit, lowest square first. Each call
// starts a fresh iteration over the bitboard's current value.
func (b Bitboard) Squares() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for rest := b; rest != 0; {
			if !yield(At(rest.PopLSB())) {
				return
			}
		}
	}
}

// String returns an 8x8 grid with rank 8 on top and file letters below.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		sb.WriteString(strconv.Itoa(rank))
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			sq, _ := SquareOf(f, rank)
			if b.IsSet(sq) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  A B C D E F G H\n")
	return sb.String()
}

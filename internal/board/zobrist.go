package board

// Zobrist keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece     [2][NumPieceTypes][64]uint64 // [Color][PieceType-King][Square]
	zobristEnPassant [8]uint64                    // One per file
	zobristCastling  [16]uint64                   // All 16 castling combinations
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for _, c := range [2]Color{Black, White} {
		for i := range PieceTypes {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][i][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
}

// Hash returns the Zobrist key of a position together with its flags. Equal
// planes and flags always give equal keys.
func Hash(p *Position, f Flags) uint64 {
	var h uint64
	for _, c := range [2]Color{Black, White} {
		for coord := range p.Pieces(c) {
			o, _ := coord.Occupant()
			h ^= zobristPiece[c][o.Type-King][coord.Square]
		}
	}
	for file := range zobristEnPassant {
		if f.EnPassant>>file&1 != 0 {
			h ^= zobristEnPassant[file]
		}
	}
	return h ^ zobristCastling[f.Castling&AllCastling]
}

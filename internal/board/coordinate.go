package board

// Coordinate addresses a square and, when the square is known to be
// occupied, the piece on it. A pure address carries no occupant.
type Coordinate struct {
	Square   Square
	occupant Occupant
	occupied bool
}

// At returns a Coordinate with no occupant.
func At(sq Square) Coordinate {
	return Coordinate{Square: sq}
}

// OccupiedBy returns a Coordinate tagged with the piece standing on sq.
func OccupiedBy(sq Square, o Occupant) Coordinate {
	return Coordinate{Square: sq, occupant: o, occupied: true}
}

// File returns the file of the coordinate.
func (c Coordinate) File() File {
	return c.Square.File()
}

// Rank returns the rank of the coordinate (1-8).
func (c Coordinate) Rank() int {
	return c.Square.Rank()
}

// Occupant returns the piece on the square and whether one is recorded.
func (c Coordinate) Occupant() (Occupant, bool) {
	return c.occupant, c.occupied
}

// String returns the square name, followed by the occupant tag if any.
func (c Coordinate) String() string {
	if !c.occupied {
		return c.Square.String()
	}
	return c.Square.String() + "=" + c.occupant.String()
}

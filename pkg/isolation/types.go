package isolation

// Type defines for the board
type Cell int8
type Player int8
type PosType int8 // index into the flat board buffer, also used as move representation

// Enum for the cell contents
const (
	CellEmpty Cell = iota
	CellPlayerOne
	CellPlayerTwo
	CellBorder
)

// Enum for the player identities
const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

const (
	// Playable area is GridSize x GridSize, embedded in a buffer with a
	// one-cell border frame, so direction probes never need bounds checks.
	GridSize   = 5
	bufferSide = GridSize + 2
	BufferSize = bufferSide * bufferSide
)

// PosNone marks a player that has not been placed on the board yet.
const PosNone PosType = 0

// Queen direction offsets in buffer arithmetic. This is also the
// generation order: E, W, S, N, SW, NE, SE, NW.
var Directions = [8]PosType{1, -1, 7, -7, 6, -6, 8, -8}

func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Piece returns the cell content a token of this player leaves behind
func (p Player) Piece() Cell {
	if p == PlayerOne {
		return CellPlayerOne
	}
	return CellPlayerTwo
}

func (p Player) String() string {
	if p == PlayerOne {
		return "1"
	}
	return "2"
}

func (p Player) index() int {
	return int(p) - 1
}

// Make a position from playable coordinates, x is the row (0..4),
// y the column (0..4)
func PosFromXY(x, y int) PosType {
	return PosType(x*bufferSide + y + bufferSide + 1)
}

// Get the row of the position in playable coordinates
func (p PosType) X() int {
	return (int(p) - bufferSide - 1) / bufferSide
}

// Get the column of the position in playable coordinates
func (p PosType) Y() int {
	return (int(p) - bufferSide - 1) % bufferSide
}

// Get string representation of the square, columns are a..e,
// rows 1..5, for example c3 is the center of the board
func (p PosType) String() string {
	x, y := p.X(), p.Y()
	if p == PosNone || x < 0 || x >= GridSize || y < 0 || y >= GridSize {
		return "(none)"
	}
	return string([]byte{'a' + byte(y), '1' + byte(x)})
}

// Convert given square notation (should be done with PosType.String())
// to PosType, returns PosNone on anything malformed
func PosFromString(str string) PosType {
	if len(str) != 2 ||
		str[0] < 'a' || str[0] > 'a'+GridSize-1 ||
		str[1] < '1' || str[1] > '1'+GridSize-1 {
		return PosNone
	}
	return PosFromXY(int(str[1]-'1'), int(str[0]-'a'))
}

package isolation

import "strings"

// The most destinations a single token can have on the 5x5 grid
const maxMoves = 16

// MoveList holds queen-move destinations for one token
type MoveList struct {
	moves [maxMoves]PosType
	size  uint8
}

// Make a new move list struct
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Reset the movelist, simply sets the size to 0
func (ml *MoveList) Clear() {
	ml.size = 0
}

// Appends a new destination to the list of moves
func (ml *MoveList) Append(pos PosType) {
	ml.moves[ml.size] = pos
	ml.size++
}

// Get the actual slice of valid moves
func (ml *MoveList) Slice() []PosType {
	return ml.moves[0:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

// Convert movelist into a string, uses square notation with space seperation
func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strMoves := make([]string, ml.size)
	for i, m := range ml.Slice() {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}

// Generate all possible destinations for the player's token: direction
// order first, increasing slide distance within a direction, each ray
// cut at the first non-empty square. A queen-move cannot jump blocked
// squares.
func (b *Board) GenerateMoves(player Player) *MoveList {
	movelist := NewMoveList()
	from := b.Pos(player)
	if from == PosNone {
		return movelist
	}

	for _, d := range Directions {
		for pos := from + d; b.cells[pos] == CellEmpty; pos += d {
			movelist.Append(pos)
		}
	}

	return movelist
}

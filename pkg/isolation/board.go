// Package isolation implements the board model of the two-player game
// Isolation, played on a 5x5 grid: players alternately place, then
// slide, a token one queen-move per turn, every square a token has ever
// occupied stays blocked for the rest of the game, and the first player
// without a legal move loses.
package isolation

// Board is the 5x5 playable grid embedded in a flat buffer whose outer
// frame is CellBorder. Every ray from an interior square hits the frame
// before running off the array, so neighbor probes are unchecked.
type Board struct {
	cells [BufferSize]Cell
	pos   [2]PosType // current token position per player, PosNone before placement
}

// Create an empty board with the border frame built
func NewBoard() *Board {
	b := &Board{}
	for i := 0; i < bufferSide; i++ {
		b.cells[i] = CellBorder
		b.cells[(bufferSide-1)*bufferSide+i] = CellBorder
		b.cells[i*bufferSide] = CellBorder
		b.cells[i*bufferSide+bufferSide-1] = CellBorder
	}
	return b
}

// IsLegal reports whether the square at (x, y) is empty
func (b *Board) IsLegal(x, y int) bool {
	return b.cells[PosFromXY(x, y)] == CellEmpty
}

// HasLost reports whether the token on pos has no empty square left in
// any of the 8 queen directions. PosNone (token not placed yet) is
// never lost.
func (b *Board) HasLost(pos PosType) bool {
	if pos == PosNone {
		return false
	}
	for _, d := range Directions {
		if b.cells[pos+d] == CellEmpty {
			return false
		}
	}
	return true
}

// Play commits a destination for the player: the square is marked and
// the token relocated. The vacated square keeps its mark permanently.
// No legality check is done here, the destination is trusted to come
// from a legal-move-producing strategy.
func (b *Board) Play(x, y int, player Player) {
	b.MakeMove(PosFromXY(x, y), player)
}

// MakeMove slides the player's token to pos, marking the square.
// Returns the vacated position, which the matching UndoMove needs.
// During search this is the speculative half of the apply-then-undo
// pair; for real play (via Play) the move is never undone.
func (b *Board) MakeMove(pos PosType, player Player) PosType {
	from := b.pos[player.index()]
	b.cells[pos] = player.Piece()
	b.pos[player.index()] = pos
	return from
}

// UndoMove reverts a speculative MakeMove: pos becomes empty again and
// the token returns to from. Only the destination square is cleared,
// squares that were already blocked before the MakeMove stay blocked.
func (b *Board) UndoMove(pos, from PosType, player Player) {
	b.cells[pos] = CellEmpty
	b.pos[player.index()] = from
}

// Get the cell content at pos
func (b *Board) At(pos PosType) Cell {
	return b.cells[pos]
}

// Pos returns the player's current token position, PosNone if the
// player has not been placed yet
func (b *Board) Pos(player Player) PosType {
	return b.pos[player.index()]
}

// Make a deep copy of the board (has no shared memory with this object)
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

package isolation

import "strings"

// Glyph returns the renderer mark for the square at (x, y): a space for
// an empty square, the owning player's digit for a square currently
// holding that player's token, 'X' for any other blocked square.
func (b *Board) Glyph(x, y int) byte {
	pos := PosFromXY(x, y)
	switch {
	case b.cells[pos] == CellEmpty:
		return ' '
	case pos == b.pos[PlayerOne.index()]:
		return '1'
	case pos == b.pos[PlayerTwo.index()]:
		return '2'
	default:
		return 'X'
	}
}

func (b *Board) String() string {
	return b.render(nil)
}

// MovesString renders the board with every legal destination for the
// player overlaid as '*'.
func (b *Board) MovesString(player Player) string {
	overlay := [BufferSize]byte{}
	for _, m := range b.GenerateMoves(player).Slice() {
		overlay[m] = '*'
	}
	return b.render(&overlay)
}

func (b *Board) render(overlay *[BufferSize]byte) string {
	builder := strings.Builder{}

	for x := 0; x < GridSize; x++ {
		builder.WriteString("| ")
		for y := 0; y < GridSize; y++ {
			glyph := b.Glyph(x, y)
			if overlay != nil && overlay[PosFromXY(x, y)] != 0 {
				glyph = overlay[PosFromXY(x, y)]
			}
			builder.WriteByte(glyph)
			builder.WriteString(" | ")
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

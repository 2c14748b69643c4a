package isolation

import (
	"fmt"
	"strings"
)

// Notation for the empty board
const StartingNotation string = "5/5/5/5/5"

// Notation encodes the board as five '/'-separated rows: digit runs for
// empty squares, 'w' and 'b' for the squares currently holding player
// one's and player two's token, 'x' for every other blocked square.
// Which player left a given trail square is not recorded, legality only
// ever distinguishes empty from blocked.
func (b *Board) Notation() string {
	builder := strings.Builder{}

	for x := 0; x < GridSize; x++ {
		if x > 0 {
			builder.WriteByte('/')
		}
		run := 0
		for y := 0; y < GridSize; y++ {
			pos := PosFromXY(x, y)
			if b.cells[pos] == CellEmpty {
				run++
				continue
			}
			if run > 0 {
				builder.WriteByte('0' + byte(run))
				run = 0
			}
			switch pos {
			case b.pos[PlayerOne.index()]:
				builder.WriteByte('w')
			case b.pos[PlayerTwo.index()]:
				builder.WriteByte('b')
			default:
				builder.WriteByte('x')
			}
		}
		if run > 0 {
			builder.WriteByte('0' + byte(run))
		}
	}

	return builder.String()
}

// FromNotation resets the board and parses an encoding produced by
// Notation. Trail squares are restored as anonymous obstacles.
func (b *Board) FromNotation(str string) error {
	parsed := NewBoard()
	rows := strings.Split(str, "/")
	if len(rows) != GridSize {
		return fmt.Errorf("notation %q: want %d rows, got %d", str, GridSize, len(rows))
	}

	for x, row := range rows {
		y := 0
		for i := 0; i < len(row); i++ {
			if y >= GridSize {
				return fmt.Errorf("notation %q: row %d overflows", str, x+1)
			}
			switch c := row[i]; {
			case c >= '1' && c <= '0'+GridSize:
				y += int(c - '0')
			case c == 'x':
				parsed.cells[PosFromXY(x, y)] = CellPlayerOne
				y++
			case c == 'w':
				pos := PosFromXY(x, y)
				parsed.cells[pos] = CellPlayerOne
				parsed.pos[PlayerOne.index()] = pos
				y++
			case c == 'b':
				pos := PosFromXY(x, y)
				parsed.cells[pos] = CellPlayerTwo
				parsed.pos[PlayerTwo.index()] = pos
				y++
			default:
				return fmt.Errorf("notation %q: bad square %q", str, c)
			}
		}
		if y != GridSize {
			return fmt.Errorf("notation %q: row %d has %d squares", str, x+1, y)
		}
	}

	*b = *parsed
	return nil
}

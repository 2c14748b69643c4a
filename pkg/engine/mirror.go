package engine

import (
	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

// Mirror answers every turn with the point reflection of the
// opponent's token through the board center. It does no legality
// check: the reflected square may already be blocked, and a board
// asked to apply it will mark it anyway. Drivers pairing Mirror
// against a searcher accept that a game can end on such a reflection.
type Mirror struct{}

func (Mirror) GetMove(b *isolation.Board, player isolation.Player, _ int) isolation.PosType {
	opp := b.Pos(player.Opponent())
	return isolation.PosFromXY(isolation.GridSize-1-opp.X(), isolation.GridSize-1-opp.Y())
}

// Package engine implements the decision side of the game: static
// position scoring and move selection. Negamax is the searching
// strategy, Mirror the non-searching one, and any Scorer can be
// plugged into the search as its leaf evaluator.
package engine

import (
	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

// Score bounds
const (
	LossValue = -1000
	WinValue  = +1000
	Inf       = 1000000
)

// Scorer is a static evaluator of a position, seen from the given
// player's perspective. Larger is better for that player.
type Scorer interface {
	Score(b *isolation.Board, player isolation.Player) int
}

// Strategy picks a destination square for the player to move. maxDepth
// is a search budget in plies, non-searching strategies ignore it.
type Strategy interface {
	GetMove(b *isolation.Board, player isolation.Player, maxDepth int) isolation.PosType
}

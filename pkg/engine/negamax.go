package engine

import (
	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

// Negamax is a depth-limited negamax search with alpha-beta pruning.
// Scores are always from the side to move, each recursion negates the
// child's score and swaps the roles. The pruning is fail-soft: a
// cutoff returns the best score actually seen, not the beta bound.
//
// A running search owns the board and mutates it speculatively in
// strict stack discipline (MakeMove immediately before the recursive
// call, UndoMove immediately after), so a Negamax instance must not be
// shared between goroutines.
type Negamax struct {
	board    *isolation.Board
	scorer   Scorer
	maxDepth int
	leaves   int
}

// Create a search using the given leaf evaluator, nil falls back to
// ReachScorer
func NewNegamax(scorer Scorer) *Negamax {
	if scorer == nil {
		scorer = ReachScorer{}
	}
	return &Negamax{scorer: scorer}
}

// LeafCount reports how many leaf evaluations the last GetMove ran,
// for diagnostics only
func (n *Negamax) LeafCount() int {
	return n.leaves
}

// GetMove returns the best destination for the player found within
// maxDepth plies. maxDepth must be at least 1 and the player to move
// must still have a legal move, otherwise no move is written and
// PosNone comes back.
func (n *Negamax) GetMove(b *isolation.Board, player isolation.Player, maxDepth int) isolation.PosType {
	n.board = b
	n.maxDepth = maxDepth
	n.leaves = 0

	move := isolation.PosNone
	n.negamax(b.Pos(player), b.Pos(player.Opponent()), player, 0, -Inf, +Inf, &move)
	return move
}

// negamax evaluates the position for the mover sitting on moverPos.
// best is non-nil only at the top level, inner calls only need the
// score.
func (n *Negamax) negamax(moverPos, oppPos isolation.PosType, mover isolation.Player, depth, alpha, beta int, best *isolation.PosType) int {
	if n.board.HasLost(moverPos) {
		// A loss further down the tree scores slightly higher, so the
		// search delays unavoidable losses and takes the earliest win.
		return LossValue + depth
	}

	if depth == n.maxDepth {
		n.leaves++
		return n.scorer.Score(n.board, mover)
	}

	bestScore := -Inf
	opponent := mover.Opponent()

	for _, d := range isolation.Directions {
		for pos := moverPos + d; n.board.At(pos) == isolation.CellEmpty; pos += d {
			from := n.board.MakeMove(pos, mover)
			score := -n.negamax(oppPos, pos, opponent, depth+1, -beta, -alpha, nil)
			n.board.UndoMove(pos, from, mover)

			// Strictly greater, ties keep the earlier destination
			if score > bestScore {
				bestScore = score
				if best != nil {
					*best = pos
				}
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				return bestScore
			}
		}
	}

	return bestScore
}

package engine

import (
	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

// ScorePerCell weighs controlled area against the distance needed to
// claim it: every reachable square is worth this much, minus one point
// per move of distance.
const ScorePerCell = 16

// ReachScorer evaluates a position by flooding outward from each
// player's token over single queen-moves and comparing the total
// reachable free space. Controlling a larger region that is fewer
// moves away scores higher, the standard area-control heuristic for
// blocking games.
type ReachScorer struct{}

func (ReachScorer) Score(b *isolation.Board, player isolation.Player) int {
	return reach(b, b.Pos(player)) - reach(b, b.Pos(player.Opponent()))
}

// reach runs a breadth-first expansion from pos over a graph whose
// edges are single queen-moves. Scanning a ray stops at the first
// blocked or already-visited square, so a square behind a blocker is
// only found through another ray, one move deeper. Every edge costs
// one move, so a distance is final on first discovery.
func reach(b *isolation.Board, pos isolation.PosType) int {
	var steps [isolation.BufferSize]int8
	for i := range steps {
		steps[i] = -1
	}

	queue := make([]isolation.PosType, 0, isolation.GridSize*isolation.GridSize)
	queue = append(queue, pos)
	steps[pos] = 0

	totalCells, totalSteps := 0, 0
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		totalCells++
		totalSteps += int(steps[cur])

		next := steps[cur] + 1
		for _, d := range isolation.Directions {
			for p := cur + d; b.At(p) == isolation.CellEmpty; p += d {
				if steps[p] != -1 {
					break
				}
				steps[p] = next
				queue = append(queue, p)
			}
		}
	}

	return totalCells*ScorePerCell - totalSteps
}

package arena

/*
Arena subpackage, runs self-play sessions between two move selection
strategies over the fixed set of opening placements, distributing whole
games across worker goroutines. A single search is never parallelized,
only independent games are.
*/

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-isolation/pkg/engine"
	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

// FullDepth covers the whole board: no game can outlast its 25 squares
const FullDepth = 25

// Opening is a pair of first-token placements, player one then player two
type Opening struct {
	P1, P2 isolation.PosType
}

// Openings enumerates the 24 distinct starting placements: player one
// anchored on a1, player two on each remaining square.
func Openings() []Opening {
	list := make([]Opening, 0, 24)
	for x := 0; x < isolation.GridSize; x++ {
		for y := 0; y < isolation.GridSize; y++ {
			if x == 0 && y == 0 {
				continue
			}
			list = append(list, Opening{isolation.PosFromXY(0, 0), isolation.PosFromXY(x, y)})
		}
	}
	return list
}

// Result of a single finished game
type Result struct {
	Opening Opening
	Winner  isolation.Player
	Loser   isolation.Player
	Moves   []isolation.PosType
	Plies   int
	Final   string // final board in isolation notation
}

// Aggregate counters, updated with atomics by the workers
type Stats struct {
	p1Wins uint32
	p2Wins uint32
	plies  uint32
}

func (s *Stats) P1Wins() int {
	return int(atomic.LoadUint32(&s.p1Wins))
}

func (s *Stats) P2Wins() int {
	return int(atomic.LoadUint32(&s.p2Wins))
}

func (s *Stats) Games() int {
	return s.P1Wins() + s.P2Wins()
}

func (s *Stats) Plies() int {
	return int(atomic.LoadUint32(&s.plies))
}

type Summary struct {
	Games    int
	P1Wins   int
	P2Wins   int
	AvgPlies float64
	Workers  int
}

// Match plays one game from the given opening until the side to move
// has no legal move left, and returns the record. Player one moves
// first. The board trusts the strategies: destinations are applied
// without a legality re-check (see engine.Mirror for the known
// exception).
func Match(opening Opening, p1, p2 engine.Strategy, depth int, listener Listener) Result {
	b := isolation.NewBoard()
	b.Play(opening.P1.X(), opening.P1.Y(), isolation.PlayerOne)
	b.Play(opening.P2.X(), opening.P2.Y(), isolation.PlayerTwo)
	listener.OnGameStart(opening, b)

	strategies := [2]engine.Strategy{p1, p2}
	moves := make([]isolation.PosType, 0, FullDepth)
	player := isolation.PlayerOne

	for !b.HasLost(b.Pos(player)) {
		move := strategies[int(player)-1].GetMove(b, player, depth)
		b.Play(move.X(), move.Y(), player)
		moves = append(moves, move)
		listener.OnMove(b, player, move)
		player = player.Opponent()
	}

	result := Result{
		Opening: opening,
		Winner:  player.Opponent(),
		Loser:   player,
		Moves:   moves,
		Plies:   len(moves),
		Final:   b.Notation(),
	}
	listener.OnGameEnd(result)
	return result
}

// Arena plays every opening once. Each worker owns its own strategy
// instances, a running search mutates the board it is handed, so
// nothing is shared between in-flight games.
type Arena struct {
	Stats
	Depth    int
	NThreads int
	Listener Listener

	newP1, newP2 func() engine.Strategy
	wg           sync.WaitGroup
	ctx          context.Context
}

// Create an arena with full-depth search and one worker per CPU. The
// constructors are called once per worker, never concurrently with a
// game on the same instance.
func NewArena(newP1, newP2 func() engine.Strategy) *Arena {
	return &Arena{
		Depth:    FullDepth,
		NThreads: runtime.NumCPU(),
		Listener: NopListener{},
		newP1:    newP1,
		newP2:    newP2,
		ctx:      context.Background(),
	}
}

// Adds custom context to the arena, enabling cancellation through it.
// Cancellation takes effect between games, a running search always
// completes.
func (a *Arena) WithContext(ctx context.Context) *Arena {
	a.ctx = ctx
	return a
}

// Run plays the full opening set and blocks until every dispatched
// game finished. Results are indexed like Openings(); openings skipped
// after a cancellation keep the zero Result.
func (a *Arena) Run() []Result {
	openings := Openings()
	results := make([]Result, len(openings))
	jobs := make(chan int)

	workers := max(1, a.NThreads)
	for w := 0; w < workers; w++ {
		a.wg.Add(1)
		go a.worker(jobs, openings, results)
	}

Loop:
	for i := range openings {
		select {
		case <-a.ctx.Done():
			break Loop
		case jobs <- i:
		}
	}
	close(jobs)
	a.wg.Wait()

	played := a.Games()
	avg := 0.0
	if played > 0 {
		avg = float64(a.Plies()) / float64(played)
	}
	a.Listener.OnSummary(Summary{
		Games:    played,
		P1Wins:   a.P1Wins(),
		P2Wins:   a.P2Wins(),
		AvgPlies: avg,
		Workers:  workers,
	})

	return results
}

func (a *Arena) worker(jobs <-chan int, openings []Opening, results []Result) {
	defer a.wg.Done()

	p1 := a.newP1()
	p2 := a.newP2()

	for i := range jobs {
		result := Match(openings[i], p1, p2, a.Depth, a.Listener)
		results[i] = result

		if result.Winner == isolation.PlayerOne {
			atomic.AddUint32(&a.p1Wins, 1)
		} else {
			atomic.AddUint32(&a.p2Wins, 1)
		}
		atomic.AddUint32(&a.plies, uint32(result.Plies))
	}
}

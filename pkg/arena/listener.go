package arena

import (
	log "github.com/sirupsen/logrus"

	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

// Listener observes arena progress. With more than one worker the
// callbacks run concurrently, implementations must be safe for that.
type Listener interface {
	OnGameStart(opening Opening, b *isolation.Board)
	OnMove(b *isolation.Board, player isolation.Player, move isolation.PosType)
	OnGameEnd(result Result)
	OnSummary(summary Summary)
}

type NopListener struct{}

func (NopListener) OnGameStart(Opening, *isolation.Board) {}

func (NopListener) OnMove(*isolation.Board, isolation.Player, isolation.PosType) {}

func (NopListener) OnGameEnd(Result) {}

func (NopListener) OnSummary(Summary) {}

// LogListener reports arena progress through logrus, which serializes
// its own output
type LogListener struct {
	Verbose bool // also log every single move
}

func (l LogListener) OnGameStart(opening Opening, b *isolation.Board) {
	log.WithFields(log.Fields{
		"p1": opening.P1.String(),
		"p2": opening.P2.String(),
	}).Info("game start")
}

func (l LogListener) OnMove(b *isolation.Board, player isolation.Player, move isolation.PosType) {
	if !l.Verbose {
		return
	}
	log.WithFields(log.Fields{
		"player": player.String(),
		"move":   move.String(),
	}).Debug("moved")
}

func (l LogListener) OnGameEnd(result Result) {
	log.WithFields(log.Fields{
		"p1":     result.Opening.P1.String(),
		"p2":     result.Opening.P2.String(),
		"winner": result.Winner.String(),
		"plies":  result.Plies,
	}).Info("game over")
}

func (l LogListener) OnSummary(summary Summary) {
	log.WithFields(log.Fields{
		"games":    summary.Games,
		"p1Wins":   summary.P1Wins,
		"p2Wins":   summary.P2Wins,
		"avgPlies": summary.AvgPlies,
		"workers":  summary.Workers,
	}).Info("arena finished")
}

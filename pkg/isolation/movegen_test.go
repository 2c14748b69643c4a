package isolation

import (
	"slices"
	"strings"
	"testing"
)

func TestGenerateMovesOrder(t *testing.T) {
	b := NewBoard()
	b.Play(2, 2, PlayerOne)

	// Direction order E, W, S, N, SW, NE, SE, NW, increasing distance
	// within each direction
	want := []PosType{
		PosFromXY(2, 3), PosFromXY(2, 4),
		PosFromXY(2, 1), PosFromXY(2, 0),
		PosFromXY(3, 2), PosFromXY(4, 2),
		PosFromXY(1, 2), PosFromXY(0, 2),
		PosFromXY(3, 1), PosFromXY(4, 0),
		PosFromXY(1, 3), PosFromXY(0, 4),
		PosFromXY(3, 3), PosFromXY(4, 4),
		PosFromXY(1, 1), PosFromXY(0, 0),
	}

	got := b.GenerateMoves(PlayerOne).Slice()
	if !slices.Equal(got, want) {
		t.Errorf("movegen order mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestGenerateMovesBlocked(t *testing.T) {
	b := NewBoard()
	if err := b.FromNotation("w1x2/1x3/5/5/5"); err != nil {
		t.Fatal(err)
	}

	// The x on a-row cuts the east ray after one step, the x on b2
	// kills the diagonal entirely. Only the south file stays open.
	want := []PosType{
		PosFromXY(0, 1),
		PosFromXY(1, 0), PosFromXY(2, 0), PosFromXY(3, 0), PosFromXY(4, 0),
	}

	got := b.GenerateMoves(PlayerOne).Slice()
	if !slices.Equal(got, want) {
		t.Errorf("movegen mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestGenerateMovesUnplaced(t *testing.T) {
	b := NewBoard()
	if got := b.GenerateMoves(PlayerOne).Size(); got != 0 {
		t.Errorf("unplaced token should have no moves, got %d", got)
	}
}

func TestMoveListString(t *testing.T) {
	ml := NewMoveList()
	if ml.String() != "empty" {
		t.Errorf("empty list should print 'empty', got %q", ml.String())
	}

	ml.Append(PosFromXY(0, 1))
	ml.Append(PosFromXY(2, 2))
	if got := ml.String(); got != "b1 c3" {
		t.Errorf("want 'b1 c3', got %q", got)
	}

	ml.Clear()
	if ml.Size() != 0 {
		t.Error("Clear should empty the list")
	}
}

func TestMovesStringOverlay(t *testing.T) {
	b := NewBoard()
	b.Play(0, 0, PlayerOne)

	rendered := b.MovesString(PlayerOne)
	stars := strings.Count(rendered, "*")
	if moves := b.GenerateMoves(PlayerOne).Size(); stars != moves {
		t.Errorf("overlay has %d stars, want one per destination (%d)", stars, moves)
	}
}

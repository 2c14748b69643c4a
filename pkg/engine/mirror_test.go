package engine

import (
	"testing"

	"github.com/IlikeChooros/go-isolation/pkg/isolation"
)

func TestMirrorReflection(t *testing.T) {
	cases := []struct {
		opp  [2]int
		want [2]int
	}{
		{[2]int{0, 0}, [2]int{4, 4}},
		{[2]int{1, 3}, [2]int{3, 1}},
		{[2]int{4, 2}, [2]int{0, 2}},
	}

	for _, c := range cases {
		b := isolation.NewBoard()
		b.Play(c.opp[0], c.opp[1], isolation.PlayerTwo)

		got := Mirror{}.GetMove(b, isolation.PlayerOne, 0)
		if want := isolation.PosFromXY(c.want[0], c.want[1]); got != want {
			t.Errorf("mirror of (%d,%d) = %s, want %s", c.opp[0], c.opp[1], got, want)
		}
	}
}

func TestMirrorIgnoresLegality(t *testing.T) {
	// The center square reflects onto itself: Mirror hands back the
	// opponent's own occupied square without complaint.
	b := isolation.NewBoard()
	b.Play(2, 2, isolation.PlayerTwo)

	got := Mirror{}.GetMove(b, isolation.PlayerOne, 0)
	if want := isolation.PosFromXY(2, 2); got != want {
		t.Fatalf("mirror of the center should be the center, got %s", got)
	}
	if b.IsLegal(got.X(), got.Y()) {
		t.Fatal("fixture should produce an occupied square")
	}
}

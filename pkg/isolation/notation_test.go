package isolation

import "testing"

func TestNotationRoundTrip(t *testing.T) {
	cases := []string{
		StartingNotation,
		"w4/5/5/5/4b",
		"w1x2/1x3/2b2/5/xxxx1",
	}

	for _, notation := range cases {
		t.Run(notation, func(t *testing.T) {
			b := NewBoard()
			if err := b.FromNotation(notation); err != nil {
				t.Fatal(err)
			}
			if got := b.Notation(); got != notation {
				t.Errorf("round trip mismatch: got %q, want %q", got, notation)
			}
		})
	}
}

func TestFromNotationPositions(t *testing.T) {
	b := NewBoard()
	if err := b.FromNotation("w4/5/2b2/5/5"); err != nil {
		t.Fatal(err)
	}

	if b.Pos(PlayerOne) != PosFromXY(0, 0) {
		t.Errorf("player one should sit on a1, got %s", b.Pos(PlayerOne))
	}
	if b.Pos(PlayerTwo) != PosFromXY(2, 2) {
		t.Errorf("player two should sit on c3, got %s", b.Pos(PlayerTwo))
	}

	if err := b.FromNotation(StartingNotation); err != nil {
		t.Fatal(err)
	}
	if b.Pos(PlayerOne) != PosNone || b.Pos(PlayerTwo) != PosNone {
		t.Error("empty board should have no token positions")
	}
}

func TestFromNotationErrors(t *testing.T) {
	bad := []string{
		"5/5/5/5",    // missing row
		"5/5/5/5/4",  // short row
		"5/5/5/5/51", // overflowing row
		"q4/5/5/5/5", // unknown square
		"6/5/5/5/5",  // run too long
	}

	for _, notation := range bad {
		if err := NewBoard().FromNotation(notation); err == nil {
			t.Errorf("notation %q should not parse", notation)
		}
	}
}

func TestSquareNotation(t *testing.T) {
	cases := []struct {
		pos  PosType
		want string
	}{
		{PosFromXY(0, 0), "a1"},
		{PosFromXY(2, 2), "c3"},
		{PosFromXY(4, 4), "e5"},
		{PosFromXY(0, 4), "e1"},
		{PosNone, "(none)"},
	}

	for _, c := range cases {
		if got := c.pos.String(); got != c.want {
			t.Errorf("String(%d) = %q, want %q", c.pos, got, c.want)
		}
		if c.pos == PosNone {
			continue
		}
		if got := PosFromString(c.want); got != c.pos {
			t.Errorf("PosFromString(%q) = %d, want %d", c.want, got, c.pos)
		}
	}

	for _, bad := range []string{"", "a", "f1", "a6", "a11", "1a"} {
		if got := PosFromString(bad); got != PosNone {
			t.Errorf("PosFromString(%q) should be PosNone, got %s", bad, got)
		}
	}
}

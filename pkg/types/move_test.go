package types

import "testing"

func TestNotation(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{Move{Face: FaceR, Turn: TurnCW}, "R"},
		{Move{Face: FaceR, Turn: TurnCCW}, "R'"},
		{Move{Face: FaceU, Turn: Turn180}, "U2"},
	}
	for _, c := range cases {
		if got := c.move.Notation(); got != c.want {
			t.Errorf("Notation() = %q, want %q", got, c.want)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for tok := uint8(0); tok < 18; tok++ {
		m := MoveFromToken(tok)
		if m.Token() != tok {
			t.Errorf("token %d round trips to %d (%s)", tok, m.Token(), m.Notation())
		}
	}
}

func TestInverse(t *testing.T) {
	for tok := uint8(0); tok < 18; tok++ {
		m := MoveFromToken(tok)
		inv := m.Inverse()
		if !m.IsCancellation(inv) {
			t.Errorf("%s should cancel %s", inv.Notation(), m.Notation())
		}
	}
}

func TestMerge(t *testing.T) {
	r := Move{Face: FaceR, Turn: TurnCW}
	r2 := Move{Face: FaceR, Turn: Turn180}
	u := Move{Face: FaceU, Turn: TurnCW}

	if got := r.Merge(r2); got == nil || got.Notation() != "R'" {
		t.Errorf("R + R2 should merge to R'")
	}
	if got := r.Merge(r.Inverse()); got != nil {
		t.Errorf("R + R' should cancel, got %v", got.Notation())
	}
	if got := r2.Merge(r2); got != nil {
		t.Errorf("R2 + R2 should cancel, got %v", got.Notation())
	}
	if got := r.Merge(u); got != nil {
		t.Error("different faces must not merge")
	}
}

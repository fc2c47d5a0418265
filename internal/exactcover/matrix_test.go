package exactcover

import "testing"

func TestBuildSatisfiesInvariants(t *testing.T) {
	m := Build()
	if err := m.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestChoiceRowRoundTrip(t *testing.T) {
	for v := uint8(1); v <= 9; v++ {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				r := ChoiceRow(x, y, v)
				dx, dy, dv := DecodeRow(r)
				if dx != x || dy != y || dv != v {
					t.Fatalf("round trip mismatch for (%d,%d,%d): got (%d,%d,%d)", x, y, v, dx, dy, dv)
				}
			}
		}
	}
}

func TestRowsWithColumnNonEmpty(t *testing.T) {
	m := Build()
	for c := 0; c < Cols; c++ {
		if len(m.RowsWithColumn(c)) != 9 {
			t.Fatalf("column %d has %d rows, want 9", c, len(m.RowsWithColumn(c)))
		}
	}
}

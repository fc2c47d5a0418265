package board

import "encoding/json"

type wireCell struct {
	Value uint8 `json:"value"`
	Kind  Kind  `json:"kind"`
}

type wireBoard struct {
	Cells [Size * Size]wireCell `json:"cells"`
}

// MarshalJSON encodes the board as a flat row-major array of
// {value, kind} cells, for the HTTP adapter.
func (b *Board) MarshalJSON() ([]byte, error) {
	var w wireBoard
	for i, c := range b.cells {
		w.Cells[i] = wireCell{Value: c.Value, Kind: c.Kind}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the board from the MarshalJSON layout.
func (b *Board) UnmarshalJSON(data []byte) error {
	var w wireBoard
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	for i, c := range w.Cells {
		b.cells[i] = Cell{Value: c.Value, Kind: c.Kind}
	}
	return nil
}

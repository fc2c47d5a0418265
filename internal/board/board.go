package board

import "errors"

// ErrOutOfRange is returned when coordinates fall outside [0,9).
var ErrOutOfRange = errors.New("board: coordinates out of range")

// ErrInvalidDigit is returned when a digit falls outside [0,9].
var ErrInvalidDigit = errors.New("board: digit out of range")

// ErrImmutable is returned when a caller tries to overwrite a
// Generated cell.
var ErrImmutable = errors.New("board: cell is immutable")

// At returns the value and provenance tag of the cell at (x,y).
func (b *Board) At(x, y int) (uint8, Kind, error) {
	if !inRange(x, y) {
		return 0, None, ErrOutOfRange
	}
	c := b.cells[idx(x, y)]
	return c.Value, c.Kind, nil
}

// Empty reports whether the cell at (x,y) holds no value.
func (b *Board) Empty(x, y int) (bool, error) {
	v, _, err := b.At(x, y)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// CanFit reports whether d can be placed at (x,y) without violating
// any of the three constraints. On false it also reports the first
// violated constraint, checked in the order Column, Row, Box.
func (b *Board) CanFit(x, y int, d uint8) (bool, ConstraintKind, error) {
	if !inRange(x, y) {
		return false, NoConstraint, ErrOutOfRange
	}
	if d < 1 || d > 9 {
		return false, NoConstraint, ErrInvalidDigit
	}
	if !b.fitsInColumn(x, y, d) {
		return false, Column, nil
	}
	if !b.fitsInRow(x, y, d) {
		return false, Row, nil
	}
	if !b.fitsInBox(x, y, d) {
		return false, Box, nil
	}
	return true, NoConstraint, nil
}

// Put writes a value and provenance tag into the cell at (x,y).
// A Generated cell can never be overwritten. If d is 0 the cell's
// tag is forced to None regardless of the kind argument.
func (b *Board) Put(x, y int, d uint8, k Kind) error {
	if !inRange(x, y) {
		return ErrOutOfRange
	}
	if d > 9 {
		return ErrInvalidDigit
	}
	i := idx(x, y)
	if b.cells[i].Kind == Generated {
		return ErrImmutable
	}
	if d == 0 {
		b.cells[i] = Cell{Value: 0, Kind: None}
		return nil
	}
	b.cells[i] = Cell{Value: d, Kind: k}
	return nil
}

// ForceSet writes a cell directly, bypassing the Generated
// immutability guard. Intended for reconstructing a board from
// persisted data, not for live edits.
func (b *Board) ForceSet(x, y int, d uint8, k Kind) error {
	if !inRange(x, y) {
		return ErrOutOfRange
	}
	if d > 9 {
		return ErrInvalidDigit
	}
	if d == 0 {
		b.cells[idx(x, y)] = Cell{Value: 0, Kind: None}
		return nil
	}
	b.cells[idx(x, y)] = Cell{Value: d, Kind: k}
	return nil
}

// Reset clears every cell back to (0, None).
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Solved reports whether every cell is non-zero and no row, column
// or box holds a repeated digit.
func (b *Board) Solved() bool {
	for i := range b.cells {
		if b.cells[i].Value == 0 {
			return false
		}
	}
	for y := 0; y < Size; y++ {
		var seen [10]bool
		for x := 0; x < Size; x++ {
			v := b.cells[idx(x, y)].Value
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	for x := 0; x < Size; x++ {
		var seen [10]bool
		for y := 0; y < Size; y++ {
			v := b.cells[idx(x, y)].Value
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	for by := 0; by < 3; by++ {
		for bx := 0; bx < 3; bx++ {
			var seen [10]bool
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					v := b.cells[idx(bx*3+dx, by*3+dy)].Value
					if seen[v] {
						return false
					}
					seen[v] = true
				}
			}
		}
	}
	return true
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	out := &Board{}
	out.cells = b.cells
	return out
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(x, y int, v uint8, k Kind)) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := b.cells[idx(x, y)]
			fn(x, y, c.Value, c.Kind)
		}
	}
}

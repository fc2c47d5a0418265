// Package exactcover builds the 729x324 Sudoku exact-cover incidence
// matrix: a dense array linking every (value, row, column) choice to
// the four constraints it satisfies.
package exactcover

import "fmt"

const (
	Size = 9

	// Rows is the number of choices: one per (digit, row, column).
	Rows = Size * Size * Size // 729

	// Cols is the number of constraints, split into four 81-wide
	// blocks in this order: row-digit, column-digit, box-digit,
	// cell-occupancy.
	Cols = 4 * Size * Size // 324

	rowDigitOffset = 0
	colDigitOffset = Size * Size
	boxDigitOffset = 2 * Size * Size
	cellOffset     = 3 * Size * Size
)

// Matrix is the dense 0/1 exact-cover incidence matrix.
type Matrix struct {
	// bits[r] is a 324-bit row; only 4 bits are ever set.
	bits [Rows][Cols]bool
}

// ChoiceRow returns the row index for placing digit v (1..9) at (x,y).
func ChoiceRow(x, y int, v uint8) int {
	return int(v-1)*Size*Size + y*Size + x
}

// DecodeRow is the inverse of ChoiceRow.
func DecodeRow(r int) (x, y int, v uint8) {
	cell := r % (Size * Size)
	digit := r / (Size * Size)
	return cell % Size, cell / Size, uint8(digit + 1)
}

func boxOf(x, y int) int {
	return (y/3)*3 + x/3
}

// columnsFor returns the four constraint columns set by choice row r.
func columnsFor(r int) [4]int {
	x, y, v := DecodeRow(r)
	d := int(v - 1)
	return [4]int{
		rowDigitOffset + y*Size + d,
		colDigitOffset + x*Size + d,
		boxDigitOffset + boxOf(x, y)*Size + d,
		cellOffset + y*Size + x,
	}
}

// Build constructs the full matrix. Construction is deterministic and
// fully determined by the 9x9 structure; it takes no board input.
func Build() *Matrix {
	m := &Matrix{}
	for r := 0; r < Rows; r++ {
		for _, c := range columnsFor(r) {
			m.bits[r][c] = true
		}
	}
	return m
}

// Has reports whether choice row r sets constraint column c.
func (m *Matrix) Has(r, c int) bool {
	return m.bits[r][c]
}

// RowsWithColumn returns every choice row that sets constraint c.
func (m *Matrix) RowsWithColumn(c int) []int {
	out := make([]int, 0, 9)
	for r := 0; r < Rows; r++ {
		if m.bits[r][c] {
			out = append(out, r)
		}
	}
	return out
}

// ColumnsOf returns the four constraint columns set by choice row r.
func (m *Matrix) ColumnsOf(r int) [4]int {
	return columnsFor(r)
}

// Verify checks the matrix's two structural invariants: every row has
// exactly four ones, and every column has at least one. It also
// checks the total one-count, expected to be 2916.
func (m *Matrix) Verify() error {
	for r := 0; r < Rows; r++ {
		n := 0
		for c := 0; c < Cols; c++ {
			if m.bits[r][c] {
				n++
			}
		}
		if n != 4 {
			return fmt.Errorf("exactcover: row %d has %d ones, want 4", r, n)
		}
	}
	colCount := make([]int, Cols)
	total := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if m.bits[r][c] {
				colCount[c]++
				total++
			}
		}
	}
	for c, n := range colCount {
		if n < 1 {
			return fmt.Errorf("exactcover: column %d has %d ones, want >= 1", c, n)
		}
	}
	if total != Rows*4 {
		return fmt.Errorf("exactcover: total ones = %d, want %d", total, Rows*4)
	}
	return nil
}

// Dump writes the matrix as 729 lines of 324 '0'/'1' characters, for
// debugging and inspection.
func (m *Matrix) Dump() []byte {
	buf := make([]byte, 0, Rows*(Cols+1))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if m.bits[r][c] {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, '\n')
	}
	return buf
}

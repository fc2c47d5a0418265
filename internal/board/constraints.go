package board

// fitsInRow reports whether no cell in row y already holds d.
// Evaluated against current contents: a d already sitting at (x,y)
// counts as a conflict, matching canFit's no-self-exception policy.
func (b *Board) fitsInRow(x, y int, d uint8) bool {
	if !inRange(x, y) {
		return false
	}
	for cx := 0; cx < Size; cx++ {
		if b.cells[idx(cx, y)].Value == d {
			return false
		}
	}
	return true
}

// fitsInColumn reports whether no cell in column x already holds d.
func (b *Board) fitsInColumn(x, y int, d uint8) bool {
	if !inRange(x, y) {
		return false
	}
	for cy := 0; cy < Size; cy++ {
		if b.cells[idx(x, cy)].Value == d {
			return false
		}
	}
	return true
}

// fitsInBox reports whether no cell in the 3x3 box containing (x,y)
// already holds d.
func (b *Board) fitsInBox(x, y int, d uint8) bool {
	if !inRange(x, y) {
		return false
	}
	bx, by := (x/3)*3, (y/3)*3
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if b.cells[idx(bx+dx, by+dy)].Value == d {
				return false
			}
		}
	}
	return true
}

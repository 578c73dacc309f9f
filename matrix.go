package main

// Mat is a rectangular grid of cells stored row by row. Row 0 is the top.
type Mat struct {
	cells []Cell
	size  Pt
}

func NewMat(size Pt) Mat {
	m := Mat{}
	m.size = size
	m.cells = make([]Cell, size.X*size.Y)
	return m
}

func (m *Mat) Set(pos Pt, val Cell) {
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat) Get(pos Pt) Cell {
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

func (m *Mat) Clear() {
	for i := range m.cells {
		m.cells[i] = Empty
	}
}

// Rows returns the matrix as a freshly allocated slice of rows.
func (m *Mat) Rows() [][]Cell {
	rows := make([][]Cell, m.size.Y)
	for y := range rows {
		rows[y] = make([]Cell, m.size.X)
		copy(rows[y], m.cells[int64(y)*m.size.X:int64(y+1)*m.size.X])
	}
	return rows
}

package main

import (
	"image/color"
)

// Shape is the occupancy mask of a tetromino. It says which cells of the
// piece's grid are occupied, but not what digit they hold.
type Shape struct {
	Name  string
	Mask  [][]bool
	Color color.NRGBA
}

var green = color.NRGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF}
var red = color.NRGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}

var Shapes = []Shape{
	{
		Name:  "I",
		Mask:  [][]bool{{true, true, true, true}},
		Color: green,
	},
	{
		Name: "J",
		Mask: [][]bool{
			{false, true, false},
			{false, true, false},
			{true, true, false},
		},
		Color: red,
	},
	{
		Name: "L",
		Mask: [][]bool{
			{false, true, false},
			{false, true, false},
			{false, true, true},
		},
		Color: green,
	},
	{
		Name: "O",
		Mask: [][]bool{
			{true, true},
			{true, true},
		},
		Color: red,
	},
	{
		Name: "S",
		Mask: [][]bool{
			{false, true, true},
			{true, true, false},
			{false, false, false},
		},
		Color: green,
	},
	{
		Name: "T",
		Mask: [][]bool{
			{false, true, false},
			{true, true, true},
			{false, false, false},
		},
		Color: red,
	},
	{
		Name: "Z",
		Mask: [][]bool{
			{true, true, false},
			{false, true, true},
			{false, false, false},
		},
		Color: green,
	},
}

// Piece is the falling tetromino. Grid holds a digit for every occupied cell
// and Empty for the rest. Pos is where the top-left corner of Grid sits on
// the board.
type Piece struct {
	Kind  int64
	Grid  [][]Cell
	Pos   Pt
	Color color.NRGBA
}

func (p *Piece) Width() int64 {
	if len(p.Grid) == 0 {
		return 0
	}
	return int64(len(p.Grid[0]))
}

func (p *Piece) Height() int64 {
	return int64(len(p.Grid))
}

// NewPiece builds a piece out of a shape, taking the digit of each occupied
// cell from vals, in row order. It is placed at the top of the board, in the
// middle.
func NewPiece(kind int64, vals []Cell) (p Piece) {
	s := Shapes[kind]
	p.Kind = kind
	p.Color = s.Color
	p.Grid = make([][]Cell, len(s.Mask))
	i := 0
	for y := range s.Mask {
		p.Grid[y] = make([]Cell, len(s.Mask[y]))
		for x := range s.Mask[y] {
			if s.Mask[y][x] {
				p.Grid[y][x] = vals[i]
				i++
			}
		}
	}
	p.Pos = Pt{NCols/2 - p.Width()/2, 0}
	return
}

// NewRandomPiece picks a shape and a digit for every occupied cell. Each
// cell gets its own coin flip, so a piece usually mixes 0s and 1s.
func NewRandomPiece(r *Rand) Piece {
	kind := r.RInt(0, int64(len(Shapes))-1)
	var vals []Cell
	for _, row := range Shapes[kind].Mask {
		for _, occupied := range row {
			if !occupied {
				continue
			}
			if r.RInt(0, 1) == 0 {
				vals = append(vals, Zero)
			} else {
				vals = append(vals, One)
			}
		}
	}
	return NewPiece(kind, vals)
}

// Rotated returns the grid turned by 90 degrees, clockwise if direction is
// positive and counter-clockwise otherwise. The piece itself is not changed.
func (p *Piece) Rotated(direction int64) [][]Cell {
	h := len(p.Grid)
	w := len(p.Grid[0])
	rotated := make([][]Cell, w)
	for i := range rotated {
		rotated[i] = make([]Cell, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if direction > 0 {
				rotated[x][h-1-y] = p.Grid[y][x]
			} else {
				rotated[w-1-x][y] = p.Grid[y][x]
			}
		}
	}
	return rotated
}

func (p *Piece) SwapValues() {
	for y := range p.Grid {
		for x := range p.Grid[y] {
			p.Grid[y][x] = p.Grid[y][x].Flipped()
		}
	}
}

func (p *Piece) Clone() Piece {
	c := *p
	c.Grid = make([][]Cell, len(p.Grid))
	for y := range p.Grid {
		c.Grid[y] = append([]Cell(nil), p.Grid[y]...)
	}
	return c
}

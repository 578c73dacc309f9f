package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewPiece_SpawnsCentered(t *testing.T) {
	i := NewPiece(0, SameVals(4, Zero))
	assert.Equal(t, Pt{3, 0}, i.Pos)
	o := NewPiece(3, SameVals(4, Zero))
	assert.Equal(t, Pt{4, 0}, o.Pos)
	tp := NewPiece(5, SameVals(4, Zero))
	assert.Equal(t, Pt{4, 0}, tp.Pos)
}

func TestNewPiece_FillsMaskInRowOrder(t *testing.T) {
	p := NewPiece(5, []Cell{One, Zero, One, Zero}) // T
	assert.Equal(t, [][]Cell{
		{Empty, One, Empty},
		{Zero, One, Zero},
		{Empty, Empty, Empty},
	}, p.Grid)
	assert.Equal(t, Shapes[5].Color, p.Color)
}

func TestNewRandomPiece(t *testing.T) {
	r := NewRand(0)
	kinds := map[int64]bool{}
	digits := map[Cell]bool{}
	for range 1000 {
		p := NewRandomPiece(&r)
		kinds[p.Kind] = true
		mask := Shapes[p.Kind].Mask
		for y := range p.Grid {
			for x := range p.Grid[y] {
				if mask[y][x] {
					assert.NotEqual(t, Empty, p.Grid[y][x])
					digits[p.Grid[y][x]] = true
				} else {
					assert.Equal(t, Empty, p.Grid[y][x])
				}
			}
		}
	}
	assert.Equal(t, len(Shapes), len(kinds))
	assert.Equal(t, 2, len(digits))
}

func TestPiece_Rotated(t *testing.T) {
	p := NewPiece(0, []Cell{Zero, Zero, One, One}) // I
	assert.Equal(t, [][]Cell{{Zero}, {Zero}, {One}, {One}}, p.Rotated(1))
	assert.Equal(t, [][]Cell{{One}, {One}, {Zero}, {Zero}}, p.Rotated(-1))

	// Rotation doesn't change the piece itself.
	assert.Equal(t, [][]Cell{{Zero, Zero, One, One}}, p.Grid)
}

func TestPiece_RotatedRoundTrip(t *testing.T) {
	for kind := range int64(len(Shapes)) {
		p := NewPiece(kind, []Cell{Zero, One, One, Zero})
		original := p.Clone()

		p.Grid = p.Rotated(1)
		p.Grid = p.Rotated(-1)
		assert.Equal(t, original.Grid, p.Grid)

		for range 4 {
			p.Grid = p.Rotated(1)
		}
		assert.Equal(t, original.Grid, p.Grid)
	}
}

func TestPiece_SwapValues(t *testing.T) {
	p := NewPiece(1, []Cell{Zero, One, One, Zero}) // J
	p.SwapValues()
	assert.Equal(t, [][]Cell{
		{Empty, One, Empty},
		{Empty, Zero, Empty},
		{Zero, One, Empty},
	}, p.Grid)
}

func TestPiece_CloneIsDeep(t *testing.T) {
	p := NewPiece(3, SameVals(4, Zero))
	c := p.Clone()
	c.Grid[0][0] = One
	c.Pos.Add(Pt{1, 1})
	assert.Equal(t, Zero, p.Grid[0][0])
	assert.Equal(t, Pt{4, 0}, p.Pos)
}

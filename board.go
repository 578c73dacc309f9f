package main

import "fmt"

// Board rules
// - The board is a fixed grid of NCols x NRows cells. Row 0 is the top.
// - A cell is Empty or holds a binary digit (Zero or One).
// - The board only changes when a piece is locked into it, when 2x2 blocks
// are cleared and when gravity is applied after a clear.
// - A 2x2 block clears when all four of its cells hold the same digit.
// Overlapping blocks each count as a separate match, so a 3x3 square of the
// same digit is 4 matches that empty 9 cells.
// - After a clear, every column falls independently until its cells rest on
// the floor or on each other. Falling can form new 2x2 blocks, which clear
// as well, and so on until nothing matches.

type Cell int64

const (
	Empty Cell = iota
	Zero
	One
)

const NCols = int64(10)
const NRows = int64(20)

func (c Cell) Valid() bool {
	return c == Empty || c == Zero || c == One
}

// Flipped returns the opposite digit. Empty stays Empty.
func (c Cell) Flipped() Cell {
	switch c {
	case Zero:
		return One
	case One:
		return Zero
	default:
		return c
	}
}

func (c Cell) String() string {
	switch c {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "."
	}
}

type Board struct {
	Mat
}

func NewBoard() (b Board) {
	b.Mat = NewMat(Pt{NCols, NRows})
	return
}

// IsCollision checks if the piece would hit a wall, the floor or a locked
// cell after being moved by offset. If candidate is not nil, it is checked
// in place of the piece's own grid (used for testing a rotation before
// applying it).
// Cells that end up above the top of the board only have their column
// checked. A freshly spawned piece may stick out above the board.
func (b *Board) IsCollision(p *Piece, offset Pt, candidate [][]Cell) bool {
	grid := p.Grid
	if candidate != nil {
		grid = candidate
	}
	origin := p.Pos.Plus(offset)
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == Empty {
				continue
			}
			pos := origin.Plus(Pt{int64(x), int64(y)})
			if pos.X < 0 || pos.X >= b.size.X || pos.Y >= b.size.Y {
				return true
			}
			if pos.Y >= 0 && b.Get(pos) != Empty {
				return true
			}
		}
	}
	return false
}

// Lock copies the piece's digits into the board. Cells above the top of the
// board are lost.
func (b *Board) Lock(p *Piece) {
	for y := range p.Grid {
		for x := range p.Grid[y] {
			if p.Grid[y][x] == Empty {
				continue
			}
			pos := p.Pos.Plus(Pt{int64(x), int64(y)})
			if pos.Y < 0 {
				continue
			}
			Assert(b.InBounds(pos))
			b.Set(pos, p.Grid[y][x])
		}
	}
}

// ClearBlocks finds every 2x2 block of identical digits and empties its
// cells. All matches are found on the board as it was before this call, then
// they are all emptied at once. It returns the number of matched blocks and
// the cells that were emptied, each cell listed once.
func (b *Board) ClearBlocks() (count int64, cleared []Pt) {
	marked := NewMat(b.size)
	for y := int64(0); y < b.size.Y-1; y++ {
		for x := int64(0); x < b.size.X-1; x++ {
			val := b.Get(Pt{x, y})
			if val == Empty {
				continue
			}
			if b.Get(Pt{x + 1, y}) != val ||
				b.Get(Pt{x, y + 1}) != val ||
				b.Get(Pt{x + 1, y + 1}) != val {
				continue
			}
			count++
			// Any non-empty value works as a mark.
			marked.Set(Pt{x, y}, val)
			marked.Set(Pt{x + 1, y}, val)
			marked.Set(Pt{x, y + 1}, val)
			marked.Set(Pt{x + 1, y + 1}, val)
		}
	}

	if count == 0 {
		return
	}

	pos := Pt{}
	for pos.Y = 0; pos.Y < b.size.Y; pos.Y++ {
		for pos.X = 0; pos.X < b.size.X; pos.X++ {
			if marked.Get(pos) != Empty {
				b.Set(pos, Empty)
				cleared = append(cleared, pos)
			}
		}
	}
	return
}

// ApplyGravity makes every column fall down, independently of the other
// columns. The order of the cells in a column is preserved.
func (b *Board) ApplyGravity() {
	for x := int64(0); x < b.size.X; x++ {
		// Walk up from the floor and move each cell to the lowest free row.
		free := b.size.Y - 1
		for y := b.size.Y - 1; y >= 0; y-- {
			val := b.Get(Pt{x, y})
			if val == Empty {
				continue
			}
			if y != free {
				b.Set(Pt{x, free}, val)
				b.Set(Pt{x, y}, Empty)
			}
			free--
		}
	}
}

// ClearCascade clears blocks, lets the board fall and repeats until a pass
// finds no more blocks. It returns the total number of blocks cleared over
// all passes and every cell emptied along the way.
// The loop always ends: each pass that continues it empties at least 4
// cells and nothing ever adds cells.
func (b *Board) ClearCascade() (count int64, cleared []Pt) {
	for {
		n, pts := b.ClearBlocks()
		if n == 0 {
			return
		}
		count += n
		cleared = append(cleared, pts...)
		b.ApplyGravity()
	}
}

func (b *Board) NOccupied() (n int64) {
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return
}

// String shows the board one row per line, with '.' for empty cells.
func (b *Board) String() string {
	s := make([]byte, 0, (b.size.X+1)*b.size.Y)
	pos := Pt{}
	for pos.Y = 0; pos.Y < b.size.Y; pos.Y++ {
		for pos.X = 0; pos.X < b.size.X; pos.X++ {
			s = append(s, b.Get(pos).String()...)
		}
		s = append(s, '\n')
	}
	return string(s)
}

// SetCells overwrites the whole board with cells given row by row.
func (b *Board) SetCells(cells []Cell) {
	if int64(len(cells)) != b.size.X*b.size.Y {
		Check(fmt.Errorf("expected %d cells, got %d",
			b.size.X*b.size.Y, len(cells)))
		return
	}
	for _, c := range cells {
		if !c.Valid() {
			Check(fmt.Errorf("invalid cell value: %d", c))
			return
		}
	}
	copy(b.cells, cells)
}

func (b *Board) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// StartedWorld returns a Running world whose board bottom is given by rows.
func StartedWorld(t *testing.T, rows ...string) World {
	w := NewWorld(0)
	if len(rows) > 0 {
		s := Scenario{Rows: rows}
		w.Board.SetCells(s.Cells())
	}
	w.Step(PlayerInput{Start: true})
	require.Equal(t, Running, w.State)
	return w
}

func TestSession_AddPoints(t *testing.T) {
	s := NewSession()
	assert.Equal(t, Session{Score: 0, Level: 1, Lines: 0, DropIntervalMs: 1000}, s)

	s.AddPoints(450)
	assert.Equal(t, int64(1), s.Level)
	assert.Equal(t, int64(4), s.Lines)
	assert.Equal(t, int64(1000), s.DropIntervalMs)

	s.AddPoints(50)
	assert.Equal(t, int64(500), s.Score)
	assert.Equal(t, int64(2), s.Level)
	assert.Equal(t, int64(5), s.Lines)
	assert.Equal(t, int64(900), s.DropIntervalMs)

	s.AddPoints(500)
	assert.Equal(t, int64(3), s.Level)
	assert.Equal(t, int64(850), s.DropIntervalMs)

	s.AddPoints(100000)
	assert.Equal(t, int64(100), s.DropIntervalMs)
}

func TestWorld_StartFromIdleKeepsScenario(t *testing.T) {
	w := StartedWorld(t, "0.1.......")
	assert.Equal(t, int64(2), w.Board.NOccupied())
	assert.NotNil(t, w.Current)
	assert.NotNil(t, w.Next)
	assert.Equal(t, NewSession(), w.Session)
	assert.True(t, w.Scheduler.Armed)
}

func TestWorld_StartAgainClearsBoard(t *testing.T) {
	w := StartedWorld(t, "0.1.......")
	w.Session.AddPoints(500)
	w.Step(PlayerInput{Start: true})
	assert.Equal(t, Running, w.State)
	assert.Equal(t, int64(0), w.Board.NOccupied())
	assert.Equal(t, NewSession(), w.Session)
}

func TestWorld_Reset(t *testing.T) {
	w := StartedWorld(t, "0.1.......")
	w.Step(PlayerInput{Reset: true})
	assert.Equal(t, Idle, w.State)
	assert.Equal(t, int64(0), w.Board.NOccupied())
	assert.Nil(t, w.Current)
	assert.Nil(t, w.Next)
	assert.False(t, w.Scheduler.Armed)
}

func TestWorld_IdleIgnoresMoves(t *testing.T) {
	w := NewWorld(0)
	w.Step(PlayerInput{Move: 1, Rotate: 1, SoftDrop: true, HardDrop: true,
		Swap: true, TogglePause: true})
	assert.Equal(t, Idle, w.State)
	assert.Nil(t, w.Current)
	assert.Equal(t, int64(0), w.Board.NOccupied())
}

func TestWorld_MoveStopsAtWalls(t *testing.T) {
	w := StartedWorld(t)
	o := NewPiece(3, []Cell{Zero, One, One, Zero})
	w.Current = &o

	for range 10 {
		w.Move(-1)
	}
	assert.Equal(t, Pt{0, 0}, w.Current.Pos)
	for range 10 {
		w.Move(1)
	}
	assert.Equal(t, Pt{8, 0}, w.Current.Pos)
}

func TestWorld_HardDropLandsOnFloor(t *testing.T) {
	w := StartedWorld(t)
	o := NewPiece(3, []Cell{Zero, One, One, Zero})
	o.Pos = Pt{3, 0}
	w.Current = &o
	next := w.Next

	w.HardDrop()
	assert.Equal(t, Zero, w.Board.Get(Pt{3, 18}))
	assert.Equal(t, One, w.Board.Get(Pt{4, 18}))
	assert.Equal(t, One, w.Board.Get(Pt{3, 19}))
	assert.Equal(t, Zero, w.Board.Get(Pt{4, 19}))
	assert.Equal(t, int64(4), w.Board.NOccupied())
	assert.Equal(t, int64(0), w.Session.Score)

	// The next piece came in and a new one is waiting.
	assert.Same(t, next, w.Current)
	assert.NotSame(t, next, w.Next)
}

func TestWorld_SoftDrop(t *testing.T) {
	w := StartedWorld(t)
	o := NewPiece(3, []Cell{Zero, One, One, Zero})
	w.Current = &o

	for range 18 {
		assert.Equal(t, DropMoved, w.SoftDrop())
	}
	assert.Equal(t, int64(18), o.Pos.Y)
	assert.Equal(t, DropLocked, w.SoftDrop())
	assert.Equal(t, int64(4), w.Board.NOccupied())
}

func TestWorld_CascadeScores(t *testing.T) {
	scenario := LoadScenario(&embeddedFiles, "data/scenarios/cascade.yaml")
	w := NewWorld(0)
	w.Board.SetCells(scenario.Cells())
	w.Step(PlayerInput{Start: true})

	o := NewPiece(3, SameVals(4, Zero))
	o.Pos = Pt{5, 0}
	w.Current = &o
	w.Step(PlayerInput{HardDrop: true})

	// Two blocks of 0s, then one block of 1s after gravity.
	assert.Equal(t, int64(150), w.Session.Score)
	assert.Equal(t, int64(1), w.Session.Lines)
	assert.Equal(t, 10, len(w.JustCleared))
	assert.Equal(t, int64(0), w.Board.NOccupied())

	// JustCleared only lasts one step.
	w.Step(PlayerInput{})
	assert.Empty(t, w.JustCleared)
}

func TestWorld_SeparateMatchesAddUp(t *testing.T) {
	w := StartedWorld(t, "0011......")
	i := NewPiece(0, []Cell{Zero, Zero, One, One})
	i.Pos = Pt{0, 0}
	w.Current = &i
	w.HardDrop()
	assert.Equal(t, int64(100), w.Session.Score)
	assert.Equal(t, int64(0), w.Board.NOccupied())
}

func TestWorld_GameOverOnSpawn(t *testing.T) {
	w := NewWorld(0)
	for x := range NCols {
		w.Board.Set(Pt{x, 0}, Cell(x%2+1))
	}
	before := w.Board.Cells()

	w.Step(PlayerInput{Start: true})
	assert.Equal(t, GameOver, w.State)
	assert.True(t, w.JustEnded)
	assert.False(t, w.Scheduler.Armed)
	assert.Equal(t, before, w.Board.Cells())

	// Nothing moves after the game is over.
	pos := w.Current.Pos
	w.Step(PlayerInput{TimeMs: 5000, Move: 1, SoftDrop: true})
	assert.Equal(t, pos, w.Current.Pos)
	assert.False(t, w.JustEnded)
	assert.Equal(t, before, w.Board.Cells())

	// Pausing is ignored too.
	w.Step(PlayerInput{TogglePause: true})
	assert.Equal(t, GameOver, w.State)
}

func TestWorld_RotateRejected(t *testing.T) {
	w := StartedWorld(t)
	i := NewPiece(0, []Cell{Zero, Zero, One, One})
	i.Pos = Pt{3, 19}
	w.Current = &i

	w.Rotate(1)
	assert.Equal(t, [][]Cell{{Zero, Zero, One, One}}, w.Current.Grid)
	assert.Equal(t, Pt{3, 19}, w.Current.Pos)
}

func TestWorld_RotateAccepted(t *testing.T) {
	w := StartedWorld(t)
	i := NewPiece(0, []Cell{Zero, Zero, One, One})
	i.Pos = Pt{3, 5}
	w.Current = &i

	w.Step(PlayerInput{Rotate: -1})
	assert.Equal(t, [][]Cell{{One}, {One}, {Zero}, {Zero}}, w.Current.Grid)
	assert.Equal(t, Pt{3, 5}, w.Current.Pos)
}

func TestWorld_Swap(t *testing.T) {
	w := StartedWorld(t)
	o := NewPiece(3, []Cell{Zero, One, One, Zero})
	w.Current = &o
	before := w.Board.Cells()

	assert.True(t, w.SwapValues())
	assert.Equal(t, [][]Cell{{One, Zero}, {Zero, One}}, w.Current.Grid)
	assert.Equal(t, before, w.Board.Cells())

	w.Step(PlayerInput{TogglePause: true})
	assert.False(t, w.SwapValues())
	assert.Equal(t, [][]Cell{{One, Zero}, {Zero, One}}, w.Current.Grid)
}

func TestWorld_PauseFreezesPiece(t *testing.T) {
	w := StartedWorld(t)
	pos := w.Current.Pos

	w.Step(PlayerInput{TimeMs: 100, TogglePause: true})
	assert.Equal(t, Paused, w.State)

	w.Step(PlayerInput{TimeMs: 5000, Move: -1, Rotate: 1, SoftDrop: true,
		HardDrop: true})
	assert.Equal(t, pos, w.Current.Pos)
	assert.Equal(t, DropNone, w.SoftDrop())

	w.Step(PlayerInput{TimeMs: 6000, TogglePause: true})
	assert.Equal(t, Running, w.State)
}

func TestWorld_SchedulerDropsOnTime(t *testing.T) {
	w := StartedWorld(t)
	y := w.Current.Pos.Y

	w.Step(PlayerInput{TimeMs: 1000})
	assert.Equal(t, y, w.Current.Pos.Y)
	w.Step(PlayerInput{TimeMs: 1001})
	assert.Equal(t, y+1, w.Current.Pos.Y)
	w.Step(PlayerInput{TimeMs: 2001})
	assert.Equal(t, y+1, w.Current.Pos.Y)
	w.Step(PlayerInput{TimeMs: 2002})
	assert.Equal(t, y+2, w.Current.Pos.Y)

	// Time spent paused doesn't count towards the next drop.
	w.Step(PlayerInput{TimeMs: 2500, TogglePause: true})
	w.Step(PlayerInput{TimeMs: 9000})
	assert.Equal(t, y+2, w.Current.Pos.Y)
	w.Step(PlayerInput{TimeMs: 10000, TogglePause: true})
	w.Step(PlayerInput{TimeMs: 10900})
	assert.Equal(t, y+2, w.Current.Pos.Y)
	w.Step(PlayerInput{TimeMs: 11001})
	assert.Equal(t, y+3, w.Current.Pos.Y)
}

func TestWorld_SchedulerFollowsLevel(t *testing.T) {
	w := StartedWorld(t)
	w.Session.AddPoints(500)
	y := w.Current.Pos.Y

	w.Step(PlayerInput{TimeMs: 900})
	assert.Equal(t, y, w.Current.Pos.Y)
	w.Step(PlayerInput{TimeMs: 901})
	assert.Equal(t, y+1, w.Current.Pos.Y)
}

func TestWorld_Snapshot(t *testing.T) {
	w := StartedWorld(t, "0.1.......")
	s := w.Snapshot()
	assert.Equal(t, Zero, s.Board[NRows-1][0])
	assert.Equal(t, Running, s.State)
	assert.False(t, s.Paused)
	assert.False(t, s.GameOver)

	// Changing the snapshot doesn't change the world.
	s.Board[NRows-1][0] = One
	s.Current.Pos.Add(Pt{1, 0})
	assert.Equal(t, Zero, w.Board.Get(Pt{0, NRows - 1}))
	assert.NotEqual(t, s.Current.Pos, w.Current.Pos)
}

func TestWorld_GhostPos(t *testing.T) {
	w := StartedWorld(t, "....1.....")
	o := NewPiece(3, []Cell{Zero, One, One, Zero})
	o.Pos = Pt{3, 0}
	w.Current = &o
	assert.Equal(t, Pt{3, 17}, w.GhostPos())
}

func TestPlayerInput_EventOccurred(t *testing.T) {
	var input PlayerInput
	assert.False(t, input.EventOccurred())
	input.TimeMs = 300
	assert.False(t, input.EventOccurred())
	input.Move = -1
	assert.True(t, input.EventOccurred())
	input = PlayerInput{Swap: true}
	assert.True(t, input.EventOccurred())
}

func TestNewWorldFromPlaythrough_WrongVersion(t *testing.T) {
	p := NewPlaythrough(0)
	p.SimulationVersion = SimulationVersion + 1
	assert.Panics(t, func() { NewWorldFromPlaythrough(p) })
}

func TestScenario_Cells(t *testing.T) {
	s := Scenario{Rows: []string{"0.1......."}}
	cells := s.Cells()
	require.Equal(t, int(NCols*NRows), len(cells))
	last := cells[(NRows-1)*NCols:]
	assert.Equal(t, []Cell{Zero, Empty, One}, last[:3])

	s = Scenario{Rows: []string{"0.x......."}}
	assert.Panics(t, func() { s.Cells() })
	s = Scenario{Rows: []string{"0.1"}}
	assert.Panics(t, func() { s.Cells() })
}

func TestUserData_RecordScore(t *testing.T) {
	var u UserData
	assert.True(t, u.RecordScore(100))
	assert.Equal(t, int64(100), u.BestScore)
	assert.False(t, u.RecordScore(50))
	assert.False(t, u.RecordScore(100))
	assert.Equal(t, int64(100), u.BestScore)
	assert.True(t, u.RecordScore(150))
	assert.Equal(t, int64(150), u.BestScore)
}

package main

import (
	"fmt"
)

// SimulationVersion identifies the rules of the World. A playthrough can only
// be replayed by a World with the same SimulationVersion, because any change
// in the rules changes what the same inputs produce.
const SimulationVersion = 1

// World rules
// - A session starts Idle. Start() clears the board, resets the session and
// spawns a piece, with another one waiting as the next piece.
// - The player moves, rotates, drops and swaps the digits of the current
// piece. Rotation has no wall kicks: if the rotated piece doesn't fit where
// it is, nothing happens.
// - When the piece can't go down anymore it locks into the board, blocks
// clear in cascade, the score goes up by 50 for each block and the next
// piece comes in.
// - If the new piece already overlaps something, the game is over.
// - While Paused or GameOver, the piece can't be touched and time doesn't
// make it fall.

type WorldState int64

const (
	Idle WorldState = iota
	Running
	Paused
	GameOver
)

func (s WorldState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("WorldState(%d)", int64(s))
	}
}

type DropResult int64

const (
	DropNone DropResult = iota
	DropMoved
	DropLocked
)

const PointsPerBlock = int64(50)
const PointsPerLevel = int64(500)
const PointsPerLine = int64(100)
const InitialDropIntervalMs = int64(1000)
const MinDropIntervalMs = int64(100)
const DropIntervalStepMs = int64(50)

// Session holds the numbers of one game. Everything except the score is
// derived from the score.
type Session struct {
	Score          int64
	Level          int64
	Lines          int64
	DropIntervalMs int64
}

func NewSession() Session {
	return Session{
		Score:          0,
		Level:          1,
		Lines:          0,
		DropIntervalMs: InitialDropIntervalMs,
	}
}

// AddPoints adds to the score and updates what depends on it. Level and
// lines only ever go up.
func (s *Session) AddPoints(points int64) {
	s.Score += points
	level := s.Score/PointsPerLevel + 1
	if level > s.Level {
		s.Level = level
		s.DropIntervalMs = max(MinDropIntervalMs,
			InitialDropIntervalMs-s.Level*DropIntervalStepMs)
	}
	lines := s.Score / PointsPerLine
	if lines > s.Lines {
		s.Lines = lines
	}
}

// PlayerInput is everything the player can ask for in one frame, plus the
// reading of the monotonic clock at that frame. Recording these is enough to
// replay a game.
// Every field has a fixed size so that a slice of PlayerInput can be
// serialized directly.
type PlayerInput struct {
	TimeMs      int64
	Move        int8 // -1 left, 1 right
	Rotate      int8 // -1 counter-clockwise, 1 clockwise
	SoftDrop    bool
	HardDrop    bool
	Swap        bool
	TogglePause bool
	Start       bool
	Reset       bool
}

func (p *PlayerInput) EventOccurred() bool {
	return p.Move != 0 ||
		p.Rotate != 0 ||
		p.SoftDrop ||
		p.HardDrop ||
		p.Swap ||
		p.TogglePause ||
		p.Start ||
		p.Reset
}

type World struct {
	Board     Board
	Current   *Piece
	Next      *Piece
	Session   Session
	State     WorldState
	Rand      Rand
	Scheduler Scheduler
	// NowMs is the time of the last Step.
	NowMs int64
	// JustCleared lists the cells emptied by the last Step, so the GUI can
	// show some effect on them.
	JustCleared []Pt
	// JustEnded is true only for the Step during which the game was lost.
	JustEnded bool
}

func NewWorld(seed int64) (w World) {
	w.Board = NewBoard()
	w.Session = NewSession()
	w.State = Idle
	w.Rand = NewRand(seed)
	return
}

func NewWorldFromPlaythrough(p Playthrough) (w World) {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't play this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d",
			SimulationVersion, p.SimulationVersion))
	}
	w = NewWorld(p.Seed)
	if len(p.InitialBoard) > 0 {
		w.Board.SetCells(p.InitialBoard)
	}
	return
}

// Step applies one frame of input and then lets time pass.
func (w *World) Step(input PlayerInput) {
	w.NowMs = input.TimeMs
	w.JustCleared = w.JustCleared[:0]
	w.JustEnded = false

	if input.Reset {
		w.Reset()
	}
	if input.Start {
		w.Start()
	}
	if input.TogglePause {
		w.TogglePause()
	}
	if input.Move != 0 {
		w.Move(int64(input.Move))
	}
	if input.Rotate != 0 {
		w.Rotate(int64(input.Rotate))
	}
	if input.Swap {
		w.SwapValues()
	}
	if input.SoftDrop {
		w.SoftDrop()
	}
	if input.HardDrop {
		w.HardDrop()
	}

	w.Scheduler.Tick(w, w.NowMs)
}

// Start begins a new session from any state. The board keeps whatever it
// has only if it was prepared by a scenario before the first start.
func (w *World) Start() {
	w.Scheduler.Cancel()
	if w.State != Idle {
		w.Board.Clear()
	}
	w.Session = NewSession()
	w.Current = nil
	next := NewRandomPiece(&w.Rand)
	w.Next = &next
	w.State = Running
	w.SpawnNext()
	if w.State == Running {
		w.Scheduler.Arm(w.NowMs)
	}
}

// Reset abandons the session and goes back to Idle with an empty board.
func (w *World) Reset() {
	w.Scheduler.Cancel()
	w.Board.Clear()
	w.Session = NewSession()
	w.Current = nil
	w.Next = nil
	w.State = Idle
}

// SpawnNext makes the next piece current and prepares a new next piece. If
// the new current piece already collides, the game is over. The board is
// not touched either way.
func (w *World) SpawnNext() {
	if w.Next == nil {
		return
	}
	w.Current = w.Next
	next := NewRandomPiece(&w.Rand)
	w.Next = &next

	if w.Board.IsCollision(w.Current, Pt{}, nil) {
		w.endGame()
	}
}

func (w *World) endGame() {
	w.State = GameOver
	w.JustEnded = true
	w.Scheduler.Cancel()
}

func (w *World) acceptsMoves() bool {
	return w.State == Running && w.Current != nil
}

func (w *World) Move(direction int64) {
	if !w.acceptsMoves() {
		return
	}
	offset := Pt{direction, 0}
	if !w.Board.IsCollision(w.Current, offset, nil) {
		w.Current.Pos.Add(offset)
	}
}

func (w *World) Rotate(direction int64) {
	if !w.acceptsMoves() {
		return
	}
	rotated := w.Current.Rotated(direction)
	if !w.Board.IsCollision(w.Current, Pt{}, rotated) {
		w.Current.Grid = rotated
	}
}

// SoftDrop moves the piece down one row or, if it can't go down, locks it.
func (w *World) SoftDrop() DropResult {
	if !w.acceptsMoves() {
		return DropNone
	}
	down := Pt{0, 1}
	if !w.Board.IsCollision(w.Current, down, nil) {
		w.Current.Pos.Add(down)
		return DropMoved
	}
	w.lockCurrent()
	return DropLocked
}

// HardDrop drops the piece all the way and locks it.
func (w *World) HardDrop() {
	for w.SoftDrop() == DropMoved {
	}
}

func (w *World) lockCurrent() {
	w.Board.Lock(w.Current)
	count, cleared := w.Board.ClearCascade()
	w.JustCleared = append(w.JustCleared, cleared...)
	if count > 0 {
		w.Session.AddPoints(count * PointsPerBlock)
	}
	w.SpawnNext()
	w.Scheduler.Rebase(w.NowMs)
}

// SwapValues turns the 0s of the current piece into 1s and the other way
// around. The board is not affected.
func (w *World) SwapValues() bool {
	if !w.acceptsMoves() {
		return false
	}
	w.Current.SwapValues()
	return true
}

// TogglePause pauses a running game or resumes a paused one. Resuming
// restarts the drop timer so the piece doesn't fall the instant the game
// continues.
func (w *World) TogglePause() {
	switch w.State {
	case Running:
		w.State = Paused
		w.Scheduler.Cancel()
	case Paused:
		w.State = Running
		w.Scheduler.Arm(w.NowMs)
	default:
	}
}

package main

// Snapshot is what the presentation layer is allowed to know about the World.
// It is a copy: drawing from it can't change the World, and the World can
// keep changing while an old Snapshot is still in use.
type Snapshot struct {
	Board    [][]Cell
	Current  *Piece
	Next     *Piece
	Score    int64
	Level    int64
	Lines    int64
	State    WorldState
	Paused   bool
	GameOver bool
}

func (w *World) Snapshot() (s Snapshot) {
	s.Board = w.Board.Rows()
	if w.Current != nil {
		c := w.Current.Clone()
		s.Current = &c
	}
	if w.Next != nil {
		n := w.Next.Clone()
		s.Next = &n
	}
	s.Score = w.Session.Score
	s.Level = w.Session.Level
	s.Lines = w.Session.Lines
	s.State = w.State
	s.Paused = w.State == Paused
	s.GameOver = w.State == GameOver
	return
}

// GhostPos returns where the current piece would land if hard dropped.
func (w *World) GhostPos() Pt {
	if w.Current == nil {
		return Pt{}
	}
	offset := Pt{}
	for !w.Board.IsCollision(w.Current, offset.Plus(Pt{0, 1}), nil) {
		offset.Y++
	}
	return w.Current.Pos.Plus(offset)
}

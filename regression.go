package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same State() they
// are considered "the same", even though they may be implemented differently.
func (w *World) StateBytes() []byte {
	// The world is "the same" if it has:
	// - the same cells on the board
	// - the same current and next piece, at the same position, with the same
	// digits
	// - the same score and the same state
	//
	// I follow what the GUI shows as a sanity check that I'm including
	// everything that matters, but this is my own definition. Level, lines and
	// the drop interval are left out because they follow from the score. The
	// scheduler's baseline is left out because its effect shows up in the
	// position of the current piece soon enough.
	buf := new(bytes.Buffer)
	SerializeSlice(buf, w.Board.Cells())
	serializePiece(buf, w.Current)
	serializePiece(buf, w.Next)
	Serialize(buf, w.Session.Score)
	Serialize(buf, w.State)
	return buf.Bytes()
}

func serializePiece(buf *bytes.Buffer, p *Piece) {
	if p == nil {
		Serialize(buf, false)
		return
	}
	Serialize(buf, true)
	Serialize(buf, p.Kind)
	Serialize(buf, p.Pos)
	for _, row := range p.Grid {
		SerializeSlice(buf, row)
	}
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough. It uses the exact same
// seed and player inputs, but the new World implementation.
// - If the RegressionId hasn't changed, the refactoring of World did not alter
// the playthrough.
// - If the RegressionId has changed, something in the refactoring is now
// causing the play experience to be different.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}

package main

// FlashNFrames is how long a cleared cell keeps flashing, in frames. The
// Update() method runs at 60 FPS (ebitengine's default).
const FlashNFrames = int64(20)

// Flash is a short effect on a cell that was just cleared. It doesn't
// represent anything in the World, it only fades out where something was.
type Flash struct {
	Pos         Pt
	NFramesLeft int64
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects. Draw() relies
// on the information in VisWorld to draw things, just like it relies on
// World.
//
// VisWorld is meant to be updated right after World, in the Update()
// function.
type VisWorld struct {
	Flashes []Flash
}

func (v *VisWorld) Step(w *World) {
	// Step existing flashes and filter out the ones that are done.
	n := 0
	for i := range v.Flashes {
		v.Flashes[i].NFramesLeft--
		if v.Flashes[i].NFramesLeft > 0 {
			v.Flashes[n] = v.Flashes[i]
			n++
		}
	}
	v.Flashes = v.Flashes[:n]

	// Create new flashes if necessary.
	for _, pos := range w.JustCleared {
		v.Flashes = append(v.Flashes, Flash{Pos: pos, NFramesLeft: FlashNFrames})
	}
}

// Reset drops all ongoing effects, for when the World jumps to another frame.
func (v *VisWorld) Reset() {
	v.Flashes = v.Flashes[:0]
}

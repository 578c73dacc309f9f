package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"slices"
	"time"
)

// Holding left or right moves the piece once, then again after
// KeyRepeatDelay frames, then every KeyRepeatInterval frames.
const KeyRepeatDelay = 12
const KeyRepeatInterval = 4

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
	}

	switch g.mode {
	case PlayMode:
		g.UpdatePlay()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	g.visWorld.Step(&g.world)
	return nil
}

// GetPlayerInput translates this frame's keys and clicks into a PlayerInput.
func (g *Gui) GetPlayerInput() (input PlayerInput) {
	input.TimeMs = time.Since(g.clockStart).Milliseconds()

	if g.Repeating(ebiten.KeyLeft) {
		input.Move--
	}
	if g.Repeating(ebiten.KeyRight) {
		input.Move++
	}
	if g.JustPressed(ebiten.KeyUp) || g.JustPressed(ebiten.KeyX) {
		input.Rotate = 1
	}
	if g.JustPressed(ebiten.KeyZ) || g.JustPressed(ebiten.KeyControl) {
		input.Rotate = -1
	}
	input.SoftDrop = g.Repeating(ebiten.KeyDown)
	input.HardDrop = g.JustPressed(ebiten.KeySpace)
	input.Swap = g.JustPressed(ebiten.KeyB)
	input.TogglePause = g.JustPressed(ebiten.KeyP) ||
		g.JustPressed(ebiten.KeyEscape)
	input.Start = g.JustPressed(ebiten.KeyEnter)
	input.Reset = g.JustPressed(ebiten.KeyR)

	// The start button doubles as the pause button while a game is going on.
	if g.JustClicked(startButton) {
		if g.world.State == Idle || g.world.State == GameOver {
			input.Start = true
		} else {
			input.TogglePause = true
		}
	}
	if g.JustClicked(resetButton) {
		input.Reset = true
	}
	return
}

func (g *Gui) UpdatePlay() {
	input := g.GetPlayerInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.world.Step(input)
	g.frameIdx++

	if g.world.JustEnded {
		g.GameEnded()
	}
}

// GameEnded keeps the best score and hands the playthrough to the uploader.
// Neither channel is allowed to block the game.
func (g *Gui) GameEnded() {
	if g.UserData.RecordScore(g.world.Session.Score) {
		SaveLocalUserData(g.username, g.UserData)
		select {
		case g.uploadUserDataChannel <- g.UserData:
		default:
		}
	}

	p := g.playthrough.Clone()
	select {
	case g.uploadPlaythroughChannel <- p:
	default:
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// Repeating is true on the frame the key goes down and then periodically
// while it is held.
func (g *Gui) Repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= KeyRepeatDelay && (d-KeyRepeatDelay)%KeyRepeatInterval == 0
}

func (g *Gui) cursorPos() Pt {
	x, y := ebiten.CursorPosition()
	return Pt{int64(x), int64(y)}
}

// JustClicked checks a button that lives in the game area.
func (g *Gui) JustClicked(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(g.ScreenToGame(g.cursorPos()))
}

// JustClickedDebug checks a button that lives in the debug area.
func (g *Gui) JustClickedDebug(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(g.ScreenToDebug(g.cursorPos()))
}

func (g *Gui) LeftClickPressedOnDebug(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	return button.ContainsPt(g.ScreenToDebug(g.cursorPos()))
}

// ReplayUntil rebuilds the World from the start of the playthrough and
// runs it up to, but not including, frame frameIdx.
func (g *Gui) ReplayUntil(frameIdx int64) {
	g.world = NewWorldFromPlaythrough(g.playthrough)
	for i := range frameIdx {
		g.world.Step(g.playthrough.History[i])
	}
	g.visWorld.Reset()
	g.frameIdx = frameIdx
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClickedDebug(debugPlayButton)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOnDebug(debugPlayBar) {
		dx := g.ScreenToDebug(g.cursorPos()).X - debugPlayBar.Min.X
		targetFrameIdx = dx * nFrames / debugPlayBar.Width()
	}

	altPressed := g.Pressed(ebiten.KeyAlt)
	shiftPressed := g.Pressed(ebiten.KeyShift)
	if g.JustPressed(ebiten.KeyLeft) && altPressed {
		targetFrameIdx -= g.FrameSkipAltArrow
	}
	if g.JustPressed(ebiten.KeyRight) && altPressed {
		targetFrameIdx += g.FrameSkipAltArrow
	}
	if g.Pressed(ebiten.KeyLeft) && shiftPressed {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyRight) && shiftPressed {
		targetFrameIdx += g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyLeft) && !shiftPressed && !altPressed {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}
	if g.Pressed(ebiten.KeyRight) && !shiftPressed && !altPressed {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames-1))
	if targetFrameIdx != g.frameIdx {
		// Rewind and replay.
		g.ReplayUntil(targetFrameIdx)
	}

	if !g.playbackPaused {
		g.world.Step(g.playthrough.History[g.frameIdx])
		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Don't do anything, wait for the player to press a key.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Skip the frames where the player did nothing.
	if g.JustPressed(ebiten.KeyE) {
		for g.frameIdx < nFrames {
			input := g.playthrough.History[g.frameIdx]
			g.world.Step(input)
			g.frameIdx++
			if input.EventOccurred() {
				break
			}
		}
	}

	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		// I have no better way to go to the previous frame than redoing all the
		// frames from the beginning.
		g.ReplayUntil(g.frameIdx - 1)
	}
}

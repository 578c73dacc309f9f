package main

import "github.com/hajimehoshi/ebiten/v2"

// Visual areas
// ------------
//
// - The play area: where the board is drawn. Has a fixed size, known at
// compile time.
// - The side panel: right of the play area. Next piece, score, level, lines,
// best score and the start/pause and reset buttons.
// - The game area: contains the two above. Has a fixed size, known at compile
// time.
// - The debug area: a strip under the game area with the playback controls.
// Only shown in Playback and DebugCrash modes.
// - The screen: contains the game area, the debug area if it is displayed and
// any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const CellPixelSize = int64(60)
const PlayAreaWidth = NCols * CellPixelSize
const PlayAreaHeight = NRows * CellPixelSize
const PlayMarginLeft = int64(40)
const PlayMarginUp = int64(40)
const PlayMarginDown = int64(40)
const SidePanelWidth = int64(420)
const GameWidth = PlayMarginLeft + PlayAreaWidth + SidePanelWidth
const GameHeight = PlayMarginUp + PlayAreaHeight + PlayMarginDown
const DebugHeight = int64(100)
const PreviewCellPixelSize = int64(45)

// The areas below are all relative to the game area and known at compile
// time.
var playArea = NewRectangleI(PlayMarginLeft, PlayMarginUp, PlayAreaWidth,
	PlayAreaHeight)
var sidePanel = NewRectangleI(playArea.Max.X+40, PlayMarginUp,
	SidePanelWidth-80, PlayAreaHeight)
var nextPieceArea = NewRectangleI(sidePanel.Min.X, sidePanel.Min.Y+60,
	4*PreviewCellPixelSize, 4*PreviewCellPixelSize)
var scoreArea = NewRectangleI(sidePanel.Min.X, nextPieceArea.Max.Y+40,
	sidePanel.Width(), 60)
var levelArea = scoreArea.Translated(Pt{0, 100})
var linesArea = levelArea.Translated(Pt{0, 100})
var bestArea = linesArea.Translated(Pt{0, 100})
var startButton = NewRectangleI(sidePanel.Min.X, sidePanel.Max.Y-260,
	sidePanel.Width(), 100)
var resetButton = startButton.Translated(Pt{0, 140})

// The areas below are relative to the debug area and are known at compile
// time.
var debugPlayButton = NewRectangleI(0, 0, DebugHeight, DebugHeight)
var debugPlayBar = NewRectangleI(DebugHeight+10, 0, GameWidth-DebugHeight-20,
	DebugHeight)

// CellRect is where the board cell at pos is drawn, relative to the game area.
func CellRect(pos Pt) Rectangle {
	return NewRectangleI(
		playArea.Min.X+pos.X*CellPixelSize,
		playArea.Min.Y+pos.Y*CellPixelSize,
		CellPixelSize,
		CellPixelSize)
}

func (g *Gui) adjustedGameHeight() int64 {
	if g.enableDebugAreas {
		return GameHeight + DebugHeight
	}
	return GameHeight
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window. Ebitengine scales that
	// bitmap to fit the window, preserving its aspect ratio.
	//
	// What I want:
	// - Cover the entire window with some background.
	// - Have a game area of fixed size that I can reason about easily, no
	// matter the aspect ratio or the resolution of the user's screen.
	//
	// Solution: give the screen bitmap the aspect ratio of the window, and make
	// it just large enough for the game area (plus the debug area, if enabled)
	// to fit. Then either the widths or the heights match.
	gameWidth := GameWidth
	gameHeight := g.adjustedGameHeight()
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(gameWidth)
		// screenAspectRatio = screenWidth / screenHeight, which means:
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(gameHeight)
		// screenAspectRatio = screenWidth / screenHeight, which means:
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Store these values in Gui so that Update() can use them as well,
	// otherwise only Draw() will have access to them via the size of the
	// screen parameter it receives.
	g.screenWidth = int64(screenWidth)
	g.screenHeight = int64(screenHeight)
	g.gameAreaOrigin.X = (g.screenWidth - gameWidth) / 2
	g.gameAreaOrigin.Y = (g.screenHeight - gameHeight) / 2
	return
}

func (g *Gui) ScreenToGame(pt Pt) Pt {
	return pt.Minus(g.gameAreaOrigin)
}

func (g *Gui) ScreenToDebug(pt Pt) Pt {
	return pt.Minus(g.gameAreaOrigin).Minus(Pt{0, GameHeight})
}

func (g *Gui) UpdateWindowSize() {
	// The board is tall, so use most of a typical 1080p screen's height and
	// keep the aspect ratio of the game area.
	height := int64(900)
	width := height * GameWidth / g.adjustedGameHeight()
	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Binary Tetris")
}

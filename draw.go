package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"image/color"
)

var colorBackground = color.NRGBA{R: 0x1A, G: 0x1B, B: 0x26, A: 0xFF}
var colorScreenMargin = color.NRGBA{R: 0x10, G: 0x11, B: 0x18, A: 0xFF}
var colorPlayArea = color.NRGBA{R: 0x24, G: 0x28, B: 0x3B, A: 0xFF}
var colorGrid = color.NRGBA{R: 0x2F, G: 0x33, B: 0x4D, A: 0xFF}
var colorZero = color.NRGBA{R: 0xF7, G: 0x76, B: 0x8E, A: 0xFF}
var colorOne = color.NRGBA{R: 0x7D, G: 0xCF, B: 0xFF, A: 0xFF}
var colorDigit = color.NRGBA{R: 0x1A, G: 0x1B, B: 0x26, A: 0xFF}
var colorText = color.NRGBA{R: 0xC0, G: 0xCA, B: 0xF5, A: 0xFF}
var colorButton = color.NRGBA{R: 0x7A, G: 0xA2, B: 0xF7, A: 0xFF}
var colorGhost = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x28}
var colorOverlay = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xA0}

func cellColor(c Cell) color.NRGBA {
	if c == Zero {
		return colorZero
	}
	return colorOne
}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorScreenMargin)

	game := SubImage(screen, NewRectangleI(
		g.gameAreaOrigin.X,
		g.gameAreaOrigin.Y,
		GameWidth,
		GameHeight))
	game.Fill(colorBackground)

	s := g.world.Snapshot()
	g.DrawBoard(game, &s)
	g.DrawSidePanel(game, &s)
	switch s.State {
	case Idle:
		g.DrawMessage(game, "Press Enter to start")
	case Paused:
		g.DrawMessage(game, "Paused")
	case GameOver:
		g.DrawMessage(game, fmt.Sprintf("Game over - %d", s.Score))
	default:
	}

	if g.enableDebugAreas {
		debug := SubImage(screen, NewRectangleI(
			g.gameAreaOrigin.X,
			g.gameAreaOrigin.Y+GameHeight,
			GameWidth,
			DebugHeight))
		g.DrawDebugControls(debug)
	}
}

func (g *Gui) DrawCell(screen *ebiten.Image, r Rectangle, c Cell) {
	if c == Empty {
		return
	}
	// Leave a thin gap between cells.
	inner := Rectangle{r.Min.Plus(Pt{2, 2}), r.Max.Minus(Pt{2, 2})}
	DrawRect(screen, inner, cellColor(c))
	DrawText(SubImage(screen, inner), g.cellFont, c.String(), true, true,
		colorDigit)
}

func (g *Gui) DrawBoard(screen *ebiten.Image, s *Snapshot) {
	DrawRect(screen, playArea, colorPlayArea)
	for y := int64(0); y < NRows; y++ {
		for x := int64(0); x < NCols; x++ {
			r := CellRect(Pt{x, y})
			DrawRectOutline(screen, r, 1, colorGrid)
			g.DrawCell(screen, r, s.Board[y][x])
		}
	}

	// Flashes on the cells that were just cleared. They go under the
	// current piece.
	for _, f := range g.visWorld.Flashes {
		alpha := uint8(200 * f.NFramesLeft / FlashNFrames)
		DrawRect(screen, CellRect(f.Pos), color.NRGBA{R: 255, G: 255, B: 255,
			A: alpha})
	}

	if s.Current == nil || s.State == Idle {
		return
	}

	// Ghost of where the piece would land.
	if s.State == Running {
		ghost := g.world.GhostPos()
		for y := range s.Current.Grid {
			for x := range s.Current.Grid[y] {
				pos := ghost.Plus(Pt{int64(x), int64(y)})
				if s.Current.Grid[y][x] == Empty || pos.Y < 0 {
					continue
				}
				DrawRect(screen, CellRect(pos), colorGhost)
			}
		}
	}

	for y := range s.Current.Grid {
		for x := range s.Current.Grid[y] {
			pos := s.Current.Pos.Plus(Pt{int64(x), int64(y)})
			// Only draw what is within the visible board.
			if pos.Y < 0 {
				continue
			}
			g.DrawCell(screen, CellRect(pos), s.Current.Grid[y][x])
		}
	}
}

func (g *Gui) DrawSidePanel(screen *ebiten.Image, s *Snapshot) {
	label := NewRectangleI(sidePanel.Min.X, sidePanel.Min.Y, sidePanel.Width(),
		50)
	DrawText(SubImage(screen, label), g.smallFont, "Next", false, false,
		colorText)
	DrawRectOutline(screen, nextPieceArea, 2, colorGrid)
	if s.Next != nil {
		// Center the piece in the preview area.
		size := Pt{s.Next.Width(), s.Next.Height()}.Times(PreviewCellPixelSize)
		origin := nextPieceArea.Center().Minus(size.DivBy(2))
		for y := range s.Next.Grid {
			for x := range s.Next.Grid[y] {
				r := NewRectangleI(
					origin.X+int64(x)*PreviewCellPixelSize,
					origin.Y+int64(y)*PreviewCellPixelSize,
					PreviewCellPixelSize,
					PreviewCellPixelSize)
				g.DrawCell(screen, r, s.Next.Grid[y][x])
			}
		}
	}

	g.DrawValue(screen, scoreArea, "Score", s.Score)
	g.DrawValue(screen, levelArea, "Level", s.Level)
	g.DrawValue(screen, linesArea, "Lines", s.Lines)
	g.DrawValue(screen, bestArea, "Best", g.BestScore)

	startLabel := "Start"
	switch s.State {
	case Running:
		startLabel = "Pause"
	case Paused:
		startLabel = "Resume"
	default:
	}
	g.DrawButton(screen, startButton, startLabel)
	g.DrawButton(screen, resetButton, "Reset")
}

func (g *Gui) DrawValue(screen *ebiten.Image, r Rectangle, label string,
	val int64) {
	DrawText(SubImage(screen, r), g.smallFont,
		fmt.Sprintf("%s: %d", label, val), false, true, colorText)
}

func (g *Gui) DrawButton(screen *ebiten.Image, r Rectangle, label string) {
	DrawRect(screen, r, colorButton)
	DrawText(SubImage(screen, r), g.defaultFont, label, true, true,
		colorBackground)
}

func (g *Gui) DrawMessage(screen *ebiten.Image, message string) {
	banner := NewRectangleI(playArea.Min.X, playArea.Center().Y-80,
		playArea.Width(), 160)
	DrawRect(screen, banner, colorOverlay)
	DrawText(SubImage(screen, banner), g.defaultFont, message, true, true,
		colorText)
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(color.NRGBA{
		R: 200,
		G: 200,
		B: 200,
		A: 255,
	})

	// Play/pause button.
	DrawRect(screen, debugPlayButton, colorButton)
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	DrawText(SubImage(screen, debugPlayButton), g.defaultFont, label,
		true, true, colorBackground)

	// Play bar.
	DrawRect(screen, debugPlayBar, colorPlayArea)

	// Playback bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	cursorX := debugPlayBar.Min.X +
		g.frameIdx*debugPlayBar.Width()/nFrames
	cursor := NewRectangleI(cursorX-5, debugPlayBar.Min.Y, 10,
		debugPlayBar.Height())
	DrawRect(screen, cursor, colorZero)
}

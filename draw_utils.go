package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// DrawRect fills r on screen. r is in the coordinate system of screen, where
// the top-left pixel of screen is (0, 0), even if screen is a sub-image.
func DrawRect(screen *ebiten.Image, r Rectangle, clr color.Color) {
	minPt := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(int64(minPt.X)+r.Min.X),
		float32(int64(minPt.Y)+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		clr,
		false)
}

func DrawRectOutline(screen *ebiten.Image, r Rectangle, width float32,
	clr color.Color) {
	minPt := screen.Bounds().Min
	vector.StrokeRect(screen,
		float32(int64(minPt.X)+r.Min.X),
		float32(int64(minPt.Y)+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		width,
		clr,
		false)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in sub-images, so
	// img2 = img1.SubImage(pt1, pt2) still has pt1 as its top-left pixel. I
	// prefer to think in local coordinates, so translate here.
	minPt := screen.Bounds().Min
	rect := image.Rect(
		minPt.X+int(r.Min.X),
		minPt.Y+int(r.Min.Y),
		minPt.X+int(r.Max.X),
		minPt.Y+int(r.Max.Y))
	return screen.SubImage(rect).(*ebiten.Image)
}

// DrawText writes message inside screen, optionally centered on each axis.
func DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, clr color.Color) {
	// The origin point for the text is kind of the lower-left corner of the
	// bounds of the text. Kind of. If you do text.Draw at (x, y), most of the
	// text will appear above y, and a little bit under y. If you want all the
	// pixels in your text to be above y, you should do text.Draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX - textSize.Min.X
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, face, textX, textY, clr)
}

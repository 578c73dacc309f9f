package main

import (
	"embed"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Config files on disk can be caught halfway through a save by the
	// folder watcher, so keep reading until a read succeeds. The embedded
	// files never change: fail at once there, so that a broken build shows
	// an error in the browser console instead of hanging.
	previousVal := CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.defaultFont = loadFont(44)
	g.smallFont = loadFont(36)
	g.cellFont = loadFont(float64(CellPixelSize) * 0.6)
	g.UpdateWindowSize()
}

func loadFont(size float64) font.Face {
	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	return face
}

package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a native executable or a .wasm in the browser. It is
// meant as a unique label for the functionality that a user/player is
// presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// But it also changes for things that leave the simulation and the input
// format alone: communication with the server enabled or disabled, asserts
// enabled or disabled, graphics changes.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

// GuiMode says where the World's input comes from.
type GuiMode int64

const (
	PlayMode GuiMode = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	UserData
	world                    World
	visWorld                 VisWorld
	FSys                     FS
	folderWatcher            FolderWatcher
	defaultFont              font.Face
	smallFont                font.Face
	cellFont                 font.Face
	playthrough              Playthrough
	frameIdx                 int64
	mode                     GuiMode
	clockStart               time.Time
	playbackPaused           bool
	pressedKeys              []ebiten.Key
	justPressedKeys          []ebiten.Key // keys pressed in this frame
	FrameSkipAltArrow        int64
	FrameSkipShiftArrow      int64
	FrameSkipArrow           int64
	enableDebugAreas         bool
	screenWidth              int64
	screenHeight             int64
	gameAreaOrigin           Pt
	username                 string
	uploadUserDataChannel    chan UserData
	uploadPlaythroughChannel chan *Playthrough
	devModeEnabled           bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadTest      bool   `yaml:"LoadTest"`
	TestFile      string `yaml:"TestFile"`
	// Seed is used instead of a time based seed when it is not 0.
	Seed int64 `yaml:"Seed"`
}

func main() {
	var g Gui
	g.username = getUsername()
	g.UserData = LoadUserData(g.username)
	// A channel size of 10 means the channel will buffer 10 values before it
	// is full. Update() never blocks on these channels, it drops the value
	// instead.
	g.uploadUserDataChannel = make(chan UserData, 10)
	g.uploadPlaythroughChannel = make(chan *Playthrough, 10)
	go UploadUserData(g.username, g.uploadUserDataChannel)
	go UploadPlaythroughs(g.username, g.uploadPlaythroughChannel)
	g.FrameSkipAltArrow = 1
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Let the watcher record the current timestamps so that the first
		// check in Update() doesn't see a change.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.mode = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	} else if g.StartState == "DebugCrash" {
		g.mode = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts: the Step() with the bug can
		// execute and I can see the results visually.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	} else if g.StartState == "Play" {
		g.mode = PlayMode
		seed := g.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.playthrough = NewPlaythrough(seed)
		if g.LoadTest {
			scenario := LoadScenario(g.FSys, g.TestFile)
			g.playthrough.InitialBoard = scenario.Cells()
		}
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.clockStart = time.Now()

	// The last input caused the crash, so run the whole playthrough except the
	// last input. This gives me a chance to see the current state of the world
	// visually, maybe place a breakpoint and inspect the state of the world
	// in the debugger, and then when I'm ready, trigger the bug.
	if g.mode == DebugCrash {
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	err := ebiten.RunGame(&g)
	Check(err)
}

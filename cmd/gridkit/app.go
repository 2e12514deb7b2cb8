package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/audio"
	"github.com/lixenwraith/gridkit/controller"
	"github.com/lixenwraith/gridkit/export"
	"github.com/lixenwraith/gridkit/host"
)

// app routes terminal events to the grid and handles the global keys
type app struct {
	screen    tcell.Screen
	grid      *host.Grid
	player    *audio.Player
	exportDir string
	now       func() time.Time
}

func newApp(screen tcell.Screen, grid *host.Grid, player *audio.Player) *app {
	a := &app{
		screen:    screen,
		grid:      grid,
		player:    player,
		exportDir: ".",
		now:       time.Now,
	}
	grid.OnResize(a.resized)
	return a
}

// resized gives audible and status feedback for a committed size
func (a *app) resized(axis controller.Axis, index, size int, clamped bool) {
	sound := audio.SoundDetent
	if clamped {
		sound = audio.SoundClamp
	}
	a.player.Play(sound)
	a.grid.SetMessage(fmt.Sprintf("%s %d set to %d", axis, index, size))
}

// handleEvent returns false when the application should quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.grid.HandleEvent(ev)
		a.screen.Sync()
	default:
		a.grid.HandleEvent(ev)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if a.grid.Chain().Active() != nil {
			a.grid.Cancel()
			a.player.Play(audio.SoundCancel)
			a.grid.SetMessage("resize cancelled")
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			a.exportSnapshot()
		}
	}
	return true
}

func (a *app) exportSnapshot() {
	name := fmt.Sprintf("gridkit-%s.png", a.now().Format("20060102-150405"))
	path := filepath.Join(a.exportDir, name)
	if err := export.SavePNG(path, a.grid.Columns(), a.grid.Rows(), a.grid.Model(), export.DefaultOptions()); err != nil {
		log.Printf("export: %v", err)
		a.grid.SetMessage(fmt.Sprintf("export failed: %v", err))
		return
	}
	log.Printf("export: wrote %s", path)
	a.grid.SetMessage("exported " + name)
}

// run draws and dispatches events until quit or the event source closes
func (a *app) run(events <-chan tcell.Event) {
	for {
		a.grid.Render()
		ev, ok := <-events
		if !ok || !a.handleEvent(ev) {
			return
		}
	}
}

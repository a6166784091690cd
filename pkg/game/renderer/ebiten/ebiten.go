// Package ebiten shows generated mazes in a window using Ebiten.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/state"
)

// keyActions maps window keys onto the shared input actions
var keyActions = map[ebiten.Key]engineinput.Action{
	ebiten.KeyR:      engineinput.ActionRegenerate,
	ebiten.KeySpace:  engineinput.ActionRegenerate,
	ebiten.KeyEnter:  engineinput.ActionRegenerate,
	ebiten.KeyS:      engineinput.ActionSave,
	ebiten.KeyH:      engineinput.ActionScreenshot,
	ebiten.KeyQ:      engineinput.ActionQuit,
	ebiten.KeyEscape: engineinput.ActionQuit,
}

// View is an ebiten.Game that draws the session's maze and regenerates on demand
type View struct {
	session  *state.Session
	tileSize int
	log      logrus.FieldLogger
}

// New creates a view over a session that already holds a maze
func New(session *state.Session, log logrus.FieldLogger) *View {
	return &View{
		session:  session,
		tileSize: tileSizeFor(session.Maze.Width(), session.Maze.Height()),
		log:      log,
	}
}

// Run opens the window and blocks until it is closed
func (v *View) Run() error {
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(i18n.T("TITLE"))
	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input (Ebiten interface)
func (v *View) Update() error {
	for key, action := range keyActions {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		quit, err := gameplay.ProcessAction(v.session, action, v.log)
		if err != nil {
			return err
		}
		if quit {
			return ebiten.Termination
		}
		if action == engineinput.ActionRegenerate {
			v.session.ClearMessages()
		}
	}
	return nil
}

// status returns the line shown above the maze
func (v *View) status() string {
	if msg := v.session.LastMessage(); msg != "" {
		return msg
	}
	return i18n.T("WINDOW_HINT")
}

// Draw renders the maze to the screen (Ebiten interface).
// Screen columns follow y and screen rows follow x, like the text renderers.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	m := v.session.Maze
	size := float32(v.tileSize)
	m.ForEachCell(func(x, y int, cell world.Cell) {
		vector.DrawFilledRect(screen,
			float32(y)*size+tileMargin, float32(x)*size+tileMargin+hudHeight,
			size-2*tileMargin, size-2*tileMargin,
			colorFor(cell), false)
	})

	ebitenutil.DebugPrint(screen, v.status())
}

// Layout returns the logical screen size (Ebiten interface)
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	m := v.session.Maze
	return m.Height() * v.tileSize, m.Width()*v.tileSize + hudHeight
}

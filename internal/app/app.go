//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"yagol/internal/render"
	"yagol/internal/ui"
	"yagol/pkg/life"
)

// hudWidth is the width of the parameter panel in pixels.
const hudWidth = 220

var actionKeys = []struct {
	key    ebiten.Key
	action ui.Action
}{
	{ebiten.KeySpace, ui.ActionPlay},
	{ebiten.KeyN, ui.ActionStep},
	{ebiten.KeyC, ui.ActionClear},
	{ebiten.KeyR, ui.ActionRandom},
	{ebiten.KeyP, ui.ActionColor},
	{ebiten.KeyS, ui.ActionSpeed},
	{ebiten.KeyL, ui.ActionSize},
	{ebiten.KeyT, ui.ActionTopology},
	{ebiten.KeyQ, ui.ActionQuit},
	{ebiten.KeyEscape, ui.ActionQuit},
}

var speedKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session  *Session
	surface  *WindowSurface
	renderer *render.ScreenRenderer
	bar      *ui.Bar
	hud      *ui.HUD
	showHUD  bool
}

// New constructs a Game for the provided session. surface must be the one
// the session's engine was created with.
func New(session *Session, surface *WindowSurface) *Game {
	layout := session.Engine().Layout()
	return &Game{
		session:  session,
		surface:  surface,
		renderer: render.NewScreenRenderer(layout.CellW, layout.CellH),
		bar:      ui.NewBar(),
		hud:      ui.NewHUD(session, hudWidth),
	}
}

// PointerPosition implements life.PointerSource.
func (g *Game) PointerPosition() (int, int) { return ebiten.CursorPosition() }

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	for _, k := range actionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			if err := g.session.Apply(k.action); err != nil && !errors.Is(err, life.ErrNoSurface) {
				return err
			}
		}
	}
	for i, k := range speedKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.session.Engine().SetSpeed(life.MinSpeed + i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
		if g.showHUD {
			g.surface.ReserveRight(g.hud.Width())
		} else {
			g.surface.ReserveRight(0)
		}
	}

	if err := g.handlePointer(); err != nil {
		return err
	}
	if g.session.Quit() {
		return ebiten.Termination
	}

	if _, err := g.session.Tick(time.Now()); err != nil && !errors.Is(err, life.ErrNoSurface) {
		return err
	}
	layout := g.session.Engine().Layout()
	g.renderer.SetSprites(layout.CellW, layout.CellH)
	g.bar.Layout(g.surface.Height())
	g.bar.SetState(g.session.BarState())
	return nil
}

func (g *Game) handlePointer() error {
	mx, my := ebiten.CursorPosition()
	g.bar.Hover(mx, my)
	if g.showHUD && g.hud.Update(g.surface.Width()-g.hud.Width()) {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !g.bar.Press(mx, my) {
			g.session.Click(mx, my)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if a := g.bar.Release(mx, my); a != ui.ActionNone {
			if err := g.session.Apply(a); err != nil && !errors.Is(err, life.ErrNoSurface) {
				return err
			}
		}
	}
	return nil
}

// Draw renders the grid, the control bar and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.session.Engine().Draw(g.renderer, g, g.session.Highlight())
	g.bar.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.surface.Width()-g.hud.Width(), g.surface.Height())
	}
}

// Layout tracks the window size and keeps a 1:1 logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"yagol/internal/app"
	"yagol/internal/ui"
	"yagol/pkg/life"
)

// frameInterval is how often the terminal is redrawn.
const frameInterval = 25 * time.Millisecond

const hints = "spc play  n step  c clear  r random  p color  s speed  l size  t edges  q quit"

var runeActions = map[rune]ui.Action{
	' ': ui.ActionPlay,
	'n': ui.ActionStep,
	'c': ui.ActionClear,
	'r': ui.ActionRandom,
	'p': ui.ActionColor,
	's': ui.ActionSpeed,
	'l': ui.ActionSize,
	't': ui.ActionTopology,
	'q': ui.ActionQuit,
}

// Host drives a session on a tcell screen. The engine must have been
// created with a Surface wrapping the same screen.
type Host struct {
	screen   tcell.Screen
	session  *app.Session
	renderer *Renderer

	pointerX, pointerY int
	buttons            tcell.ButtonMask
}

// NewHost returns a host for session on screen.
func NewHost(screen tcell.Screen, session *app.Session) *Host {
	return &Host{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen),
		pointerX: -1,
		pointerY: -1,
	}
}

// PointerPosition implements life.PointerSource.
func (h *Host) PointerPosition() (int, int) { return h.pointerX, h.pointerY }

// HandleEvent applies a key, mouse or resize event.
func (h *Host) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		h.pointerX, h.pointerY = toPixel(cx, cy)
		pressed := ev.Buttons()&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = ev.Buttons()
		if pressed {
			h.session.Click(h.pointerX, h.pointerY)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return nil
}

func (h *Host) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return h.apply(ui.ActionQuit)
	case tcell.KeyRune:
	default:
		return nil
	}
	r := ev.Rune()
	if r >= '1' && r <= '5' {
		h.session.Engine().SetSpeed(int(r - '0'))
		return nil
	}
	if a, ok := runeActions[r]; ok {
		return h.apply(a)
	}
	return nil
}

func (h *Host) apply(a ui.Action) error {
	if err := h.session.Apply(a); err != nil && !errors.Is(err, life.ErrNoSurface) {
		return err
	}
	return nil
}

// Draw renders the grid and the two status lines.
func (h *Host) Draw() {
	h.screen.Fill(' ', tcell.StyleDefault.Background(background))
	h.session.Engine().Draw(h.renderer, h, h.session.Highlight())
	_, rows := h.screen.Size()
	h.drawText(0, rows-2, hints)
	h.drawText(0, rows-1, h.status())
	h.screen.Show()
}

func (h *Host) status() string {
	e := h.session.Engine()
	cfg := e.Config()
	state := "stopped"
	if !h.session.Paused() {
		state = "running"
	}
	size := e.Size()
	st := h.session.Stats()
	line := fmt.Sprintf("%s  gen %d  pop %d  %dx%d  speed %d  %s  %s  %s",
		state, e.Generation(), e.Population(), size.W, size.H,
		cfg.Speed, cfg.Palette, cfg.CellSize, cfg.Topology)
	if st.Generation > 0 {
		line += fmt.Sprintf("  avg %.1f  peak %d  %.1f gen/s", st.AveragePopulation, st.PeakPopulation, st.GenerationsPerSecond)
	}
	if st.Generation > 0 && st.Stagnant() {
		line += "  stagnant"
	}
	return line
}

func (h *Host) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Background(background).Foreground(tcell.NewRGBColor(200, 200, 210))
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run polls events and advances the session until ctx is done or the quit
// action is applied.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := h.HandleEvent(ev); err != nil {
				return err
			}
		case now := <-ticker.C:
			if _, err := h.session.Tick(now); err != nil && !errors.Is(err, life.ErrNoSurface) {
				return err
			}
			h.Draw()
		}
		if h.session.Quit() {
			return nil
		}
	}
}

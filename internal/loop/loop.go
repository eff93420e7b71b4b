// Package loop provides the main game loop and run lifecycle management.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/wellfall/internal/draw"
	"github.com/tomz197/wellfall/internal/game"
	"github.com/tomz197/wellfall/internal/input"
	"github.com/tomz197/wellfall/internal/sound"
	"github.com/tomz197/wellfall/internal/store"
)

// Options configures a game loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to os.Stdout size
	Store        *store.Store      // Defaults to an in-memory store
	Sound        sound.Player      // Defaults to the terminal bell
	Difficulty   game.Difficulty   // Initial tier
}

// label is a short-lived floating feedback text in logical coordinates.
type label struct {
	text     string
	x, y     float64
	negative bool
	ttl      float64
}

// view holds all presentation-only state for one loop.
type view struct {
	labels     []label
	bannerFact string
	bannerTTL  float64
	shakeTTL   float64
	confetti   confetti
}

// Run starts the main game loop with the standard Input → Update → Draw
// cycle. Blocks until the player quits or the connection drops.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	st := opts.Store
	if st == nil {
		st = store.Open("")
	}
	player := opts.Sound
	if player == nil {
		player = sound.NewBellPlayer(w)
	}
	player.SetMuted(st.GetBool(store.KeyMuted))

	ctrl := NewController(st, game.ParseDifficulty(string(opts.Difficulty)))
	stream := input.StartStream(r)
	v := &view{}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.EnableMouse(w)
	defer draw.DisableMouse(w)
	draw.ClearScreen(w)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, game.PlayWidth, game.PlayHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	lastTime := time.Now()
	lastActivity := time.Now()
	lastPhase := ctrl.Phase()
	dragging := false

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit {
			break
		}

		if hasActivity(inp) {
			lastActivity = frameStart
		} else if time.Since(lastActivity).Seconds() > inactivityDisconnectSeconds {
			break
		} else if time.Since(lastActivity).Seconds() > inactivityPauseSeconds {
			ctrl.Pause()
		}

		if inp.Mute {
			player.SetMuted(!player.Muted())
			st.SetBool(store.KeyMuted, player.Muted())
			player.Play(sound.CueClick)
		}
		if inp.Number >= 1 && inp.Number <= len(game.Difficulties) {
			if ctrl.SelectDifficulty(game.Difficulties[inp.Number-1]) {
				player.Play(sound.CueClick)
			}
		}
		if inp.Space {
			if ctrl.Phase() == PhaseRunning || ctrl.Phase() == PhasePaused {
				ctrl.PauseToggle()
			} else {
				startRun(ctrl, v, player)
			}
		}
		if inp.Enter && ctrl.Phase() != PhaseRunning && ctrl.Phase() != PhasePaused {
			startRun(ctrl, v, player)
		}
		if inp.Reset {
			ctrl.Reset(false)
			v.confetti.Clear()
			v.labels = v.labels[:0]
			v.bannerTTL = 0
			player.Play(sound.CueClick)
		}

		ctrl.Session.SetHeld(inp.Left, inp.Right)

		var events []game.Event
		for _, m := range inp.Mouse {
			switch m.Kind {
			case input.MousePress:
				x, y := canvas.TerminalToLogical(m.Col, m.Row)
				if ctrl.Phase() == PhaseRunning {
					if tapped := ctrl.TapAt(x, y); tapped != nil {
						events = append(events, tapped...)
					} else {
						ctrl.Session.MovePaddleTo(x)
					}
					dragging = true
				} else if ctrl.Phase() != PhasePaused {
					startRun(ctrl, v, player)
				}
			case input.MouseDrag:
				if dragging && ctrl.Phase() == PhaseRunning {
					x, _ := canvas.TerminalToLogical(m.Col, m.Row)
					ctrl.Session.MovePaddleTo(x)
				}
			case input.MouseRelease:
				dragging = false
			}
		}

		// ===== UPDATE PHASE =====
		events = append(events, ctrl.Advance(dt)...)
		applyEvents(events, v, player)

		if phase := ctrl.Phase(); phase != lastPhase {
			if phase == PhaseLost {
				player.Play(sound.CueFail)
			}
			lastPhase = phase
		}

		v.update(dt)

		// Handle terminal resize
		termWidth, termHeight, err := draw.TerminalSizeRawWith(termSizeFunc)
		if err == nil {
			renderWidth, renderHeight, offsetCol, offsetRow = clampTermSize(termWidth, termHeight)
			canvas.Resize(renderWidth, renderHeight)
			canvas.SetOffset(offsetCol, offsetRow)
			chunkWriter.SetOffset(offsetCol, offsetRow)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(ctrl, v, w, canvas, chunkWriter); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// hasActivity reports whether the frame carried any player input.
func hasActivity(inp input.Input) bool {
	return inp.Left || inp.Right || inp.Space || inp.Enter || inp.Reset ||
		inp.Mute || inp.Number >= 0 || len(inp.Mouse) > 0
}

// startRun begins a run and clears leftover presentation from the last one.
func startRun(ctrl *Controller, v *view, player sound.Player) {
	ctrl.Start()
	v.confetti.Clear()
	v.labels = v.labels[:0]
	v.bannerTTL = 0
	player.Play(sound.CueClick)
}

// applyEvents maps simulation events to cues, labels and effects.
func applyEvents(events []game.Event, v *view, player sound.Player) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventCatch, game.EventComboBonus:
			v.addLabel(ev)
			player.Play(sound.CueCatch)
		case game.EventHazard:
			v.addLabel(ev)
			v.shakeTTL = shakeDurationSeconds
			player.Play(sound.CueHit)
		case game.EventMiss:
			v.addLabel(ev)
		case game.EventMilestone:
			v.bannerFact = "[" + ev.Badge + "] " + ev.Fact
			v.bannerTTL = bannerDisplaySeconds
			player.Play(sound.CueClick)
		case game.EventWin:
			v.confetti.Burst(game.PlayWidth/2, game.PlayHeight/3, 90)
			player.Play(sound.CueWin)
		}
	}
}

// addLabel spawns a floating feedback label at the event position.
func (v *view) addLabel(ev game.Event) {
	v.labels = append(v.labels, label{
		text:     ev.Label,
		x:        ev.X,
		y:        ev.Y,
		negative: ev.Negative,
		ttl:      labelLifetimeSeconds,
	})
}

// update advances presentation timers: labels drift up and expire, the
// banner and shake decay, confetti falls.
func (v *view) update(dt float64) {
	kept := v.labels[:0]
	for i := range v.labels {
		l := v.labels[i]
		l.ttl -= dt
		l.y -= 28 * dt
		if l.ttl > 0 {
			kept = append(kept, l)
		}
	}
	v.labels = kept

	if v.bannerTTL > 0 {
		v.bannerTTL -= dt
	}
	if v.shakeTTL > 0 {
		v.shakeTTL -= dt
	}
	v.confetti.Update(dt)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > maxTermWidth {
		renderWidth = maxTermWidth
	}
	if renderHeight > maxTermHeight {
		renderHeight = maxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame clears the screen and draws the full frame: play objects on the
// canvas, then the text UI on top.
func drawFrame(ctrl *Controller, v *view, w io.Writer, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	draw.ClearScreen(w)
	canvas.Clear()

	// Hazard hit feedback nudges the whole play area sideways.
	baseCol := canvas.OffsetCol()
	if v.shakeTTL > 0 {
		jitter := rand.Intn(2*shakeAmplitudeColumns+1) - shakeAmplitudeColumns
		canvas.SetOffset(baseCol+jitter, canvas.OffsetRow())
	}

	s := ctrl.Session
	canvas.FillRect(s.Paddle.X, s.Paddle.Y, s.Paddle.W, s.Paddle.H)
	for _, it := range s.Items {
		if it.Consumed {
			continue
		}
		if it.Hazard {
			canvas.DrawRect(it.X, it.Y, it.W, it.H)
			canvas.DrawLine(draw.Point{X: it.X, Y: it.Y}, draw.Point{X: it.X + it.W, Y: it.Y + it.H})
			canvas.DrawLine(draw.Point{X: it.X + it.W, Y: it.Y}, draw.Point{X: it.X, Y: it.Y + it.H})
		} else {
			canvas.FillRect(it.X, it.Y, it.W, it.H)
		}
	}
	v.confetti.Draw(canvas)

	canvas.Render(w)
	canvas.SetOffset(baseCol, canvas.OffsetRow())
	canvas.RenderBorder(w)

	// Draw UI overlay (after canvas render so it's on top)
	drawUI(ctrl, v, canvas, cw)
	return cw.Flush()
}

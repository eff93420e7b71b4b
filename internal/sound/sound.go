// Package sound plays short named cues on the player's terminal.
// Playback is best effort: a muted or unavailable output is a silent no-op,
// never an error, so the simulation can fire cues unconditionally.
package sound

import (
	"io"
	"sync"
	"time"
)

// Cue identifies one of the fixed gameplay sounds.
type Cue int

const (
	CueCatch Cue = iota
	CueHit
	CueClick
	CueWin
	CueFail
)

// Player plays cues. Implementations must never block the frame loop or
// return errors to the caller.
type Player interface {
	Play(Cue)
	SetMuted(bool)
	Muted() bool
}

// minBellGap rate-limits each cue so rapid catches don't turn the session
// into a continuous beep.
const minBellGap = 120 * time.Millisecond

// BellPlayer sounds the terminal bell (BEL) for every cue. It is the only
// audio channel a plain SSH session can carry.
type BellPlayer struct {
	mu    sync.Mutex
	w     io.Writer
	muted bool
	last  map[Cue]time.Time
}

// NewBellPlayer creates a bell player writing to the given terminal.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w, last: make(map[Cue]time.Time)}
}

// Play sounds the bell unless muted or the cue is rate-limited. Write errors
// are discarded; a broken terminal must not end the game.
func (p *BellPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	now := time.Now()
	if now.Sub(p.last[c]) < minBellGap {
		return
	}
	p.last[c] = now
	_, _ = p.w.Write([]byte{0x07})
}

// SetMuted toggles cue playback.
func (p *BellPlayer) SetMuted(m bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = m
}

// Muted reports whether playback is off.
func (p *BellPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// NopPlayer discards all cues. Used in tests and headless runs.
type NopPlayer struct {
	muted bool
}

func (p *NopPlayer) Play(Cue) {}

func (p *NopPlayer) SetMuted(m bool) { p.muted = m }

func (p *NopPlayer) Muted() bool { return p.muted }

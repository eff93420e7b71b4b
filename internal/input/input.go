package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a movement key is considered "held" after its
// last press. Terminals auto-repeat held keys, so refreshing a timestamp on
// every repeat keeps the paddle moving smoothly between repeats.
const keyHoldDuration = 30 * time.Millisecond

// MouseKind distinguishes the mouse events the game reacts to.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseDrag
	MouseRelease
)

// MouseEvent is a decoded SGR mouse report. Col and Row are 1-based terminal
// coordinates.
type MouseEvent struct {
	Kind MouseKind
	Col  int
	Row  int
}

// Input represents the current frame's input state. Left and Right are
// hold-state: they stay true while the key auto-repeats. Everything else is
// edge-triggered and fires once per physical press, so toggles like pause
// and mute cannot double-fire across consecutive frames.
type Input struct {
	Left   bool
	Right  bool
	Space  bool
	Enter  bool
	Reset  bool
	Mute   bool
	Quit   bool
	Escape bool
	Number int // Selected digit, or -1
	Mouse  []MouseEvent
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key hold state.
type Stream struct {
	ch      chan byte
	state   keyState
	partial []byte // Incomplete escape sequence carried to the next drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the frame's input state. Escape sequences (arrow keys, SGR mouse
// reports) that arrive split across drains are stitched back together.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.partial
	s.partial = nil

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	input := Input{Number: -1}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			consumed, done := parseEscape(buf[i:], &input, &s.state, now)
			if !done {
				// Sequence cut off mid-stream, finish it next drain.
				s.partial = append(s.partial, buf[i:]...)
				break
			}
			if consumed > 0 {
				i += consumed - 1
				continue
			}
			input.Escape = true
			continue
		}

		applyByte(&input, &s.state, b, now)
	}

	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	return input
}

// parseEscape parses one escape sequence at the start of buf. It returns the
// number of bytes consumed (0 when buf is a lone ESC keypress) and whether
// the sequence was complete.
func parseEscape(buf []byte, input *Input, state *keyState, now time.Time) (consumed int, done bool) {
	if len(buf) < 2 {
		return 0, false
	}
	if buf[1] != '[' {
		// Lone ESC followed by an unrelated byte.
		return 0, true
	}
	if len(buf) < 3 {
		return 0, false
	}

	switch buf[2] {
	case 'C': // Right arrow
		state.right = now
		return 3, true
	case 'D': // Left arrow
		state.left = now
		return 3, true
	case 'A', 'B': // Up/down arrows, unused
		return 3, true
	case '<':
		return parseSGRMouse(buf, input)
	}
	return 3, true
}

// parseSGRMouse decodes an SGR mouse report: ESC [ < btn ; col ; row (M|m).
func parseSGRMouse(buf []byte, input *Input) (consumed int, done bool) {
	var params [3]int
	idx := 0
	i := 3
	for ; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b >= '0' && b <= '9':
			params[idx] = params[idx]*10 + int(b-'0')
		case b == ';':
			idx++
			if idx > 2 {
				return i + 1, true // Malformed, discard
			}
		case b == 'M' || b == 'm':
			btn, col, row := params[0], params[1], params[2]
			ev := MouseEvent{Col: col, Row: row}
			switch {
			case b == 'm':
				ev.Kind = MouseRelease
			case btn&32 != 0:
				ev.Kind = MouseDrag
			default:
				ev.Kind = MousePress
			}
			// Only the primary button drives the game; wheel events
			// (btn 64+) are dropped.
			if btn&^32 < 3 {
				input.Mouse = append(input.Mouse, ev)
			}
			return i + 1, true
		default:
			return i + 1, true // Malformed, discard
		}
	}
	return 0, false
}

// applyByte updates input flags and key hold timestamps for a plain byte.
func applyByte(input *Input, state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ':
		input.Space = true
	case '\n', '\r':
		input.Enter = true
	case 'r', 'R':
		input.Reset = true
	case 'm', 'M':
		input.Mute = true
	case 'q', 'Q':
		input.Quit = true
	case '1', '2', '3':
		input.Number = int(b - '0')
	}
}

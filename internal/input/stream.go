package input

import (
	"io"
	"slices"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals only report presses (and auto-repeat), so releases are synthesized
// once a key goes quiet for this long.
const keyHoldDuration = 80 * time.Millisecond

// Stream delivers input bytes via a channel and tracks which keys are held.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	finished chan struct{} // Closed when the reader goroutine returns
	stopOnce sync.Once
	held     map[Key]time.Time // Last time each held key was seen
	pending  []byte            // Unterminated escape sequence from the last Poll
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Call Stop once the stream is no longer polled.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:       make(chan byte, 128),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		held:     make(map[Key]time.Time),
	}
	go func() {
		defer close(s.finished)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				select {
				case s.ch <- b:
				case <-s.done:
					return
				}
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine once its pending read returns.
// It is safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has reached EOF or failed.
// It becomes true only after Poll has drained every buffered byte.
func (s *Stream) Closed() bool {
	return s.closed
}

// Poll drains all available bytes (non-blocking) and returns the resulting
// events in arrival order: one press per recognised key byte or escape
// sequence, followed by releases for held keys not seen within the hold window.
//
// An escape sequence cut off at the end of the drained bytes is kept for the
// next Poll. If no more bytes arrive by then, a lone ESC is an Escape press
// and a partial sequence is dropped.
func (s *Stream) Poll(now time.Time) []Event {
	buf := s.pending
	s.pending = nil
	fresh := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh = true
		default:
			break drain
		}
	}

	events, rest := ParseKeys(buf, nil)
	if len(rest) > 0 {
		if fresh && !s.closed {
			s.pending = append([]byte(nil), rest...)
		} else if len(rest) == 1 {
			events = append(events, Press(KeyEscape))
		}
	}
	for _, ev := range events {
		s.held[ev.Key] = now
	}

	var expired []Key
	for k, seen := range s.held {
		if now.Sub(seen) >= keyHoldDuration {
			expired = append(expired, k)
		}
	}
	slices.Sort(expired)
	for _, k := range expired {
		delete(s.held, k)
		events = append(events, Release(k))
	}

	return events
}

// ParseKeys appends one press event per recognised key in buf to events.
// CSI (ESC [) and SS3 (ESC O) sequences are consumed whole; only arrow keys
// are kept, with any modifier parameters ignored. An ESC followed by any
// other byte is Escape. Unrecognised bytes are dropped.
//
// rest holds a trailing escape sequence that is not yet complete, starting
// at its ESC, or nil.
func ParseKeys(buf []byte, events []Event) (_ []Event, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			if k := byteKey(b); k != KeyUnknown {
				events = append(events, Press(k))
			}
			continue
		}

		if i+1 == len(buf) {
			return events, buf[i:]
		}
		if intro := buf[i+1]; intro != '[' && intro != 'O' {
			events = append(events, Press(KeyEscape))
			continue
		}

		n, final := sequenceEnd(buf[i+2:])
		if n < 0 {
			return events, buf[i:]
		}
		if k := csiKey(final); k != KeyUnknown {
			events = append(events, Press(k))
		}
		i += 1 + n
	}
	return events, nil
}

// sequenceEnd scans the bytes after ESC [ or ESC O: parameter and
// intermediate bytes (0x20-0x3F) up to one final byte (0x40-0x7E).
// It returns the number of bytes consumed including the final byte, or -1
// if seq ends first. A byte outside those ranges ends the sequence with no
// final byte.
func sequenceEnd(seq []byte) (n int, final byte) {
	for j, b := range seq {
		switch {
		case b >= 0x20 && b <= 0x3f:
			continue
		case b >= 0x40 && b <= 0x7e:
			return j + 1, b
		default:
			return j, 0
		}
	}
	return -1, 0
}

// csiKey maps the final byte of an arrow key sequence.
func csiKey(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyUnknown
}

// byteKey maps a single byte to a logical key.
func byteKey(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case 'w', 'W', 'k', 'K':
		return KeyUp
	case 's', 'S', 'j', 'J':
		return KeyDown
	case ' ':
		return KeySpace
	case '\n', '\r':
		return KeyEnter
	case '\x1b':
		return KeyEscape
	}
	return KeyUnknown
}

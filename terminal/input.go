package terminal

import (
	"time"

	"github.com/lixenwraith/termweave/event"
)

// escapeTimeout distinguishes a standalone ESC press from the start of an
// escape sequence that has not fully arrived yet.
const escapeTimeout = 50 * time.Millisecond

// doubleClickWindow is the longest gap between two presses of the same
// button that still counts as a double click.
const doubleClickWindow = 400 * time.Millisecond

// inputParser turns a raw terminal byte stream into logical events.
// It is pull-based: backends feed bytes as they arrive and pop parsed
// events one at a time from the non-blocking poll path.
type inputParser struct {
	// Persistent assembly buffer; sequences and UTF-8 runes may arrive
	// split across reads.
	buf    []byte
	queue  []event.Event
	escAt  time.Time
	escSet bool

	lastClickAt  time.Time
	lastClickBtn int

	now func() time.Time // injectable for tests
}

func newInputParser() *inputParser {
	return &inputParser{
		buf: make([]byte, 0, 256),
		now: time.Now,
	}
}

// feed appends raw bytes and parses as many complete events as possible.
func (p *inputParser) feed(data []byte) {
	p.buf = append(p.buf, data...)
	consumed := p.parse(p.buf)
	if consumed > 0 {
		if consumed >= len(p.buf) {
			p.buf = p.buf[:0]
		} else {
			copy(p.buf, p.buf[consumed:])
			p.buf = p.buf[:len(p.buf)-consumed]
		}
	}
	if len(p.buf) == 1 && p.buf[0] == 0x1b {
		if !p.escSet {
			p.escAt = p.now()
			p.escSet = true
		}
	} else {
		p.escSet = false
	}
}

// next pops the oldest parsed event, emitting a pending standalone ESC
// once its disambiguation window has expired. Returns nil when empty.
func (p *inputParser) next() event.Event {
	if len(p.queue) == 0 {
		if p.escSet && p.now().Sub(p.escAt) >= escapeTimeout {
			p.buf = p.buf[:0]
			p.escSet = false
			return event.KeyboardEvent{KeyCode: event.KeyEscape}
		}
		return nil
	}
	ev := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	return ev
}

func (p *inputParser) emit(ev event.Event) {
	p.queue = append(p.queue, ev)
}

// parse walks data, queueing events, and returns the bytes consumed.
// Stops at an incomplete trailing sequence so it can resume on more data.
func (p *inputParser) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII is its own key code
		if b >= 0x20 && b < 0x7f {
			p.emit(event.KeyboardEvent{KeyCode: int(b)})
			i++
			continue
		}

		if b == 0x1b {
			if i+1 >= n {
				return i // wait for more data
			}
			consumed, ev := p.parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev != nil {
				p.emit(ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			p.emit(p.parseControl(b))
			i++
			continue
		}

		if b == 0x7f {
			p.emit(event.KeyboardEvent{KeyCode: event.KeyBack})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			i++ // invalid start byte, skip
			continue
		}
		if i+seqLen > n {
			return i
		}
		r, size := decodeRune(data[i:])
		p.emit(event.KeyboardEvent{KeyCode: int(r)})
		i += size
	}
	return i
}

// parseControl maps C0 control characters. Enter variants fold to '\n',
// editing keys get their named codes, everything else surfaces as its
// raw ordinal (Ctrl+C is 3 and so on).
func (p *inputParser) parseControl(b byte) event.Event {
	switch b {
	case 0x08:
		return event.KeyboardEvent{KeyCode: event.KeyBack}
	case 0x09:
		return event.KeyboardEvent{KeyCode: event.KeyTab}
	case 0x0a, 0x0d:
		return event.KeyboardEvent{KeyCode: '\n'}
	case 0x1b:
		return event.KeyboardEvent{KeyCode: event.KeyEscape}
	default:
		return event.KeyboardEvent{KeyCode: int(b)}
	}
}

// parseEscape handles a sequence starting with ESC. Returns 0 consumed on
// incomplete data, or consumed>0 with a nil event for swallowed unknowns.
func (p *inputParser) parseEscape(data []byte) (int, event.Event) {
	if len(data) < 2 {
		return 0, nil
	}

	switch data[1] {
	case 0x1b:
		return 1, event.KeyboardEvent{KeyCode: event.KeyEscape}
	case '[':
		return p.parseCSI(data)
	case 'O':
		return p.parseSS3(data)
	}

	// Alt-modified byte; the modifier is not part of the key-code space,
	// so report the bare key.
	if data[1] < 0x20 {
		return 2, p.parseControl(data[1])
	}
	if data[1] < 0x7f {
		return 2, event.KeyboardEvent{KeyCode: int(data[1])}
	}
	return 2, nil
}

func (p *inputParser) parseCSI(data []byte) (int, event.Event) {
	if len(data) < 3 {
		return 0, nil
	}

	// SGR mouse: ESC [ < Btn ; X ; Y M/m
	if data[2] == '<' {
		return p.parseSGRMouse(data)
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}
	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			break
		}
		if b < 0x20 || b > 0x7e {
			return end + 1, nil // malformed, swallow
		}
		end++
	}
	if end <= 2 || end > maxScan {
		return 0, nil
	}
	last := data[end-1]
	if !((last >= 'A' && last <= 'Z') || (last >= 'a' && last <= 'z') || last == '~') {
		if end == maxScan && maxScan < len(data) {
			return end, nil // oversized unknown sequence, drop what we scanned
		}
		return 0, nil // incomplete
	}

	if code, ok := lookupCSI(data[2:end]); ok {
		return end, event.KeyboardEvent{KeyCode: code}
	}
	return end, nil // valid but unknown CSI, swallow
}

func (p *inputParser) parseSS3(data []byte) (int, event.Event) {
	if len(data) < 3 {
		return 0, nil
	}
	if code, ok := lookupSS3(data[2:3]); ok {
		return 3, event.KeyboardEvent{KeyCode: code}
	}
	return 3, nil
}

// parseSGRMouse decodes ESC [ < Btn ; X ; Y M/m into a MouseEvent,
// classifying presses into click/double-click and passing drags through
// with the held button still set.
func (p *inputParser) parseSGRMouse(data []byte) (int, event.Event) {
	if len(data) < 9 {
		return 0, nil
	}

	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) || (data[end] != 'M' && data[end] != 'm') {
		if end >= 32 {
			return end, nil
		}
		return 0, nil
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, nil
	}

	ev := event.MouseEvent{X: x - 1, Y: y - 1} // to 0-indexed

	press := data[end] == 'M'
	motion := btn&32 != 0
	scroll := btn&64 != 0
	buttonID := btn & 0x03

	if scroll {
		return end + 1, nil // wheel has no place in the button mask
	}

	var flag int
	switch buttonID {
	case 0:
		flag = event.LeftClick
	case 2:
		flag = event.RightClick
	}

	switch {
	case press && !motion && flag != 0:
		now := p.now()
		if p.lastClickBtn == flag && now.Sub(p.lastClickAt) <= doubleClickWindow {
			flag |= event.DoubleClick
			p.lastClickBtn = 0
		} else {
			p.lastClickBtn = flag
			p.lastClickAt = now
		}
		ev.Buttons = flag
	case press && motion:
		ev.Buttons = flag // drag keeps the held button set; bare motion is 0
	}

	return end + 1, ev
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y".
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0
	val := 0
	for _, b := range data {
		switch {
		case b == ';':
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			default:
				return 0, 0, 0, false
			}
			state++
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}
	if state != 2 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}

// utf8SeqLen returns the expected UTF-8 sequence length for a start byte,
// 0 if invalid.
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// decodeRune decodes the first UTF-8 rune without pulling in a decoder
// allocation; invalid bytes yield the replacement character.
func decodeRune(data []byte) (rune, int) {
	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune
	switch {
	case b&0xe0 == 0xc0:
		size, min, r = 2, 0x80, rune(b&0x1f)
	case b&0xf0 == 0xe0:
		size, min, r = 3, 0x800, rune(b&0x0f)
	case b&0xf8 == 0xf0:
		size, min, r = 4, 0x10000, rune(b&0x07)
	default:
		return 0xFFFD, 1
	}
	if len(data) < size {
		return 0xFFFD, 1
	}
	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}
	if r < min {
		return 0xFFFD, 1
	}
	return r, size
}

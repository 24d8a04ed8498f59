package kilo

// Logical key codes. Printable bytes and control combinations keep their
// byte values; named keys live at codes >= 1000 so the decoded key always
// fits in a single int disjoint from any byte value.
const (
	KeyBackspace = 127
	KeyEnter     = '\r'
	KeyEsc       = '\x1b'
)

const (
	KeyArrowLeft = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyDel
	KeyPageUp
	KeyPageDown
)

// Ctrl returns the control-key combination for byte c (CTRL(x) = x & 0x1F).
func Ctrl(c byte) int {
	return int(c) & 0x1f
}

// byteSource is satisfied by the TTY collaborator. It is declared here,
// rather than imported, so the key decoder depends only on the shape it
// needs.
type byteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder turns a raw byte stream from a byteSource into logical keys,
// resolving ANSI CSI/SS3 escape sequences into the named keys above.
type Decoder struct {
	src byteSource
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src byteSource) *Decoder {
	return &Decoder{src: src}
}

// readByte blocks until a byte is available, retrying silently on the
// short-poll timeout (ok == false, err == nil) the TTY collaborator uses
// in place of EAGAIN.
func (d *Decoder) readByte() (byte, error) {
	for {
		b, ok, err := d.src.ReadByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// tryReadByte attempts a single non-retrying read, used while decoding an
// escape sequence: a timeout there means "incomplete sequence", not "keep
// waiting", and should fall back to plain ESC.
func (d *Decoder) tryReadByte() (byte, bool, error) {
	return d.src.ReadByte()
}

// NextKey reads and decodes the next logical key.
func (d *Decoder) NextKey() (int, error) {
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}

	if b != KeyEsc {
		return int(b), nil
	}

	first, ok, err := d.tryReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return KeyEsc, nil
	}

	second, ok, err := d.tryReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return KeyEsc, nil
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third, ok, err := d.tryReadByte()
			if err != nil {
				return 0, err
			}
			if !ok || third != '~' {
				return KeyEsc, nil
			}
			switch second {
			case '1', '7':
				return KeyHome, nil
			case '3':
				return KeyDel, nil
			case '4', '8':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
			return KeyEsc, nil
		}
		switch second {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	case 'O':
		switch second {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}
	return KeyEsc, nil
}

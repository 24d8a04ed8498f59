// Package tty owns the one process-scoped singleton this program is allowed:
// the raw-mode terminal. It is the out-of-scope TTY collaborator named in
// the editor engine's design (scoped acquisition of raw-mode state with
// guaranteed restoration, window-size discovery, and a short-poll byte
// reader) and has no hard engineering of its own.
package tty

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Device is a scoped acquisition of raw terminal mode on stdin/stdout.
// Restore must be called on every exit path, including fatal ones.
type Device struct {
	fd       int
	orig     unix.Termios
	restored bool
}

// Open switches the controlling terminal into raw mode: no BRKINT, INPCK,
// ISTRIP, IXON, ICRNL; no OPOST; 8-bit chars; no ECHO, ICANON, IEXTEN,
// ISIG; reads return after at least 0 bytes within ~100ms (VMIN=0,
// VTIME=1). The previous termios state is captured so Restore can put the
// terminal back exactly as it found it.
func Open() (*Device, error) {
	fd := int(os.Stdin.Fd())

	orig, err := unix.IoctlGetTermios(fd, ioctlGets)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.INPCK | unix.ISTRIP | unix.IXON | unix.ICRNL
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlSets, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}

	return &Device{fd: fd, orig: *orig}, nil
}

// Restore puts the terminal back into the mode it was in before Open. It
// is idempotent and safe to call multiple times or on a nil Device.
func (d *Device) Restore() {
	if d == nil || d.restored {
		return
	}
	_ = unix.IoctlSetTermios(d.fd, ioctlSets, &d.orig)
	d.restored = true
}

// ReadByte reads a single byte from stdin. A VTIME expiry (zero bytes, no
// error) is not a failure: the caller should retry. A genuine read error
// is fatal to the decoder.
func (d *Device) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := os.Stdin.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	// os.File reports a zero-byte read (the VTIME expiry) as io.EOF.
	if err != nil && !errors.Is(err, os.ErrDeadlineExceeded) && !errors.Is(err, io.EOF) {
		return 0, false, err
	}
	return 0, false, nil
}

// WindowSize reports the terminal's (rows, cols). If the ioctl fails or
// reports zero columns, it falls back to driving the cursor to the
// far bottom-right corner and parsing the device's response to a cursor
// position request.
func (d *Device) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols != 0 {
		return rows, cols, nil
	}
	return d.windowSizeByCursorProbe()
}

// windowSizeByCursorProbe implements the ESC[999C ESC[999B / ESC[6n
// fallback described in spec §6, used when the ioctl path is unavailable.
func (d *Device) windowSizeByCursorProbe() (rows, cols int, err error) {
	if _, err := os.Stdout.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return 0, 0, fmt.Errorf("probing window size: %w", err)
	}
	if _, err := os.Stdout.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("requesting cursor position: %w", err)
	}

	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		b, ok, rerr := d.ReadByte()
		if rerr != nil {
			return 0, 0, fmt.Errorf("reading cursor position: %w", rerr)
		}
		if !ok {
			continue
		}
		buf[i] = b
		i++
		if b == 'R' {
			break
		}
	}

	if i < 2 || buf[0] != '\x1b' || buf[1] != '[' {
		return 0, 0, errors.New("malformed cursor position response")
	}
	if _, err := fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor position response: %w", err)
	}
	return rows, cols, nil
}

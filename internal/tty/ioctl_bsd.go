//go:build darwin || freebsd || netbsd || openbsd

package tty

import "golang.org/x/sys/unix"

const (
	ioctlGets = unix.TIOCGETA
	ioctlSets = unix.TIOCSETA
)

package tty

import "golang.org/x/sys/unix"

const (
	ioctlGets = unix.TCGETS
	ioctlSets = unix.TCSETS
)

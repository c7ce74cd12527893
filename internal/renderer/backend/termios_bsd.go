//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package backend

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TIOCGETA
	ioctlSetTermiosFlush = unix.TIOCSETAF
)

package tty

import "golang.org/x/sys/unix"

// TCSETSF drains output and discards pending input, like TCSAFLUSH.
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)

//go:build linux

package terminal

import "golang.org/x/sys/unix"

// ioctlInputQueue counts bytes waiting to be read on a descriptor
const ioctlInputQueue = unix.TIOCINQ

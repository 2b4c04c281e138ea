//go:build darwin

package terminal

// ioctlInputQueue is FIONREAD, _IOR('f', 127, int); x/sys/unix does not export it for darwin
const ioctlInputQueue = 0x4004667f

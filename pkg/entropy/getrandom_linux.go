//go:build linux

package entropy

import "golang.org/x/sys/unix"

var hostGetrandom GetrandomFunc = func(buf []byte) (int, error) {
	return unix.Getrandom(buf, unix.GRND_NONBLOCK)
}

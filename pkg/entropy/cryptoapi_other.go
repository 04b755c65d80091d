//go:build !windows

package entropy

var hostAcquire AcquireFunc

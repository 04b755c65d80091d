//go:build !linux

package entropy

var hostGetrandom GetrandomFunc

//go:build windows

package entropy

import "golang.org/x/sys/windows"

var hostAcquire AcquireFunc = acquireCryptoContext

type winCryptoContext struct {
	handle windows.Handle
}

func acquireCryptoContext() (CryptoContext, error) {
	var h windows.Handle
	err := windows.CryptAcquireContext(&h, nil, nil, windows.PROV_RSA_FULL,
		windows.CRYPT_VERIFYCONTEXT|windows.CRYPT_SILENT)
	if err != nil {
		return nil, err
	}
	return &winCryptoContext{handle: h}, nil
}

func (c *winCryptoContext) Random(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return windows.CryptGenRandom(c.handle, uint32(len(buf)), &buf[0])
}

func (c *winCryptoContext) Release() error {
	return windows.CryptReleaseContext(c.handle, 0)
}

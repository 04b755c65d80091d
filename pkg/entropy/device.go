package entropy

import (
	"io"
	"os"
)

// DefaultDevicePath is the random device read by DeviceProvider.
const DefaultDevicePath = "/dev/urandom"

// OpenFunc opens a random device for reading.
type OpenFunc func(path string) (io.ReadCloser, error)

// DeviceProvider reads from a random device file. It never runs on
// Windows or when the platform path policy rejects the device path.
type DeviceProvider struct {
	platform Platform
	path     string
	open     OpenFunc
}

// NewDeviceProvider creates a device provider. An empty path means
// DefaultDevicePath and a nil open means os.Open.
func NewDeviceProvider(platform Platform, path string, open OpenFunc) *DeviceProvider {
	if path == "" {
		path = DefaultDevicePath
	}
	if open == nil {
		open = openFile
	}
	return &DeviceProvider{platform: platform, path: path, open: open}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Name implements Provider.
func (p *DeviceProvider) Name() string { return NameDevice }

// Strength implements Provider.
func (p *DeviceProvider) Strength() Strength { return Strong }

// Path returns the device path.
func (p *DeviceProvider) Path() string { return p.path }

// TryGenerate implements Provider.
func (p *DeviceProvider) TryGenerate(n int) ([]byte, error) {
	if p.platform.IsWindows() {
		return nil, ErrUnavailable.WithDetails("not supported on windows")
	}
	if !p.platform.Allows(p.path) {
		return nil, ErrUnavailable.WithDetailsf("%s blocked by path policy", p.path)
	}

	f, err := p.open(p.path)
	if err != nil {
		return nil, ErrUnavailable.WithCause(err)
	}
	defer f.Close()

	return readFull(f, n)
}

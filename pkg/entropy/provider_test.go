package entropy

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// trackingCloser records whether Close was called.
type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestRuntimeProvider(t *testing.T) {
	t.Run("reads from reader", func(t *testing.T) {
		src := bytes.Repeat([]byte{0xAB}, Size)
		p := NewRuntimeProvider(bytes.NewReader(src))
		got, err := p.TryGenerate(Size)
		if err != nil {
			t.Fatalf("TryGenerate() error = %v", err)
		}
		if !bytes.Equal(got, src) {
			t.Error("TryGenerate() did not return reader bytes")
		}
	})

	t.Run("short read", func(t *testing.T) {
		p := NewRuntimeProvider(bytes.NewReader(make([]byte, 10)))
		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrShortRead) {
			t.Errorf("error = %v, want ErrShortRead", err)
		}
	})

	t.Run("reader error", func(t *testing.T) {
		p := NewRuntimeProvider(errReader{errors.New("no entropy")})
		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("default reader", func(t *testing.T) {
		p := NewRuntimeProvider(nil)
		got, err := p.TryGenerate(Size)
		if err != nil || len(got) != Size {
			t.Errorf("TryGenerate() = %d bytes, %v", len(got), err)
		}
		if p.Name() != NameRuntime || p.Strength() != Strong {
			t.Errorf("identity = %s/%s", p.Name(), p.Strength())
		}
	})
}

func TestGetrandomProvider(t *testing.T) {
	linux := Platform{GOOS: "linux"}
	full := func(buf []byte) (int, error) {
		for i := range buf {
			buf[i] = 0x42
		}
		return len(buf), nil
	}

	tests := []struct {
		name     string
		platform Platform
		fn       GetrandomFunc
		wantErr  error
	}{
		{"success", linux, full, nil},
		{"windows", Platform{GOOS: "windows"}, full, ErrUnavailable},
		{"syscall error", linux, func([]byte) (int, error) { return 0, errors.New("EAGAIN") }, ErrUnavailable},
		{"short", linux, func(buf []byte) (int, error) { return len(buf) - 1, nil }, ErrShortRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewGetrandomProvider(tt.platform, tt.fn)
			got, err := p.TryGenerate(Size)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("TryGenerate() error = %v", err)
			}
			if !bytes.Equal(got, bytes.Repeat([]byte{0x42}, Size)) {
				t.Error("TryGenerate() returned unexpected bytes")
			}
		})
	}
}

func TestGetrandomProvider_Unavailable(t *testing.T) {
	p := &GetrandomProvider{platform: Platform{GOOS: "linux"}}
	if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestDRBGProvider(t *testing.T) {
	t.Run("strong seed", func(t *testing.T) {
		p := NewDRBGProvider(nil)
		got, err := p.TryGenerate(Size)
		if err != nil {
			t.Fatalf("TryGenerate() error = %v", err)
		}
		if len(got) != Size {
			t.Errorf("length = %d, want %d", len(got), Size)
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		seed := bytes.Repeat([]byte{7}, drbgSeedSize)
		a, strongA, errA := NewDRBGProvider(bytes.NewReader(seed)).Generate(Size)
		b, strongB, errB := NewDRBGProvider(bytes.NewReader(seed)).Generate(Size)
		if errA != nil || errB != nil {
			t.Fatalf("Generate() errors = %v, %v", errA, errB)
		}
		if !strongA || !strongB {
			t.Error("seeded DRBG should report strong")
		}
		if !bytes.Equal(a, b) {
			t.Error("same seed should produce same keystream")
		}
		if bytes.Equal(a, make([]byte, Size)) {
			t.Error("keystream should not be all zero")
		}
	})

	t.Run("weak seed is discarded", func(t *testing.T) {
		p := NewDRBGProvider(errReader{errors.New("seed failed")})
		p.now = func() time.Time { return time.Unix(1700000000, 0) }

		out, strong, err := p.Generate(Size)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if strong {
			t.Error("DRBG seeded from the clock should report weak")
		}
		if len(out) != Size {
			t.Errorf("length = %d", len(out))
		}

		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrWeakResult) {
			t.Errorf("TryGenerate() error = %v, want ErrWeakResult", err)
		}
	})
}

func TestSource_DRBGWeakFlagFallsThrough(t *testing.T) {
	platform := Platform{GOOS: "linux"}
	device := bytes.Repeat([]byte{0x5A}, Size)
	drbg := NewDRBGProvider(errReader{errors.New("seed failed")})
	obs := &recordingObserver{}

	s := New(
		WithObserver(obs),
		WithProviders(
			NewRuntimeProvider(errReader{errors.New("absent")}),
			NewGetrandomProvider(platform, func([]byte) (int, error) { return 0, errors.New("ENOSYS") }),
			drbg,
			NewDeviceProvider(platform, "/dev/urandom", func(string) (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(device)), nil
			}),
		),
	)

	r := s.Generate()
	if r.Provider != NameDevice {
		t.Fatalf("Provider = %q, want %q", r.Provider, NameDevice)
	}
	if !bytes.Equal(r.Bytes, device) {
		t.Error("result should come from the device, not the weak DRBG")
	}
	if len(obs.skipped) != 3 || obs.skipped[2] != NameDRBG {
		t.Errorf("skipped = %v", obs.skipped)
	}
	if !errors.Is(obs.errs[2], ErrWeakResult) {
		t.Errorf("drbg skip error = %v, want ErrWeakResult", obs.errs[2])
	}
}

func TestDeviceProvider(t *testing.T) {
	linux := Platform{GOOS: "linux"}

	t.Run("reads and closes", func(t *testing.T) {
		f := &trackingCloser{Reader: bytes.NewReader(bytes.Repeat([]byte{1}, 2*Size))}
		var opened string
		p := NewDeviceProvider(linux, "", func(path string) (io.ReadCloser, error) {
			opened = path
			return f, nil
		})

		got, err := p.TryGenerate(Size)
		if err != nil {
			t.Fatalf("TryGenerate() error = %v", err)
		}
		if len(got) != Size {
			t.Errorf("length = %d, want %d", len(got), Size)
		}
		if opened != DefaultDevicePath {
			t.Errorf("opened %q, want %q", opened, DefaultDevicePath)
		}
		if !f.closed {
			t.Error("device should be closed")
		}
	})

	t.Run("closes on short read", func(t *testing.T) {
		f := &trackingCloser{Reader: bytes.NewReader(make([]byte, 8))}
		p := NewDeviceProvider(linux, "", func(string) (io.ReadCloser, error) { return f, nil })

		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrShortRead) {
			t.Errorf("error = %v, want ErrShortRead", err)
		}
		if !f.closed {
			t.Error("device should be closed on failure")
		}
	})

	t.Run("path policy", func(t *testing.T) {
		called := false
		platform := Platform{GOOS: "linux", PathAllowed: RestrictPaths("/var/www")}
		p := NewDeviceProvider(platform, "", func(string) (io.ReadCloser, error) {
			called = true
			return nil, errors.New("unreachable")
		})

		_, err := p.TryGenerate(Size)
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
		if called {
			t.Error("device should not be opened when the path is restricted")
		}
	})

	t.Run("windows", func(t *testing.T) {
		p := NewDeviceProvider(Platform{GOOS: "windows"}, "", nil)
		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("open error", func(t *testing.T) {
		p := NewDeviceProvider(linux, "/nonexistent/urandom", nil)
		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
	})
}

// fakeCryptoContext is a CryptoContext with scripted behaviour.
type fakeCryptoContext struct {
	err      error
	released bool
}

func (c *fakeCryptoContext) Random(buf []byte) error {
	if c.err != nil {
		return c.err
	}
	for i := range buf {
		buf[i] = 0xC0
	}
	return nil
}

func (c *fakeCryptoContext) Release() error {
	c.released = true
	return nil
}

func TestCryptoAPIProvider(t *testing.T) {
	windows := Platform{GOOS: "windows"}

	t.Run("success releases context", func(t *testing.T) {
		ctx := &fakeCryptoContext{}
		p := NewCryptoAPIProvider(windows, func() (CryptoContext, error) { return ctx, nil })

		got, err := p.TryGenerate(Size)
		if err != nil {
			t.Fatalf("TryGenerate() error = %v", err)
		}
		if !bytes.Equal(got, bytes.Repeat([]byte{0xC0}, Size)) {
			t.Error("unexpected bytes")
		}
		if !ctx.released {
			t.Error("context should be released")
		}
		if p.Strength() != Weak {
			t.Error("cryptoapi should be classified weak")
		}
	})

	t.Run("failure releases context", func(t *testing.T) {
		ctx := &fakeCryptoContext{err: errors.New("NTE_BAD_KEYSET")}
		p := NewCryptoAPIProvider(windows, func() (CryptoContext, error) { return ctx, nil })

		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
		if !ctx.released {
			t.Error("context should be released on failure")
		}
	})

	t.Run("acquire failure", func(t *testing.T) {
		p := NewCryptoAPIProvider(windows, func() (CryptoContext, error) {
			return nil, errors.New("no provider")
		})
		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
	})

	t.Run("non-windows", func(t *testing.T) {
		called := false
		p := NewCryptoAPIProvider(Platform{GOOS: "linux"}, func() (CryptoContext, error) {
			called = true
			return &fakeCryptoContext{}, nil
		})
		if _, err := p.TryGenerate(Size); !errors.Is(err, ErrUnavailable) {
			t.Errorf("error = %v, want ErrUnavailable", err)
		}
		if called {
			t.Error("cryptoapi should not be acquired off windows")
		}
	})
}

func TestFallbackProvider(t *testing.T) {
	p := NewFallbackProvider()
	if p.Strength() != Weak {
		t.Error("fallback should be classified weak")
	}

	a, err := p.TryGenerate(Size)
	if err != nil {
		t.Fatalf("TryGenerate() error = %v", err)
	}
	b, _ := p.TryGenerate(Size)
	if len(a) != Size || len(b) != Size {
		t.Fatalf("lengths = %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Error("consecutive fallback buffers should differ")
	}

	// Odd sizes are truncated, not padded.
	if got := p.fill(13); len(got) != 13 {
		t.Errorf("fill(13) length = %d", len(got))
	}
}

func TestFallbackProvider_EmbedsTimestamp(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	p := &FallbackProvider{now: func() time.Time { return at }, uint64: func() uint64 { return 0 }}

	got := p.fill(Size)
	// ULID timestamp: 48-bit big-endian milliseconds.
	var ms uint64
	for _, b := range got[:6] {
		ms = ms<<8 | uint64(b)
	}
	if ms != uint64(at.UnixMilli()) {
		t.Errorf("timestamp = %d, want %d", ms, at.UnixMilli())
	}
}

func TestRestrictPaths(t *testing.T) {
	if RestrictPaths() != nil {
		t.Error("RestrictPaths() with no dirs should allow everything")
	}
	if RestrictPaths(" ", "") != nil {
		t.Error("blank dirs should be ignored")
	}

	allowed := RestrictPaths("/dev", "/var/www/")
	tests := []struct {
		path string
		want bool
	}{
		{"/dev/urandom", true},
		{"/dev", true},
		{"/var/www/app/x", true},
		{"/devices/urandom", false},
		{"/etc/passwd", false},
		{"/dev/../etc/passwd", false},
	}
	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.path, "/", "_"), func(t *testing.T) {
			if got := allowed(tt.path); got != tt.want {
				t.Errorf("allowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPlatform(t *testing.T) {
	if !(Platform{GOOS: "windows"}).IsWindows() {
		t.Error("windows should be windows")
	}
	if (Platform{GOOS: "linux"}).IsWindows() {
		t.Error("linux is not windows")
	}
	if !(Platform{}).Allows("/anything") {
		t.Error("nil policy should allow everything")
	}
	if HostPlatform().GOOS == "" {
		t.Error("HostPlatform() should set GOOS")
	}
}

func TestStrength_String(t *testing.T) {
	if Strong.String() != "strong" || Weak.String() != "weak" {
		t.Errorf("String() = %q/%q", Strong, Weak)
	}
}

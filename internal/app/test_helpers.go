package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App whose result and error streams are captured.
// Defaults fill any zero-valued setting in cfg.
func SetupAppTest(t *testing.T, cfg Config) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 2
	}
	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer, errBuffer := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(outBuffer, errBuffer, validated)

	t.Cleanup(func() {
		if os.Getenv("ROMANPARSE_TEST_LOGS") == "true" {
			t.Logf("--- Full Error Stream for %s ---\n%s", t.Name(), errBuffer.String())
		}
	})

	return testApp, outBuffer, errBuffer
}

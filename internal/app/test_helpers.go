package app

import (
	"bytes"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing combined log and plan
// output in tests.
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

// SetupAppTest creates an app instance wired to a capture buffer for
// system-level testing.
func SetupAppTest(t *testing.T, cfg Config) (*App, *SafeBuffer) {
	t.Helper()

	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	buf := &SafeBuffer{}
	return NewApp(buf, validated), buf
}

package guidgen

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"
)

// brokenReader is a reader that always returns an error
type brokenReader struct{}

func (br *brokenReader) Read(p []byte) (n int, err error) {
	return 0, bytes.ErrTooLarge
}

// zeroReader returns zero bytes forever, so fresh sequences start at 0.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

var errClockStopped = errors.New("clock stopped")

// manualClock returns a fixed time until moved.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
	err error
}

func newManualClock(t time.Time) *manualClock {
	return &manualClock{now: t}
}

func (c *manualClock) Now() (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now, c.err
}

func (c *manualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *manualClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *manualClock) Fail(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

var testNode = [6]byte{0x00, 0x1b, 0x63, 0x84, 0x45, 0xe6}

// requireRevision skips tests of versions 6 to 8 in legacy builds.
func requireRevision(t testing.TB) {
	t.Helper()
	if !revisionEnabled {
		t.Skip("versions 6-8 are disabled in this build")
	}
}

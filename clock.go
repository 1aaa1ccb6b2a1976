package guidgen

import (
	"log/slog"
	"sync"
	"time"
)

// Clock is the wall-clock source used by the time-based schemes.
type Clock interface {
	Now() (time.Time, error)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() (time.Time, error)

// Now calls f.
func (f ClockFunc) Now() (time.Time, error) {
	return f()
}

// SystemClock reads time.Now and never fails.
var SystemClock Clock = ClockFunc(func() (time.Time, error) {
	return time.Now(), nil
})

// gregorianTicks converts t to 100-ns intervals since 1582-10-15.
func gregorianTicks(t time.Time) int64 {
	return t.Unix()*1e7 + int64(t.Nanosecond()/100) + gregorianOffset
}

// unixMillis converts t to milliseconds since the Unix epoch.
func unixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// clockState hands out strictly increasing (tick, sequence) pairs.
//
// The zero value is uninitialized; the first advance (or a restore) moves it
// to the initialized state for good.
type clockState struct {
	mu          sync.Mutex
	name        string
	toTick      func(time.Time) int64
	seqMask     uint16
	initialized bool
	lastTick    int64
	seq         uint16
	log         *slog.Logger
}

func newClockState(name string, toTick func(time.Time) int64, seqBits uint, log *slog.Logger) *clockState {
	return &clockState{
		name:    name,
		toTick:  toTick,
		seqMask: uint16(1)<<seqBits - 1,
		log:     log,
	}
}

// advance reads the clock and returns the next tick and sequence. fresh is
// random input for the sequence used when the clock moved forward; only its
// low half is taken so that later increments have headroom. The state is
// left untouched when the clock fails.
func (s *clockState) advance(clock Clock, fresh uint16) (int64, uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now, err := clock.Now()
	if err != nil {
		return 0, 0, err
	}
	tick := s.toTick(now)

	if s.initialized && tick <= s.lastTick {
		if tick < s.lastTick {
			s.log.Debug("clock regression", slog.String("state", s.name),
				slog.Int64("tick", tick), slog.Int64("last_tick", s.lastTick))
		}
		tick = s.lastTick
		if s.seq < s.seqMask {
			s.seq++
			return tick, s.seq, nil
		}
		s.log.Debug("sequence overflow", slog.String("state", s.name), slog.Int64("tick", tick))
		tick++
		s.lastTick = tick
		s.seq = 0
		return tick, s.seq, nil
	}

	s.initialized = true
	s.lastTick = tick
	s.seq = fresh & (s.seqMask >> 1)
	return tick, s.seq, nil
}

// snapshot returns the last issued tick and sequence.
func (s *clockState) snapshot() (int64, uint16, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTick, s.seq, s.initialized
}

// restore seeds the state from a persisted snapshot.
func (s *clockState) restore(lastTick int64, seq uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
	s.lastTick = lastTick
	s.seq = seq & s.seqMask
}

// Package stopwatch provides a stopwatch for accurately measuring elapsed
// wall time, modeled after System.Diagnostics.Stopwatch. Readings are taken
// from the monotonic clock and reported in 100ns ticks.
package stopwatch

import (
	"fmt"
	"time"
)

// TimeUnit selects the unit elapsed time is reported in.
type TimeUnit int

const (
	Ticks TimeUnit = iota
	Microseconds
	Milliseconds
	Seconds
)

func (u TimeUnit) String() string {
	switch u {
	case Ticks:
		return "Ticks"
	case Microseconds:
		return "Microseconds"
	case Milliseconds:
		return "Milliseconds"
	case Seconds:
		return "Seconds"
	default:
		return "Unknown"
	}
}

// Symbol returns the short unit symbol used when formatting readings.
func (u TimeUnit) Symbol() string {
	switch u {
	case Ticks:
		return "ticks"
	case Microseconds:
		return "µs"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "sec"
	default:
		return "unknown"
	}
}

// One tick is 100 nanoseconds.
const (
	TicksPerSecond      int64 = 1e7
	TicksPerMillisecond int64 = 1e4
	TicksPerMicrosecond int64 = 10
	NanosecondsPerTick  int64 = 100
)

// Stopwatch measures elapsed wall time across one or more intervals.
// It is not safe for concurrent use.
type Stopwatch struct {
	elapsed int64 // ticks accumulated by completed intervals
	running bool
	start   time.Time
}

// New returns a stopped stopwatch with zero elapsed time.
func New() *Stopwatch {
	return &Stopwatch{}
}

// StartNew returns a new stopwatch that has already been started.
func StartNew() *Stopwatch {
	s := New()
	s.Start()
	return s
}

// IsRunning reports whether the stopwatch is currently measuring an interval.
func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// Start starts, or resumes, measuring elapsed time. Starting a running
// stopwatch has no effect.
func (s *Stopwatch) Start() {
	if !s.running {
		s.start = time.Now()
		s.running = true
	}
}

// Stop stops measuring elapsed time. Stopping a stopped stopwatch has no
// effect.
func (s *Stopwatch) Stop() {
	if s.running {
		s.elapsed += ticksSince(s.start)
		s.running = false

		if s.elapsed < 0 {
			s.elapsed = 0
		}
	}
}

// Reset stops the stopwatch and resets the elapsed time to zero.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.running = false
}

// Restart resets the elapsed time to zero and starts measuring.
func (s *Stopwatch) Restart() {
	s.elapsed = 0
	s.start = time.Now()
	s.running = true
}

// ElapsedTicks returns the total elapsed time in 100ns ticks.
func (s *Stopwatch) ElapsedTicks() int64 {
	if s.running {
		return s.elapsed + ticksSince(s.start)
	}
	return s.elapsed
}

// ElapsedMilliseconds returns the total elapsed time in whole milliseconds.
func (s *Stopwatch) ElapsedMilliseconds() int64 {
	return s.ElapsedTicks() / TicksPerMillisecond
}

// Elapsed returns the total elapsed time expressed in the given unit.
func (s *Stopwatch) Elapsed(unit TimeUnit) float64 {
	ticks := s.ElapsedTicks()
	switch unit {
	case Ticks:
		return float64(ticks)
	case Microseconds:
		return float64(ticks) / float64(TicksPerMicrosecond)
	case Milliseconds:
		return float64(ticks) / float64(TicksPerMillisecond)
	case Seconds:
		return float64(ticks) / float64(TicksPerSecond)
	default:
		return 0
	}
}

// ElapsedDuration returns the total elapsed time as a time.Duration.
func (s *Stopwatch) ElapsedDuration() time.Duration {
	return time.Duration(s.ElapsedTicks() * NanosecondsPerTick)
}

// Format renders the elapsed time in the given unit with the given number of
// decimal places, e.g. "12.345 ms".
func (s *Stopwatch) Format(unit TimeUnit, precision int) string {
	return fmt.Sprintf("%.*f %s", precision, s.Elapsed(unit), unit.Symbol())
}

func ticksSince(start time.Time) int64 {
	return time.Since(start).Nanoseconds() / NanosecondsPerTick
}

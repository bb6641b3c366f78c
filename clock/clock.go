// Package clock provides the monotonic tick source used by region timers.
//
// A Clock reports ticks in its own unit and the number of ticks per second.
// Only differences between two readings of the same clock are meaningful.
package clock

import (
	"math"
	"math/bits"
	"sync/atomic"
	"time"
)

// NanosPerSecond is the frequency of the default monotonic clock.
const NanosPerSecond int64 = int64(time.Second)

// Clock is a monotonic tick counter.
type Clock interface {
	// Now returns the current tick count.
	Now() int64

	// Frequency returns the number of ticks per second.
	Frequency() int64
}

// monotonic reads Go's monotonic clock relative to a fixed base.
type monotonic struct {
	base time.Time
}

var defaultClock = &monotonic{base: time.Now()}

// Monotonic returns the process-wide monotonic clock. Ticks are nanoseconds
// since the package was initialised.
func Monotonic() Clock {
	return defaultClock
}

func (c *monotonic) Now() int64 {
	return int64(time.Since(c.base))
}

func (c *monotonic) Frequency() int64 {
	return NanosPerSecond
}

// Manual is a clock that only moves when told to. It is intended for tests
// that need exact tick arithmetic.
type Manual struct {
	ticks atomic.Int64
	freq  int64
}

// NewManual returns a manual clock at tick 0 running at freq ticks per second.
// A non-positive freq selects one tick per nanosecond.
func NewManual(freq int64) *Manual {
	if freq <= 0 {
		freq = NanosPerSecond
	}
	return &Manual{freq: freq}
}

// Now returns the current tick.
func (m *Manual) Now() int64 {
	return m.ticks.Load()
}

// Frequency returns the ticks per second.
func (m *Manual) Frequency() int64 {
	return m.freq
}

// Set moves the clock to an absolute tick.
func (m *Manual) Set(tick int64) {
	m.ticks.Store(tick)
}

// Advance moves the clock forward by n ticks and returns the new tick.
func (m *Manual) Advance(n int64) int64 {
	return m.ticks.Add(n)
}

// ToDuration converts a tick count at freq ticks per second to a Duration
// without overflowing for long intervals or very fast clocks.
func ToDuration(ticks, freq int64) time.Duration {
	if freq == NanosPerSecond {
		return time.Duration(ticks)
	}
	if freq <= 0 {
		return 0
	}
	sec := ticks / freq
	rem := ticks % freq
	return time.Duration(sec)*time.Second + time.Duration(mulDiv(rem, NanosPerSecond, freq))
}

// ToSeconds converts a tick count at freq ticks per second to seconds.
func ToSeconds(ticks, freq int64) float64 {
	if freq <= 0 {
		return math.NaN()
	}
	return float64(ticks) / float64(freq)
}

// FromDuration converts a Duration to ticks at freq ticks per second,
// rounding toward zero. Results beyond the int64 range saturate.
func FromDuration(d time.Duration, freq int64) int64 {
	if freq == NanosPerSecond {
		return int64(d)
	}
	if freq <= 0 {
		return 0
	}
	sec := int64(d / time.Second)
	rem := int64(d % time.Second)
	if sec > math.MaxInt64/freq || sec < math.MinInt64/freq {
		if d < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return sec*freq + mulDiv(rem, freq, NanosPerSecond)
}

// mulDiv returns x*num/den truncated toward zero using a 128-bit
// intermediate. num and den must be positive and |x| < den.
func mulDiv(x, num, den int64) int64 {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = -ux
	}
	hi, lo := bits.Mul64(ux, uint64(num))
	q, _ := bits.Div64(hi, lo, uint64(den))
	if neg {
		return -int64(q)
	}
	return int64(q)
}

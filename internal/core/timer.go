package core

import "time"

const (
	// MinTPS and MaxTPS bound the tick rate accepted by FixedStep.
	MinTPS = 1
	MaxTPS = 240
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate,
// independently of how often frames are drawn.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	if tps > MaxTPS {
		tps = MaxTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Period returns the duration of a single tick.
func (f *FixedStep) Period() time.Duration { return f.step }

// Faster doubles the tick rate up to MaxTPS.
func (f *FixedStep) Faster() { f.SetTPS(f.tps * 2) }

// Slower halves the tick rate down to MinTPS.
func (f *FixedStep) Slower() {
	tps := f.tps / 2
	if tps < MinTPS {
		tps = MinTPS
	}
	f.SetTPS(tps)
}

// Advance adds delta to the accumulator and returns how many ticks are due.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}

// Remaining returns how long to wait so that a tick started at start lasts a
// full period. It is zero when the tick already overran.
func (f *FixedStep) Remaining(start time.Time) time.Duration {
	left := f.step - time.Since(start)
	if left < 0 {
		return 0
	}
	return left
}

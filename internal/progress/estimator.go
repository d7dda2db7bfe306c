// Package progress estimates how far a fixed-size parallel job (the
// anchor scan of a scale suggestion) has got and how long it still needs.
package progress

import (
	"math"
	"sync"
	"time"
)

type Stage string

const (
	StageScan Stage = "scan"
	StageRank Stage = "rank"
)

// Snapshot is the state published to observers.
type Snapshot struct {
	Stage     Stage         `json:"stage"`
	Total     int           `json:"total"`
	Done      int           `json:"done"`
	Remaining int           `json:"remaining"`
	Rate      float64       `json:"rate_per_sec"`
	RateP50   float64       `json:"rate_p50"`
	RateP10   float64       `json:"rate_p10"`
	ETA       time.Duration `json:"eta"`
	ETASlow   time.Duration `json:"eta_slow"`
	Warmup    bool          `json:"warmup"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Percent is Done/Total clamped to [0, 100].
func (s Snapshot) Percent() int {
	return percent(s.Done, s.Total)
}

type Config struct {
	Alpha          float64
	WindowSize     int
	WarmupSamples  int
	WarmupDuration time.Duration
	NotifyInterval time.Duration
	SlowFallback   float64
	Clock          func() time.Time
}

func DefaultConfig() Config {
	return Config{
		Alpha:          0.2,
		WindowSize:     32,
		WarmupSamples:  8,
		WarmupDuration: 300 * time.Millisecond,
		NotifyInterval: 100 * time.Millisecond,
		SlowFallback:   0.6,
		Clock:          time.Now,
	}
}

func (c Config) withDefaults() Config {
	base := DefaultConfig()
	if c.Alpha > 0 && c.Alpha <= 1 {
		base.Alpha = c.Alpha
	}
	if c.WindowSize > 0 {
		base.WindowSize = c.WindowSize
	}
	if c.WarmupSamples > 0 {
		base.WarmupSamples = c.WarmupSamples
	}
	if c.WarmupDuration > 0 {
		base.WarmupDuration = c.WarmupDuration
	}
	if c.NotifyInterval > 0 {
		base.NotifyInterval = c.NotifyInterval
	}
	if c.SlowFallback > 0 {
		base.SlowFallback = c.SlowFallback
	}
	if c.Clock != nil {
		base.Clock = c.Clock
	}
	return base
}

// Estimator tracks a monotonically increasing done counter. It is safe for
// concurrent use.
type Estimator struct {
	mu         sync.Mutex
	cfg        Config
	start      time.Time
	last       time.Time
	lastNotify time.Time
	stage      Stage
	total      int
	done       int
	ema        float64
	rates      *window
}

func NewEstimator(total int, cfg Config) *Estimator {
	cfg = cfg.withDefaults()
	now := cfg.Clock()
	return &Estimator{
		cfg:   cfg,
		start: now,
		last:  now,
		stage: StageScan,
		total: total,
		rates: newWindow(cfg.WindowSize),
	}
}

func (e *Estimator) SetTotal(total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.total = total
}

// Observe records an absolute done count. Workers may report out of order,
// so counts at or below the current one are ignored. The bool reports
// whether observers should be notified.
func (e *Estimator) Observe(done int) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.observeLocked(done)
}

// Advance adds delta to the done count.
func (e *Estimator) Advance(delta int) (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.observeLocked(e.done + delta)
}

func (e *Estimator) observeLocked(done int) (Snapshot, bool) {
	now := e.cfg.Clock()
	if done <= e.done {
		return e.snapshotLocked(now), false
	}
	if now.Before(e.last) {
		now = e.last
	}
	dt := now.Sub(e.last).Seconds()
	if dt <= 0 {
		dt = 1e-6
	}
	instant := float64(done-e.done) / dt
	if math.IsNaN(instant) || math.IsInf(instant, 0) || instant < 0 {
		instant = 0
	}
	if e.ema == 0 {
		e.ema = instant
	} else {
		e.ema = e.cfg.Alpha*instant + (1-e.cfg.Alpha)*e.ema
	}
	e.rates.Add(instant)
	e.done = done
	e.last = now

	snap := e.snapshotLocked(now)
	notify := now.Sub(e.lastNotify) >= e.cfg.NotifyInterval || snap.Remaining == 0
	if notify {
		e.lastNotify = now
	}
	return snap, notify
}

// Stage switches to a new stage. Rates are kept; the rank stage has no
// counter of its own.
func (e *Estimator) Stage(stage Stage) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.cfg.Clock()
	e.stage = stage
	e.lastNotify = now
	return e.snapshotLocked(now)
}

func (e *Estimator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(e.cfg.Clock())
}

// Complete marks every item done.
func (e *Estimator) Complete() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.cfg.Clock()
	if e.total > e.done {
		e.done = e.total
	}
	e.lastNotify = now
	return e.snapshotLocked(now)
}

func (e *Estimator) snapshotLocked(now time.Time) Snapshot {
	remain := e.total - e.done
	if remain < 0 {
		remain = 0
	}
	elapsed := now.Sub(e.start)
	warm := e.done >= e.cfg.WarmupSamples || elapsed >= e.cfg.WarmupDuration
	p50 := e.rates.Quantile(0.50)
	p10 := e.rates.Quantile(0.10)
	if p50 <= 0 {
		p50 = e.ema
	}
	if p10 <= 0 {
		p10 = p50 * e.cfg.SlowFallback
	}
	snap := Snapshot{
		Stage:     e.stage,
		Total:     e.total,
		Done:      e.done,
		Remaining: remain,
		Rate:      e.ema,
		RateP50:   p50,
		RateP10:   p10,
		Warmup:    !warm,
		Elapsed:   elapsed,
	}
	if warm && remain > 0 {
		snap.ETA = durationFrom(float64(remain), p50)
		snap.ETASlow = durationFrom(float64(remain), p10)
	}
	return snap
}

func durationFrom(count, rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	seconds := count / rate
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0
	}
	if seconds > float64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}

func percent(a, b int) int {
	if b <= 0 {
		if a <= 0 {
			return 0
		}
		return 100
	}
	if a <= 0 {
		return 0
	}
	p := a * 100 / b
	if p > 100 {
		return 100
	}
	return p
}

package progress

import "sync"

// Tracker feeds worker callbacks into an Estimator and forwards throttled
// snapshots to an Observer. Snapshots reach the observer in the order they
// were taken.
type Tracker struct {
	est  *Estimator
	ob   Observer
	once sync.Once
	mu   sync.Mutex
}

func Track(ob Observer, cfg Config) *Tracker {
	if ob == nil {
		ob = NoopObserver{}
	}
	return &Tracker{est: NewEstimator(0, cfg), ob: ob}
}

// Report has the signature of scale.SuggestRequest.Progress.
func (t *Tracker) Report(done, total int) {
	t.once.Do(func() { t.est.SetTotal(total) })
	t.mu.Lock()
	defer t.mu.Unlock()
	if snap, notify := t.est.Observe(done); notify {
		t.ob.Publish(snap)
	}
}

// Stage publishes the stage switch immediately.
func (t *Tracker) Stage(s Stage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ob.Publish(t.est.Stage(s))
}

// Finish completes the estimate and tells the observer.
func (t *Tracker) Finish() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.est.Complete()
	t.ob.Done(snap)
	return snap
}

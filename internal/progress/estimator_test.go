package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Step(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestEstimatorAdvanceIsSequential(t *testing.T) {
	const workers = 128
	est := NewEstimator(workers, Config{NotifyInterval: time.Nanosecond})

	var wg sync.WaitGroup
	wg.Add(workers)
	start := make(chan struct{})
	results := make(chan int, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			snap, _ := est.Advance(1)
			results <- snap.Done
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	seen := make([]bool, workers)
	for r := range results {
		if r <= 0 || r > workers {
			t.Fatalf("進捗値が範囲外です: got=%d", r)
		}
		if seen[r-1] {
			t.Fatalf("進捗値が重複しました: got=%d", r)
		}
		seen[r-1] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("進捗値が欠落しています: index=%d", i+1)
		}
	}
}

func TestEstimatorIgnoresOutOfOrderCounts(t *testing.T) {
	clock := newFakeClock()
	est := NewEstimator(10, Config{Clock: clock.Now})
	clock.Step(time.Second)
	est.Observe(4)
	clock.Step(time.Second)
	snap, notify := est.Observe(3)
	if notify || snap.Done != 4 {
		t.Fatalf("古い件数で巻き戻ってはいけません: done=%d notify=%v", snap.Done, notify)
	}
}

func TestEstimatorETAAfterWarmup(t *testing.T) {
	clock := newFakeClock()
	est := NewEstimator(20, Config{Clock: clock.Now, WarmupSamples: 4, WarmupDuration: time.Hour})
	var snap Snapshot
	for i := 1; i <= 3; i++ {
		clock.Step(100 * time.Millisecond)
		snap, _ = est.Observe(i)
	}
	if !snap.Warmup || snap.ETA != 0 {
		t.Fatalf("ウォームアップ中は ETA を出しません: %+v", snap)
	}
	clock.Step(100 * time.Millisecond)
	snap, _ = est.Observe(4)
	if snap.Warmup {
		t.Fatal("4 件でウォームアップは終わるはずです")
	}
	// 10 件/秒で残り 16 件
	if snap.ETA < 1500*time.Millisecond || snap.ETA > 1700*time.Millisecond {
		t.Fatalf("ETA が期待と異なります: %v", snap.ETA)
	}
	if snap.ETASlow < snap.ETA {
		t.Fatalf("遅い側の ETA は中央値以上のはずです: %v < %v", snap.ETASlow, snap.ETA)
	}
}

func TestEstimatorNotifyInterval(t *testing.T) {
	clock := newFakeClock()
	est := NewEstimator(100, Config{Clock: clock.Now, NotifyInterval: time.Second})
	clock.Step(2 * time.Second)
	if _, notify := est.Observe(1); !notify {
		t.Fatal("間隔を過ぎたら通知するはずです")
	}
	clock.Step(10 * time.Millisecond)
	if _, notify := est.Observe(2); notify {
		t.Fatal("間隔内は通知しないはずです")
	}
	clock.Step(10 * time.Millisecond)
	if _, notify := est.Observe(100); !notify {
		t.Fatal("完了時は間隔に関係なく通知するはずです")
	}
}

func TestEstimatorComplete(t *testing.T) {
	est := NewEstimator(7, Config{})
	est.Observe(3)
	snap := est.Complete()
	if snap.Done != 7 || snap.Remaining != 0 || snap.Percent() != 100 {
		t.Fatalf("Complete 後は全件完了のはずです: %+v", snap)
	}
}

func TestTrackerReportsScan(t *testing.T) {
	var got []Snapshot
	var final Snapshot
	ob := &recorder{publish: func(s Snapshot) { got = append(got, s) }, done: func(s Snapshot) { final = s }}
	tr := Track(ob, Config{NotifyInterval: time.Nanosecond})
	for i := 1; i <= 5; i++ {
		tr.Report(i, 5)
	}
	tr.Stage(StageRank)
	tr.Finish()

	if len(got) == 0 || got[0].Total != 5 {
		t.Fatalf("総数が伝わっていません: %+v", got)
	}
	if last := got[len(got)-1]; last.Stage != StageRank {
		t.Fatalf("最後の通知は rank ステージのはずです: %s", last.Stage)
	}
	if final.Done != 5 || final.Stage != StageRank {
		t.Fatalf("完了スナップショットが不正です: %+v", final)
	}
}

func TestTrackerNeverPublishesStaleScan(t *testing.T) {
	const total, workers = 400, 8
	var got []Snapshot
	ob := &recorder{publish: func(s Snapshot) { got = append(got, s) }, done: func(Snapshot) {}}
	tr := Track(ob, Config{NotifyInterval: time.Nanosecond})

	var (
		mu   sync.Mutex
		next int
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				mu.Lock()
				next++
				n := next
				mu.Unlock()
				if n > total {
					return
				}
				tr.Report(n, total)
				if n == total {
					tr.Stage(StageRank)
				}
			}
		}()
	}
	wg.Wait()
	tr.Finish()

	ranked := false
	for i, s := range got {
		if s.Stage == StageRank {
			ranked = true
		} else if ranked {
			t.Fatalf("rank の後に scan が通知されました (index %d): %+v", i, s)
		}
		if i > 0 && s.Done < got[i-1].Done {
			t.Fatalf("done が逆戻りしました: %d -> %d", got[i-1].Done, s.Done)
		}
	}
	if !ranked {
		t.Fatal("rank ステージが通知されていません")
	}
}

type recorder struct {
	publish func(Snapshot)
	done    func(Snapshot)
}

func (r *recorder) Publish(s Snapshot) { r.publish(s) }
func (r *recorder) Done(s Snapshot)    { r.done(s) }

func TestPercentClampsTo100(t *testing.T) {
	if got := percent(5, 4); got != 100 {
		t.Fatalf("5/4 は 100%% として扱うべきです: got=%d", got)
	}
	if got := percent(0, 0); got != 0 {
		t.Fatalf("0/0 は 0%% のはずです: got=%d", got)
	}
}

func TestWindowQuantileAndWrap(t *testing.T) {
	w := newWindow(3)
	for _, v := range []float64{10, 20, 30, 40} {
		w.Add(v)
	}
	if w.Len() != 3 {
		t.Fatalf("窓の長さが不正です: %d", w.Len())
	}
	if got := w.Quantile(0); got != 20 {
		t.Fatalf("最も古い値は押し出されるはずです: min=%v", got)
	}
	if got := w.Quantile(0.5); got != 30 {
		t.Fatalf("中央値が不正です: %v", got)
	}
	if got := w.Quantile(0.25); got != 25 {
		t.Fatalf("線形補間が不正です: %v", got)
	}
}

func TestLineObserverFormat(t *testing.T) {
	var buf bytes.Buffer
	ob := NewLineObserver(&buf)
	ob.Publish(Snapshot{Stage: StageScan, Done: 3, Total: 61, Rate: 12.5, ETA: 2 * time.Second})
	line := buf.String()
	for _, want := range []string{"stage=scan", "done=3", "total=61", "rate=12.5", "eta=2.00s"} {
		if !strings.Contains(line, want) {
			t.Fatalf("%q が含まれていません: %s", want, line)
		}
	}
}

func TestRenderTTY(t *testing.T) {
	got := renderTTY(Snapshot{Stage: StageScan, Done: 30, Total: 61, Rate: 100, ETA: 75 * time.Second})
	want := "scan  49% 30/61 anchors 100/s eta 01:15"
	if got != want {
		t.Fatalf("renderTTY = %q, want %q", got, want)
	}
	warm := renderTTY(Snapshot{Stage: StageScan, Done: 1, Total: 61, Warmup: true})
	if !strings.Contains(warm, "--/s eta --:--") {
		t.Fatalf("ウォームアップ中は推定値を伏せるはずです: %q", warm)
	}
}

func TestShouldShowProgress(t *testing.T) {
	if ShouldShowProgress(true, true, nil) {
		t.Fatal("--no-progress が優先されるはずです")
	}
	if !ShouldShowProgress(true, false, nil) {
		t.Fatal("--progress なら常に表示するはずです")
	}
	if ShouldShowProgress(false, false, nil) {
		t.Fatal("端末でなければ表示しないはずです")
	}
}

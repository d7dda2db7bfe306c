package scale

import (
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/phyten/palettex/internal/colorutil"
)

// Suggest は中心アンカーの L を走査して候補スケールを組み立て、
// スコア順に CentralL が DedupSep 以上離れたものを最大 Count 件返す。
//
// 各候補では中心スロットを先に置き、外側のスロットを中心から近い順に
// 隣接スロットから MinSep 以上離して置く。置ける範囲が空になった候補は捨てる。
// 適用できるルールが 1 つもなければ空を返す。
// 走査は Jobs 本のワーカーで並列に行うが、結果は Jobs に依存しない。
func Suggest(req SuggestRequest) []Suggestion {
	n := len(req.Shape.Slots)
	if n == 0 {
		return nil
	}
	bySlot, applicable := req.rulesBySlot(n)
	if applicable == 0 {
		return nil
	}
	req = withDefaults(req)
	anchors := scanAnchors(req.ScanFrom, req.ScanTo, req.Step)
	order := placementOrder(req.Shape, n)

	cands := make([]*Suggestion, len(anchors))
	type job struct {
		idx    int
		anchor float64
	}
	jobs := make(chan job)
	var wg sync.WaitGroup
	var done atomic.Int64
	total := len(anchors)

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			cands[j.idx] = buildCandidate(req, bySlot, order, j.anchor)
			n := done.Add(1)
			if req.Progress != nil {
				req.Progress(int(n), total)
			}
		}
	}

	nw := req.Jobs
	if nw > len(anchors) {
		nw = len(anchors)
	}
	if nw < 1 {
		nw = 1
	}
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		go worker()
	}
	for i, a := range anchors {
		jobs <- job{idx: i, anchor: a}
	}
	close(jobs)
	wg.Wait()

	ranked := make([]Suggestion, 0, len(cands))
	for _, c := range cands {
		if c != nil {
			ranked = append(ranked, *c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return dedup(ranked, req.Count, req.DedupSep)
}

func withDefaults(req SuggestRequest) SuggestRequest {
	if req.Count <= 0 {
		req.Count = defaultCount
	}
	if !(req.Step > 0) {
		req.Step = defaultStep
	}
	if req.Step < MinStep {
		req.Step = MinStep
	}
	if math.IsNaN(req.ScanFrom) || math.IsNaN(req.ScanTo) || (req.ScanFrom == 0 && req.ScanTo == 0) {
		req.ScanFrom, req.ScanTo = defaultScanFrom, defaultScanTo
	}
	req.ScanFrom = clamp01(req.ScanFrom)
	req.ScanTo = clamp01(req.ScanTo)
	if req.ScanFrom > req.ScanTo {
		req.ScanFrom, req.ScanTo = req.ScanTo, req.ScanFrom
	}
	if !(req.DedupSep > 0) {
		req.DedupSep = defaultDedupSep
	}
	if req.Jobs <= 0 {
		req.Jobs = runtime.NumCPU()
	}
	if req.Jobs > maxJobs {
		req.Jobs = maxJobs
	}
	if !(req.Shape.MinSep >= 0) {
		req.Shape.MinSep = 0
	}
	return req
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// scanAnchors は [from, to] を step 刻みで列挙する。累積誤差を避けるため添字から計算する。
func scanAnchors(from, to, step float64) []float64 {
	count := int(math.Floor((to-from)/step+sepEpsilon)) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Round((from+float64(i)*step)*1e9) / 1e9
	}
	return out
}

// placementOrder は中心スロットを先頭に、残りを中心ブロックからの距離順に並べる。
func placementOrder(shape Shape, n int) []int {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = n
		for _, c := range shape.Central {
			if c < 0 || c >= n {
				continue
			}
			d := i - c
			if d < 0 {
				d = -d
			}
			if d < dist[i] {
				dist[i] = d
			}
		}
		if len(shape.Central) == 0 {
			dist[i] = i
		}
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dist[order[a]] < dist[order[b]]
	})
	return order
}

func buildCandidate(req SuggestRequest, bySlot [][]Rule, order []int, anchor float64) *Suggestion {
	n := len(bySlot)
	def := req.defaultRatio()
	sep := req.Shape.MinSep
	ls := make([]float64, n)
	placed := make([]bool, n)
	shades := make([]Shade, n)

	var centralPen, outwardPen, centralSum float64
	centrals := 0
	for _, i := range order {
		lo, hi := 0.0, 1.0
		for j := 0; j < n; j++ {
			if !placed[j] {
				continue
			}
			// スロットは明るい順なので、手前のスロットより暗く、後ろのスロットより明るく置く。
			if j < i {
				hi = math.Min(hi, ls[j]-sep)
			} else {
				lo = math.Max(lo, ls[j]+sep)
			}
		}
		if lo > hi {
			return nil
		}

		pref := anchor
		if i < len(req.Shape.Offsets) {
			pref += req.Shape.Offsets[i]
		}
		target := math.Min(math.Max(pref, lo), hi)
		l, satisfied := target, true
		if rules := bySlot[i]; len(rules) > 0 {
			if found, ok := FindBestL(req.Chroma, req.Hue, target, req.Surfaces, rules, def, lo, hi); ok {
				l = found
			} else {
				satisfied = false
			}
		}
		l, ok := keepApart(math.Min(math.Max(l, lo), hi), i, ls, placed, sep)
		if !ok {
			return nil
		}
		ls[i] = l
		placed[i] = true

		col := reconstruct(l, req.Chroma, req.Hue)
		shades[i] = Shade{
			Name:      req.Shape.slotName(i),
			Hex:       col.Hex(),
			L:         l,
			Satisfied: satisfied,
			Adjusted:  math.Abs(l-pref) > sepEpsilon,
			Checks:    req.evaluate(col, bySlot[i]),
		}
		if req.Shape.isCentral(i) {
			centralPen += centralDisplacement(l - pref)
			centralSum += l
			centrals++
		} else {
			outwardPen += outwardPenalty * math.Abs(l-pref)
		}
	}

	s := &Suggestion{Shades: shades, Anchor: anchor, Satisfied: true}
	for _, sh := range shades {
		if !sh.Satisfied {
			s.Satisfied = false
		}
	}
	if centrals > 0 {
		s.CentralL = centralSum / float64(centrals)
	} else {
		s.CentralL = anchor
	}
	s.Score = ruleScore(shades) - centralPen - outwardPen + proximity(anchor, req.Reference)
	return s
}

// keepApart は丸め誤差で配置済みの隣から sep 未満に寄った l を ulp 単位で押し戻す。
// 両側を同時に満たせないときは false を返す。
func keepApart(l float64, i int, ls []float64, placed []bool, sep float64) (float64, bool) {
	for j := range ls {
		if !placed[j] {
			continue
		}
		if j < i {
			for ls[j]-l < sep {
				l = math.Nextafter(l, math.Inf(-1))
			}
		} else {
			for l-ls[j] < sep {
				l = math.Nextafter(l, math.Inf(1))
			}
		}
	}
	for j := range ls {
		if placed[j] && ((j < i && ls[j]-l < sep) || (j > i && l-ls[j] < sep)) {
			return l, false
		}
	}
	return l, true
}

// dedup はスコア順の候補から CentralL が sep 未満に近いものを飛ばして最大 count 件取る。
func dedup(ranked []Suggestion, count int, sep float64) []Suggestion {
	out := make([]Suggestion, 0, count)
	for _, c := range ranked {
		if len(out) >= count {
			break
		}
		near := false
		for _, s := range out {
			if math.Abs(s.CentralL-c.CentralL) < sep {
				near = true
				break
			}
		}
		if !near {
			out = append(out, c)
		}
	}
	return out
}

// Reference は accent の OKLCH から Suggest に渡す彩度・色相・基準 L を取り出す。
func Reference(accent colorutil.RGB) (chroma, hue, lightness float64) {
	o := colorutil.ToOKLCH(accent)
	return o.C, o.H, o.L
}

package scale

import (
	"math"

	"github.com/phyten/palettex/internal/colorutil"
)

// L の探索は固定回数で打ち切る。収束判定は行わない。
const (
	searchIterations = 40
	probeSteps       = 16
)

// PassesAll は (l, c, h) から復元した色が rules をすべて満たすかを返す。
// rules の Slot は見ない。未知のサーフェスを参照するルールは無視する。
func PassesAll(l, c, h float64, surfaces map[string]colorutil.RGB, rules []Rule, def float64) bool {
	return passesColor(reconstruct(l, c, h), surfaces, rules, def)
}

// FindBestL は target をできるだけ動かさずに rules を満たす L を [lo, hi] から探す。
// target がそのまま通るなら target を返す。明るい側 [target, hi] と暗い側 [lo, target]
// をそれぞれ探索し、target に近い方を返す。どちらも見つからなければ ok=false。
func FindBestL(c, h, target float64, surfaces map[string]colorutil.RGB, rules []Rule, def, lo, hi float64) (float64, bool) {
	if lo > hi {
		return 0, false
	}
	target = math.Min(math.Max(target, lo), hi)
	meets := func(l float64) bool { return PassesAll(l, c, h, surfaces, rules, def) }
	if meets(target) {
		return target, true
	}
	best, found := 0.0, false
	for _, far := range []float64{hi, lo} {
		l, ok := bisect(target, far, meets)
		if !ok {
			continue
		}
		if !found || math.Abs(l-target) < math.Abs(best-target) {
			best, found = l, true
		}
	}
	return best, found
}

// bisect は失敗する start から far に向けて probeSteps 等分で通過点を探し、
// 最初に見つかった区間で境界を詰めて start に最も近い通過値を返す。
// 通過域が区間の途中にしかない場合 (両端が失敗する場合) も拾える。
func bisect(start, far float64, meets func(float64) bool) (float64, bool) {
	if start == far {
		return 0, false
	}
	bad := start
	good, found := 0.0, false
	for k := 1; k <= probeSteps; k++ {
		p := start + (far-start)*float64(k)/probeSteps
		if meets(p) {
			good, found = p, true
			break
		}
		bad = p
	}
	if !found {
		return 0, false
	}
	for i := 0; i < searchIterations; i++ {
		mid := (good + bad) / 2
		if meets(mid) {
			good = mid
		} else {
			bad = mid
		}
	}
	return good, true
}

func reconstruct(l, c, h float64) colorutil.RGB {
	return colorutil.FromOKLCH(colorutil.OKLCH{L: l, C: c, H: h})
}

func passesColor(col colorutil.RGB, surfaces map[string]colorutil.RGB, rules []Rule, def float64) bool {
	p := Problem{Surfaces: surfaces, Ratio: def}
	for _, r := range rules {
		bg, ok := surfaces[r.Surface]
		if !ok {
			continue
		}
		if colorutil.ContrastRatio(col, bg) < p.target(r) {
			return false
		}
	}
	return true
}

// evaluate は col に対する各ルールの結果を返す。
func (p Problem) evaluate(col colorutil.RGB, rules []Rule) []Check {
	if len(rules) == 0 {
		return nil
	}
	checks := make([]Check, 0, len(rules))
	for _, r := range rules {
		bg, ok := p.Surfaces[r.Surface]
		if !ok {
			continue
		}
		ratio := colorutil.ContrastRatio(col, bg)
		t := p.target(r)
		checks = append(checks, Check{
			Surface: r.Surface,
			Target:  t,
			Ratio:   colorutil.RoundRatio(ratio),
			Pass:    ratio >= t,
		})
	}
	return checks
}

func allPass(checks []Check) bool {
	for _, c := range checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

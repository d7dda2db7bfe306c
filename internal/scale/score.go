package scale

import "math"

// スコアの重み。相対的な大小関係だけが意味を持つ。
const (
	satisfiedBonus = 10.0
	marginCap      = 5.0
	// 中心スロットの L 変位 1 ポイント (0.01) あたり
	centralPenalty = 2.0
	// 外側スロットの推奨位置からのずれ 1.0 あたり
	outwardPenalty = 20.0
	proximityBonus = 10.0
	proximityReach = 0.25
)

const (
	defaultDedupSep = 0.05
	defaultCount    = 3
	defaultStep     = 0.01
	defaultScanFrom = 0.20
	defaultScanTo   = 0.80
	maxJobs         = 64
	sepEpsilon      = 1e-9
)

// MinStep は走査刻みの下限。アンカー数は 1/MinStep+1 を超えない。
const MinStep = 0.001

// ruleScore は満たしたスロットごとに 10 点、通過したルールごとに余裕 (上限 5) を加える。
func ruleScore(shades []Shade) float64 {
	var s float64
	for _, sh := range shades {
		if sh.Satisfied {
			s += satisfiedBonus
		}
		for _, c := range sh.Checks {
			if c.Pass {
				s += math.Min(c.Ratio-c.Target, marginCap)
			}
		}
	}
	return s
}

func centralDisplacement(delta float64) float64 {
	return centralPenalty * math.Abs(delta) * 100
}

func proximity(anchor, ref float64) float64 {
	return proximityBonus * math.Max(0, 1-math.Abs(anchor-ref)/proximityReach)
}

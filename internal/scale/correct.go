package scale

import "github.com/phyten/palettex/internal/colorutil"

// Correct は既存の色を 1 スロットずつ検査し、ルールを満たさないスロットだけ
// 共有の彩度・色相で L を動かして補正する。
//
// ルールのないスロットと既に満たしているスロットはそのまま残す。
// 探索で解が見つからないスロットは元の色のまま Satisfied=false にする。
// 中心スロットの L 変位は減点される。
func Correct(req CorrectRequest) Suggestion {
	n := len(req.Colors)
	bySlot, _ := req.rulesBySlot(n)
	def := req.defaultRatio()

	out := Suggestion{Shades: make([]Shade, n), Satisfied: true}
	var penalty, centralSum float64
	centrals := 0
	for i, col := range req.Colors {
		orig := colorutil.ToOKLCH(col).L
		sh := Shade{Name: req.Shape.slotName(i), Hex: col.Hex(), L: orig, Satisfied: true}
		rules := bySlot[i]
		if len(rules) > 0 && !passesColor(col, req.Surfaces, rules, def) {
			if l, ok := FindBestL(req.Chroma, req.Hue, orig, req.Surfaces, rules, def, 0, 1); ok {
				adjusted := reconstruct(l, req.Chroma, req.Hue)
				sh.Hex = adjusted.Hex()
				sh.L = l
				sh.Adjusted = true
				col = adjusted
			} else {
				sh.Satisfied = false
			}
		}
		sh.Checks = req.evaluate(col, rules)
		if !sh.Satisfied {
			out.Satisfied = false
		}
		if req.Shape.isCentral(i) {
			penalty += centralDisplacement(sh.L - orig)
			centralSum += sh.L
			centrals++
		}
		out.Shades[i] = sh
	}
	out.Score = ruleScore(out.Shades) - penalty
	if centrals > 0 {
		out.CentralL = centralSum / float64(centrals)
		out.Anchor = out.CentralL
	}
	return out
}

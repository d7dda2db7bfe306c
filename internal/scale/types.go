// Package scale は複数サーフェスに対する最小コントラスト制約を満たす
// 知覚的に均一なカラースケールを探索する。
package scale

import (
	"strconv"

	"github.com/phyten/palettex/internal/colorutil"
)

// Rule はスロット Slot がサーフェス Surface に対して満たすべき最小コントラスト比。
// Ratio が 0 以下のときは Problem.Ratio を使う。
type Rule struct {
	Slot    int     `json:"slot"`
	Surface string  `json:"surface"`
	Ratio   float64 `json:"ratio,omitempty"`
}

// Check は 1 ルールの評価結果
type Check struct {
	Surface string  `json:"surface"`
	Target  float64 `json:"target"`
	Ratio   float64 `json:"ratio"`
	Pass    bool    `json:"pass"`
}

// Shade はスケール内の 1 スロット
type Shade struct {
	Name      string  `json:"name"`
	Hex       string  `json:"hex"`
	L         float64 `json:"l"`
	Satisfied bool    `json:"satisfied"`
	Adjusted  bool    `json:"adjusted"`
	Checks    []Check `json:"checks,omitempty"`
}

// Suggestion は明るい順に並んだ Shade とスコア
type Suggestion struct {
	Shades    []Shade `json:"shades"`
	Score     float64 `json:"score"`
	Anchor    float64 `json:"anchor"`
	CentralL  float64 `json:"central_l"`
	Satisfied bool    `json:"satisfied"`
}

// Shape はスケールの形。Slots は明るい順、Central は中心スロットの添字、
// Offsets は中心アンカーからの推奨 L 差、MinSep は隣接スロット間の最小 L 差。
type Shape struct {
	Name    string    `json:"name"`
	Slots   []string  `json:"slots"`
	Central []int     `json:"central"`
	Offsets []float64 `json:"offsets"`
	MinSep  float64   `json:"min_sep"`
}

// Problem は両モード共通の入力
type Problem struct {
	Chroma   float64
	Hue      float64
	Surfaces map[string]colorutil.RGB
	Rules    []Rule
	Ratio    float64
}

// CorrectRequest は既存の色を補正するモードの入力
type CorrectRequest struct {
	Problem
	Shape  Shape
	Colors []colorutil.RGB
}

// SuggestRequest は候補スケールを生成するモードの入力
type SuggestRequest struct {
	Problem
	Shape     Shape
	Reference float64
	Count     int
	Step      float64
	ScanFrom  float64
	ScanTo    float64
	DedupSep  float64
	Jobs      int
	// Progress はアンカー 1 つの評価が終わるたびに呼ばれる。複数のワーカーから
	// 同時に呼ばれうるので、実装側で排他すること。
	Progress func(done, total int)
}

func (p Problem) defaultRatio() float64 {
	if p.Ratio <= 0 {
		return colorutil.DefaultRatio
	}
	return p.Ratio
}

func (p Problem) target(r Rule) float64 {
	if r.Ratio <= 0 {
		return p.defaultRatio()
	}
	return r.Ratio
}

// rulesBySlot は範囲外スロットと未知サーフェスを捨て、スロットごとに束ねる。
func (p Problem) rulesBySlot(slots int) ([][]Rule, int) {
	out := make([][]Rule, slots)
	n := 0
	for _, r := range p.Rules {
		if r.Slot < 0 || r.Slot >= slots {
			continue
		}
		if _, ok := p.Surfaces[r.Surface]; !ok {
			continue
		}
		out[r.Slot] = append(out[r.Slot], r)
		n++
	}
	return out, n
}

func (s Shape) slotName(i int) string {
	if i < len(s.Slots) && s.Slots[i] != "" {
		return s.Slots[i]
	}
	return "slot" + strconv.Itoa(i+1)
}

func (s Shape) isCentral(i int) bool {
	for _, c := range s.Central {
		if c == i {
			return true
		}
	}
	return false
}

package scale

import (
	"sort"
	"strconv"
	"strings"
)

// 組み込みのスケール形状。
var presets = map[string]Shape{
	"trio": {
		Name:    "trio",
		Slots:   []string{"light", "accent", "dark"},
		Central: []int{1},
		Offsets: []float64{0.22, 0, -0.22},
		MinSep:  0.10,
	},
	"quad": {
		Name:    "quad",
		Slots:   []string{"lighter", "light", "dark", "darker"},
		Central: []int{1, 2},
		Offsets: []float64{0.30, 0.08, -0.08, -0.30},
		MinSep:  0.08,
	},
}

// DefaultPreset は設定がないときに使う形状名
const DefaultPreset = "trio"

// PresetByName は名前 (大文字小文字を区別しない) から形状を返す。
// 返す Shape のスライスは呼び出し側で書き換えてもよい。
func PresetByName(name string) (Shape, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Shape{}, false
	}
	return Shape{
		Name:    p.Name,
		Slots:   append([]string(nil), p.Slots...),
		Central: append([]int(nil), p.Central...),
		Offsets: append([]float64(nil), p.Offsets...),
		MinSep:  p.MinSep,
	}, true
}

// PresetNames は組み込み形状の名前をソートして返す。
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SlotIndex は slot 名または 0 始まりの番号を添字に変換する。
func (s Shape) SlotIndex(slot string) (int, bool) {
	slot = strings.ToLower(strings.TrimSpace(slot))
	for i, name := range s.Slots {
		if strings.ToLower(name) == slot {
			return i, true
		}
	}
	n, err := strconv.Atoi(slot)
	if err != nil || n < 0 || n >= len(s.Slots) {
		return 0, false
	}
	return n, true
}

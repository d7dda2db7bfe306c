package engine

import (
	"github.com/phyten/palettex/internal/opts"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/palette"
	"github.com/phyten/palettex/internal/progress"
)

// Kind は実行するコマンドの種類
type Kind string

const (
	KindContrast Kind = "contrast"
	KindSimulate Kind = "simulate"
	KindAdjust   Kind = "adjust"
	KindCorrect  Kind = "correct"
	KindSuggest  Kind = "suggest"
	KindAudit    Kind = "audit"
	KindDistinct Kind = "distinct"
)

// Kinds は CLI のサブコマンドと Web API の順に並べた一覧
func Kinds() []Kind {
	return []Kind{KindContrast, KindSimulate, KindAdjust, KindCorrect, KindSuggest, KindAudit, KindDistinct}
}

// Request は CLI と Web に共通の入力。色はすべて hex 文字列のまま受け取り、
// 検証はコマンドごとに行う。
type Request struct {
	Options opts.Options
	Themes  palette.ThemeConfig

	Foregrounds []string // contrast / adjust
	Backgrounds []string // contrast / adjust
	Colors      []string // simulate / correct / suggest / distinct
	Surfaces    []string // name=#hex
	Rules       []string // slot:surface[:ratio]

	// テーマ名。Colors が空のときはテーマから色を取る。空文字は先頭のテーマ
	Accent string
	Light  string
	Dark   string
	Scheme string // light|dark。audit などで使うトーン

	Target    float64 // adjust の目標比。0 は Options.Ratio
	Threshold float64 // distinct の ΔE しきい値

	ProgressObserver progress.Observer `json:"-"`
}

// Result は出力
type Result struct {
	Kind      Kind
	Dataset   output.Dataset
	ElapsedMS int64
}

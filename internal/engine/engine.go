// Package engine は CLI と Web から受け取った Request を色エンジンの各機能に
// 振り分け、出力用の Dataset にまとめる。
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phyten/palettex/internal/palette"
)

// Run は kind に応じたコマンドを実行して Dataset を返します。
//
// 入力の検証エラーはそのまま返します。エンジン自体は I/O を行わないため、
// 返るエラーはすべて利用者の入力に起因するものです。
func Run(ctx context.Context, kind Kind, req Request) (*Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		res *Result
		err error
	)
	switch kind {
	case KindContrast:
		res, err = runContrast(req)
	case KindSimulate:
		res, err = runSimulate(req)
	case KindAdjust:
		res, err = runAdjust(req)
	case KindCorrect:
		res, err = runCorrect(req)
	case KindSuggest:
		res, err = runSuggest(ctx, req)
	case KindAudit:
		res, err = runAudit(req)
	case KindDistinct:
		res, err = runDistinct(req)
	default:
		return nil, fmt.Errorf("unknown command: %s", kind)
	}
	if err != nil {
		return nil, err
	}
	res.Kind = kind
	res.ElapsedMS = msSince(start)
	return res, nil
}

// ParseKind はコマンド名を Kind に変換する。大文字小文字は区別しない。
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

func (r Request) themes() palette.ThemeConfig {
	if len(r.Themes.Accent) == 0 && len(r.Themes.Light) == 0 && len(r.Themes.Dark) == 0 {
		return palette.Default()
	}
	return r.Themes
}

func (r Request) accent() (palette.AccentTheme, error) {
	a, ok := r.themes().FindAccent(r.Accent)
	if !ok {
		return palette.AccentTheme{}, fmt.Errorf("unknown accent theme: %q", r.Accent)
	}
	return a, nil
}

func (r Request) tone(scheme string) (palette.ToneTheme, error) {
	name := r.Light
	if scheme == "dark" {
		name = r.Dark
	}
	t, ok := r.themes().FindTone(scheme, name)
	if !ok {
		return palette.ToneTheme{}, fmt.Errorf("unknown %s tone: %q", scheme, name)
	}
	return t, nil
}

func (r Request) tones() (light, dark palette.ToneTheme, err error) {
	if light, err = r.tone("light"); err != nil {
		return
	}
	dark, err = r.tone("dark")
	return
}

// scheme は audit などで使うトーンの側。auto と空は light。
func (r Request) scheme() (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(r.Scheme)); s {
	case "", "auto", "light":
		return "light", nil
	case "dark":
		return "dark", nil
	default:
		return "", fmt.Errorf("invalid --scheme: %s (want auto, light or dark)", r.Scheme)
	}
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}

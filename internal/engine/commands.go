package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/opts"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/palette"
	"github.com/phyten/palettex/internal/progress"
	"github.com/phyten/palettex/internal/scale"
)

type colorPair struct {
	fg, bg colorutil.RGB
}

// pairColors は前景と背景を組にする。片側が 1 色ならもう片側の全色と組み、
// 同数なら順に組む。
func pairColors(fgs, bgs []string) ([]colorPair, error) {
	fg, err := opts.ParseColors(fgs)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := opts.ParseColors(bgs)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if len(fg) == 0 || len(bg) == 0 {
		return nil, errors.New("need at least one foreground and one background color")
	}
	var out []colorPair
	switch {
	case len(bg) == 1:
		for _, f := range fg {
			out = append(out, colorPair{f, bg[0]})
		}
	case len(fg) == 1:
		for _, b := range bg {
			out = append(out, colorPair{fg[0], b})
		}
	case len(fg) == len(bg):
		for i := range fg {
			out = append(out, colorPair{fg[i], bg[i]})
		}
	default:
		return nil, fmt.Errorf("got %d foregrounds and %d backgrounds: give one color on either side or the same count on both", len(fg), len(bg))
	}
	return out, nil
}

func runContrast(req Request) (*Result, error) {
	pairs, err := pairColors(req.Foregrounds, req.Backgrounds)
	if err != nil {
		return nil, err
	}
	evals := make([]colorutil.Pair, len(pairs))
	for i, p := range pairs {
		evals[i] = colorutil.EvaluatePair(p.fg, p.bg)
	}
	return &Result{Dataset: output.ContrastDataset(evals)}, nil
}

func runAdjust(req Request) (*Result, error) {
	pairs, err := pairColors(req.Foregrounds, req.Backgrounds)
	if err != nil {
		return nil, err
	}
	target := req.Target
	if target == 0 {
		target = req.Options.Ratio
	}
	if !(target >= 1 && target <= 21) {
		return nil, fmt.Errorf("target must be between 1 and 21")
	}
	reports := make([]colorutil.AdjustReport, len(pairs))
	for i, p := range pairs {
		reports[i] = colorutil.Adjust(p.fg, p.bg, target)
	}
	return &Result{Dataset: output.AdjustDataset(reports)}, nil
}

// swatches は指定色、なければ選んだトーンとアクセントの色を並べる。
func (r Request) swatches() ([]palette.Swatch, error) {
	if len(r.Colors) > 0 {
		colors, err := opts.ParseColors(r.Colors)
		if err != nil {
			return nil, err
		}
		out := make([]palette.Swatch, len(colors))
		for i, c := range colors {
			out[i] = palette.Swatch{Name: c.Hex(), Hex: c.Hex(), Color: c}
		}
		return out, nil
	}
	scheme, err := r.scheme()
	if err != nil {
		return nil, err
	}
	tone, err := r.tone(scheme)
	if err != nil {
		return nil, err
	}
	accent, err := r.accent()
	if err != nil {
		return nil, err
	}
	var out []palette.Swatch
	out = append(out, tone.Surfaces()...)
	out = append(out, tone.Texts()...)
	out = append(out, accent.Swatches()...)
	return out, nil
}

func runSimulate(req Request) (*Result, error) {
	sws, err := req.swatches()
	if err != nil {
		return nil, err
	}
	defs := req.Options.Deficiencies()
	return &Result{Dataset: output.SimulateDataset(palette.SimulateSwatches(sws, defs), defs)}, nil
}

func runDistinct(req Request) (*Result, error) {
	sws, err := req.swatches()
	if err != nil {
		return nil, err
	}
	if len(sws) < 2 {
		return nil, errors.New("need at least two colors to compare")
	}
	if !(req.Threshold >= 0 && req.Threshold <= 100) {
		return nil, fmt.Errorf("threshold must be between 0 and 100")
	}
	defs := req.Options.Deficiencies()
	reports := make([]palette.DistinctReport, len(defs))
	for i, d := range defs {
		reports[i] = palette.Distinguishability(sws, d, req.Threshold)
	}
	return &Result{Dataset: output.DistinctDataset(reports)}, nil
}

func runAudit(req Request) (*Result, error) {
	scheme, err := req.scheme()
	if err != nil {
		return nil, err
	}
	tone, err := req.tone(scheme)
	if err != nil {
		return nil, err
	}
	accent, err := req.accent()
	if err != nil {
		return nil, err
	}
	return &Result{Dataset: output.AuditDataset(palette.Audit(tone, accent, req.Options.Size))}, nil
}

// customProblem は --surface と --rule で与えた問題を組み立てる。base は
// 彩度と色相と基準 L を決める色。
func (r Request) customProblem(shape scale.Shape, base colorutil.RGB) (scale.Problem, float64, error) {
	surfaces, err := opts.ParseSurfaces(r.Surfaces)
	if err != nil {
		return scale.Problem{}, 0, err
	}
	rules, err := opts.ParseRules(r.Rules, shape)
	if err != nil {
		return scale.Problem{}, 0, err
	}
	c, h, l := scale.Reference(base)
	return scale.Problem{
		Chroma:   c,
		Hue:      h,
		Surfaces: surfaces,
		Rules:    rules,
		Ratio:    r.Options.Ratio,
	}, l, nil
}

// themeProblem はアクセントテーマと両トーンから問題を組み立てる。--rule が
// なければトーンをまたぐ既定のルールを使う。
func (r Request) themeProblem(shape scale.Shape) (palette.AccentTheme, scale.Problem, float64, error) {
	accent, err := r.accent()
	if err != nil {
		return accent, scale.Problem{}, 0, err
	}
	light, dark, err := r.tones()
	if err != nil {
		return accent, scale.Problem{}, 0, err
	}
	rules := palette.AccentRules(shape, r.Options.Ratio)
	if len(r.Rules) > 0 {
		if rules, err = opts.ParseRules(r.Rules, shape); err != nil {
			return accent, scale.Problem{}, 0, err
		}
	}
	prob, ref, err := palette.AccentProblem(accent, light, dark, rules, r.Options.Ratio)
	return accent, prob, ref, err
}

func runCorrect(req Request) (*Result, error) {
	shape, err := req.Options.Shape()
	if err != nil {
		return nil, err
	}
	var creq scale.CorrectRequest
	if len(req.Surfaces) > 0 {
		colors, err := opts.ParseColors(req.Colors)
		if err != nil {
			return nil, err
		}
		if len(colors) != len(shape.Slots) {
			return nil, fmt.Errorf("correct: got %d colors for the %d-slot %s scale", len(colors), len(shape.Slots), shape.Name)
		}
		prob, _, err := req.customProblem(shape, colors[centralIndex(shape)])
		if err != nil {
			return nil, err
		}
		creq = scale.CorrectRequest{Problem: prob, Shape: shape, Colors: colors}
	} else {
		accent, prob, _, err := req.themeProblem(shape)
		if err != nil {
			return nil, err
		}
		colors, err := palette.AccentColors(accent, shape)
		if err != nil {
			return nil, err
		}
		creq = scale.CorrectRequest{Problem: prob, Shape: shape, Colors: colors}
	}
	sug := scale.Correct(creq)
	return &Result{Dataset: output.ScaleDataset(string(KindCorrect), []scale.Suggestion{sug}, sug)}, nil
}

func runSuggest(ctx context.Context, req Request) (*Result, error) {
	shape, err := req.Options.Shape()
	if err != nil {
		return nil, err
	}
	sreq := req.Options.SuggestRequest()
	sreq.Shape = shape
	if len(req.Surfaces) > 0 {
		colors, err := opts.ParseColors(req.Colors)
		if err != nil {
			return nil, err
		}
		if len(colors) != 1 {
			return nil, fmt.Errorf("suggest: need exactly one base color with --surface, got %d", len(colors))
		}
		if sreq.Problem, sreq.Reference, err = req.customProblem(shape, colors[0]); err != nil {
			return nil, err
		}
	} else {
		if _, sreq.Problem, sreq.Reference, err = req.themeProblem(shape); err != nil {
			return nil, err
		}
	}

	var tr *progress.Tracker
	if req.ProgressObserver != nil {
		tr = progress.Track(req.ProgressObserver, progress.Config{})
		sreq.Progress = func(done, total int) {
			tr.Report(done, total)
			if done == total {
				tr.Stage(progress.StageRank)
			}
		}
	}
	sugs := scale.Suggest(sreq)
	if tr != nil {
		tr.Finish()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sugs == nil {
		sugs = []scale.Suggestion{}
	}
	return &Result{Dataset: output.ScaleDataset(string(KindSuggest), sugs, sugs)}, nil
}

// centralIndex は彩度と色相を取る中心スロット。中心がなければ真ん中。
func centralIndex(shape scale.Shape) int {
	for _, c := range shape.Central {
		if c >= 0 && c < len(shape.Slots) {
			return c
		}
	}
	return len(shape.Slots) / 2
}

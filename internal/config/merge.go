package config

import "strings"

func MergeSolver(base SolverSettings, layers ...SolverConfig) SolverSettings {
	out := base
	for _, layer := range layers {
		out.Ratio = pick(out.Ratio, layer.Ratio)
		out.Size = pickTrimmed(out.Size, layer.Size)
		out.Count = pick(out.Count, layer.Count)
		out.Jobs = pick(out.Jobs, layer.Jobs)
		out.Preset = pickTrimmed(out.Preset, layer.Preset)
		out.MinSep = pick(out.MinSep, layer.MinSep)
		out.Step = pick(out.Step, layer.Step)
		out.ScanFrom = pick(out.ScanFrom, layer.ScanFrom)
		out.ScanTo = pick(out.ScanTo, layer.ScanTo)
		out.Dedup = pick(out.Dedup, layer.Dedup)
		out.Vision = pickList(out.Vision, layer.Vision)
		out.Themes = pickTrimmed(out.Themes, layer.Themes)
	}
	if strings.TrimSpace(out.Size) == "" {
		out.Size = "normal"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Output = pickTrimmed(out.Output, layer.Output)
		out.Color = pickTrimmed(out.Color, layer.Color)
		out.Fields = pickTrimmed(out.Fields, layer.Fields)
		out.Open = pick(out.Open, layer.Open)
		out.Scheme = pickTrimmed(out.Scheme, layer.Scheme)
		out.Addr = pickTrimmed(out.Addr, layer.Addr)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

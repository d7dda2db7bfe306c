package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/palette"
	"github.com/phyten/palettex/internal/scale"
)

func ContrastDataset(pairs []colorutil.Pair) Dataset {
	ds := Dataset{
		Kind: "contrast",
		Fields: []Field{
			{Key: "fg", Header: "FG"},
			{Key: "bg", Header: "BG"},
			{Key: "ratio", Header: "RATIO", Right: true},
			{Key: "normal", Header: "NORMAL"},
			{Key: "large", Header: "LARGE"},
		},
	}
	for _, p := range pairs {
		ds.Records = append(ds.Records, Record{
			Values: map[string]string{
				"fg":     p.Foreground,
				"bg":     p.Background,
				"ratio":  p.Ratio,
				"normal": string(p.Normal.Level),
				"large":  string(p.Large.Level),
			},
			Colors: swatchColors(map[string]string{"fg": p.Foreground, "bg": p.Background}),
			Levels: map[string]colorutil.Level{"normal": p.Normal.Level, "large": p.Large.Level},
			Data:   p,
		})
	}
	return ds
}

func SimulateDataset(rows []palette.SimulatedSwatch, defs []colorutil.Deficiency) Dataset {
	ds := Dataset{
		Kind: "simulate",
		Fields: []Field{
			{Key: "name", Header: "NAME"},
			{Key: "hex", Header: "HEX"},
		},
	}
	for _, d := range defs {
		ds.Fields = append(ds.Fields, Field{Key: d.String(), Header: strings.ToUpper(d.String())})
	}
	for _, row := range rows {
		values := map[string]string{"name": row.Name, "hex": row.Hex}
		hexes := map[string]string{"hex": row.Hex}
		for k, v := range row.Simulated {
			values[k] = v
			hexes[k] = v
		}
		ds.Records = append(ds.Records, Record{Values: values, Colors: swatchColors(hexes), Data: row})
	}
	return ds
}

func AdjustDataset(reports []colorutil.AdjustReport) Dataset {
	ds := Dataset{
		Kind: "adjust",
		Fields: []Field{
			{Key: "fg", Header: "FG"},
			{Key: "bg", Header: "BG"},
			{Key: "ratio", Header: "RATIO", Right: true},
			{Key: "target", Header: "TARGET", Right: true},
			{Key: "suggested", Header: "SUGGESTED"},
			{Key: "new_ratio", Header: "NEW", Right: true},
			{Key: "delta_l", Header: "ΔL", Right: true},
		},
	}
	for _, rep := range reports {
		values := map[string]string{
			"fg":     rep.Foreground,
			"bg":     rep.Background,
			"ratio":  rep.Ratio,
			"target": strconv.FormatFloat(rep.Target, 'f', -1, 64),
		}
		hexes := map[string]string{"fg": rep.Foreground, "bg": rep.Background}
		if rep.Adjustment != nil {
			values["suggested"] = rep.Adjustment.Hex
			values["new_ratio"] = colorutil.FormatRatio(rep.Adjustment.Ratio)
			values["delta_l"] = fmt.Sprintf("%+.2f", rep.Adjustment.DeltaLightness)
			hexes["suggested"] = rep.Adjustment.Hex
		} else {
			values["suggested"] = "none"
		}
		ds.Records = append(ds.Records, Record{Values: values, Colors: swatchColors(hexes), Data: rep})
	}
	return ds
}

// ShadeRow is one shade of a ranked scale in streaming output.
type ShadeRow struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
	scale.Shade
}

// ScaleDataset lists the shades of each suggestion, best first. payload is
// the JSON document, usually the suggestion or the slice itself.
func ScaleDataset(kind string, sugs []scale.Suggestion, payload any) Dataset {
	ds := Dataset{
		Kind: kind,
		Fields: []Field{
			{Key: "rank", Header: "#", Right: true},
			{Key: "score", Header: "SCORE", Right: true},
			{Key: "slot", Header: "SLOT"},
			{Key: "hex", Header: "HEX"},
			{Key: "l", Header: "L", Right: true},
			{Key: "status", Header: "STATUS"},
			{Key: "checks", Header: "CHECKS"},
		},
		Payload: payload,
	}
	for i, s := range sugs {
		for _, sh := range s.Shades {
			ds.Records = append(ds.Records, Record{
				Values: map[string]string{
					"rank":   strconv.Itoa(i + 1),
					"score":  strconv.FormatFloat(s.Score, 'f', 2, 64),
					"slot":   sh.Name,
					"hex":    sh.Hex,
					"l":      strconv.FormatFloat(sh.L, 'f', 3, 64),
					"status": shadeStatus(sh),
					"checks": formatChecks(sh.Checks),
				},
				Colors: swatchColors(map[string]string{"hex": sh.Hex}),
				Data:   ShadeRow{Rank: i + 1, Score: s.Score, Shade: sh},
			})
		}
	}
	return ds
}

func shadeStatus(sh scale.Shade) string {
	switch {
	case !sh.Satisfied:
		return "unsatisfied"
	case sh.Adjusted:
		return "adjusted"
	default:
		return "ok"
	}
}

func formatChecks(checks []scale.Check) string {
	parts := make([]string, 0, len(checks))
	for _, c := range checks {
		mark := "ok"
		if !c.Pass {
			mark = "fail"
		}
		parts = append(parts, fmt.Sprintf("%s %s/%s %s", c.Surface, colorutil.FormatRatio(c.Ratio), strconv.FormatFloat(c.Target, 'f', -1, 64), mark))
	}
	return strings.Join(parts, "; ")
}

func AuditDataset(rows []palette.AuditRow) Dataset {
	ds := Dataset{
		Kind: "audit",
		Fields: []Field{
			{Key: "fg", Header: "FG"},
			{Key: "bg", Header: "BG"},
			{Key: "fg_hex", Header: "FG HEX"},
			{Key: "bg_hex", Header: "BG HEX"},
			{Key: "ratio", Header: "RATIO", Right: true},
			{Key: "level", Header: "LEVEL"},
		},
	}
	for _, r := range rows {
		ds.Records = append(ds.Records, Record{
			Values: map[string]string{
				"fg":     r.Foreground,
				"bg":     r.Background,
				"fg_hex": r.FgHex,
				"bg_hex": r.BgHex,
				"ratio":  r.Ratio,
				"level":  string(r.Result.Level),
			},
			Colors: swatchColors(map[string]string{"fg_hex": r.FgHex, "bg_hex": r.BgHex}),
			Levels: map[string]colorutil.Level{"level": r.Result.Level},
			Data:   r,
		})
	}
	return ds
}

// DistinctRow is one swatch pair of a distinguishability report.
type DistinctRow struct {
	Deficiency string `json:"deficiency"`
	palette.PairDistance
}

func DistinctDataset(reports []palette.DistinctReport) Dataset {
	ds := Dataset{
		Kind: "distinct",
		Fields: []Field{
			{Key: "vision", Header: "VISION"},
			{Key: "a", Header: "A"},
			{Key: "b", Header: "B"},
			{Key: "sim_a", Header: "SIM A"},
			{Key: "sim_b", Header: "SIM B"},
			{Key: "delta_e", Header: "ΔE", Right: true},
			{Key: "collapsed", Header: "COLLAPSED"},
		},
		Payload: reports,
	}
	for _, rep := range reports {
		for _, p := range rep.Pairs {
			collapsed := "no"
			if p.Collapsed {
				collapsed = "yes"
			}
			ds.Records = append(ds.Records, Record{
				Values: map[string]string{
					"vision":    rep.Deficiency,
					"a":         p.A,
					"b":         p.B,
					"sim_a":     p.SimA,
					"sim_b":     p.SimB,
					"delta_e":   strconv.FormatFloat(p.DeltaE, 'f', 2, 64),
					"collapsed": collapsed,
				},
				Colors: swatchColors(map[string]string{"sim_a": p.SimA, "sim_b": p.SimB}),
				Data:   DistinctRow{Deficiency: rep.Deficiency, PairDistance: p},
			})
		}
	}
	return ds
}

func swatchColors(hexes map[string]string) map[string]colorutil.RGB {
	out := make(map[string]colorutil.RGB, len(hexes))
	for key, hex := range hexes {
		if c, ok := colorutil.ParseHex(hex); ok {
			out[key] = c
		}
	}
	return out
}

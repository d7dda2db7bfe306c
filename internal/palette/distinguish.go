package palette

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/phyten/palettex/internal/colorutil"
)

// DefaultMinDeltaE is the CIEDE2000 distance below which two swatches are
// reported as hard to tell apart.
const DefaultMinDeltaE = 10.0

// PairDistance is the perceived distance between two swatches after
// simulation, on the usual 0..100 CIEDE2000 scale.
type PairDistance struct {
	A         string  `json:"a"`
	B         string  `json:"b"`
	SimA      string  `json:"sim_a"`
	SimB      string  `json:"sim_b"`
	DeltaE    float64 `json:"delta_e"`
	Collapsed bool    `json:"collapsed"`
}

type DistinctReport struct {
	Deficiency string         `json:"deficiency"`
	MinDeltaE  float64        `json:"min_delta_e"`
	Pairs      []PairDistance `json:"pairs"`
}

// Distinguishability simulates every swatch under d and measures each pair.
// Pairs are sorted closest first. threshold <= 0 uses DefaultMinDeltaE.
func Distinguishability(swatches []Swatch, d colorutil.Deficiency, threshold float64) DistinctReport {
	if threshold <= 0 {
		threshold = DefaultMinDeltaE
	}
	sim := make([]colorutil.RGB, len(swatches))
	for i, sw := range swatches {
		sim[i] = colorutil.Simulate(sw.Color, d)
	}
	rep := DistinctReport{Deficiency: d.String(), MinDeltaE: math.Inf(1)}
	for i := 0; i < len(swatches); i++ {
		for j := i + 1; j < len(swatches); j++ {
			de := deltaE(sim[i], sim[j])
			rep.Pairs = append(rep.Pairs, PairDistance{
				A:         swatches[i].Name,
				B:         swatches[j].Name,
				SimA:      sim[i].Hex(),
				SimB:      sim[j].Hex(),
				DeltaE:    math.Round(de*100) / 100,
				Collapsed: de < threshold,
			})
			if de < rep.MinDeltaE {
				rep.MinDeltaE = de
			}
		}
	}
	if len(rep.Pairs) == 0 {
		rep.MinDeltaE = 0
	}
	rep.MinDeltaE = math.Round(rep.MinDeltaE*100) / 100
	sort.SliceStable(rep.Pairs, func(i, j int) bool {
		return rep.Pairs[i].DeltaE < rep.Pairs[j].DeltaE
	})
	return rep
}

// deltaE scales go-colorful's CIEDE2000 (L in 0..1) to the 0..100 range.
func deltaE(a, b colorutil.RGB) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceCIEDE2000(cb) * 100
}

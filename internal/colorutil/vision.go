package colorutil

import (
	"fmt"
	"strings"
)

type Deficiency int

const (
	Protan Deficiency = iota
	Deutan
	Tritan
)

var deficiencyNames = [...]string{"protan", "deutan", "tritan"}

// Deficiencies lists every supported dichromacy in a stable order.
func Deficiencies() []Deficiency {
	return []Deficiency{Protan, Deutan, Tritan}
}

func (d Deficiency) String() string {
	if int(d) < 0 || int(d) >= len(deficiencyNames) {
		return "unknown"
	}
	return deficiencyNames[d]
}

// ParseDeficiency accepts the short names and the common clinical ones.
func ParseDeficiency(v string) (Deficiency, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "protan", "protanopia":
		return Protan, nil
	case "deutan", "deuteranopia":
		return Deutan, nil
	case "tritan", "tritanopia":
		return Tritan, nil
	default:
		return Protan, fmt.Errorf("unknown vision deficiency: %s", v)
	}
}

// Viénot, Brettel & Mollon (1999), applied to linear RGB, row-major.
var visionMatrices = [...][9]float64{
	Protan: {0.152286, 1.052583, -0.204868, 0.114503, 0.786281, 0.099216, -0.003882, -0.048116, 1.051998},
	Deutan: {0.367322, 0.860646, -0.227968, 0.280085, 0.672501, 0.047413, -0.011820, 0.042940, 0.968881},
	Tritan: {1.255528, -0.076749, -0.178779, -0.078411, 0.930809, 0.147602, 0.004733, 0.691367, 0.303900},
}

// Simulate approximates how c appears to a viewer with deficiency d.
// Unknown deficiencies return c unchanged.
func Simulate(c RGB, d Deficiency) RGB {
	if int(d) < 0 || int(d) >= len(visionMatrices) {
		return c
	}
	m := visionMatrices[d]
	r, g, b := linearRGB(c)
	return fromLinearRGB(
		m[0]*r+m[1]*g+m[2]*b,
		m[3]*r+m[4]*g+m[5]*b,
		m[6]*r+m[7]*g+m[8]*b,
	)
}

// SimulateHex is Simulate for text input; malformed input is returned as is.
func SimulateHex(hex string, d Deficiency) string {
	c, ok := ParseHex(hex)
	if !ok {
		return hex
	}
	return Simulate(c, d).Hex()
}

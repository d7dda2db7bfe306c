package colorutil

import (
	"fmt"
	"strconv"
	"strings"
)

type TextSize int

const (
	SizeNormal TextSize = iota
	SizeLarge
)

func (s TextSize) String() string {
	if s == SizeLarge {
		return "large"
	}
	return "normal"
}

// ParseTextSize accepts "normal" and "large"; empty means normal.
func ParseTextSize(v string) (TextSize, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "normal":
		return SizeNormal, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeNormal, fmt.Errorf("unknown text size: %s", v)
	}
}

type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// Indicator colors shown next to a level in the UI.
var levelIndicators = map[Level]string{
	LevelAAA:     "#10b981",
	LevelAA:      "#3d8a45",
	LevelAALarge: "#f59e0b",
	LevelFail:    "#ef4444",
}

type WCAGResult struct {
	Level     Level  `json:"level"`
	Pass      bool   `json:"pass"`
	Indicator string `json:"indicator"`
}

// Indicator returns the fixed indicator color for l.
func (l Level) Indicator() string {
	return levelIndicators[l]
}

// EvaluateLevel classifies ratio for the given text size.
//
//	normal: >=7 AAA, >=4.5 AA, >=3 AA Large, else Fail
//	large:  >=4.5 AAA, >=3 AA, else Fail
func EvaluateLevel(ratio float64, size TextSize) WCAGResult {
	var level Level
	if size == SizeLarge {
		switch {
		case ratio >= 4.5:
			level = LevelAAA
		case ratio >= 3:
			level = LevelAA
		default:
			level = LevelFail
		}
	} else {
		switch {
		case ratio >= 7:
			level = LevelAAA
		case ratio >= 4.5:
			level = LevelAA
		case ratio >= 3:
			level = LevelAALarge
		default:
			level = LevelFail
		}
	}
	return WCAGResult{Level: level, Pass: level != LevelFail, Indicator: level.Indicator()}
}

// LevelFromText classifies a ratio given in its two-decimal text form.
// Text that does not parse as a number fails.
func LevelFromText(ratioText string, size TextSize) WCAGResult {
	r, err := strconv.ParseFloat(strings.TrimSpace(ratioText), 64)
	if err != nil {
		return EvaluateLevel(0, size)
	}
	return EvaluateLevel(r, size)
}

package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed dice expression of the form NdM[+k], NdM[-k],
// NdM[xQ] or a plain integer. Encounter tables use forms like "3d4",
// "d4x20", "2d10+5" and "-" (no number given).
type Expression struct {
	Count      int
	Sides      int
	Modifier   int
	Multiplier int // applied after the modifier; 1 when absent
	Flat       int // used when Sides == 0 (plain integer expression)
}

// ParseExpression parses a dice expression. The empty string and "-" parse
// to the flat value 1 (tables use them for "one appears").
func ParseExpression(raw string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "×", "x") // tables use the times glyph
	s = strings.ReplaceAll(s, "−", "-")
	if s == "" || s == "-" {
		return Expression{Flat: 1, Multiplier: 1}, nil
	}

	expr := Expression{Count: 1, Multiplier: 1}

	// Trailing multiplier: d4x20
	if i := strings.IndexByte(s, 'x'); i >= 0 {
		mult, err := strconv.Atoi(s[i+1:])
		if err != nil || mult <= 0 {
			return Expression{}, fmt.Errorf("dice: bad multiplier in %q", raw)
		}
		expr.Multiplier = mult
		s = s[:i]
	}

	d := strings.IndexByte(s, 'd')
	if d < 0 {
		flat, err := strconv.Atoi(s)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: cannot parse %q", raw)
		}
		expr.Flat = flat
		return expr, nil
	}

	if d > 0 {
		count, err := strconv.Atoi(s[:d])
		if err != nil || count <= 0 {
			return Expression{}, fmt.Errorf("dice: bad die count in %q", raw)
		}
		expr.Count = count
	}

	rest := s[d+1:]
	modIdx := strings.IndexAny(rest, "+-")
	sidesPart := rest
	if modIdx > 0 {
		sidesPart = rest[:modIdx]
		mod, err := strconv.Atoi(rest[modIdx:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: bad modifier in %q", raw)
		}
		expr.Modifier = mod
	}

	sides, err := strconv.Atoi(sidesPart)
	if err != nil || sides <= 0 {
		return Expression{}, fmt.Errorf("dice: bad die sides in %q", raw)
	}
	expr.Sides = sides
	return expr, nil
}

// Eval rolls the expression against the roller.
func (e Expression) Eval(r *Roller) int {
	if e.Sides == 0 {
		return e.Flat * e.Multiplier
	}
	return (r.RollN(e.Count, e.Sides) + e.Modifier) * e.Multiplier
}

// Mean returns the expected value of the expression, rounded down. Strategy
// code uses this to estimate sale rolls without consuming randomness.
func (e Expression) Mean() int {
	if e.Sides == 0 {
		return e.Flat * e.Multiplier
	}
	mean := float64(e.Count)*(float64(e.Sides)+1)/2 + float64(e.Modifier)
	return int(mean) * e.Multiplier
}

// Roll parses and evaluates expr in one step.
func (r *Roller) Roll(expr string) (int, error) {
	parsed, err := ParseExpression(expr)
	if err != nil {
		return 0, err
	}
	return parsed.Eval(r), nil
}

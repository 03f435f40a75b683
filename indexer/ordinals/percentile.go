package ordinals

import (
	"regexp"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// percentileDigits is enough for every sat to survive a round trip.
const percentileDigits = 16

// maxPercentileDigits bounds the fraction read back; later digits cannot
// move the result by a whole sat.
const maxPercentileDigits = 18

var percentileBody = regexp.MustCompile(`^-?([0-9]+)(?:\.([0-9]+))?$`)

// Percentile returns s*100/LAST, truncated to 16 fractional digits with
// trailing zeros dropped.
func (s Sat) Percentile() string {
	q, r := uint128.From64(uint64(s)).Mul64(100).QuoRem64(uint64(LAST))

	var b strings.Builder
	b.WriteString(q.String())

	var frac [percentileDigits]byte
	last := -1
	for i := range frac {
		// r < LAST, so r*10 stays well inside 64 bits
		r *= 10
		frac[i] = '0' + byte(r/uint64(LAST))
		r %= uint64(LAST)
		if frac[i] != '0' {
			last = i
		}
	}
	if last >= 0 {
		b.WriteByte('.')
		b.Write(frac[:last+1])
	}
	b.WriteByte('%')
	return b.String()
}

// SatFromPercentile inverts Percentile, rounding half up to the nearest sat.
func SatFromPercentile(s string) (Sat, error) {
	if !strings.HasSuffix(s, "%") {
		return 0, newParseError(s, Percentile, nil)
	}
	body := s[:len(s)-1]

	value, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, newParseError(s, ParseFloat, err)
	}
	if value < 0 || value > 100 {
		return 0, newParseError(s, Percentile, nil)
	}

	m := percentileBody.FindStringSubmatch(body)
	if m == nil {
		return 0, newParseError(s, Percentile, nil)
	}
	whole, frac := m[1], m[2]
	if len(frac) > maxPercentileDigits {
		frac = frac[:maxPercentileDigits]
	}

	var digits uint128.Uint128
	for _, c := range strings.TrimLeft(whole, "0") + frac {
		digits = digits.Mul64(10).Add64(uint64(c - '0'))
	}

	scale := uint128.From64(100)
	for i := 0; i < len(frac); i++ {
		scale = scale.Mul64(10)
	}
	n := digits.Mul64(uint64(LAST)).Add(scale.Rsh(1)).Div(scale)
	if n.Cmp64(uint64(LAST)) > 0 {
		return 0, newParseError(s, Percentile, nil)
	}
	return Sat(n.Lo), nil
}

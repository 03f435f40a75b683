package ordinals

import (
	"strconv"
	"strings"
)

// Grammar is one of the textual forms a Sat can be written in.
type Grammar int

const (
	GrammarInteger Grammar = iota
	GrammarName
	GrammarPercentile
	GrammarDecimal
)

func (g Grammar) String() string {
	switch g {
	case GrammarInteger:
		return "integer"
	case GrammarName:
		return "name"
	case GrammarPercentile:
		return "percentile"
	case GrammarDecimal:
		return "decimal"
	}
	return "unknown"
}

// DetectGrammar picks the grammar of s by content, in priority order: any
// lowercase letter, then '%', then '.', otherwise integer.
func DetectGrammar(s string) Grammar {
	switch {
	case strings.IndexFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' }) >= 0:
		return GrammarName
	case strings.Contains(s, "%"):
		return GrammarPercentile
	case strings.Contains(s, "."):
		return GrammarDecimal
	default:
		return GrammarInteger
	}
}

// ParseSat parses any Sat grammar. Only the decimal grammar consults t.
func ParseSat(s string, t SubsidyTable) (Sat, error) {
	switch DetectGrammar(s) {
	case GrammarName:
		return SatFromName(s)
	case GrammarPercentile:
		return SatFromPercentile(s)
	case GrammarDecimal:
		return SatFromDecimal(s, t)
	default:
		return SatFromInteger(s)
	}
}

func SatFromInteger(s string) (Sat, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, newParseError(s, ParseInt, err)
	}
	if n > uint64(LAST) {
		return 0, newParseError(s, IntegerRange, nil)
	}
	return Sat(n), nil
}

// SatFromName inverts Sat.Name.
func SatFromName(s string) (Sat, error) {
	var x uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, newParseError(s, NameCharacter, nil)
		}
		x = x*26 + uint64(c-'a') + 1
		if x > SUPPLY {
			return 0, newParseError(s, NameRange, nil)
		}
	}
	// the empty name would be SUPPLY itself
	if x == 0 {
		return 0, newParseError(s, NameRange, nil)
	}
	return Sat(SUPPLY - x), nil
}

func SatFromDecimal(s string, t SubsidyTable) (Sat, error) {
	d, err := ParseDecimalSat(s, t)
	if err != nil {
		return 0, err
	}
	return d.Sat(t)
}

package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the ordering type inferred for a column.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	default:
		return "text"
	}
}

// InferKind attempts a numeric parse of every non-missing value. The column is
// numeric only when all of them parse and at least one value is present.
func InferKind(values []string) Kind {
	seen := false
	for _, v := range values {
		if isMissing(v) {
			continue
		}
		if _, ok := parseNumber(v); !ok {
			return KindText
		}
		seen = true
	}
	if !seen {
		return KindText
	}
	return KindNumeric
}

func isMissing(v string) bool {
	return v == ""
}

// parseNumber accepts decimal notation and infinities. NaN has no place in an
// ascending order and hex literals stay text.
func parseNumber(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	digits := strings.TrimLeft(v, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

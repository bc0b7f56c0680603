package planner

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// norm trims leading and trailing whitespace. Names are matched in trimmed
// form everywhere in the planner.
func norm(s string) string { return strings.TrimSpace(s) }

// lessFold orders names ascending, ignoring case and surrounding whitespace.
func lessFold(a, b string) bool {
	return strings.ToLower(norm(a)) < strings.ToLower(norm(b))
}

// maxZero clamps negative amounts to zero.
func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ceilUnits rounds an amount up to whole units.
func ceilUnits(d decimal.Decimal) int64 {
	return d.Ceil().IntPart()
}

// ceilDiv returns ceil(qty*per/batch); batch must be positive, which the
// recipe graph builder guarantees.
func ceilDiv(qty, per, batch int64) int64 {
	return (qty*per + batch - 1) / batch
}

func fromInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// sortedNames returns a quantity accumulator's keys name ascending, so
// planning phases walk accumulators in a fixed order.
func sortedNames(m map[string]int64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package analytics derives view data from the current transaction
// list and score result. Everything here is pure and total: malformed
// records coerce to zero values instead of failing.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kredita/kredita/internal/model"
)

// Group is one slice of the category breakdown.
type Group struct {
	Name  string
	Value float64
}

// Point is one entry of the metric series.
type Point struct {
	Name  string
	Value float64
}

var collator = collate.New(language.English, collate.Loose)

// Breakdown groups transactions by category (falling back to type,
// then "other") and sums amounts per group. Groups keep the insertion
// order of their first occurrence. The second return is the grand
// total across all groups.
func Breakdown(txns []model.Transaction) ([]Group, float64) {
	var (
		groups []Group
		index  = make(map[string]int)
		total  float64
	)
	for _, t := range txns {
		key := t.GroupKey()
		amt := amountOrZero(t.Amount)
		if i, ok := index[key]; ok {
			groups[i].Value += amt
		} else {
			index[key] = len(groups)
			groups = append(groups, Group{Name: key, Value: amt})
		}
		total += amt
	}
	return groups, total
}

// Sort returns a sorted copy of the transaction list. The input is
// never mutated. Ties keep their relative order, so applying the same
// config twice is a no-op. SortNone returns the list in arrival order.
func Sort(txns []model.Transaction, cfg model.SortConfig) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	if cfg.Key == model.SortNone {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], cfg.Key)
		if cfg.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b model.Transaction, key model.SortKey) int {
	switch key {
	case model.SortAmount:
		av, bv := amountOrZero(a.Amount), amountOrZero(b.Amount)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case model.SortType:
		return collator.CompareString(string(a.Type), string(b.Type))
	case model.SortCategory:
		return collator.CompareString(a.Category, b.Category)
	case model.SortDate:
		return collator.CompareString(a.Date, b.Date)
	default:
		return 0
	}
}

// MetricSeries builds the three-point Income/Expense/EMI series, or an
// empty series when no score result exists.
func MetricSeries(result *model.ScoreResult) []Point {
	if result == nil {
		return nil
	}
	return []Point{
		{Name: "Income", Value: amountOrZero(result.Metrics.Income)},
		{Name: "Expense", Value: amountOrZero(result.Metrics.Expense)},
		{Name: "EMI", Value: amountOrZero(result.Metrics.EMI)},
	}
}

// PercentOf returns value as a percentage of total, clamped to
// [0, 100]. A zero or negative total yields 0.
func PercentOf(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	pct := amountOrZero(value) / total * 100
	return math.Min(100, math.Max(0, pct))
}

// FormatAmount renders an amount with Indian digit grouping, e.g.
// 1234567.5 -> "12,34,567.50". Whole amounts omit the decimals.
func FormatAmount(v float64) string {
	v = amountOrZero(v)
	neg := v < 0
	if neg {
		v = -v
	}
	// Round to paise first so the fractional part cannot carry into
	// the whole rupees after splitting.
	v = math.Round(v*100) / 100

	whole := math.Floor(v)
	frac := v - whole

	digits := fmt.Sprintf("%.0f", whole)
	grouped := groupIndian(digits)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	if frac >= 0.005 {
		b.WriteString(fmt.Sprintf("%.2f", frac)[1:])
	}
	return b.String()
}

// groupIndian inserts separators after the last three digits and then
// every two: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}

func amountOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

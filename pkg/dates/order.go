// Package dates parses the ambiguous date columns of walk-forward reports.
// Vendor exports declare no date format, so the package normalizes free-form
// tokens and infers which of the three possible component orderings applies
// from the whole column population, never per row.
package dates

// Order is the resolved ordering of the three date components.
// It is immutable once resolved for a parsing pass and applies uniformly
// to every token in that pass.
type Order string

const (
	OrderAuto         Order = "auto"
	OrderDayMonthYear Order = "dmy"
	OrderMonthDayYear Order = "mdy"
	OrderYearMonthDay Order = "ymd"
)

// ParseOrder maps a user-supplied selector to an Order, defaulting to auto.
func ParseOrder(s string) Order {
	switch Order(s) {
	case OrderDayMonthYear, OrderMonthDayYear, OrderYearMonthDay:
		return Order(s)
	default:
		return OrderAuto
	}
}

// Label returns the user-facing format label for a resolved order.
func (o Order) Label() string {
	switch o {
	case OrderMonthDayYear:
		return "MM/DD/YYYY"
	case OrderYearMonthDay:
		return "YYYY/MM/DD"
	default:
		return "DD/MM/YYYY"
	}
}

// InferOrder decides the component ordering from all tokens of a column
// (or of two concatenated columns). Tokens that do not normalize to the
// three-numeric-component pattern are ignored; they simply cannot vote.
//
// The vote: a first component that looks like a year (>= 1900) in at least
// half of the matching tokens dominates all other evidence. Failing that,
// any first component above 12 rules out month-first, and any second
// component above 12 rules out day-second. A fully ambiguous population
// defaults to day-month-year, matching the main vendor's locale.
func InferOrder(tokens []string) Order {
	var aVals, bVals []int
	for _, t := range tokens {
		a, b, _, ok := splitComponents(NormalizeToken(t))
		if !ok {
			continue
		}
		aVals = append(aVals, a)
		bVals = append(bVals, b)
	}

	if len(aVals) == 0 {
		return OrderDayMonthYear
	}

	yearFirstHits := 0
	for _, a := range aVals {
		if a >= 1900 {
			yearFirstHits++
		}
	}
	if yearFirstHits >= max(1, len(aVals)/2) {
		return OrderYearMonthDay
	}

	for _, a := range aVals {
		if a > 12 {
			return OrderDayMonthYear
		}
	}
	for _, b := range bVals {
		if b > 12 {
			return OrderMonthDayYear
		}
	}
	return OrderDayMonthYear
}

package reconcile

import (
	"errors"
	"fmt"

	"mini-reconcile/core/table"
)

// Classify assigns a category to every joined row and writes the configured
// result label into the result column.
//
// Rows present in both datasets are Matched when every comparison pair is
// equal and Mismatched when at least one differs. Comparison is exact; a
// SchemaError is returned when a pair holds values of incomparable kinds.
func Classify(merged *table.Dataset, rules *Rules) (*table.Dataset, error) {
	// Every pair must resolve to real joined columns. Comparing absent
	// cells would report nil == nil and mask a mismatch.
	for _, pair := range rules.ComparisonPairs {
		left, right := pair.Columns(rules.MergeSuffixes)
		if !merged.HasColumn(left) || !merged.HasColumn(right) {
			return nil, &ConfigError{
				Field:  pair.Base,
				Side:   "rules",
				Reason: fmt.Sprintf("joined table has no %s/%s columns", left, right),
			}
		}
	}

	classified := table.New(append(append([]string{}, merged.Columns...), rules.ResultColumn)...)

	for _, row := range merged.Rows {
		category, err := classifyRow(row, rules)
		if err != nil {
			return nil, err
		}
		out := row.Clone()
		out[rules.ResultColumn] = rules.ResultLabels[category]
		classified.Append(out)
	}

	return classified, nil
}

// classifyRow derives the category of a single joined row from its
// provenance and the configured comparison pairs.
func classifyRow(row table.Row, rules *Rules) (Category, error) {
	switch row[rules.MergeIndicator] {
	case rules.MergeStatus[ProvenanceLeftOnly]:
		return CategoryOnlyInternal, nil
	case rules.MergeStatus[ProvenanceRightOnly]:
		return CategoryOnlyProvider, nil
	}

	for _, pair := range rules.ComparisonPairs {
		left, right := pair.Columns(rules.MergeSuffixes)
		equal, err := equalValues(row[left], row[right])
		if err != nil {
			return "", &SchemaError{Field: pair.Base, Left: row[left], Right: row[right]}
		}
		if !equal {
			return CategoryMismatched, nil
		}
	}
	return CategoryMatched, nil
}

// equalValues compares two cells for exact equality without coercion.
//
// nil equals only nil. Strings and bools compare within their own kind.
// int64 and float64 form a single numeric kind and compare by exact value.
// Any other pairing is incomparable and reported as an error.
func equalValues(a, b any) (bool, error) {
	if a == nil || b == nil {
		return a == nil && b == nil, nil
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return false, errIncomparable
		}
		return av == bv, nil
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return false, errIncomparable
		}
		return av == bv, nil
	case int64:
		switch bv := b.(type) {
		case int64:
			return av == bv, nil
		case float64:
			return float64(av) == bv, nil
		}
		return false, errIncomparable
	case float64:
		switch bv := b.(type) {
		case int64:
			return av == float64(bv), nil
		case float64:
			return av == bv, nil
		}
		return false, errIncomparable
	}
	return false, errIncomparable
}

// errIncomparable is an internal sentinel; callers wrap it into a
// SchemaError carrying the field name.
var errIncomparable = errors.New("incomparable kinds")

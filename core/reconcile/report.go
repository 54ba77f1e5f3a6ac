package reconcile

import (
	"mini-reconcile/core/table"
)

// Summary holds the per-category row counts of a reconciliation run.
type Summary struct {
	// Matched counts rows present in both datasets with all pairs equal.
	Matched int `json:"matched"`

	// OnlyInternal counts rows present only in the internal dataset.
	OnlyInternal int `json:"only_internal"`

	// OnlyProvider counts rows present only in the provider dataset.
	OnlyProvider int `json:"only_provider"`

	// Mismatched counts rows present in both datasets with at least one
	// differing pair.
	Mismatched int `json:"mismatched"`

	// Total is the number of categorized rows. It always equals the sum
	// of the four category counts.
	Total int `json:"total"`
}

// Counts returns the summary as a map keyed by category. All four
// categories are present even when zero.
func (s Summary) Counts() map[Category]int {
	return map[Category]int{
		CategoryMatched:      s.Matched,
		CategoryOnlyInternal: s.OnlyInternal,
		CategoryOnlyProvider: s.OnlyProvider,
		CategoryMismatched:   s.Mismatched,
	}
}

// add increments the counter for the given category.
func (s *Summary) add(cat Category) {
	switch cat {
	case CategoryMatched:
		s.Matched++
	case CategoryOnlyInternal:
		s.OnlyInternal++
	case CategoryOnlyProvider:
		s.OnlyProvider++
	case CategoryMismatched:
		s.Mismatched++
	}
	s.Total++
}

// Report is the display-ready result of a reconciliation run.
type Report struct {
	// Table is the full categorized table with columns renamed per the
	// rules and the merge indicator dropped.
	Table *table.Dataset `json:"table"`

	// Groups holds the per-category tables. All four categories are
	// present even when empty.
	Groups map[Category]*table.Dataset `json:"groups"`

	// Summary aggregates per-category counts.
	Summary Summary `json:"summary"`
}

// Finalize prepares the classified table for display or export.
//
// It drops the merge-indicator column, renames columns per the rename map
// (unrecognized columns pass through unchanged), groups rows by category and
// aggregates the summary counts.
func Finalize(classified *table.Dataset, rules *Rules) *Report {
	labelToCategory := make(map[string]Category, len(rules.ResultLabels))
	for cat, label := range rules.ResultLabels {
		labelToCategory[label] = cat
	}

	columns := make([]string, 0, len(classified.Columns))
	for _, c := range classified.Columns {
		if c == rules.MergeIndicator {
			continue
		}
		columns = append(columns, rules.displayName(c))
	}

	report := &Report{
		Table:  table.New(columns...),
		Groups: make(map[Category]*table.Dataset, len(Categories)),
	}
	for _, cat := range Categories {
		report.Groups[cat] = table.New(columns...)
	}

	resultColumn := rules.displayName(rules.ResultColumn)
	for _, row := range classified.Rows {
		out := make(table.Row, len(row))
		for name, value := range row {
			if name == rules.MergeIndicator {
				continue
			}
			out[rules.displayName(name)] = value
		}

		cat := labelToCategory[toString(out[resultColumn])]
		report.Table.Append(out)
		report.Groups[cat].Append(out)
		report.Summary.add(cat)
	}

	return report
}

// displayName resolves the display name of a column via the rename map.
func (r *Rules) displayName(column string) string {
	if renamed, ok := r.RenameColumns[column]; ok {
		return renamed
	}
	return column
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

// Package reconcile implements the transaction reconciliation engine: a
// configuration-driven merge/classify/compare pipeline over two tabular
// datasets (an internal ledger export and a provider statement).
//
// # Pipeline
//
// The engine runs three sequential stages, each usable on its own:
//
//  1. Merge: full outer hash join on the configured merge key. Columns
//     present in both schemas get the configured suffixes; a merge-indicator
//     column records whether each key came from both sides, the internal
//     side only, or the provider side only.
//
//  2. Classify: rows present in both datasets are compared field by field
//     over the configured comparison pairs. All pairs equal means Matched,
//     any difference means Mismatched. Single-sided rows become Only in
//     Internal / Only in Provider. Exactly one category per row.
//
//  3. Finalize: the reporter drops the indicator column, renames columns
//     for display, groups rows per category and aggregates counts.
//
// # Semantics
//
// Comparison and key equality are exact. There is no tolerance for numeric
// values and no coercion between numeric and string representations: the
// key int64(42) never joins the key "42". int64 and float64 cells are one
// numeric kind and compare by exact value; any other cross-kind comparison
// fails the run with a SchemaError naming the offending field.
//
// Rules referencing columns absent from either dataset fail with a
// ConfigError before any join work happens.
//
// # Usage Example
//
//	rules, err := reconcile.LoadRules("rules.yaml")
//	if err != nil {
//	    return err
//	}
//	report, err := reconcile.Reconcile(internal, provider, rules)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Summary.Matched, report.Summary.Mismatched)
package reconcile

package reconcile

import (
	"mini-reconcile/core/table"
)

// Reconcile runs the full pipeline: validate rules, outer-join the two
// datasets on the merge key, classify every joined row and finalize the
// report for display.
//
// The engine is a pure function of its inputs. Datasets are never mutated,
// no state survives the call, and identical inputs yield identical output.
// An empty dataset is valid input; its rows simply land in the opposite
// only-in category.
func Reconcile(internal, provider *table.Dataset, rules *Rules) (*Report, error) {
	merged, err := Merge(internal, provider, rules)
	if err != nil {
		return nil, err
	}

	classified, err := Classify(merged, rules)
	if err != nil {
		return nil, err
	}

	return Finalize(classified, rules), nil
}

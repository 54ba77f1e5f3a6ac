package reconcile

import (
	"mini-reconcile/core/table"
)

// Merge performs a full outer join of the two datasets on the merge key.
//
// Non-key columns present in both schemas are disambiguated with the
// configured suffixes; columns unique to one side keep their name. Every
// joined row carries the merge-indicator column recording its provenance.
//
// Row order is deterministic: internal rows first (in input order), then
// provider-only rows (in input order). Key equality is exact type and value;
// a numeric key never joins its string representation.
//
// Duplicate keys within one dataset keep the first occurrence.
func Merge(internal, provider *table.Dataset, rules *Rules) (*table.Dataset, error) {
	if err := rules.Validate(internal, provider); err != nil {
		return nil, err
	}

	shared := sharedColumns(internal, provider, rules.MergeKey)
	leftSuffix, rightSuffix := rules.MergeSuffixes[0], rules.MergeSuffixes[1]

	merged := table.New(joinedColumns(internal, provider, rules, shared)...)

	// Index provider rows by key, first occurrence wins.
	providerIndex := make(map[any]table.Row, provider.Len())
	providerOrder := make([]any, 0, provider.Len())
	for _, row := range provider.Rows {
		key := row[rules.MergeKey]
		if _, seen := providerIndex[key]; seen {
			continue
		}
		providerIndex[key] = row
		providerOrder = append(providerOrder, key)
	}

	consumed := make(map[any]struct{}, provider.Len())
	seenInternal := make(map[any]struct{}, internal.Len())

	for _, row := range internal.Rows {
		key := row[rules.MergeKey]
		if _, dup := seenInternal[key]; dup {
			continue
		}
		seenInternal[key] = struct{}{}

		providerRow, both := providerIndex[key]
		out := table.Row{rules.MergeKey: key}
		copyCells(out, row, shared, leftSuffix, rules.MergeKey)
		if both {
			copyCells(out, providerRow, shared, rightSuffix, rules.MergeKey)
			out[rules.MergeIndicator] = rules.MergeStatus[ProvenanceBoth]
			consumed[key] = struct{}{}
		} else {
			fillMissing(out, provider, shared, rightSuffix, rules.MergeKey)
			out[rules.MergeIndicator] = rules.MergeStatus[ProvenanceLeftOnly]
		}
		merged.Append(out)
	}

	for _, key := range providerOrder {
		if _, ok := consumed[key]; ok {
			continue
		}
		row := providerIndex[key]
		out := table.Row{rules.MergeKey: key}
		fillMissing(out, internal, shared, leftSuffix, rules.MergeKey)
		copyCells(out, row, shared, rightSuffix, rules.MergeKey)
		out[rules.MergeIndicator] = rules.MergeStatus[ProvenanceRightOnly]
		merged.Append(out)
	}

	return merged, nil
}

// sharedColumns returns the set of non-key columns present in both schemas.
func sharedColumns(internal, provider *table.Dataset, mergeKey string) map[string]struct{} {
	shared := make(map[string]struct{})
	for _, c := range internal.Columns {
		if c == mergeKey {
			continue
		}
		if provider.HasColumn(c) {
			shared[c] = struct{}{}
		}
	}
	return shared
}

// joinedColumns builds the output schema: merge key, internal columns,
// provider columns, indicator. Shared columns appear suffixed.
func joinedColumns(internal, provider *table.Dataset, rules *Rules, shared map[string]struct{}) []string {
	cols := []string{rules.MergeKey}
	for _, c := range internal.Columns {
		if c == rules.MergeKey {
			continue
		}
		if _, ok := shared[c]; ok {
			cols = append(cols, c+rules.MergeSuffixes[0])
		} else {
			cols = append(cols, c)
		}
	}
	for _, c := range provider.Columns {
		if c == rules.MergeKey {
			continue
		}
		if _, ok := shared[c]; ok {
			cols = append(cols, c+rules.MergeSuffixes[1])
		} else {
			cols = append(cols, c)
		}
	}
	return append(cols, rules.MergeIndicator)
}

// copyCells copies the non-key cells of src into dst, suffixing shared
// column names.
func copyCells(dst, src table.Row, shared map[string]struct{}, suffix, mergeKey string) {
	for name, value := range src {
		if name == mergeKey {
			continue
		}
		if _, ok := shared[name]; ok {
			dst[name+suffix] = value
		} else {
			dst[name] = value
		}
	}
}

// fillMissing writes nil cells for the columns contributed by the absent
// side, so every joined row covers the full output schema.
func fillMissing(dst table.Row, absent *table.Dataset, shared map[string]struct{}, suffix, mergeKey string) {
	for _, name := range absent.Columns {
		if name == mergeKey {
			continue
		}
		if _, ok := shared[name]; ok {
			dst[name+suffix] = nil
		} else {
			dst[name] = nil
		}
	}
}

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFinalize_RenameAndDropIndicator tests that the reporter renames
// configured columns, passes unknown columns through and drops the merge
// indicator.
func TestFinalize_RenameAndDropIndicator(t *testing.T) {
	internal := txDataset(tx("T1", 100, "OK"))
	provider := txDataset(tx("T1", 100, "OK"))

	rules := DefaultRules()
	rules.RenameColumns = map[string]string{
		"transaction_reference": "Transaction Reference",
		"amount_internal":       "Amount (Internal)",
	}

	report, err := Reconcile(internal, provider, rules)
	require.NoError(t, err)

	assert.Contains(t, report.Table.Columns, "Transaction Reference")
	assert.Contains(t, report.Table.Columns, "Amount (Internal)")
	// Unrecognized columns pass through unchanged.
	assert.Contains(t, report.Table.Columns, "amount_provider")
	assert.Contains(t, report.Table.Columns, "status_internal")
	// The indicator never reaches the display table.
	assert.NotContains(t, report.Table.Columns, rules.MergeIndicator)

	row := report.Table.Rows[0]
	assert.Equal(t, "T1", row["Transaction Reference"])
	assert.Equal(t, int64(100), row["Amount (Internal)"])
	_, indicatorPresent := row[rules.MergeIndicator]
	assert.False(t, indicatorPresent)
}

// TestFinalize_AllGroupsPresent tests that every category group exists even
// when empty.
func TestFinalize_AllGroupsPresent(t *testing.T) {
	internal := txDataset(tx("T1", 100, "OK"))
	provider := txDataset(tx("T1", 100, "OK"))

	report, err := Reconcile(internal, provider, DefaultRules())
	require.NoError(t, err)

	require.Len(t, report.Groups, 4)
	for _, cat := range Categories {
		require.NotNil(t, report.Groups[cat], "group %s missing", cat)
	}
	assert.Equal(t, 1, report.Groups[CategoryMatched].Len())
	assert.Equal(t, 0, report.Groups[CategoryOnlyInternal].Len())
	assert.Equal(t, 0, report.Groups[CategoryOnlyProvider].Len())
	assert.Equal(t, 0, report.Groups[CategoryMismatched].Len())
}

// TestFinalize_GroupSizesMatchSummary tests count consistency between the
// groups, the summary and the full table.
func TestFinalize_GroupSizesMatchSummary(t *testing.T) {
	internal := txDataset(tx("T1", 100, "OK"), tx("T2", 50, "OK"), tx("T3", 75, "OK"))
	provider := txDataset(tx("T1", 100, "OK"), tx("T3", 80, "OK"), tx("T4", 20, "OK"))

	report, err := Reconcile(internal, provider, DefaultRules())
	require.NoError(t, err)

	counts := report.Summary.Counts()
	total := 0
	for cat, group := range report.Groups {
		assert.Equal(t, counts[cat], group.Len(), "category %s", cat)
		total += group.Len()
	}
	assert.Equal(t, report.Summary.Total, total)
	assert.Equal(t, report.Table.Len(), total)
}

// TestFinalize_CustomLabels tests that configured result labels show up in
// the output rows.
func TestFinalize_CustomLabels(t *testing.T) {
	internal := txDataset(tx("T1", 100, "OK"))
	provider := txDataset(tx("T1", 999, "OK"))

	rules := DefaultRules()
	rules.ResultLabels[CategoryMismatched] = "⚠️ Mismatched"

	report, err := Reconcile(internal, provider, rules)
	require.NoError(t, err)

	require.Len(t, report.Table.Rows, 1)
	assert.Equal(t, "⚠️ Mismatched", report.Table.Rows[0]["result"])
	assert.Equal(t, 1, report.Groups[CategoryMismatched].Len())
}

// TestSummaryCounts tests that Counts always exposes all four categories.
func TestSummaryCounts(t *testing.T) {
	var s Summary
	counts := s.Counts()
	require.Len(t, counts, 4)
	for _, cat := range Categories {
		n, ok := counts[cat]
		assert.True(t, ok)
		assert.Zero(t, n)
	}
}

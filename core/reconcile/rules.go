package reconcile

import (
	"fmt"
	"os"

	"mini-reconcile/core/table"

	"gopkg.in/yaml.v3"
)

// EnvRulesPath is the environment variable consulted by LoadRules when no
// explicit path is given.
const EnvRulesPath = "RECONCILE_RULES"

// DefaultRulesFilename is the fallback rules file name.
const DefaultRulesFilename = "rules.yaml"

// Rules is the declarative configuration driving a reconciliation run.
// Zero values are filled in by ApplyDefaults; only MergeKey is mandatory.
type Rules struct {
	// MergeKey is the column used to associate records across datasets.
	MergeKey string `yaml:"merge_key" json:"merge_key"`

	// MergeSuffixes disambiguates columns present in both datasets under
	// the same name: internal suffix first, provider suffix second.
	MergeSuffixes []string `yaml:"merge_suffixes" json:"merge_suffixes"`

	// MergeIndicator names the provenance column added to the joined
	// table. It is dropped again by the reporter.
	MergeIndicator string `yaml:"merge_indicator" json:"merge_indicator"`

	// MergeStatus maps provenance tags to the values written into the
	// indicator column.
	MergeStatus map[Provenance]string `yaml:"merge_status" json:"merge_status"`

	// ComparisonPairs lists the field pairs checked for equality on rows
	// present in both datasets, in evaluation order.
	ComparisonPairs []ComparisonPair `yaml:"comparison_pairs" json:"comparison_pairs"`

	// RenameColumns maps joined column names to display names.
	// Unrecognized columns pass through unchanged.
	RenameColumns map[string]string `yaml:"rename_columns" json:"rename_columns"`

	// ResultLabels maps categories to the display strings written into
	// the result column.
	ResultLabels map[Category]string `yaml:"result_labels" json:"result_labels"`

	// ResultColumn names the category column in the output table.
	ResultColumn string `yaml:"result_column" json:"result_column"`
}

// DefaultRules returns the rules used by the original reconciliation flow:
// join on transaction_reference and compare amount and status.
func DefaultRules() *Rules {
	r := &Rules{
		MergeKey: "transaction_reference",
		ComparisonPairs: []ComparisonPair{
			{Base: "amount"},
			{Base: "status"},
		},
	}
	r.ApplyDefaults()
	return r
}

// ApplyDefaults fills unset optional fields with their defaults.
func (r *Rules) ApplyDefaults() {
	if len(r.MergeSuffixes) == 0 {
		r.MergeSuffixes = []string{"_internal", "_provider"}
	}
	if r.MergeIndicator == "" {
		r.MergeIndicator = "_merge"
	}
	if r.ResultColumn == "" {
		r.ResultColumn = "result"
	}
	if r.MergeStatus == nil {
		r.MergeStatus = map[Provenance]string{}
	}
	for _, p := range []Provenance{ProvenanceBoth, ProvenanceLeftOnly, ProvenanceRightOnly} {
		if r.MergeStatus[p] == "" {
			r.MergeStatus[p] = string(p)
		}
	}
	if r.ResultLabels == nil {
		r.ResultLabels = map[Category]string{}
	}
	defaults := map[Category]string{
		CategoryMatched:      "Matched",
		CategoryOnlyInternal: "Only in Internal",
		CategoryOnlyProvider: "Only in Provider",
		CategoryMismatched:   "Mismatched",
	}
	for cat, label := range defaults {
		if r.ResultLabels[cat] == "" {
			r.ResultLabels[cat] = label
		}
	}
	if r.RenameColumns == nil {
		r.RenameColumns = map[string]string{}
	}
}

// LoadRules reads rules from a YAML file. The path is resolved in order:
// explicit argument, RECONCILE_RULES environment variable, rules.yaml.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		path = os.Getenv(EnvRulesPath)
	}
	if path == "" {
		path = DefaultRulesFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	return ParseRules(data)
}

// ParseRules decodes rules from YAML and applies defaults.
func ParseRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	r.ApplyDefaults()
	return &r, nil
}

// Validate checks the rules for structural problems and verifies that every
// referenced column exists in both dataset schemas. It runs before any join
// so that a bad configuration never produces partial output.
func (r *Rules) Validate(internal, provider *table.Dataset) error {
	if r.MergeKey == "" {
		return &ConfigError{Field: "merge_key", Side: "rules", Reason: "merge key is required"}
	}
	if len(r.MergeSuffixes) != 2 {
		return &ConfigError{Field: "merge_suffixes", Side: "rules", Reason: "exactly two suffixes are required"}
	}
	if r.MergeSuffixes[0] == r.MergeSuffixes[1] {
		return &ConfigError{Field: "merge_suffixes", Side: "rules", Reason: "suffixes must differ"}
	}

	seenStatus := make(map[string]Provenance, len(r.MergeStatus))
	for prov, status := range r.MergeStatus {
		if other, dup := seenStatus[status]; dup {
			return &ConfigError{
				Field:  "merge_status",
				Side:   "rules",
				Reason: fmt.Sprintf("status %q used for both %s and %s", status, other, prov),
			}
		}
		seenStatus[status] = prov
	}

	seen := make(map[string]Category, len(r.ResultLabels))
	for cat, label := range r.ResultLabels {
		if other, dup := seen[label]; dup {
			return &ConfigError{
				Field:  "result_labels",
				Side:   "rules",
				Reason: fmt.Sprintf("label %q used for both %s and %s", label, other, cat),
			}
		}
		seen[label] = cat
	}

	if !internal.HasColumn(r.MergeKey) {
		return &ConfigError{Field: r.MergeKey, Side: "internal", Reason: "merge key column not found"}
	}
	if !provider.HasColumn(r.MergeKey) {
		return &ConfigError{Field: r.MergeKey, Side: "provider", Reason: "merge key column not found"}
	}

	for _, pair := range r.ComparisonPairs {
		if pair.Base == "" {
			return &ConfigError{Field: "comparison_pairs", Side: "rules", Reason: "comparison pair with empty base"}
		}
		if len(pair.Suffixes) != 0 && len(pair.Suffixes) != 2 {
			return &ConfigError{Field: pair.Base, Side: "rules", Reason: "comparison pair needs zero or two suffixes"}
		}
		// The joined table only carries <base>+merge_suffixes columns,
		// so a pair declaring different suffixes would compare two
		// absent cells and report them equal.
		if len(pair.Suffixes) == 2 &&
			(pair.Suffixes[0] != r.MergeSuffixes[0] || pair.Suffixes[1] != r.MergeSuffixes[1]) {
			return &ConfigError{Field: pair.Base, Side: "rules", Reason: "pair suffixes must match the merge suffixes"}
		}
		if !internal.HasColumn(pair.Base) {
			return &ConfigError{Field: pair.Base, Side: "internal", Reason: "comparison column not found"}
		}
		if !provider.HasColumn(pair.Base) {
			return &ConfigError{Field: pair.Base, Side: "provider", Reason: "comparison column not found"}
		}
	}

	return nil
}

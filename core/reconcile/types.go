package reconcile

// Provenance tags where a joined row's key originated.
type Provenance string

const (
	// ProvenanceBoth marks keys present in both datasets.
	ProvenanceBoth Provenance = "both"
	// ProvenanceLeftOnly marks keys present only in the internal dataset.
	ProvenanceLeftOnly Provenance = "left_only"
	// ProvenanceRightOnly marks keys present only in the provider dataset.
	ProvenanceRightOnly Provenance = "right_only"
)

// Category is the final classification of a joined row.
// Exactly one category is assigned per row.
type Category string

const (
	// CategoryMatched marks rows present in both datasets with all
	// configured comparison pairs equal.
	CategoryMatched Category = "matched"
	// CategoryOnlyInternal marks rows present only in the internal dataset.
	CategoryOnlyInternal Category = "only_internal"
	// CategoryOnlyProvider marks rows present only in the provider dataset.
	CategoryOnlyProvider Category = "only_provider"
	// CategoryMismatched marks rows present in both datasets where at
	// least one comparison pair differs.
	CategoryMismatched Category = "mismatched"
)

// Categories lists all categories in reporting order.
var Categories = []Category{
	CategoryMatched,
	CategoryOnlyInternal,
	CategoryOnlyProvider,
	CategoryMismatched,
}

// ComparisonPair identifies two suffixed columns of a joined row to compare
// for equality. The effective column names are Base+Suffixes[0] and
// Base+Suffixes[1].
type ComparisonPair struct {
	// Base is the column name shared by both datasets before suffixing.
	Base string `yaml:"base" json:"base"`

	// Suffixes holds the internal and provider suffix, in that order.
	// When empty, the rules' merge suffixes apply. Declared suffixes
	// must equal the merge suffixes, since those are the only suffixed
	// columns the joined table carries; Validate rejects anything else.
	Suffixes []string `yaml:"suffixes,omitempty" json:"suffixes,omitempty"`
}

// Columns returns the two effective column names for the pair, falling back
// to the given default suffixes when the pair declares none.
func (p ComparisonPair) Columns(defaults []string) (left, right string) {
	suffixes := p.Suffixes
	if len(suffixes) != 2 {
		suffixes = defaults
	}
	return p.Base + suffixes[0], p.Base + suffixes[1]
}

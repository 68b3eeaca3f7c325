package spread

import "fmt"

// Rule is one entry in a theme's layout policy. Rules are evaluated in
// order at every planning step; the first eligible rule decides the kind of
// the next spread.
//
// A rule is eligible when:
//   - at least MinRemaining images are left to place, and
//   - the periodic predicate holds: Every == 0 (always), or
//     spreadIndex % Every == Offset.
//
// The periodic predicate is what produces visual variety without
// randomness: "every 4th spread is a trio" is Rule{Every: 4, Offset: 1,
// Kind: KindTrio, MinRemaining: 3}.
type Rule struct {
	// MinRemaining gates the rule on how many images are still unplaced.
	// Must be at least the kind's cardinality.
	MinRemaining int `json:"min_remaining" toml:"min_remaining"`

	// Every is the period of the spread-index predicate. Zero means the
	// rule applies at every index.
	Every int `json:"every,omitempty" toml:"every"`

	// Offset selects which index within the period triggers the rule.
	Offset int `json:"offset,omitempty" toml:"offset"`

	// Kind is the layout pattern this rule produces.
	Kind Kind `json:"kind" toml:"kind"`
}

// Eligible reports whether the rule fires for the given spread index and
// remaining image count.
func (r Rule) Eligible(spreadIndex, remaining int) bool {
	if remaining < r.MinRemaining {
		return false
	}
	if r.Every <= 0 {
		return true
	}
	return spreadIndex%r.Every == r.Offset
}

// Validate checks that the rule is internally consistent: the kind must be
// known, MinRemaining must cover the kind's cardinality, and Offset must
// fall inside the period.
func (r Rule) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("unknown layout kind: %q", r.Kind)
	}
	if r.MinRemaining < r.Kind.Cardinality() {
		return fmt.Errorf("rule for %s: min_remaining %d below cardinality %d",
			r.Kind, r.MinRemaining, r.Kind.Cardinality())
	}
	if r.Every > 0 && (r.Offset < 0 || r.Offset >= r.Every) {
		return fmt.Errorf("rule for %s: offset %d outside period %d", r.Kind, r.Offset, r.Every)
	}
	if r.Every == 0 && r.Offset != 0 {
		return fmt.Errorf("rule for %s: offset %d without a period", r.Kind, r.Offset)
	}
	return nil
}

// ValidateRules checks every rule in a table.
func ValidateRules(rules []Rule) error {
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

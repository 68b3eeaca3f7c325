package spread

// Plan partitions an ordered image sequence into layout spreads.
//
// The function is total and pure: it never fails, never mutates its inputs,
// and always returns the same output for the same input. Concatenating the
// Images of every returned spread reproduces images exactly (same elements,
// same order, no duplication, no omission).
//
// The first image always becomes a hero spread, so the lead photograph gets
// the most prominent treatment regardless of gallery size. The remaining
// images are consumed by walking the rule table: at each step the first
// eligible rule wins, and the cursor advances by the chosen kind's
// cardinality. When no rule is eligible (or a rule table is empty or
// invalid for the remaining count), the planner falls back to a rotation of
// single-image kinds, so any remaining ≥ 1 always yields a legal choice.
//
// An empty input produces an empty (nil) plan.
func Plan(images []ImageDescriptor, rules []Rule) []Spread {
	if len(images) == 0 {
		return nil
	}

	spreads := []Spread{{Kind: KindHero, Images: images[0:1:1]}}

	i := 1
	for i < len(images) {
		remaining := len(images) - i
		kind := nextKind(rules, len(spreads), remaining)

		n := kind.Cardinality()
		spreads = append(spreads, Spread{
			Kind:   kind,
			Images: images[i : i+n : i+n],
		})
		i += n
	}

	return spreads
}

// singleFallbacks is the rotation used when no rule is eligible. Cycling
// through the 1-image kinds keeps tail spreads visually varied.
var singleFallbacks = []Kind{KindSingleCentered, KindOffsetLeft, KindOffsetRight}

// nextKind picks the layout kind for the spread at spreadIndex given how
// many images remain. It always returns a kind whose cardinality is at most
// remaining, so the planner can never read past the end of the input.
func nextKind(rules []Rule, spreadIndex, remaining int) Kind {
	if remaining < 1 {
		// Unreachable given the loop invariant; guarded so a broken rule
		// table can never turn into an out-of-range slice.
		return KindSingleCentered
	}
	for _, r := range rules {
		if !r.Eligible(spreadIndex, remaining) {
			continue
		}
		if n := r.Kind.Cardinality(); n >= 1 && n <= remaining {
			return r.Kind
		}
	}
	return singleFallbacks[spreadIndex%len(singleFallbacks)]
}

// Flatten concatenates the images of all spreads in order. The result of
// Flatten(Plan(images, rules)) is always equal to images.
func Flatten(spreads []Spread) []ImageDescriptor {
	var out []ImageDescriptor
	for _, s := range spreads {
		out = append(out, s.Images...)
	}
	return out
}

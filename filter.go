package menagerie

import "slices"

// Matches reports whether the record satisfies every criterion in the query.
// Criteria are conjunctive: an absent criterion constrains nothing, and a
// record matches the trait criterion only if it carries every requested trait.
func (q ListQuery) Matches(a Animal) bool {
	for _, trait := range q.Traits {
		if !slices.Contains(a.PersonalityTraits, trait) {
			return false
		}
	}

	if q.Diet != "" && a.Diet != q.Diet {
		return false
	}
	if q.Species != "" && a.Species != q.Species {
		return false
	}
	if q.Name != "" && a.Name != q.Name {
		return false
	}

	return true
}

// Filter returns the subsequence of animals matching the query, preserving
// collection order. The result is never nil so it marshals as a JSON array.
func Filter(animals []Animal, q ListQuery) []Animal {
	out := make([]Animal, 0, len(animals))
	for _, a := range animals {
		if q.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

package rdf

// Deduplicate flattens the given triple lists and removes duplicate
// statements, preserving first-occurrence order. Duplicate-free output is a
// correctness requirement: repeated sub-structure in the input records must
// not double-assert identical facts.
func Deduplicate(lists ...[]Triple) []Triple {
	seen := make(map[Triple]struct{})
	var out []Triple
	for _, list := range lists {
		for _, t := range list {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

package submissions

import "sort"

// DefaultAggregateLimit is the top-N cap for the simple count view.
const DefaultAggregateLimit = 20

// NameCount is the simple aggregation projection.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NameGroup is the rich projection: the full member list per normalized
// name, for callers that need more than a count (a future consensus-boundary
// merge consumes these).
type NameGroup struct {
	Name    string       `json:"name"`
	Count   int          `json:"count"`
	Members []Submission `json:"members"`
}

// Aggregate groups submissions by normalized name and ranks them: count
// descending, ties broken by name ascending, truncated to limit. A
// non-positive limit means DefaultAggregateLimit. Empty input yields an
// empty result.
func Aggregate(subs []Submission, limit int) []NameCount {
	if limit <= 0 {
		limit = DefaultAggregateLimit
	}

	counts := make(map[string]int)
	for _, sub := range subs {
		counts[sub.NeighborhoodNameNormalized]++
	}

	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// AggregateGroups is Aggregate with member lists and no truncation. Members
// keep the order of the input list.
func AggregateGroups(subs []Submission) []NameGroup {
	members := make(map[string][]Submission)
	for _, sub := range subs {
		key := sub.NeighborhoodNameNormalized
		members[key] = append(members[key], sub)
	}

	groups := make([]NameGroup, 0, len(members))
	for name, subs := range members {
		groups = append(groups, NameGroup{Name: name, Count: len(subs), Members: subs})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// Package matching ranks entities by how many of their skills intersect a
// query skill set. It builds an inverted index (skill ID -> entity indexes)
// and accumulates one count per query skill, so cost scales with the query
// size and the number of entities per skill rather than the whole catalogue.
package matching

import "sort"

// Entity is anything with an ID and a skill set.
type Entity struct {
	ID       int64
	SkillIDs []int64
}

// Match is an entity with a nonzero intersection count.
type Match struct {
	ID    int64
	Count int
}

// Index is an inverted skill index over a fixed entity set.
type Index struct {
	bySkill  map[int64][]int
	entities []Entity
}

// NewIndex builds an index over the given entities. Duplicate skill IDs on
// a single entity are counted once.
func NewIndex(entities []Entity) *Index {
	idx := &Index{
		bySkill:  make(map[int64][]int),
		entities: entities,
	}
	for i, e := range entities {
		seen := make(map[int64]struct{}, len(e.SkillIDs))
		for _, sid := range e.SkillIDs {
			if _, dup := seen[sid]; dup {
				continue
			}
			seen[sid] = struct{}{}
			idx.bySkill[sid] = append(idx.bySkill[sid], i)
		}
	}
	return idx
}

// Rank returns the entities whose skill set intersects the query, ordered
// by intersection count descending. Ties break on ascending entity ID so
// results are deterministic. Duplicate query skills are counted once.
func (idx *Index) Rank(query []int64) []Match {
	if len(query) == 0 {
		return nil
	}

	counts := make(map[int]int)
	seen := make(map[int64]struct{}, len(query))
	for _, sid := range query {
		if _, dup := seen[sid]; dup {
			continue
		}
		seen[sid] = struct{}{}
		for _, i := range idx.bySkill[sid] {
			counts[i]++
		}
	}

	matches := make([]Match, 0, len(counts))
	for i, count := range counts {
		matches = append(matches, Match{ID: idx.entities[i].ID, Count: count})
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Count != matches[b].Count {
			return matches[a].Count > matches[b].Count
		}
		return matches[a].ID < matches[b].ID
	})
	return matches
}

// Rank is a convenience for one-shot ranking without keeping the index.
func Rank(entities []Entity, query []int64) []Match {
	return NewIndex(entities).Rank(query)
}

// SPDX-License-Identifier: MIT

// Package core: Grouping, a partition of an index set by key.
//
// Groups keep first-seen key order unless explicitly sorted. Every index in
// [0, n) belongs to exactly one group; NewGrouping and Validate enforce it.

package core

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Grouping maps each index of a sequence or table to a group key.
type Grouping[K comparable] struct {
	keys    []K
	members [][]int
	n       int
}

// GroupBy partitions [0, n) by key(i). Groups appear in first-seen order
// and members within a group stay ascending.
//
// Float keys: every NaN joins one group keyed by the first NaN seen, since
// NaN never equals itself as a map key. Composite keys (structs, arrays)
// holding a NaN field are not normalised and each forms its own group.
//
// Complexity: O(n) time, O(n) space.
func GroupBy[K comparable](n int, key func(i int) K) *Grouping[K] {
	g := &Grouping[K]{n: n}
	pos := make(map[K]int)
	nanPos := -1
	var i int
	for i = 0; i < n; i++ {
		k := key(i)
		if isFloatNaN(k) {
			if nanPos < 0 {
				nanPos = len(g.keys)
				g.keys = append(g.keys, k)
				g.members = append(g.members, nil)
			}
			g.members[nanPos] = append(g.members[nanPos], i)
			continue
		}
		p, seen := pos[k]
		if !seen {
			p = len(g.keys)
			pos[k] = p
			g.keys = append(g.keys, k)
			g.members = append(g.members, nil)
		}
		g.members[p] = append(g.members[p], i)
	}
	return g
}

// isFloatNaN reports whether k is a NaN of a float kind (named types too).
func isFloatNaN[K comparable](k K) bool {
	if k == k {
		return false
	}
	switch reflect.ValueOf(k).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// NewGrouping builds a grouping from explicit keys and member lists over
// [0, n) and validates it.
//
// Errors:
//   - *LengthMismatch if len(keys) != len(members).
//   - ErrBadGrouping if members overlap, leave gaps, or leave [0, n).
func NewGrouping[K comparable](keys []K, members [][]int, n int) (*Grouping[K], error) {
	if len(keys) != len(members) {
		return nil, Wrap("NewGrouping", &LengthMismatch{Left: len(keys), Right: len(members)})
	}
	g := &Grouping[K]{keys: slices.Clone(keys), members: make([][]int, len(members)), n: n}
	for i, m := range members {
		g.members[i] = slices.Clone(m)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the partition invariant: no overlap, no gaps, no
// out-of-range members, no repeated keys (NaN float keys count as equal).
// Complexity: O(n + groups).
func (g *Grouping[K]) Validate() error {
	seen := make([]bool, g.n)
	count := 0
	keys := make(map[K]struct{}, len(g.keys))
	nanKey := false
	for gi, m := range g.members {
		if isFloatNaN(g.keys[gi]) {
			if nanKey {
				return Wrap("Grouping.Validate", fmt.Errorf("%w: key NaN repeated", ErrBadGrouping))
			}
			nanKey = true
		}
		if _, dup := keys[g.keys[gi]]; dup {
			return Wrap("Grouping.Validate", fmt.Errorf("%w: key %v repeated", ErrBadGrouping, g.keys[gi]))
		}
		keys[g.keys[gi]] = struct{}{}
		for _, i := range m {
			if i < 0 || i >= g.n {
				return Wrap("Grouping.Validate", fmt.Errorf("%w: index %d outside [0,%d)", ErrBadGrouping, i, g.n))
			}
			if seen[i] {
				return Wrap("Grouping.Validate", fmt.Errorf("%w: index %d in two groups", ErrBadGrouping, i))
			}
			seen[i] = true
			count++
		}
	}
	if count != g.n {
		return Wrap("Grouping.Validate", fmt.Errorf("%w: %d of %d indices grouped", ErrBadGrouping, count, g.n))
	}
	return nil
}

// Len returns the number of groups.
func (g *Grouping[K]) Len() int { return len(g.keys) }

// N returns the size of the partitioned index set.
func (g *Grouping[K]) N() int { return g.n }

// Key returns the key of group gi.
func (g *Grouping[K]) Key(gi int) K { return g.keys[gi] }

// Keys returns all keys in group order.
func (g *Grouping[K]) Keys() []K { return slices.Clone(g.keys) }

// Members returns a copy of the indices of group gi, ascending.
func (g *Grouping[K]) Members(gi int) []int { return slices.Clone(g.members[gi]) }

// SortFunc returns a copy with groups ordered by cmp on keys (stable).
// Complexity: O(G log G + n).
func (g *Grouping[K]) SortFunc(cmpKeys func(a, b K) int) *Grouping[K] {
	order := make([]int, len(g.keys))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmpKeys(g.keys[a], g.keys[b]) })

	out := &Grouping[K]{keys: make([]K, len(order)), members: make([][]int, len(order)), n: g.n}
	for dst, src := range order {
		out.keys[dst] = g.keys[src]
		out.members[dst] = slices.Clone(g.members[src])
	}
	return out
}

// SortKeys returns a copy of g with groups in ascending key order.
func SortKeys[K cmp.Ordered](g *Grouping[K]) *Grouping[K] {
	return g.SortFunc(cmp.Compare[K])
}

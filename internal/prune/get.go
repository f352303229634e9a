package prune

// Get extracts the 2-bit mod-3 distance entry for (u, class, twist)
// from the built table — component F's packed-entry extraction.
func (t *Table) Get(u, class, twist int) int {
	return t.shards[u].get(key(class, twist))
}

// CornerTable is the exact BFS distance of each corner permutation back
// to the identity (§3's corner_depth): 40,320 signed bytes, index by the
// Lehmer-rank corner-permutation coordinate.
type CornerTable []int8

// Get returns corner_depth[corners].
func (c CornerTable) Get(corners int) int { return int(c[corners]) }

// Max returns the table's largest entry, the corner BFS diameter
// (§8 property 7 expects this to be 11).
func (c CornerTable) Max() int {
	max := int8(0)
	for _, v := range c {
		if v > max {
			max = v
		}
	}
	return int(max)
}

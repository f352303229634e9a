// Package prune builds and serves the mod-3 distance pruning table of
// §4.E/§4.F: the large flip-slicesorted-twist-udcorners (fsstc) table,
// sharded by the udcorners coordinate, and the small exact
// corner-permutation BFS table. Both are immutable once built, exactly
// like the teacher's lazily-built move tables in internal/movetable.
package prune

import "github.com/ehrlich-b/bigoptcube/internal/coord"

// Unfilled is the reserved 2-bit sentinel meaning "no distance recorded
// yet" during table construction.
const Unfilled = 3

// entriesPerShard is the logical (class, twist) keyspace of a single
// fsstc_depth3 shard: N_FLIPSLICESORTED_CLASS * N_TWIST, as fixed by §3.
const entriesPerShard = coord.NFlipSliceSortedClass * coord.NTwist

// wordsPerShard is entriesPerShard packed 16-to-a-word at 2 bits each,
// plus the one extra trailing word the on-disk layout in §3 reserves.
const wordsPerShard = entriesPerShard/16 + 1

// key packs a (class, twist) pair into a shard's logical index.
func key(class, twist int) int { return class*coord.NTwist + twist }

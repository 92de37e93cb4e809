package merkletree

import (
	"github.com/google/btree"
	"github.com/porep-sys/porep-go/crypto"
)

const setDegree = 32

// DigestSet is an ordered set of digests supporting nearest-match
// lookups. It is not safe for concurrent writes.
type DigestSet struct {
	tree *btree.BTreeG[crypto.Digest]
}

// NewDigestSet returns an empty set.
func NewDigestSet() *DigestSet {
	return &DigestSet{
		tree: btree.NewG(setDegree, func(a, b crypto.Digest) bool {
			return a.Less(b)
		}),
	}
}

// Insert adds d to the set. It returns false, and leaves the set
// unchanged, if d is already present.
func (s *DigestSet) Insert(d crypto.Digest) bool {
	if s.tree.Has(d) {
		return false
	}
	s.tree.ReplaceOrInsert(d)
	return true
}

func (s *DigestSet) Has(d crypto.Digest) bool {
	return s.tree.Has(d)
}

func (s *DigestSet) Delete(d crypto.Digest) bool {
	_, ok := s.tree.Delete(d)
	return ok
}

func (s *DigestSet) Len() int {
	return s.tree.Len()
}

// Ascend calls f for every digest in ascending order until f
// returns false.
func (s *DigestSet) Ascend(f func(d crypto.Digest) bool) {
	s.tree.Ascend(f)
}

// Nearest returns the element closest to d: either the smallest
// element >= d or the largest element < d, whichever has the smaller
// difference to d. Equal differences go to the larger element.
// The boolean is false if the set is empty.
func (s *DigestSet) Nearest(d crypto.Digest) (crypto.Digest, bool) {
	var succ, pred crypto.Digest
	hasSucc, hasPred := false, false
	s.tree.AscendGreaterOrEqual(d, func(item crypto.Digest) bool {
		succ, hasSucc = item, true
		return false
	})
	s.tree.DescendLessOrEqual(d, func(item crypto.Digest) bool {
		if item == d {
			return true
		}
		pred, hasPred = item, true
		return false
	})
	switch {
	case !hasSucc && !hasPred:
		return crypto.Digest{}, false
	case !hasPred:
		return succ, true
	case !hasSucc:
		return pred, true
	}
	if d.Sub(pred).Less(succ.Sub(d)) {
		return pred, true
	}
	return succ, true
}

package merkletree

import (
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
)

// PathIndexes returns the composite indexes of the nodes needed to
// recompute the root from leafIndex, in proof order:
// the whole sibling group of the leaf, then at every internal level
// the siblings of the ancestor (the ancestor itself excluded),
// and finally the root.
// leafIndex must be in [0, Leaves).
func (p Params) PathIndexes(leafIndex int) []int {
	indexes := make([]int, 0, p.ProofLength())

	group := leafIndex / p.Fanout
	for i := 0; i < p.Fanout; i++ {
		indexes = append(indexes, group*p.Fanout+i)
	}

	base := p.Leaves
	for width := p.Fanout; width < p.Leaves; width *= p.Fanout {
		node := base + leafIndex/width
		b := node / p.Fanout
		for i := 0; i < p.Fanout; i++ {
			if p.Fanout*b+i != node {
				indexes = append(indexes, p.Fanout*b+i)
			}
		}
		base += p.Leaves / width
	}
	return append(indexes, base)
}

// ComputeRoot hashes a decoded path back up to the root. hashes holds
// the nodes at indexes (as returned by PathIndexes); the root slot,
// if present, is never read.
func ComputeRoot(hashes []crypto.Digest, indexes []int, params Params,
	hasher hashers.Compressor) (crypto.Digest, error) {
	var res crypto.Digest
	siblings := len(indexes) - 1
	if siblings < params.Fanout || len(hashes) < siblings {
		return res, ErrProofLength
	}

	window := make([]crypto.Digest, params.Fanout)
	copy(window, hashes[:params.Fanout])
	pos := params.Fanout

	base := params.Leaves
	width := params.Fanout
	for level := 1; level <= params.Depth(); level++ {
		res = hasher.Compress(window, 0, params.Fanout)
		if level == params.Depth() {
			break
		}
		ancestor := base + indexes[0]/width
		next := window[:0]
		for pos < siblings && indexes[pos] < ancestor && len(next) < params.Fanout-1 {
			next = append(next, hashes[pos])
			pos++
		}
		next = append(next, res)
		for len(next) < params.Fanout {
			if pos >= siblings {
				return crypto.Digest{}, ErrProofLength
			}
			next = append(next, hashes[pos])
			pos++
		}
		window = next
		base += params.Leaves / width
		width *= params.Fanout
	}
	return res, nil
}

// Verify decodes a copy of p with the path selected by challenge,
// recomputes the root and compares it with the root p claims.
// p itself is not modified.
func Verify(p *Proof, challenge crypto.Digest, params Params,
	hasher hashers.Compressor) bool {
	indexes := params.PathIndexes(challenge.Mod(params.Leaves))
	if len(p.Hashes) != len(indexes) {
		return false
	}
	decoded := p.Clone()
	if err := Decode(decoded, indexes, hasher); err != nil {
		return false
	}
	root, err := ComputeRoot(decoded.Hashes, indexes, params, hasher)
	if err != nil {
		return false
	}
	return root == p.Root()
}

package merkletree

import (
	"errors"

	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
)

// ErrProofLength indicates a proof that holds fewer digests
// than its path requires.
var ErrProofLength = errors.New("[merkletree] Proof length does not match its path")

// marker returns the all-zero digest whose last byte is position.
// Only the low byte of position is kept.
func marker(position int) crypto.Digest {
	var m crypto.Digest
	m.SetByte(crypto.HashSizeByte-1, byte(position))
	return m
}

// mask returns H(root || marker(position)).
func mask(root crypto.Digest, position int, hasher hashers.Compressor) crypto.Digest {
	return hasher.Compress([]crypto.Digest{root, marker(position)}, 0, 2)
}

// Encode binds every non-root node to the tree's root and to its own
// position: nodes[i] ^= H(root || marker(i)). The root itself (the
// last element) is left as is. nodes is modified in place.
// Encode must run after Build, on the nodes Build produced.
func Encode(nodes []crypto.Digest, hasher hashers.Compressor) {
	if len(nodes) == 0 {
		return
	}
	root := nodes[len(nodes)-1]
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i] = nodes[i].Xor(mask(root, i, hasher))
	}
}

// Decode reverses Encode on the hashes of p, which were extracted at
// the given composite indexes. indexes must be exactly the list the
// proof was extracted with; the root slot is left untouched.
// p is modified in place.
func Decode(p *Proof, indexes []int, hasher hashers.Compressor) error {
	if len(indexes) == 0 || len(p.Hashes) < len(indexes) {
		return ErrProofLength
	}
	root := p.Root()
	for i := 0; i < len(indexes)-1; i++ {
		p.Hashes[i] = p.Hashes[i].Xor(mask(root, indexes[i], hasher))
	}
	return nil
}

// An EncodeHook runs around Encode for every plotted tree. It is the
// place to plug a sealing step such as a verifiable delay function.
type EncodeHook interface {
	// PreEncode runs on the freshly built tree.
	PreEncode(t *Tree) error
	// PostEncode runs on the encoded tree, before it is committed.
	PostEncode(t *Tree) error
}

// EncodeTree runs the hooks and Encode over t.
func EncodeTree(t *Tree, hasher hashers.Compressor, hooks ...EncodeHook) error {
	for _, h := range hooks {
		if err := h.PreEncode(t); err != nil {
			return err
		}
	}
	Encode(t.nodes, hasher)
	for _, h := range hooks {
		if err := h.PostEncode(t); err != nil {
			return err
		}
	}
	return nil
}

package merkletree

import (
	"errors"

	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
	"github.com/porep-sys/porep-go/utils"
)

var (
	// ErrEmptyLeaves indicates an attempt to build a tree without leaves.
	ErrEmptyLeaves = errors.New("[merkletree] Cannot build a tree from no leaves")
	// ErrLeafCount indicates a leaf vector whose length differs from
	// Params.Leaves.
	ErrLeafCount = errors.New("[merkletree] Wrong number of leaves")
	// ErrIndexOutOfRange indicates an access past the end of a tree
	// or a proof.
	ErrIndexOutOfRange = errors.New("[merkletree] Index out of range")
)

// offsetSize is the size of the block offset header of a serialized tree.
const offsetSize = 8

// Tree is a complete Merkle tree stored as one flat, level-ordered
// sequence of nodes: the leaves first, then every internal level from
// the bottom up, the root last. The internal node at composite index
// Leaves+i is the compression of the Fanout nodes starting at i*Fanout.
type Tree struct {
	nodes  []crypto.Digest
	offset uint64
	params Params
}

// Build computes all internal nodes over leaves.
// offset is the index of the input block the leaves were read from.
// Params are not validated here; leaves must be an exact power of
// the fanout for the layout to be well-formed.
func Build(leaves []crypto.Digest, offset uint64, params Params,
	hasher hashers.Compressor) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeaves
	}
	if len(leaves) != params.Leaves {
		return nil, ErrLeafCount
	}
	total := params.NodeCount()
	nodes := make([]crypto.Digest, 0, total)
	nodes = append(nodes, leaves...)
	for i := 0; i < total-params.Leaves; i++ {
		nodes = append(nodes, hasher.Compress(nodes, i*params.Fanout, params.Fanout))
	}
	return &Tree{
		nodes:  nodes,
		offset: offset,
		params: params,
	}, nil
}

// NewTreeFromBlock reads Params.Leaves consecutive digests from
// a raw input block and builds a tree over them.
func NewTreeFromBlock(block []byte, offset uint64, params Params,
	hasher hashers.Compressor) (*Tree, error) {
	leaves := make([]crypto.Digest, params.Leaves)
	position := 0
	for i := range leaves {
		var err error
		leaves[i], position, err = crypto.DeserializeDigest(block, position)
		if err != nil {
			return nil, err
		}
	}
	return Build(leaves, offset, params, hasher)
}

// DecodeTree parses a serialized tree as written by Bytes.
func DecodeTree(buf []byte, params Params) (*Tree, error) {
	offset, err := utils.BytesToULong(buf)
	if err != nil {
		return nil, crypto.ErrNotEnoughBytes
	}
	nodes := make([]crypto.Digest, params.NodeCount())
	position := offsetSize
	for i := range nodes {
		nodes[i], position, err = crypto.DeserializeDigest(buf, position)
		if err != nil {
			return nil, err
		}
	}
	return &Tree{
		nodes:  nodes,
		offset: offset,
		params: params,
	}, nil
}

// Root returns the last node of the tree.
func (t *Tree) Root() crypto.Digest {
	return t.nodes[len(t.nodes)-1]
}

// Nodes returns the flat node sequence. The slice is shared with the
// tree so the encoder can work in place.
func (t *Tree) Nodes() []crypto.Digest {
	return t.nodes
}

// Node returns the node at composite index i.
func (t *Tree) Node(i int) (crypto.Digest, error) {
	if i < 0 || i >= len(t.nodes) {
		return crypto.Digest{}, ErrIndexOutOfRange
	}
	return t.nodes[i], nil
}

// Offset returns the index of the input block this tree was built from.
func (t *Tree) Offset() uint64 {
	return t.offset
}

func (t *Tree) Params() Params {
	return t.params
}

// Bytes returns the on-disk layout of t:
// [8-byte big-endian offset][node_0]...[node_{total-1}].
func (t *Tree) Bytes() []byte {
	buf := make([]byte, 0, offsetSize+len(t.nodes)*crypto.HashSizeByte)
	buf = append(buf, utils.ULongToBytes(t.offset)...)
	for _, n := range t.nodes {
		buf = n.Serialize(buf)
	}
	return buf
}

// Serialize writes t to path. It refuses to overwrite an existing file
// and returns an error wrapping utils.ErrFileExists in that case.
func (t *Tree) Serialize(path string) error {
	return utils.WriteFile(path, t.Bytes(), 0644)
}

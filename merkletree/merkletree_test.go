package merkletree

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/utils"
)

func TestBuildEmpty(t *testing.T) {
	if _, err := Build(nil, 0, DefaultParams, testHasher()); err != ErrEmptyLeaves {
		t.Fatal("Expect ErrEmptyLeaves, got", err)
	}
	leaves := make([]crypto.Digest, DefaultParams.Leaves-1)
	if _, err := Build(leaves, 0, DefaultParams, testHasher()); err != ErrLeafCount {
		t.Fatal("Expect ErrLeafCount, got", err)
	}
}

func TestBuildLayout(t *testing.T) {
	h := testHasher()
	for _, params := range testParams {
		tree := buildRandomTree(t, 1, params)
		nodes := tree.Nodes()
		if len(nodes) != params.NodeCount() {
			t.Fatal("Wrong number of nodes", len(nodes))
		}
		for i := params.Leaves; i < len(nodes); i++ {
			start := (i - params.Leaves) * params.Fanout
			if nodes[i] != h.Compress(nodes, start, params.Fanout) {
				t.Fatal("Internal node", i, "is not the compression of its children")
			}
		}
		if tree.Root() != nodes[len(nodes)-1] {
			t.Error("Root must be the last node")
		}
	}
}

func TestBuildSmallTree(t *testing.T) {
	h := testHasher()
	leaves := []crypto.Digest{{1}, {2}, {3}, {4}}
	tree, err := Build(leaves, 0, Params{Fanout: 2, Leaves: 4}, h)
	if err != nil {
		t.Fatal(err)
	}
	n4 := h.Compress(leaves, 0, 2)
	n5 := h.Compress(leaves, 2, 2)
	root := h.Compress([]crypto.Digest{n4, n5}, 0, 2)
	if tree.Root() != root {
		t.Error("Wrong root",
			"expected", root,
			"get", tree.Root())
	}
	leaves[0] = crypto.Digest{9}
	if tree.Nodes()[0] != (crypto.Digest{1}) {
		t.Error("Build must copy the leaves")
	}
}

func TestBuildDeterministic(t *testing.T) {
	t1 := buildRandomTree(t, 42, DefaultParams)
	t2 := buildRandomTree(t, 42, DefaultParams)
	if !bytes.Equal(t1.Bytes(), t2.Bytes()) {
		t.Fatal("Two builds over the same leaves differ")
	}
	t3 := buildRandomTree(t, 43, DefaultParams)
	if t1.Root() == t3.Root() {
		t.Fatal("Different leaves produced the same root")
	}
}

func TestNewTreeFromBlock(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	block := make([]byte, DefaultParams.BlockSize())
	r.Read(block)
	tree, err := NewTreeFromBlock(block, 3, DefaultParams, testHasher())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(tree.Bytes()[8:8+len(block)], block) {
		t.Error("Leaves must be the raw block bytes")
	}
	if _, err := NewTreeFromBlock(block[1:], 3, DefaultParams, testHasher()); err != crypto.ErrNotEnoughBytes {
		t.Error("Expect ErrNotEnoughBytes, got", err)
	}
}

func TestTreeBytesLayout(t *testing.T) {
	tree := buildRandomTree(t, 5, DefaultParams)
	buf := tree.Bytes()
	if len(buf) != DefaultParams.PlotSize() {
		t.Fatal("Wrong serialized size", len(buf))
	}
	if binary.BigEndian.Uint64(buf[:8]) != 5 {
		t.Error("Offset header must be big endian")
	}
	got, err := DecodeTree(buf, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if got.Offset() != tree.Offset() || got.Root() != tree.Root() {
		t.Error("Decoded tree mismatch")
	}
	if _, err := DecodeTree(buf[:len(buf)-1], DefaultParams); err != crypto.ErrNotEnoughBytes {
		t.Error("Expect ErrNotEnoughBytes, got", err)
	}
	if _, err := DecodeTree(buf[:4], DefaultParams); err != crypto.ErrNotEnoughBytes {
		t.Error("Expect ErrNotEnoughBytes, got", err)
	}
	if _, err := tree.Node(len(tree.Nodes())); err != ErrIndexOutOfRange {
		t.Error("Expect ErrIndexOutOfRange, got", err)
	}
}

func TestTreeSerializeDoesNotOverwrite(t *testing.T) {
	tree := buildRandomTree(t, 6, DefaultParams)
	path := filepath.Join(t.TempDir(), tree.Root().String())
	if err := tree.Serialize(path); err != nil {
		t.Fatal(err)
	}
	other := buildRandomTree(t, 7, DefaultParams)
	if err := other.Serialize(path); !errors.Is(err, utils.ErrFileExists) {
		t.Fatal("Expect ErrFileExists, got", err)
	}
}

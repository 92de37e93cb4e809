package merkletree

import (
	"reflect"
	"testing"
)

func TestPathIndexes(t *testing.T) {
	for _, tc := range []struct {
		p      Params
		leaf   int
		expect []int
	}{
		{Params{Fanout: 2, Leaves: 4}, 0, []int{0, 1, 5, 6}},
		{Params{Fanout: 2, Leaves: 4}, 3, []int{2, 3, 4, 6}},
		{Params{Fanout: 2, Leaves: 8}, 5, []int{4, 5, 11, 12, 14}},
		{Params{Fanout: 3, Leaves: 9}, 4, []int{3, 4, 5, 9, 11, 12}},
		{Params{Fanout: 2, Leaves: 2}, 1, []int{0, 1, 2}},
	} {
		got := tc.p.PathIndexes(tc.leaf)
		if !reflect.DeepEqual(got, tc.expect) {
			t.Error("Wrong path for", tc.p, "leaf", tc.leaf,
				"expected", tc.expect,
				"get", got)
		}
	}
}

func TestPathIndexesShape(t *testing.T) {
	for _, params := range testParams {
		for leaf := 0; leaf < params.Leaves; leaf++ {
			indexes := params.PathIndexes(leaf)
			if len(indexes) != params.ProofLength() {
				t.Fatal("Wrong path length for", params, "leaf", leaf, len(indexes))
			}
			if indexes[len(indexes)-1] != params.NodeCount()-1 {
				t.Fatal("Path must end at the root", indexes)
			}
			found := false
			for _, i := range indexes[:params.Fanout] {
				if i == leaf {
					found = true
				}
			}
			if !found {
				t.Fatal("Leaf", leaf, "missing from its own path", indexes)
			}
		}
	}
}

// Every leaf's path, extracted from the raw tree, hashes back to the root.
func TestPathCompleteness(t *testing.T) {
	h := testHasher()
	for _, params := range testParams {
		tree := buildRandomTree(t, 11, params)
		buf := tree.Bytes()
		for leaf := 0; leaf < params.Leaves; leaf++ {
			indexes := params.PathIndexes(leaf)
			p, err := NewProofFromPlot(buf, indexes)
			if err != nil {
				t.Fatal(err)
			}
			root, err := ComputeRoot(p.Hashes, indexes, params, h)
			if err != nil {
				t.Fatal(err)
			}
			if root != tree.Root() {
				t.Fatal("Wrong root for", params, "leaf", leaf)
			}
		}
	}
}

// The same holds for encoded trees once the path is decoded.
func TestPathCompletenessEncoded(t *testing.T) {
	h := testHasher()
	for _, params := range testParams {
		tree := buildRandomTree(t, 12, params)
		root := tree.Root()
		Encode(tree.Nodes(), h)
		buf := tree.Bytes()
		for leaf := 0; leaf < params.Leaves; leaf++ {
			indexes := params.PathIndexes(leaf)
			p, err := NewProofFromPlot(buf, indexes)
			if err != nil {
				t.Fatal(err)
			}
			if err := Decode(p, indexes, h); err != nil {
				t.Fatal(err)
			}
			got, err := ComputeRoot(p.Hashes, indexes, params, h)
			if err != nil {
				t.Fatal(err)
			}
			if got != root {
				t.Fatal("Wrong root for", params, "leaf", leaf)
			}
		}
	}
}

func TestComputeRootShortPath(t *testing.T) {
	params := DefaultParams
	tree := buildRandomTree(t, 13, params)
	indexes := params.PathIndexes(0)
	p, err := NewProofFromPlot(tree.Bytes(), indexes)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ComputeRoot(p.Hashes[:3], indexes, params, testHasher()); err != ErrProofLength {
		t.Error("Expect ErrProofLength, got", err)
	}
	if _, err := ComputeRoot(p.Hashes, indexes[:3], params, testHasher()); err != ErrProofLength {
		t.Error("Expect ErrProofLength, got", err)
	}
}

func TestVerify(t *testing.T) {
	h := testHasher()
	for _, params := range testParams {
		tree := buildRandomTree(t, 21, params)
		Encode(tree.Nodes(), h)
		buf := tree.Bytes()
		for leaf := 0; leaf < params.Leaves; leaf++ {
			challenge := challengeFor(leaf)
			p, err := NewProofFromPlot(buf, params.PathIndexes(challenge.Mod(params.Leaves)))
			if err != nil {
				t.Fatal(err)
			}
			orig := p.String()
			if !Verify(p, challenge, params, h) {
				t.Fatal("Valid proof rejected for", params, "leaf", leaf)
			}
			if p.String() != orig {
				t.Fatal("Verify must not modify the proof")
			}
		}
	}
}

// Flipping any byte of any non-root node breaks verification.
func TestVerifyRejectsTampering(t *testing.T) {
	h := testHasher()
	params := DefaultParams
	tree := buildRandomTree(t, 22, params)
	Encode(tree.Nodes(), h)
	challenge := challengeFor(17)
	p, err := NewProofFromPlot(tree.Bytes(), params.PathIndexes(17))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(p.Hashes)-1; i++ {
		for j := 0; j < len(p.Hashes[i]); j++ {
			tampered := p.Clone()
			tampered.Hashes[i][j] ^= 0x01
			if Verify(tampered, challenge, params, h) {
				t.Fatal("Tampered proof accepted: node", i, "byte", j)
			}
		}
	}
	tampered := p.Clone()
	tampered.Hashes[len(p.Hashes)-1][0] ^= 0x01
	if Verify(tampered, challenge, params, h) {
		t.Fatal("Proof with a tampered root accepted")
	}
	if Verify(p, challengeFor(18), params, h) {
		t.Fatal("Proof accepted for a different challenge")
	}
	short := &Proof{Hashes: p.Hashes[1:]}
	if Verify(short, challenge, params, h) {
		t.Fatal("Short proof accepted")
	}
}

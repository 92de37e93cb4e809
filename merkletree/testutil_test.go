package merkletree

import (
	"math/rand"
	"testing"

	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
	"github.com/porep-sys/porep-go/crypto/hashers/sha256"
)

func testHasher() hashers.Compressor {
	return sha256.New()
}

func randomLeaves(r *rand.Rand, n int) []crypto.Digest {
	leaves := make([]crypto.Digest, n)
	for i := range leaves {
		r.Read(leaves[i][:])
	}
	return leaves
}

func buildRandomTree(t *testing.T, seed int64, params Params) *Tree {
	r := rand.New(rand.NewSource(seed))
	tree, err := Build(randomLeaves(r, params.Leaves), uint64(seed), params, testHasher())
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

// challengeFor returns a challenge whose path starts at leaf.
func challengeFor(leaf int) crypto.Digest {
	var c crypto.Digest
	c.SetByte(crypto.HashSizeByte-1, byte(leaf))
	return c
}

var testParams = []Params{
	DefaultParams,
	{Fanout: 2, Leaves: 2},
	{Fanout: 2, Leaves: 8},
	{Fanout: 3, Leaves: 27},
	{Fanout: 4, Leaves: 64},
	{Fanout: 16, Leaves: 256},
}

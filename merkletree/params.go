package merkletree

import (
	"errors"
	"fmt"

	"github.com/porep-sys/porep-go/crypto"
)

// ErrInvalidParams indicates a fanout/leaves combination
// that does not describe a complete tree.
var ErrInvalidParams = errors.New("[merkletree] Invalid tree parameters")

// Params describes the shape of every plot tree: each internal node
// has Fanout children and the tree has Leaves leaves.
// Leaves must be an exact power of Fanout.
type Params struct {
	Fanout int `toml:"fanout"`
	Leaves int `toml:"leaves"`
}

// DefaultParams is the reference configuration.
var DefaultParams = Params{Fanout: 2, Leaves: 64}

// Validate checks that p describes a well-formed complete tree.
func (p Params) Validate() error {
	if p.Fanout < 2 || p.Leaves < p.Fanout {
		return fmt.Errorf("%w: fanout %d, leaves %d", ErrInvalidParams, p.Fanout, p.Leaves)
	}
	n := p.Leaves
	for n%p.Fanout == 0 {
		n /= p.Fanout
	}
	if n != 1 {
		return fmt.Errorf("%w: %d leaves is not a power of %d", ErrInvalidParams, p.Leaves, p.Fanout)
	}
	return nil
}

// NodeCount returns the number of nodes (leaves and internal) in a tree.
func (p Params) NodeCount() int {
	return (p.Fanout*p.Leaves - 1) / (p.Fanout - 1)
}

// Depth returns log_Fanout(Leaves), the number of hashing levels
// between the leaves and the root.
func (p Params) Depth() int {
	depth := 0
	for w := 1; w < p.Leaves; w *= p.Fanout {
		depth++
	}
	return depth
}

// ProofLength returns the number of digests in a proof, root included.
func (p Params) ProofLength() int {
	return p.Depth()*(p.Fanout-1) + 2
}

// BlockSize returns the number of input bytes consumed per tree.
func (p Params) BlockSize() int {
	return p.Leaves * crypto.HashSizeByte
}

// PlotSize returns the size of a serialized tree in bytes.
func (p Params) PlotSize() int {
	return offsetSize + p.NodeCount()*crypto.HashSizeByte
}

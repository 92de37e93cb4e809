package merkletree

import (
	"strings"

	"github.com/porep-sys/porep-go/crypto"
)

// Proof is the partial path a plot returns for a challenge: the
// encoded nodes found at the indexes PathIndexes selects, in that
// order, followed by the root. The root is always the last digest.
type Proof struct {
	Hashes []crypto.Digest
}

// NewProofFromPlot extracts the digests at indexes from a serialized
// tree (see Tree.Bytes).
func NewProofFromPlot(plot []byte, indexes []int) (*Proof, error) {
	if len(plot) < offsetSize {
		return nil, crypto.ErrNotEnoughBytes
	}
	p := &Proof{Hashes: make([]crypto.Digest, 0, len(indexes))}
	for _, index := range indexes {
		h, _, err := crypto.DeserializeDigest(plot, offsetSize+index*crypto.HashSizeByte)
		if err != nil {
			return nil, err
		}
		p.Hashes = append(p.Hashes, h)
	}
	return p, nil
}

// ParseProof parses the text form produced by Proof.String.
func ParseProof(s string, params Params) (*Proof, error) {
	n := params.ProofLength()
	width := 2 * crypto.HashSizeByte
	if len(s) != n*width {
		return nil, crypto.ErrHashFormat
	}
	p := &Proof{Hashes: make([]crypto.Digest, n)}
	for i := range p.Hashes {
		h, err := crypto.DigestFromHex(s[i*width : (i+1)*width])
		if err != nil {
			return nil, err
		}
		p.Hashes[i] = h
	}
	return p, nil
}

// Root returns the root the proof claims.
func (p *Proof) Root() crypto.Digest {
	return p.Hashes[len(p.Hashes)-1]
}

// At returns the i-th digest of the proof.
func (p *Proof) At(i int) (crypto.Digest, error) {
	if i < 0 || i >= len(p.Hashes) {
		return crypto.Digest{}, ErrIndexOutOfRange
	}
	return p.Hashes[i], nil
}

// Clone returns a deep copy of p.
func (p *Proof) Clone() *Proof {
	return &Proof{Hashes: append([]crypto.Digest(nil), p.Hashes...)}
}

// String returns the concatenated lowercase hex form of all digests.
func (p *Proof) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Hashes) * 2 * crypto.HashSizeByte)
	for _, h := range p.Hashes {
		sb.WriteString(h.String())
	}
	return sb.String()
}

// Quality scores p against challenge. It picks the non-root node
// closest to challenge, splices the upper half of the root with the
// lower half of that node, and returns the byte-sum distance between
// the composite and challenge relative to their byte-sums.
// Lower values mean the plot is closer to the challenge.
func (p *Proof) Quality(challenge crypto.Digest) float64 {
	if len(p.Hashes) < 2 {
		return 0
	}
	nodes := NewDigestSet()
	for _, h := range p.Hashes[:len(p.Hashes)-1] {
		nodes.Insert(h)
	}
	node, _ := nodes.Nearest(challenge)

	root := p.Root()
	var h crypto.Digest
	half := crypto.HashSizeByte / 2
	copy(h[:half], root[:half])
	copy(h[half:], node[half:])

	var dif crypto.Digest
	if h.Less(challenge) {
		dif = challenge.Sub(h)
	} else {
		dif = h.Sub(challenge)
	}
	den := challenge.Scalar() + h.Scalar()
	if den == 0 {
		return 0
	}
	return float64(dif.Scalar()) / float64(den)
}

// Package blake3 registers a BLAKE3 compression function.
package blake3

import (
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
	"github.com/zeebo/blake3"
)

func init() {
	hashers.RegisterHasher(BLAKE3, New)
}

// BLAKE3 is the identity of the BLAKE3 compression function.
const BLAKE3 = "BLAKE3"

type hasher struct{}

// New returns an instance of the BLAKE3 compressor.
func New() hashers.Compressor {
	return hasher{}
}

func (hasher) ID() string {
	return BLAKE3
}

func (hasher) Size() int {
	return crypto.HashSizeByte
}

func (hasher) Compress(values []crypto.Digest, start, count int) crypto.Digest {
	return crypto.Digest(blake3.Sum256(hashers.Window(values, start, count)))
}

// Package shake128 registers a SHAKE128 compression function
// with a HashSizeByte output.
package shake128

import (
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
	"golang.org/x/crypto/sha3"
)

func init() {
	hashers.RegisterHasher(SHAKE128, New)
}

// SHAKE128 is the identity of the SHAKE128 compression function.
const SHAKE128 = "SHAKE128"

type hasher struct{}

// New returns an instance of the SHAKE128 compressor.
func New() hashers.Compressor {
	return hasher{}
}

func (hasher) ID() string {
	return SHAKE128
}

func (hasher) Size() int {
	return crypto.HashSizeByte
}

func (hasher) Compress(values []crypto.Digest, start, count int) crypto.Digest {
	var out crypto.Digest
	h := sha3.NewShake128()
	for _, v := range values[start : start+count] {
		h.Write(v[:])
	}
	h.Read(out[:])
	return out
}

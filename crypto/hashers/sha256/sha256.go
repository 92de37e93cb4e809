// Package sha256 registers the reference compression function:
// SHA-256 over the concatenated raw bytes of the window.
package sha256

import (
	"github.com/minio/sha256-simd"
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
)

func init() {
	hashers.RegisterHasher(SHA256, New)
}

// SHA256 is the identity of the reference compression function.
const SHA256 = "SHA-256"

type hasher struct{}

// New returns an instance of the SHA-256 compressor.
func New() hashers.Compressor {
	return hasher{}
}

func (hasher) ID() string {
	return SHA256
}

func (hasher) Size() int {
	return sha256.Size
}

func (hasher) Compress(values []crypto.Digest, start, count int) crypto.Digest {
	return crypto.Digest(sha256.Sum256(hashers.Window(values, start, count)))
}

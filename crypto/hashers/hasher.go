// Package hashers contains the registry of compression functions
// used to build and verify plot trees. A compression function turns
// a window of consecutive digests into a single digest.
//
// Implementations register themselves in an init function, so
// callers link them in with a blank import:
//
//	import _ "github.com/porep-sys/porep-go/crypto/hashers/sha256"
package hashers

import (
	"fmt"

	"github.com/porep-sys/porep-go/crypto"
)

// Compressor provides the compression function of the plot trees.
type Compressor interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Compress hashes the raw concatenation of
	// values[start:start+count]. The passed slice won't be mutated.
	Compress(values []crypto.Digest, start, count int) crypto.Digest
}

var hashers = make(map[string]Compressor)

// RegisterHasher registers a hasher for use.
func RegisterHasher(h string, f func() Compressor) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("%s is already registered", h))
	}
	hashers[h] = f()
}

// NewCompressor returns a registered Compressor identified by the given
// string. If no such Compressor exists, it returns an error.
func NewCompressor(h string) (Compressor, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%s is an unknown hasher", h)
}

// Registered returns the ids of all registered hashers.
func Registered() []string {
	ids := make([]string, 0, len(hashers))
	for id := range hashers {
		ids = append(ids, id)
	}
	return ids
}

// Window returns the raw concatenation of values[start:start+count].
func Window(values []crypto.Digest, start, count int) []byte {
	block := make([]byte, 0, count*crypto.HashSizeByte)
	for _, v := range values[start : start+count] {
		block = append(block, v[:]...)
	}
	return block
}

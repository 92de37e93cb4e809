package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/sha3"
)

const (
	// HashSizeByte is the size of a digest in bytes.
	HashSizeByte = 32
)

// MakeRand returns a random slice of bytes.
// It returns an error if there was a problem while generating
// the random slice.
// It is different from the 'standard' random byte generation as it
// hashes its output before returning it, so raw PRNG output never
// ends up in a challenge.
func MakeRand() ([]byte, error) {
	r := make([]byte, HashSizeByte)
	if _, err := io.ReadFull(rand.Reader, r); err != nil {
		return nil, err
	}
	h := sha3.NewShake128()
	h.Write(r)
	ret := make([]byte, HashSizeByte)
	h.Read(ret)
	return ret, nil
}

// RandomDigest returns a fresh random challenge.
func RandomDigest() (Digest, error) {
	r, err := MakeRand()
	if err != nil {
		return Digest{}, err
	}
	return DigestFromBytes(r)
}

// ZeroChallenge is the all-zero challenge used when
// no challenge is supplied.
var ZeroChallenge = Digest{}

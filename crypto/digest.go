package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrHashFormat indicates a digest text form of the wrong length
	// or with non-hex characters.
	ErrHashFormat = errors.New("[crypto] Malformed digest string")
	// ErrNotEnoughBytes indicates a buffer too short to hold a digest.
	ErrNotEnoughBytes = errors.New("[crypto] Not enough bytes for a digest")
)

// Digest is a fixed-size hash value. It is a value type;
// copying a Digest copies its bytes.
type Digest [HashSizeByte]byte

// DigestFromBytes copies the first HashSizeByte bytes of b
// into a new Digest.
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) < HashSizeByte {
		return d, ErrNotEnoughBytes
	}
	copy(d[:], b)
	return d, nil
}

// DigestFromHex parses a digest from its 2*HashSizeByte character
// hex form. Both lower and upper case are accepted.
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*HashSizeByte {
		return d, ErrHashFormat
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, ErrHashFormat
	}
	return d, nil
}

// DeserializeDigest reads a digest from buf starting at position
// and returns it together with the position right after it.
func DeserializeDigest(buf []byte, position int) (Digest, int, error) {
	var d Digest
	if position < 0 || len(buf)-position < HashSizeByte {
		return d, position, ErrNotEnoughBytes
	}
	copy(d[:], buf[position:position+HashSizeByte])
	return d, position + HashSizeByte, nil
}

// Zero resets all bytes of d.
func (d *Digest) Zero() {
	*d = Digest{}
}

// SetByte patches the i-th byte of d.
func (d *Digest) SetByte(i int, b byte) {
	d[i] = b
}

// Size returns the size of d in bytes.
func (d Digest) Size() int {
	return HashSizeByte
}

// Serialize appends the raw bytes of d to buf. There is no
// length prefix.
func (d Digest) Serialize(buf []byte) []byte {
	return append(buf, d[:]...)
}

// Hex returns the hex form of the first numBytes bytes of d.
func (d Digest) Hex(numBytes int, lowerCase bool) string {
	if numBytes > HashSizeByte {
		numBytes = HashSizeByte
	}
	s := hex.EncodeToString(d[:numBytes])
	if !lowerCase {
		s = strings.ToUpper(s)
	}
	return s
}

// String returns the full lowercase hex form of d,
// which is also the name of the plot file it roots.
func (d Digest) String() string {
	return d.Hex(HashSizeByte, true)
}

// Compare orders digests byte-lexicographically.
func (d Digest) Compare(o Digest) int {
	return bytes.Compare(d[:], o[:])
}

func (d Digest) Equal(o Digest) bool {
	return d == o
}

func (d Digest) Less(o Digest) bool {
	return d.Compare(o) < 0
}

func (d Digest) LessOrEqual(o Digest) bool {
	return d.Compare(o) <= 0
}

// Sub returns d - o as an unsigned big-endian number of HashSizeByte
// bytes. The caller is expected to pass d >= o; otherwise the result
// wraps around modulo 2^(8*HashSizeByte).
func (d Digest) Sub(o Digest) Digest {
	var res Digest
	borrow := 0
	for i := HashSizeByte - 1; i >= 0; i-- {
		diff := int(d[i]) - int(o[i]) - borrow
		if diff < 0 {
			diff += 256
			borrow = 1
		} else {
			borrow = 0
		}
		res[i] = byte(diff)
	}
	return res
}

// Xor returns the byte-wise XOR of d and o.
func (d Digest) Xor(o Digest) Digest {
	var res Digest
	for i := range d {
		res[i] = d[i] ^ o[i]
	}
	return res
}

// Mod returns the last byte of d modulo n.
func (d Digest) Mod(n int) int {
	return int(d[HashSizeByte-1]) % n
}

// Scalar returns the sum of all bytes of d. It is only a rough
// ordering key, not the numeric value of d.
func (d Digest) Scalar() uint64 {
	var res uint64
	for _, b := range d {
		res += uint64(b)
	}
	return res
}

package hashers

import (
	"bytes"
	"testing"

	"github.com/porep-sys/porep-go/crypto"
)

var fakeHasherID = "fakeHasher"

func fakeHasher() Compressor {
	return nil
}

func TestHasherIsRegistered(t *testing.T) {
	RegisterHasher(fakeHasherID, fakeHasher)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected RegisterHasher to panic.")
		}
	}()
	RegisterHasher(fakeHasherID, fakeHasher)
}

func TestGetHasher(t *testing.T) {
	if _, ok := hashers[fakeHasherID]; !ok {
		RegisterHasher(fakeHasherID, fakeHasher)
	}

	if _, err := NewCompressor(fakeHasherID); err != nil {
		t.Error("Expect a hasher.")
	}
	if _, err := NewCompressor("unknown"); err == nil {
		t.Error("Expect an error for an unknown hasher.")
	}
	found := false
	for _, id := range Registered() {
		if id == fakeHasherID {
			found = true
		}
	}
	if !found {
		t.Error("Registered() misses", fakeHasherID)
	}
}

func TestWindow(t *testing.T) {
	values := make([]crypto.Digest, 4)
	for i := range values {
		values[i][0] = byte(i)
	}
	w := Window(values, 1, 2)
	if len(w) != 2*crypto.HashSizeByte {
		t.Fatal("Wrong window length", len(w))
	}
	if !bytes.Equal(w[:crypto.HashSizeByte], values[1][:]) ||
		!bytes.Equal(w[crypto.HashSizeByte:], values[2][:]) {
		t.Error("Window must concatenate the selected digests in order")
	}
}

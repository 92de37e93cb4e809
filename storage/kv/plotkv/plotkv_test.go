package plotkv

import (
	"testing"

	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/storage/kv"
	"github.com/porep-sys/porep-go/storage/kv/leveldbkv"
)

func TestPlotStore(t *testing.T) {
	leveldbkv.WithDB(t, func(db kv.DB) {
		r1 := crypto.Digest{0x02}
		r2 := crypto.Digest{0x01}
		if err := StoreEntry(db, r1, 7); err != nil {
			t.Fatal(err)
		}
		if err := StoreEntry(db, r2, 3); err != nil {
			t.Fatal(err)
		}
		// unrelated keys must not show up in the catalog
		if err := db.Put([]byte("other"), []byte("x")); err != nil {
			t.Fatal(err)
		}

		offset, err := LoadEntry(db, r1)
		if err != nil {
			t.Fatal(err)
		}
		if offset != 7 {
			t.Error("Unexpected offset", offset)
		}

		entries, err := Entries(db)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 {
			t.Fatal("Expect 2 entries, got", len(entries))
		}
		if entries[0].Root != r2 || entries[0].Offset != 3 ||
			entries[1].Root != r1 || entries[1].Offset != 7 {
			t.Error("Entries must come back in root order", entries)
		}

		if err := DeleteEntry(db, r1); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadEntry(db, r1); err != db.ErrNotFound() {
			t.Error("Expect ErrNotFound, got", err)
		}
	})
}

package leveldbkv

import (
	"testing"

	"github.com/porep-sys/porep-go/storage/kv"
)

// WithDB runs f against a fresh leveldb database in a temporary
// directory owned by t.
func WithDB(t testing.TB, f func(db kv.DB)) {
	db, err := OpenDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	f(db)
}

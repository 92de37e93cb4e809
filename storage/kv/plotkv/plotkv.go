// Package plotkv persists the plot catalog, the mapping from each
// committed root to the input block it was plotted from, in a kv.DB.
package plotkv

import (
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/storage/kv"
	"github.com/porep-sys/porep-go/utils"
)

// PlotIdentifier is the domain separation prefix of catalog entries.
const PlotIdentifier = 'P'

// Entry is one committed plot.
type Entry struct {
	Root   crypto.Digest
	Offset uint64
}

// StoreEntry records that the plot named root was built from
// input block offset.
func StoreEntry(db kv.DB, root crypto.Digest, offset uint64) error {
	wb := db.NewBatch()
	wb.Put(plotKey(root), utils.ULongToBytes(offset))
	return db.Write(wb)
}

// LoadEntry returns the block offset recorded for root.
func LoadEntry(db kv.DB, root crypto.Digest) (uint64, error) {
	buf, err := db.Get(plotKey(root))
	if err != nil {
		return 0, err
	}
	return utils.BytesToULong(buf)
}

// DeleteEntry removes root from the catalog.
func DeleteEntry(db kv.DB, root crypto.Digest) error {
	return db.Delete(plotKey(root))
}

// Entries returns every catalog entry in root order.
func Entries(db kv.DB) ([]Entry, error) {
	iter := db.NewIterator(kv.BytesPrefix([]byte{PlotIdentifier}))
	defer iter.Release()
	var entries []Entry
	for iter.Next() {
		root, err := crypto.DigestFromBytes(iter.Key()[1:])
		if err != nil {
			return nil, err
		}
		offset, err := utils.BytesToULong(iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Root: root, Offset: offset})
	}
	return entries, iter.Error()
}

func plotKey(root crypto.Digest) []byte {
	key := make([]byte, 0, 1+crypto.HashSizeByte)
	key = append(key, PlotIdentifier)
	key = append(key, root[:]...)
	return key
}

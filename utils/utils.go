package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFileExists indicates a write that would overwrite an existing file.
var ErrFileExists = errors.New("[utils] File already exists")

// ULongToBytes converts an uint64 variable to byte array
// in big endian format.
func ULongToBytes(num uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, num)
	return buf
}

// BytesToULong reads a big endian uint64 from the first 8 bytes of buf.
func BytesToULong(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, fmt.Errorf("need 8 bytes, got %d", len(buf))
	}
	return binary.BigEndian.Uint64(buf), nil
}

// WriteFile writes buf to a file whose path is indicated by filename.
// It never overwrites: if the file already exists, WriteFile returns
// an error wrapping ErrFileExists and leaves the file untouched.
// The content is written to a temporary file in the same directory
// and linked into place only once complete, so a failed write never
// leaves a partial file under filename.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return err
	}
	if err := os.Link(tmp, filename); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("can't write file '%s': %w", filename, ErrFileExists)
		}
		return err
	}
	return nil
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}

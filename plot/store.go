package plot

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	pool "github.com/libp2p/go-buffer-pool"
	"github.com/pkg/errors"
	"github.com/porep-sys/porep-go/application"
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
	"github.com/porep-sys/porep-go/merkletree"
	"github.com/porep-sys/porep-go/storage/kv"
	"github.com/porep-sys/porep-go/storage/kv/plotkv"
)

var (
	// ErrNoPlots indicates a proof request against an empty store.
	ErrNoPlots = errors.New("[plot] No committed plots")
	// ErrPlotNotFound indicates that no plot file exists for a root.
	ErrPlotNotFound = errors.New("[plot] Plot file not found")
	// ErrMissingHasher indicates a Config without a compression function.
	ErrMissingHasher = errors.New("[plot] Missing hasher")
)

// Config describes where a Store keeps its plots and how it
// builds them.
type Config struct {
	Dir    string
	Params merkletree.Params
	Hasher hashers.Compressor
}

// An Option customizes a Store.
type Option func(*Store)

// WithLogger makes the store log through l.
func WithLogger(l *application.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithCatalog records every committed plot in db.
// The store does not take ownership of db.
func WithCatalog(db kv.DB) Option {
	return func(s *Store) {
		s.catalog = db
	}
}

// WithEncodeHook runs h around the encoding of every plotted tree.
func WithEncodeHook(h merkletree.EncodeHook) Option {
	return func(s *Store) {
		s.hooks = append(s.hooks, h)
	}
}

// A Store owns the plot directory and the index of committed roots.
// The index and the directory are kept 1:1; inserting a root into the
// index is the commit point of a plot.
type Store struct {
	dir     string
	params  merkletree.Params
	hasher  hashers.Compressor
	logger  *application.Logger
	catalog kv.DB
	hooks   []merkletree.EncodeHook

	mu        sync.RWMutex
	search    *merkletree.DigestSet
	plots     int
	conflicts int
}

// NewStore opens the plot directory in conf, creating it if needed,
// and seeds the root index with the name of every plot file in it.
// Files whose names are not digests are skipped. Files named by a
// digest but shorter or longer than a whole plot were never committed
// and are removed. Catalog entries without a plot file are pruned.
func NewStore(conf Config, opts ...Option) (*Store, error) {
	if err := conf.Params.Validate(); err != nil {
		return nil, err
	}
	if conf.Hasher == nil {
		return nil, ErrMissingHasher
	}
	s := &Store{
		dir:    conf.Dir,
		params: conf.Params,
		hasher: conf.Hasher,
		logger: application.NewNopLogger(),
		search: merkletree.NewDigestSet(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create plot directory")
	}
	if err := s.loadIndex(); err != nil {
		return nil, err
	}
	if s.catalog != nil {
		if err := s.pruneCatalog(); err != nil {
			return nil, err
		}
	}
	s.logger.Info("plot index loaded", "dir", s.dir, "plots", s.search.Len())
	return s, nil
}

func (s *Store) loadIndex() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return errors.Wrap(err, "read plot directory")
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		root, err := crypto.DigestFromHex(e.Name())
		if err != nil {
			s.logger.Warn("skipping foreign file in plot directory", "file", e.Name())
			continue
		}
		fi, err := e.Info()
		if err != nil {
			return errors.Wrapf(err, "stat plot %s", e.Name())
		}
		if fi.Size() != int64(s.params.PlotSize()) {
			s.logger.Warn("removing incomplete plot", "file", e.Name(), "size", fi.Size())
			if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
				return errors.Wrapf(err, "remove incomplete plot %s", e.Name())
			}
			continue
		}
		s.search.Insert(root)
	}
	return nil
}

func (s *Store) pruneCatalog() error {
	entries, err := plotkv.Entries(s.catalog)
	if err != nil {
		return errors.Wrap(err, "read plot catalog")
	}
	for _, e := range entries {
		if s.search.Has(e.Root) {
			continue
		}
		if err := plotkv.DeleteEntry(s.catalog, e.Root); err != nil {
			return errors.Wrapf(err, "prune catalog entry %s", e.Root)
		}
		s.logger.Info("pruned catalog entry without plot", "root", e.Root)
	}
	return nil
}

// PlotFile plots the content of the file at path.
func (s *Store) PlotFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "cannot plot from file")
	}
	defer f.Close()
	return s.Plot(f)
}

// Plot reads r block by block and commits one plot per full block.
// A block whose root is already committed is counted as a conflict
// and skipped. A trailing partial block is dropped.
func (s *Store) Plot(r io.Reader) error {
	block := make([]byte, s.params.BlockSize())
	var offset uint64
	for ; ; offset++ {
		n, err := io.ReadFull(r, block)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			s.logger.Debug("dropping partial block", "offset", offset, "bytes", n)
			break
		}
		if err != nil {
			return errors.Wrapf(err, "read block %d", offset)
		}
		if err := s.plotBlock(block, offset); err != nil {
			return err
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.logger.Info("plotting finished",
		"blocks", offset, "plots", s.plots, "conflicts", s.conflicts)
	return nil
}

func (s *Store) plotBlock(block []byte, offset uint64) error {
	tree, err := merkletree.NewTreeFromBlock(block, offset, s.params, s.hasher)
	if err != nil {
		return errors.Wrapf(err, "build tree for block %d", offset)
	}
	if err := merkletree.EncodeTree(tree, s.hasher, s.hooks...); err != nil {
		return errors.Wrapf(err, "encode tree for block %d", offset)
	}
	root := tree.Root()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.search.Has(root) {
		s.conflicts++
		s.logger.Warn("root conflict, block skipped", "root", root, "offset", offset)
		return nil
	}
	if err := tree.Serialize(s.path(root)); err != nil {
		return errors.Wrapf(err, "write plot for block %d", offset)
	}
	s.search.Insert(root)
	s.plots++
	if s.catalog != nil {
		if err := plotkv.StoreEntry(s.catalog, root, offset); err != nil {
			s.logger.Error("cannot record plot in catalog", "root", root, "error", err)
		}
	}
	s.logger.Debug("plot committed", "root", root, "offset", offset)
	return nil
}

// GenerateProof answers challenge with the path of the leaf it selects,
// cut out of the committed plot whose root is nearest to challenge.
func (s *Store) GenerateProof(challenge crypto.Digest) (*merkletree.Proof, error) {
	root, err := s.NearestRoot(challenge)
	if err != nil {
		return nil, err
	}
	return s.GenerateProofFor(root, challenge)
}

// GenerateProofFor answers challenge from the plot named root.
func (s *Store) GenerateProofFor(root, challenge crypto.Digest) (*merkletree.Proof, error) {
	indexes := s.params.PathIndexes(challenge.Mod(s.params.Leaves))
	buf, err := s.readPlot(root)
	if err != nil {
		return nil, err
	}
	defer pool.Put(buf)
	p, err := merkletree.NewProofFromPlot(buf, indexes)
	if err != nil {
		return nil, errors.Wrapf(err, "extract proof from plot %s", root)
	}
	return p, nil
}

// Verify checks p against challenge.
func (s *Store) Verify(p *merkletree.Proof, challenge crypto.Digest) bool {
	return merkletree.Verify(p, challenge, s.params, s.hasher)
}

// NearestRoot returns the committed root closest to challenge.
func (s *Store) NearestRoot(challenge crypto.Digest) (crypto.Digest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	root, ok := s.search.Nearest(challenge)
	if !ok {
		return crypto.Digest{}, ErrNoPlots
	}
	return root, nil
}

// Tree loads and decodes the plot named root.
func (s *Store) Tree(root crypto.Digest) (*merkletree.Tree, error) {
	buf, err := s.readPlot(root)
	if err != nil {
		return nil, err
	}
	defer pool.Put(buf)
	return merkletree.DecodeTree(buf, s.params)
}

// Offset returns the input block the plot named root was built from.
// The catalog is consulted first; the plot header is the fallback.
func (s *Store) Offset(root crypto.Digest) (uint64, error) {
	if s.catalog != nil {
		if offset, err := plotkv.LoadEntry(s.catalog, root); err == nil {
			return offset, nil
		}
	}
	tree, err := s.Tree(root)
	if err != nil {
		return 0, err
	}
	return tree.Offset(), nil
}

// Offsets returns the block offset of every committed plot. With a
// catalog, offsets are read in one pass over it; plots missing from
// the catalog fall back to their header.
func (s *Store) Offsets() (map[crypto.Digest]uint64, error) {
	cataloged := make(map[crypto.Digest]uint64)
	if s.catalog != nil {
		entries, err := plotkv.Entries(s.catalog)
		if err != nil {
			return nil, errors.Wrap(err, "read plot catalog")
		}
		for _, e := range entries {
			cataloged[e.Root] = e.Offset
		}
	}
	roots := s.Roots()
	offsets := make(map[crypto.Digest]uint64, len(roots))
	for _, root := range roots {
		if offset, ok := cataloged[root]; ok {
			offsets[root] = offset
			continue
		}
		tree, err := s.Tree(root)
		if err != nil {
			return nil, err
		}
		offsets[root] = tree.Offset()
	}
	return offsets, nil
}

// Roots returns the committed roots in ascending order.
func (s *Store) Roots() []crypto.Digest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	roots := make([]crypto.Digest, 0, s.search.Len())
	s.search.Ascend(func(d crypto.Digest) bool {
		roots = append(roots, d)
		return true
	})
	return roots
}

// Plots returns the number of plots committed by this store instance.
func (s *Store) Plots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plots
}

// Conflicts returns the number of blocks skipped because their root
// was already committed.
func (s *Store) Conflicts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conflicts
}

func (s *Store) Params() merkletree.Params {
	return s.params
}

func (s *Store) Hasher() hashers.Compressor {
	return s.hasher
}

func (s *Store) path(root crypto.Digest) string {
	return filepath.Join(s.dir, root.String())
}

// readPlot reads the whole plot file into a pooled buffer. The caller
// must hand the buffer back with pool.Put.
func (s *Store) readPlot(root crypto.Digest) ([]byte, error) {
	f, err := os.Open(s.path(root))
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrPlotNotFound, "root %s", root)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open plot %s", root)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat plot %s", root)
	}
	buf := pool.Get(int(fi.Size()))
	if _, err := io.ReadFull(f, buf); err != nil {
		pool.Put(buf)
		return nil, errors.Wrapf(err, "read plot %s", root)
	}
	return buf, nil
}

// Package store is a content-addressed payload store on the local
// filesystem. Payloads are keyed by their digest, so a payload shared by
// several containers is stored once.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/singleflight"
)

const (
	defaultShardPrefixLen = 2
	defaultDirPerm        = 0o750
)

// ErrCorrupt is returned by Get when stored content no longer matches its
// digest. The bad entry is removed.
var ErrCorrupt = errors.New("store: content does not match digest")

// Store is safe for concurrent use. Entries live at
// <dir>/<algorithm>/<prefix>/<encoded>.
type Store struct {
	dir            string
	shardPrefixLen int
	dirPerm        os.FileMode
	maxBytes       int64 // 0 = unlimited
	bytes          atomic.Int64
	putGroup       singleflight.Group // collapses concurrent puts of one digest
	pruneMu        sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithShardPrefixLen sets the number of encoded-digest characters used for
// subdirectory sharding. Use 0 to disable sharding. Defaults to 2.
func WithShardPrefixLen(n int) Option {
	return func(s *Store) {
		s.shardPrefixLen = n
	}
}

// WithDirPerm sets the permissions used for created directories.
func WithDirPerm(mode os.FileMode) Option {
	return func(s *Store) {
		s.dirPerm = mode
	}
}

// WithMaxBytes caps the total stored size. Oldest entries are pruned to
// make room; a payload larger than the cap is not stored. Use 0 to disable
// the limit.
func WithMaxBytes(n int64) Option {
	return func(s *Store) {
		s.maxBytes = n
	}
}

// New opens or creates a store rooted at dir.
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: dir is empty")
	}
	s := &Store{
		dir:            dir,
		shardPrefixLen: defaultShardPrefixLen,
		dirPerm:        defaultDirPerm,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shardPrefixLen < 0 {
		return nil, errors.New("store: shard prefix length must be >= 0")
	}
	if s.maxBytes < 0 {
		return nil, errors.New("store: max bytes must be >= 0")
	}
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return nil, err
	}
	size, err := dirSize(dir)
	if err != nil {
		return nil, err
	}
	s.bytes.Store(size)
	return s, nil
}

// Put stores data and returns its digest. Storing content that is already
// present is a no-op. The returned bool reports whether data was kept;
// it is false only when data exceeds the size cap.
func (s *Store) Put(data []byte) (digest.Digest, bool, error) {
	d := digest.FromBytes(data)
	path, err := s.path(d)
	if err != nil {
		return "", false, err
	}
	kept, err, _ := s.putGroup.Do(d.String(), func() (any, error) {
		if _, err := os.Stat(path); err == nil {
			return true, nil
		}
		ok, err := s.ensureCapacity(int64(len(data)))
		if err != nil || !ok {
			return false, err
		}
		if err := s.write(path, data); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("store: put %s: %w", d, err)
	}
	return d, kept.(bool), nil //nolint:errcheck // always bool when err is nil
}

// Get returns the content stored under d, verified against d.
func (s *Store) Get(d digest.Digest) ([]byte, error) {
	path, err := s.path(d)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from a validated digest
	if err != nil {
		return nil, err
	}
	if d.Algorithm().FromBytes(data) != d {
		if err := s.Delete(d); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, d)
	}
	return data, nil
}

// Has reports whether content for d is stored.
func (s *Store) Has(d digest.Digest) bool {
	path, err := s.path(d)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Delete removes the content stored under d. Missing entries are a no-op.
func (s *Store) Delete(d digest.Digest) error {
	path, err := s.path(d)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.bytes.Add(-info.Size())
	return nil
}

// MaxBytes returns the configured size limit (0 = unlimited).
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// SizeBytes returns the current stored size in bytes.
func (s *Store) SizeBytes() int64 {
	return s.bytes.Load()
}

// Prune removes the oldest entries until the store is at or below
// targetBytes and returns the number of bytes freed.
func (s *Store) Prune(targetBytes int64) (int64, error) {
	s.pruneMu.Lock()
	defer s.pruneMu.Unlock()

	freed, remaining, err := pruneDir(s.dir, max(targetBytes, 0))
	if err != nil {
		return 0, err
	}
	s.bytes.Store(remaining)
	return freed, nil
}

// path validates d before it becomes a filesystem path.
func (s *Store) path(d digest.Digest) (string, error) {
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("store: %w", err)
	}
	enc := d.Encoded()
	dir := filepath.Join(s.dir, d.Algorithm().String())
	if s.shardPrefixLen > 0 {
		dir = filepath.Join(dir, enc[:min(s.shardPrefixLen, len(enc))])
	}
	return filepath.Join(dir, enc), nil
}

func (s *Store) write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".put-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	s.bytes.Add(int64(len(data)))
	return nil
}

func (s *Store) ensureCapacity(need int64) (bool, error) {
	if s.maxBytes <= 0 {
		return true, nil
	}
	if need > s.maxBytes {
		return false, nil
	}
	if s.SizeBytes()+need <= s.maxBytes {
		return true, nil
	}
	if _, err := s.Prune(s.maxBytes - need); err != nil {
		return false, err
	}
	return s.SizeBytes()+need <= s.maxBytes, nil
}

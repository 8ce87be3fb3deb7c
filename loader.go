package biashara

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Storage keys.
const (
	StateKey     = "biashara_master_v1"
	SnapshotsKey = "biashara_boutique_snapshots"
	VersionKey   = "biashara_app_version"

	// UnreadableSnapshotsKey keeps a snapshot log that could not be decoded.
	UnreadableSnapshotsKey = "biashara_boutique_snapshots_unreadable"
)

// Storage is a string-keyed store of persisted values.
//
// Get returns NoBlob, and no error, for a key that holds nothing.
type Storage interface {
	Get(key string) (Blob, error)
	Set(key string, value []byte) error
}

// DirStorage stores each key in its own "<key>.json" file inside a directory.
type DirStorage struct {
	Dir string
}

// NewDirStorage returns a storage rooted at dir. The directory is created on first write.
func NewDirStorage(dir string) *DirStorage { return &DirStorage{Dir: dir} }

func (s *DirStorage) path(key string) string { return filepath.Join(s.Dir, key+".json") }

// Get reads the file of the key. A missing file is an absent blob.
func (s *DirStorage) Get(key string) (Blob, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return NoBlob, nil
	}
	if err != nil {
		return NoBlob, fmt.Errorf("could not read %q: %w", key, err)
	}
	return NewBlob(data), nil
}

// Set replaces the file of the key. The value is written to a temporary file
// first and renamed over the previous one, so that a reader never sees a
// partial value.
func (s *DirStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.Dir, err)
	}
	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

// MemoryStorage keeps values in memory. Its zero value is ready to use.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (m *MemoryStorage) Get(key string) (Blob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return NoBlob, nil
	}
	return NewBlob(append([]byte(nil), v...)), nil
}

func (m *MemoryStorage) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Load reads the state from storage. It never fails: a missing, unreadable
// or undecodable value yields the empty state, and the stored value is left
// untouched.
func Load(st Storage, log *zap.Logger) State {
	if log == nil {
		log = zap.NewNop()
	}
	blob, err := st.Get(StateKey)
	if err != nil {
		log.Warn("cannot read state, starting empty", zap.Error(err))
		return EmptyState()
	}
	s, err := Decode(blob)
	if err != nil {
		var derr *DecodeError
		if errors.As(err, &derr) {
			derr.Key = StateKey
		}
		log.Error("cannot decode state, starting empty", zap.Error(err))
		return EmptyState()
	}
	if blob.Absent() {
		log.Info("no state stored yet, starting empty")
	}
	return s
}

// Save writes the whole state under StateKey, replacing the previous value.
func Save(st Storage, s State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := st.Set(StateKey, data); err != nil {
		return fmt.Errorf("could not save state: %w", err)
	}
	return nil
}

// Upgraded compares the version that last opened the storage with the
// running one, stores the running one and reports whether it changed.
// A storage that never recorded a version is not an upgrade.
func Upgraded(st Storage, version string) (previous string, upgraded bool, err error) {
	blob, err := st.Get(VersionKey)
	if err != nil {
		return "", false, err
	}
	previous = string(blob.Bytes())
	if previous == version {
		return previous, false, nil
	}
	if err := st.Set(VersionKey, []byte(version)); err != nil {
		return previous, false, fmt.Errorf("could not store app version: %w", err)
	}
	return previous, !blob.Absent(), nil
}

package biashara

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// SyncStatus is the persistence status shown to the user.
type SyncStatus int

const (
	// Synced means the state in memory is the stored one.
	Synced SyncStatus = iota
	// Syncing means an update is being applied and saved.
	Syncing
	// Pending means the last save failed: the state in memory is ahead of storage.
	Pending
)

func (s SyncStatus) String() string {
	switch s {
	case Synced:
		return "synced"
	case Syncing:
		return "syncing"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}

// ErrClosed is returned by a closed session.
var ErrClosed = errors.New("session is closed")

// Update is a pure transformation of the state. It receives a deep copy it
// is free to modify, and returns the next state, or an error to leave the
// state unchanged.
type Update func(State) (State, error)

// Session owns the current state of a shop and every write to it.
//
// All surfaces mutate the state through Update or Replace, which are
// serialized. The state is saved after each successful update.
type Session struct {
	mu        sync.Mutex
	notify    sync.Mutex // keeps notifications in transition order
	storage   Storage
	state     State
	status    SyncStatus
	observers []func(SyncStatus)
	log       *zap.Logger
	closed    bool

	version  string
	previous string
	upgraded bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithVersion records the running application version in the storage.
func WithVersion(version string) Option {
	return func(s *Session) { s.version = version }
}

// Open loads the state from storage. It never fails: unreadable data is
// logged and replaced by the empty state in memory only.
func Open(st Storage, opts ...Option) *Session {
	s := &Session{storage: st, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.state = Load(st, s.log.Named("store"))
	if s.version != "" {
		prev, up, err := Upgraded(st, s.version)
		if err != nil {
			s.log.Warn("cannot track app version", zap.Error(err))
		}
		s.previous, s.upgraded = prev, up
		if up {
			s.log.Info("application upgraded", zap.String("from", prev), zap.String("to", s.version))
		}
	}
	return s
}

// Upgraded reports the version that last opened the storage when it differs from the running one.
func (s *Session) Upgraded() (previous string, upgraded bool) {
	return s.previous, s.upgraded
}

// State returns a deep copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Status returns the current sync status.
func (s *Session) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// OnStatus registers f to be called on every status change, in order.
//
// f runs once the update has released the session, so it may read the
// session. It must not call Update or Replace.
func (s *Session) OnStatus(f func(SyncStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, f)
}

// transitions records the status changes of one update, to be notified
// after the session is unlocked.
type transitions []SyncStatus

func (s *Session) setStatus(changes *transitions, status SyncStatus) {
	s.status = status
	*changes = append(*changes, status)
}

// Update applies f to the current state, commits the result and saves it.
//
// If f fails or panics nothing changes and the error is returned. If the
// save fails the new state is kept in memory, the status becomes Pending
// and the error is returned.
func (s *Session) Update(f Update) error {
	var changes transitions
	s.mu.Lock()
	err := s.update(f, &changes)
	observers := slices.Clone(s.observers)
	s.notify.Lock()
	s.mu.Unlock()

	defer s.notify.Unlock()
	for _, status := range changes {
		for _, o := range observers {
			o(status)
		}
	}
	return err
}

// update does the work of Update with s.mu held.
func (s *Session) update(f Update, changes *transitions) error {
	if s.closed {
		return ErrClosed
	}
	previous := s.status
	s.setStatus(changes, Syncing)

	next, err := apply(f, s.state.Clone())
	if err != nil {
		s.setStatus(changes, previous)
		return err
	}
	s.state = next

	if err := Save(s.storage, next); err != nil {
		s.log.Error("cannot save state", zap.Error(err))
		s.setStatus(changes, Pending)
		return err
	}
	s.log.Debug("state saved", zap.Int("records", next.Len()))
	s.setStatus(changes, Synced)
	return nil
}

// apply runs f, turning a panic into an error.
func apply(f Update, s State) (next State, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update failed: %v", r)
		}
	}()
	next, err = f(s)
	if err != nil {
		return State{}, err
	}
	// canonical form: sequences are never nil
	return next.Clone(), nil
}

// Replace substitutes the whole state, as on import or restore.
func (s *Session) Replace(state State) error {
	state = state.Clone()
	return s.Update(func(State) (State, error) { return state, nil })
}

// Snapshots returns the snapshot log, newest first. An unreadable log is empty.
func (s *Session) Snapshots() []Snapshot {
	list, err := LoadSnapshots(s.storage)
	if err != nil {
		s.log.Warn("cannot read snapshots", zap.Error(err))
	}
	return list
}

// Capture records a labeled copy of the current state in the snapshot log.
//
// An unreadable log is first copied under UnreadableSnapshotsKey, so that a
// new log never destroys the previous snapshots.
func (s *Session) Capture(label string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Snapshot{}, ErrClosed
	}
	list, err := LoadSnapshots(s.storage)
	if err != nil {
		if err := s.setAside(); err != nil {
			return Snapshot{}, fmt.Errorf("snapshot log is unreadable and cannot be set aside: %w", err)
		}
		s.log.Warn("cannot read snapshots, previous log set aside", zap.String("key", UnreadableSnapshotsKey), zap.Error(err))
		list = nil
	}
	snap := NewSnapshot(label, s.state, now())
	if err := SaveSnapshots(s.storage, PushSnapshot(list, snap)); err != nil {
		return Snapshot{}, err
	}
	s.log.Info("snapshot captured", zap.String("id", snap.ID), zap.String("label", label))
	return snap, nil
}

// setAside copies the raw snapshot log under UnreadableSnapshotsKey.
func (s *Session) setAside() error {
	blob, err := s.storage.Get(SnapshotsKey)
	if err != nil {
		return err
	}
	return s.storage.Set(UnreadableSnapshotsKey, blob.Bytes())
}

// Restore replaces the state with the data of the snapshot with that id.
func (s *Session) Restore(id string) error {
	snap, ok := FindSnapshot(s.Snapshots(), id)
	if !ok {
		return fmt.Errorf("snapshot %q: %w", id, ErrNotFound)
	}
	return s.Replace(snap.Data)
}

// Close ends the session. Later updates fail with ErrClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	_ = s.log.Sync() // stderr sync errors are not actionable
	return nil
}

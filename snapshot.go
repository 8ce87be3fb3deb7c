package biashara

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// MaxSnapshots is the number of snapshots the log retains.
const MaxSnapshots = 10

// Snapshot is a labeled, timestamped copy of the whole state.
type Snapshot struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Label     string `json:"label"`
	Data      State  `json:"data"`
}

// rawSnapshot is the persisted shape of a Snapshot, its data still undecoded.
type rawSnapshot struct {
	ID        string          `json:"id"`
	Timestamp string          `json:"timestamp"`
	Label     string          `json:"label"`
	Data      json.RawMessage `json:"data"`
}

// NewSnapshot returns a snapshot holding a deep copy of s.
func NewSnapshot(label string, s State, at time.Time) Snapshot {
	return Snapshot{
		ID:        "SNAP-" + strings.ToUpper(NewID()),
		Timestamp: stamp(at),
		Label:     label,
		Data:      s.Clone(),
	}
}

// LoadSnapshots reads the snapshot log, newest first.
//
// An unreadable log is returned empty together with the error, so that
// callers can report it and carry on.
func LoadSnapshots(st Storage) ([]Snapshot, error) {
	blob, err := st.Get(SnapshotsKey)
	if err != nil {
		return []Snapshot{}, err
	}
	if blob.Absent() {
		return []Snapshot{}, nil
	}
	var raws []rawSnapshot
	if err := json.Unmarshal(blob.Bytes(), &raws); err != nil {
		return []Snapshot{}, &DecodeError{Key: SnapshotsKey, Err: err}
	}
	list := make([]Snapshot, 0, len(raws))
	for _, r := range raws {
		data, err := Decode(dataBlob(r.Data))
		if err != nil {
			return []Snapshot{}, &DecodeError{Key: SnapshotsKey, Err: fmt.Errorf("snapshot %s: %w", r.ID, err)}
		}
		list = append(list, Snapshot{ID: r.ID, Timestamp: r.Timestamp, Label: r.Label, Data: data})
	}
	return list, nil
}

func dataBlob(data json.RawMessage) Blob {
	if len(data) == 0 {
		return NoBlob
	}
	return NewBlob(data)
}

// SaveSnapshots writes the snapshot log, keeping at most MaxSnapshots entries.
func SaveSnapshots(st Storage, list []Snapshot) error {
	if len(list) > MaxSnapshots {
		list = list[:MaxSnapshots]
	}
	if list == nil {
		list = []Snapshot{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("cannot encode snapshots: %w", err)
	}
	if err := st.Set(SnapshotsKey, data); err != nil {
		return fmt.Errorf("could not save snapshots: %w", err)
	}
	return nil
}

// PushSnapshot prepends snap to the log and evicts the oldest entries beyond MaxSnapshots.
func PushSnapshot(list []Snapshot, snap Snapshot) []Snapshot {
	list = append([]Snapshot{snap}, list...)
	if len(list) > MaxSnapshots {
		list = list[:MaxSnapshots]
	}
	return list
}

// FindSnapshot returns the snapshot with that id.
func FindSnapshot(list []Snapshot, id string) (Snapshot, bool) {
	i := slices.IndexFunc(list, func(s Snapshot) bool { return s.ID == id })
	if i < 0 {
		return Snapshot{}, false
	}
	return list[i], true
}

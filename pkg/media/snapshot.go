package media

import (
	"fmt"
	"os"
	"reflect"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// snapEncMode is the CBOR encoder mode for snapshots. Canonical sort
// keeps encodings byte-stable so snapshot files can be compared.
var snapEncMode cbor.EncMode

// snapDecMode is the CBOR decoder mode for snapshots.
var snapDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	snapEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:      cbor.DupMapKeyQuiet,
		IndefLength:    cbor.IndefLengthAllowed,
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}
	snapDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// Snapshot is the fully resolved view of a registry: every class paired
// with its merged manifest, sorted by class name.
type Snapshot struct {
	Root    string          `cbor:"root"`
	Classes []SnapshotEntry `cbor:"classes"`
}

// SnapshotEntry is one resolved class in a snapshot.
type SnapshotEntry struct {
	Class string   `cbor:"class"`
	Media Manifest `cbor:"media"`
}

// BuildSnapshot resolves every registered class. Resolution errors
// (unknown parent, cycle) abort the snapshot.
func BuildSnapshot(r *Registry) (*Snapshot, error) {
	classes := r.Classes()
	sort.Strings(classes)

	snap := &Snapshot{Root: r.Root(), Classes: make([]SnapshotEntry, 0, len(classes))}
	for _, name := range classes {
		resolved, err := r.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("snapshot of %q: %w", name, err)
		}
		snap.Classes = append(snap.Classes, SnapshotEntry{Class: name, Media: resolved})
	}
	return snap, nil
}

// EncodeSnapshot encodes a snapshot to canonical CBOR bytes.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return snapEncMode.Marshal(snap)
}

// DecodeSnapshot decodes CBOR bytes into a snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := snapDecMode.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// WriteSnapshotFile resolves the registry and writes the encoded
// snapshot to path.
func WriteSnapshotFile(r *Registry, path string) error {
	snap, err := BuildSnapshot(r)
	if err != nil {
		return err
	}
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadSnapshotFile reads and decodes a snapshot file.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeSnapshot(data)
}

// ChangeKind classifies one difference between two snapshots.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeUpdated ChangeKind = "updated"
)

// Change is one per-class difference between two snapshots.
type Change struct {
	Class string
	Kind  ChangeKind
}

// String formats the change for display.
func (c Change) String() string {
	return fmt.Sprintf("%s %s", c.Kind, c.Class)
}

// DiffSnapshots compares two snapshots and reports per-class changes,
// sorted by class name. The old snapshot is the baseline.
func DiffSnapshots(oldSnap, newSnap *Snapshot) []Change {
	oldByClass := make(map[string]Manifest, len(oldSnap.Classes))
	for _, e := range oldSnap.Classes {
		oldByClass[e.Class] = e.Media
	}

	var changes []Change
	seen := make(map[string]bool, len(newSnap.Classes))
	for _, e := range newSnap.Classes {
		seen[e.Class] = true
		prev, existed := oldByClass[e.Class]
		switch {
		case !existed:
			changes = append(changes, Change{Class: e.Class, Kind: ChangeAdded})
		case !reflect.DeepEqual(prev, e.Media):
			changes = append(changes, Change{Class: e.Class, Kind: ChangeUpdated})
		}
	}
	for _, e := range oldSnap.Classes {
		if !seen[e.Class] {
			changes = append(changes, Change{Class: e.Class, Kind: ChangeRemoved})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Class < changes[j].Class })
	return changes
}

package media

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	reg := newTestRegistry(t)

	snap, err := BuildSnapshot(reg)
	require.NoError(t, err)

	assert.Equal(t, "widget", snap.Root)
	require.Len(t, snap.Classes, 3)

	// Sorted by class name, each fully resolved.
	assert.Equal(t, "datepicker", snap.Classes[0].Class)
	assert.Equal(t, "datetimepicker", snap.Classes[1].Class)
	assert.Equal(t, "textinput", snap.Classes[2].Class)
	assert.Equal(t, Manifest{
		"css": Paths("forms/css/text.css", "forms/css/picker.css"),
	}, snap.Classes[0].Media)
}

func TestBuildSnapshot_BrokenHierarchy(t *testing.T) {
	reg := NewRegistry("widget")
	reg.MustRegister("orphan", "ghost", nil)

	_, err := BuildSnapshot(reg)
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestSnapshot_EncodeDecodeRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)

	snap, err := BuildSnapshot(reg)
	require.NoError(t, err)

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)

	// Canonical encoding is byte-stable.
	again, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestSnapshot_FileRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	path := filepath.Join(t.TempDir(), "media.snapshot")

	require.NoError(t, WriteSnapshotFile(reg, path))

	snap, err := ReadSnapshotFile(path)
	require.NoError(t, err)
	assert.Equal(t, "widget", snap.Root)
	assert.Len(t, snap.Classes, 3)

	_, err = ReadSnapshotFile(filepath.Join(t.TempDir(), "missing.snapshot"))
	assert.Error(t, err)
}

func TestDiffSnapshots(t *testing.T) {
	oldReg := newTestRegistry(t)
	oldSnap, err := BuildSnapshot(oldReg)
	require.NoError(t, err)

	newReg := NewRegistry("widget")
	newReg.MustRegister("textinput", "", func() Manifest {
		return Manifest{"css": Paths("forms/css/text-v2.css")}
	})
	newReg.MustRegister("datepicker", "textinput", func() Manifest {
		return Manifest{"css": Paths("forms/css/picker.css")}
	})
	newReg.MustRegister("checkbox", "", nil)
	newSnap, err := BuildSnapshot(newReg)
	require.NoError(t, err)

	changes := DiffSnapshots(oldSnap, newSnap)
	require.Len(t, changes, 4)

	assert.Equal(t, Change{Class: "checkbox", Kind: ChangeAdded}, changes[0])
	assert.Equal(t, Change{Class: "datepicker", Kind: ChangeUpdated}, changes[1])
	assert.Equal(t, Change{Class: "datetimepicker", Kind: ChangeRemoved}, changes[2])
	assert.Equal(t, Change{Class: "textinput", Kind: ChangeUpdated}, changes[3])
}

func TestDiffSnapshots_NoChanges(t *testing.T) {
	reg := newTestRegistry(t)
	snap, err := BuildSnapshot(reg)
	require.NoError(t, err)

	assert.Empty(t, DiffSnapshots(snap, snap))
}

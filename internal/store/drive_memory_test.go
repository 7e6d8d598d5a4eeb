package store

import (
	"testing"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDriveStore_CreateAndRead(t *testing.T) {
	drive := NewMemoryDriveStore(logger.Nop())

	ref, err := drive.CreateFile("family"+models.SnapshotFileSuffix, "", []byte("blob"))
	require.NoError(t, err)
	require.True(t, ref.Exists())
	assert.Equal(t, "/family"+models.SnapshotFileSuffix, ref.Path)
	assert.NotEmpty(t, ref.ShareURL)

	blob, err := drive.ReadFile(ref.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), blob)
}

func TestMemoryDriveStore_CreateEmptyName(t *testing.T) {
	drive := NewMemoryDriveStore(logger.Nop())

	_, err := drive.CreateFile("", "", []byte("blob"))
	assert.Error(t, err)
}

func TestMemoryDriveStore_Overwrite(t *testing.T) {
	drive := NewMemoryDriveStore(logger.Nop())

	ref, err := drive.CreateFile("a"+models.SnapshotFileSuffix, "", []byte("v1"))
	require.NoError(t, err)

	updated, err := drive.OverwriteFile(ref.ID, []byte("v2"))
	require.NoError(t, err)
	// идентичность файла не меняется при перезаписи
	assert.Equal(t, ref.ID, updated.ID)

	blob, err := drive.ReadFile(ref.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), blob)
}

func TestMemoryDriveStore_UnknownID(t *testing.T) {
	drive := NewMemoryDriveStore(logger.Nop())

	_, err := drive.ReadFile("missing")
	assert.ErrorIs(t, err, ErrDriveFileNotFound)

	_, err = drive.OverwriteFile("missing", []byte("x"))
	assert.ErrorIs(t, err, ErrDriveFileNotFound)
}

func TestMemoryDriveStore_ListChildren_SortedByName(t *testing.T) {
	drive := NewMemoryDriveStore(logger.Nop())

	_, err := drive.CreateFile("b"+models.SnapshotFileSuffix, "", nil)
	require.NoError(t, err)
	_, err = drive.CreateFile("a"+models.SnapshotFileSuffix, "", nil)
	require.NoError(t, err)

	listing, err := drive.ListChildren("")
	require.NoError(t, err)
	require.Len(t, listing.Files, 2)
	assert.Equal(t, "a"+models.SnapshotFileSuffix, listing.Files[0].Name)
	assert.Equal(t, "b"+models.SnapshotFileSuffix, listing.Files[1].Name)
}

func TestMemoryDriveStore_BlobIsCopied(t *testing.T) {
	drive := NewMemoryDriveStore(logger.Nop())

	src := []byte("original")
	ref, err := drive.CreateFile("c"+models.SnapshotFileSuffix, "", src)
	require.NoError(t, err)

	// мутация исходного среза не должна менять сохранённый блоб
	src[0] = 'X'

	blob, err := drive.ReadFile(ref.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), blob)
}

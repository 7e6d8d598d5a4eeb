package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// ErrDriveFileNotFound is returned by the drive emulator storage when an
// operation targets a file id that does not exist.
var ErrDriveFileNotFound = errors.New("drive file was not found")

// DriveStore is the storage contract of the drive emulator daemon: a file
// tree holding uploaded snapshot blobs.
type DriveStore interface {
	// CreateFile stores a new file under the root and returns its reference.
	CreateFile(name, path string, blob []byte) (models.RemoteFileRef, error)

	// OverwriteFile replaces the contents of an existing file.
	// Fails with [ErrDriveFileNotFound] for an unknown id.
	OverwriteFile(id string, blob []byte) (models.RemoteFileRef, error)

	// ReadFile returns the stored blob of a file.
	// Fails with [ErrDriveFileNotFound] for an unknown id.
	ReadFile(id string) ([]byte, error)

	// ListChildren lists the folders and files directly under the given
	// folder; an empty parentID means the root.
	ListChildren(parentID string) (models.FolderListing, error)
}

type driveFile struct {
	ref    models.RemoteFileRef
	parent string
	blob   []byte
}

type memoryDriveStore struct {
	logger *logger.Logger
	uuid   *utils.UUIDGenerator

	mu    sync.RWMutex
	files map[string]*driveFile
}

// NewMemoryDriveStore constructs an empty in-memory [DriveStore]. State lives
// for the lifetime of the process; the emulator is a development tool, not a
// durable service.
func NewMemoryDriveStore(log *logger.Logger) DriveStore {
	return &memoryDriveStore{
		logger: log,
		uuid:   utils.NewUUIDGenerator(),
		files:  map[string]*driveFile{},
	}
}

func (m *memoryDriveStore) CreateFile(name, path string, blob []byte) (models.RemoteFileRef, error) {
	if name == "" {
		return models.RemoteFileRef{}, fmt.Errorf("create file: empty name")
	}
	if path == "" {
		path = "/" + name
	}

	id := m.uuid.Generate()
	ref := models.RemoteFileRef{
		ID:       id,
		Name:     name,
		Path:     path,
		Shared:   true,
		ShareURL: "https://drive.local/d/" + id,
	}

	m.mu.Lock()
	m.files[id] = &driveFile{ref: ref, blob: append([]byte(nil), blob...)}
	m.mu.Unlock()

	m.logger.Debug().Str("file_id", id).Str("name", name).Int("bytes", len(blob)).Msg("drive file created")
	return ref, nil
}

func (m *memoryDriveStore) OverwriteFile(id string, blob []byte) (models.RemoteFileRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.files[id]
	if !ok {
		return models.RemoteFileRef{}, fmt.Errorf("%w: id=%s", ErrDriveFileNotFound, id)
	}
	f.blob = append([]byte(nil), blob...)

	return f.ref, nil
}

func (m *memoryDriveStore) ReadFile(id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrDriveFileNotFound, id)
	}

	return append([]byte(nil), f.blob...), nil
}

func (m *memoryDriveStore) ListChildren(parentID string) (models.FolderListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listing := models.FolderListing{}
	for _, f := range m.files {
		if f.parent != parentID {
			continue
		}
		listing.Files = append(listing.Files, f.ref)
	}
	sort.Slice(listing.Files, func(i, j int) bool {
		return listing.Files[i].Name < listing.Files[j].Name
	})

	return listing, nil
}

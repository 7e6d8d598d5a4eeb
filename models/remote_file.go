package models

import "strings"

// SnapshotFileSuffix is the double extension every snapshot file carries on
// the remote drive. Folder listings are filtered to this suffix; anything
// else is invisible to file selection.
const SnapshotFileSuffix = ".rcpbk.json.gz"

// RemoteFileRef identifies the snapshot object on the cloud drive.
//
// A ref with an empty ID has been named by the user but not yet created
// remotely; the first successful upload populates ID and the canonical Name,
// and the ref is persisted locally so later syncs target the same object.
type RemoteFileRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Shared   bool   `json:"shared"`
	ShareURL string `json:"shareUrl,omitempty"`
}

// Exists reports whether the file has already been created on the remote.
func (r RemoteFileRef) Exists() bool {
	return r.ID != ""
}

// IsSnapshotFile reports whether the ref's name follows the snapshot naming
// convention.
func (r RemoteFileRef) IsSnapshotFile() bool {
	return strings.HasSuffix(r.Name, SnapshotFileSuffix)
}

// FolderRef identifies a folder on the cloud drive. The zero value means the
// drive root.
type FolderRef struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// FolderListing is the result of listing one drive folder: subfolders plus
// the files that match the snapshot naming convention.
type FolderListing struct {
	Folders []FolderRef     `json:"folders"`
	Files   []RemoteFileRef `json:"files"`
}

// AccountInfo describes the drive account the client is signed in to.
type AccountInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

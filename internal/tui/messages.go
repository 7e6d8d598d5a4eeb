package tui

import (
	"time"

	"github.com/MKhiriev/recipe-keeper/models"
)

type connectDoneMsg struct {
	account models.AccountInfo
	err     error
}

type folderLoadedMsg struct {
	listing models.FolderListing
	err     error
}

type fileSelectedMsg struct {
	err error
}

type syncDoneMsg struct {
	err error
}

type resolveDoneMsg struct {
	err error
}

type recordsLoadedMsg struct {
	rows []recordRow
	err  error
}

type recordSavedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type disconnectDoneMsg struct {
	err error
}

type statusTickMsg time.Time

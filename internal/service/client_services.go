package service

import (
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
)

type ClientServices struct {
	MergeService MergeService
	SyncService  ClientSyncService
	Scheduler    SyncScheduler
}

func NewClientServices(localStore store.LocalStore, drive adapter.DriveAdapter, debounce time.Duration, log *logger.Logger) *ClientServices {
	mergeSvc := NewMergeService()
	syncSvc := NewClientSyncService(drive, localStore, mergeSvc, log)

	return &ClientServices{
		MergeService: mergeSvc,
		SyncService:  syncSvc,
		Scheduler:    NewSyncScheduler(syncSvc, localStore, debounce, log),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the cloud drive that stores the snapshot file.
//
// The primary abstraction is [DriveAdapter], which decouples the sync engine
// from the drive vendor's REST API. Swapping the vendor means implementing
// this interface; nothing above the adapter changes.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrSessionExpired] for a 401
// that arrives mid-session).
package adapter

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/drive_adapter_mock.go -package=mock

// DriveAdapter defines vendor-agnostic access to the remote object store.
// Implementations only query the current authentication state; interactive
// login and token renewal belong to an external collaborator, and the adapter
// must never attempt them itself.
type DriveAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// Called by the authentication collaborator after a fresh sign-in; an
	// empty string clears the session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no session has been established.
	Token() string

	// IsAuthenticated reports whether a usable session is present. It is
	// synchronous and never touches the network: a session counts as usable
	// when a token is set and its expiry claim lies in the future.
	IsAuthenticated() bool

	// GetAccountInfo fetches the signed-in account's name and email.
	// Fails with [ErrUnauthorized] when no session is established.
	GetAccountInfo(ctx context.Context) (models.AccountInfo, error)

	// Upload stores blob under ref. When ref.ID is empty the object is
	// created and the returned ref carries the drive-assigned ID and
	// canonical name; otherwise the existing object is overwritten in place.
	Upload(ctx context.Context, ref models.RemoteFileRef, blob []byte) (models.RemoteFileRef, error)

	// Download fetches the object identified by ref. Fails with
	// [ErrNotFound] when the object no longer exists and [ErrSessionExpired]
	// when the call discovers the session has lapsed.
	Download(ctx context.Context, ref models.RemoteFileRef) ([]byte, error)

	// ListFolder lists parent's subfolders and the files matching the
	// snapshot naming convention. A nil parent means the drive root. Used by
	// the file-selection UI only.
	ListFolder(ctx context.Context, parent *models.FolderRef) (models.FolderListing, error)
}

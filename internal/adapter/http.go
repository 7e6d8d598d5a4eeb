package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpDriveAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPDriveAdapter constructs an HTTP/REST implementation of
// [DriveAdapter]. It normalises and validates the base URL from
// adapterCfg.DriveAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.DriveAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPDriveAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (DriveAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.DriveAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid drive address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpDriveAdapter{client: cli, logger: log}, nil
}

func (h *httpDriveAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpDriveAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// IsAuthenticated implements DriveAdapter. The expiry claim is read without
// signature verification: the adapter only needs a cheap local judgement, the
// drive remains the authority and answers 401 for anything stale.
func (h *httpDriveAdapter) IsAuthenticated() bool {
	token := h.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque (non-JWT) token: expiry cannot be judged locally.
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

func (h *httpDriveAdapter) GetAccountInfo(ctx context.Context) (models.AccountInfo, error) {
	token := h.Token()
	if token == "" {
		return models.AccountInfo{}, ErrUnauthorized
	}

	var account models.AccountInfo
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&account).
		Get("/api/account")
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("%w: account request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp, true); err != nil {
		return models.AccountInfo{}, fmt.Errorf("get account info: %w", err)
	}

	return account, nil
}

func (h *httpDriveAdapter) Upload(ctx context.Context, ref models.RemoteFileRef, blob []byte) (models.RemoteFileRef, error) {
	token := h.Token()
	if token == "" {
		return models.RemoteFileRef{}, ErrUnauthorized
	}

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(blob)

	var (
		uploaded models.RemoteFileRef
		resp     *resty.Response
		err      error
	)
	if ref.Exists() {
		resp, err = req.SetResult(&uploaded).Put("/api/files/" + url.PathEscape(ref.ID))
	} else {
		resp, err = req.SetResult(&uploaded).
			SetQueryParam("name", ref.Name).
			SetQueryParam("path", ref.Path).
			Post("/api/files")
	}
	if err != nil {
		return models.RemoteFileRef{}, fmt.Errorf("%w: upload request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp, true); err != nil {
		return models.RemoteFileRef{}, fmt.Errorf("upload snapshot: %w", err)
	}

	h.logger.Debug().
		Str("file_id", uploaded.ID).
		Str("name", uploaded.Name).
		Int("bytes", len(blob)).
		Msg("snapshot uploaded")

	return uploaded, nil
}

func (h *httpDriveAdapter) Download(ctx context.Context, ref models.RemoteFileRef) ([]byte, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrUnauthorized
	}
	if !ref.Exists() {
		return nil, fmt.Errorf("%w: file has no remote id", ErrNotFound)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/files/" + url.PathEscape(ref.ID))
	if err != nil {
		return nil, fmt.Errorf("%w: download request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp, true); err != nil {
		return nil, fmt.Errorf("download snapshot: %w", err)
	}

	return resp.Body(), nil
}

func (h *httpDriveAdapter) ListFolder(ctx context.Context, parent *models.FolderRef) (models.FolderListing, error) {
	token := h.Token()
	if token == "" {
		return models.FolderListing{}, ErrUnauthorized
	}

	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
	if parent != nil && parent.ID != "" {
		req.SetQueryParam("parent", parent.ID)
	}

	var listing models.FolderListing
	resp, err := req.SetResult(&listing).Get("/api/folders/children")
	if err != nil {
		return models.FolderListing{}, fmt.Errorf("%w: list folder request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp, true); err != nil {
		return models.FolderListing{}, fmt.Errorf("list folder: %w", err)
	}

	// The drive lists everything; only snapshot files matter to selection.
	files := listing.Files[:0]
	for _, f := range listing.Files {
		if f.IsSnapshotFile() {
			files = append(files, f)
		}
	}
	listing.Files = files

	return listing, nil
}

func normalizeBaseURL(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	parsed, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", address)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

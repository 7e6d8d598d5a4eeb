// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServer(t *testing.T) (*httptest.Server, *config.DrivedConfig) {
	t.Helper()

	cfg := &config.DrivedConfig{
		Address:   ":0",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	h := NewHandler(store.NewMemoryDriveStore(logger.Nop()), cfg, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, cfg
}

// obtainToken выпускает токен через /api/token.
func obtainToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(srv.URL+"/api/token", "application/json",
		strings.NewReader(`{"name":"Иван","email":"ivan@example.com"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out issueTokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)

	return out.Token
}

func doRequest(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// expiredToken подписывает токен с истёкшим сроком тем же секретом.
func expiredToken(t *testing.T, secret string) string {
	t.Helper()

	claims := driveClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "old@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Name:  "Old",
		Email: "old@example.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

// TestAccount_ReturnsTokenIdentity: личность аккаунта едет внутри токена и
// возвращается эндпоинтом /api/account.
func TestAccount_ReturnsTokenIdentity(t *testing.T) {
	srv, _ := newTestServer(t)
	token := obtainToken(t, srv)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/account", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var acc models.AccountInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&acc))
	assert.Equal(t, "Иван", acc.Name)
	assert.Equal(t, "ivan@example.com", acc.Email)
}

func TestAccount_NoToken_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/account", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAccount_ExpiredToken_Unauthorized(t *testing.T) {
	srv, cfg := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/account", expiredToken(t, cfg.JWTSecret), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAccount_WrongSignature_Unauthorized(t *testing.T) {
	srv, _ := newTestServer(t)

	// токен подписан чужим секретом
	foreign := expiredToken(t, "another-secret")
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/account", foreign, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestFiles_CreateDownloadOverwrite: полный цикл жизни файла снапшота.
func TestFiles_CreateDownloadOverwrite(t *testing.T) {
	srv, _ := newTestServer(t)
	token := obtainToken(t, srv)

	// создание
	resp := doRequest(t, http.MethodPost,
		srv.URL+"/api/files?name=family"+models.SnapshotFileSuffix, token, []byte("blob-v1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ref models.RemoteFileRef
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ref))
	resp.Body.Close()
	require.True(t, ref.Exists())
	assert.True(t, ref.IsSnapshotFile())
	assert.NotEmpty(t, ref.ShareURL)

	// скачивание
	resp = doRequest(t, http.MethodGet, srv.URL+"/api/files/"+ref.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "blob-v1", buf.String())

	// перезапись
	resp = doRequest(t, http.MethodPut, srv.URL+"/api/files/"+ref.ID, token, []byte("blob-v2"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/files/"+ref.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf.Reset()
	_, err = buf.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "blob-v2", buf.String())
}

func TestFiles_CreateWithoutName_BadRequest(t *testing.T) {
	srv, _ := newTestServer(t)
	token := obtainToken(t, srv)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/files", token, []byte("blob"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFiles_UnknownID_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	token := obtainToken(t, srv)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/files/no-such-id", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, http.MethodPut, srv.URL+"/api/files/no-such-id", token, []byte("blob"))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestFolders_ListChildren: корень перечисляет созданные файлы.
func TestFolders_ListChildren(t *testing.T) {
	srv, _ := newTestServer(t)
	token := obtainToken(t, srv)

	for _, name := range []string{"b" + models.SnapshotFileSuffix, "a" + models.SnapshotFileSuffix} {
		resp := doRequest(t, http.MethodPost, srv.URL+"/api/files?name="+name, token, []byte("x"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/folders/children", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing models.FolderListing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Len(t, listing.Files, 2)
	// выдача отсортирована по имени
	assert.Equal(t, "a"+models.SnapshotFileSuffix, listing.Files[0].Name)
	assert.Equal(t, "b"+models.SnapshotFileSuffix, listing.Files[1].Name)
}

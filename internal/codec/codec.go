// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec implements the reversible transform between a UTF-8 JSON
// snapshot string and the compact gzip blob stored on the cloud drive.
//
// The transform must round-trip exactly: Decompress(Compress(s)) == s for any
// string s, including the empty string. Malformed or truncated input is
// reported via [ErrCodec]; partial data is never returned.
package codec

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// ErrCodec is wrapped by every error returned from this package. Callers
// should match it with [errors.Is].
var ErrCodec = errors.New("snapshot codec error")

// Compress gzips the given UTF-8 text.
func Compress(text string) ([]byte, error) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(text)); err != nil {
		return nil, fmt.Errorf("%w: write: %w", ErrCodec, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: close: %w", ErrCodec, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress. Truncated or corrupt input fails with an
// error wrapping [ErrCodec]; the checksum in the gzip trailer guarantees no
// silently damaged payload gets through.
func Decompress(blob []byte) (string, error) {
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return "", fmt.Errorf("%w: open: %w", ErrCodec, err)
	}
	defer zr.Close()

	text, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("%w: read: %w", ErrCodec, err)
	}

	return string(text), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
)

const msgServerUnavailable = "Network is down or the server is unavailable"

// describeError turns an adapter error into the line shown under a form.
// Server rejections show the server's own reason.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// responseWriter decorates [http.ResponseWriter] to record the status code
// and the number of body bytes written. It streams through to the wrapped
// writer and is used by withLogging.
type responseWriter struct {
	http.ResponseWriter

	// status is the code passed to the first WriteHeader call, or 200 when
	// the handler wrote a body without calling WriteHeader.
	status int

	wroteHeader bool

	size int
}

// WriteHeader records statusCode and forwards it once. Later calls are
// ignored, matching net/http which only honours the first one.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// bufferedResponseWriter holds the whole response back until flush is
// called, so that headers derived from the body can still be set.
type bufferedResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// flush sends the recorded status and body to the wrapped writer.
func (w *bufferedResponseWriter) flush() error {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}
